package token

import "strings"

// Type is the type of a token.
type Type string

// Token represents a single markup event delivered by a lexer.
type Token struct {
	Type Type
	// Name is set for START and END tokens.
	Name Name
	// Attrs is set for START tokens, in source order.
	Attrs []Attr
	// Text is set for TEXT tokens, with entities and CDATA already decoded.
	Text   string
	Line   int
	Column int
}

const (
	EOF   Type = "EOF"   // End of input
	START Type = "START" // <Placemark id="a">
	END   Type = "END"   // </Placemark>
	TEXT  Type = "TEXT"  // character data between tags
)

// Name is a possibly prefixed element or attribute name. Prefixes are not
// resolved against namespace declarations.
type Name struct {
	Prefix string
	Local  string
}

// String returns the qualified name.
func (n Name) String() string {
	if n.Prefix == "" {
		return n.Local
	}
	return n.Prefix + ":" + n.Local
}

// ParseName splits a qualified name at its first colon.
func ParseName(qname string) Name {
	if prefix, local, ok := strings.Cut(qname, ":"); ok {
		return Name{Prefix: prefix, Local: local}
	}
	return Name{Local: qname}
}

// Attr is a single attribute of a START token.
type Attr struct {
	Name  Name
	Value string
}
