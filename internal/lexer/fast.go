package lexer

import (
	"bytes"
	"errors"
	"html"
	"io"
	"unicode/utf8"

	"github.com/muktihari/xmltokenizer"

	kmlerrors "github.com/KimNorgaard/go-kml/errors"
	"github.com/KimNorgaard/go-kml/internal/token"
)

var (
	cdataOpen  = []byte("<![CDATA[")
	cdataClose = []byte("]]>")
)

// FastLexer reads tokens with xmltokenizer. It avoids the allocations of
// encoding/xml but does not track positions, so tokens carry no line or
// column.
type FastLexer struct {
	tok     *xmltokenizer.Tokenizer
	pending []token.Token
}

// NewFast creates and returns a new FastLexer reading from r.
func NewFast(r io.Reader) *FastLexer {
	return &FastLexer{tok: xmltokenizer.New(r)}
}

// NextToken scans the input and returns the next token.
func (l *FastLexer) NextToken() (token.Token, error) {
	for len(l.pending) == 0 {
		raw, err := l.tok.Token()
		if err == io.EOF {
			return token.Token{Type: token.EOF}, nil
		}
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return token.Token{}, &kmlerrors.ParseError{Err: kmlerrors.ErrUnexpectedEOF}
			}
			return token.Token{}, err
		}
		if err := l.queue(&raw); err != nil {
			return token.Token{}, err
		}
	}
	tok := l.pending[0]
	l.pending = l.pending[1:]
	return tok, nil
}

// queue converts one xmltokenizer token into zero or more tokens. A start
// tag's token also holds the character data that follows it, and a
// self-closing tag produces a START and an END.
func (l *FastLexer) queue(raw *xmltokenizer.Token) error {
	if len(raw.Name.Full) == 0 {
		// Declarations, comments and directives.
		return nil
	}
	name := token.ParseName(string(bytes.TrimPrefix(raw.Name.Full, []byte("/"))))
	if raw.IsEndElement {
		l.pending = append(l.pending, token.Token{Type: token.END, Name: name})
	} else {
		start := token.Token{Type: token.START, Name: name}
		if len(raw.Attrs) > 0 {
			start.Attrs = make([]token.Attr, len(raw.Attrs))
			for i := range raw.Attrs {
				a := &raw.Attrs[i]
				v, err := decodeCharData(a.Value)
				if err != nil {
					return err
				}
				start.Attrs[i] = token.Attr{
					Name:  token.ParseName(string(a.Name.Full)),
					Value: v,
				}
			}
		}
		l.pending = append(l.pending, start)
		if raw.SelfClosing {
			l.pending = append(l.pending, token.Token{Type: token.END, Name: name})
			return nil
		}
	}
	if len(raw.Data) > 0 {
		text, err := decodeCharData(raw.Data)
		if err != nil {
			return err
		}
		l.pending = append(l.pending, token.Token{Type: token.TEXT, Text: text})
	}
	return nil
}

// decodeCharData resolves entity references outside CDATA sections and
// copies CDATA content verbatim.
func decodeCharData(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", &kmlerrors.ParseError{Err: kmlerrors.ErrDecoding, Message: "invalid UTF-8"}
	}
	var out []byte
	for len(b) > 0 {
		i := bytes.Index(b, cdataOpen)
		if i < 0 {
			out = append(out, html.UnescapeString(string(b))...)
			break
		}
		out = append(out, html.UnescapeString(string(b[:i]))...)
		b = b[i+len(cdataOpen):]
		j := bytes.Index(b, cdataClose)
		if j < 0 {
			return "", &kmlerrors.ParseError{Err: kmlerrors.ErrSyntax, Message: "unterminated CDATA section"}
		}
		out = append(out, b[:j]...)
		b = b[j+len(cdataClose):]
	}
	return string(out), nil
}
