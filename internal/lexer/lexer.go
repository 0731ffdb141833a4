// Package lexer turns KML bytes into the token stream consumed by the parser.
package lexer

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	kmlerrors "github.com/KimNorgaard/go-kml/errors"
	"github.com/KimNorgaard/go-kml/internal/token"
)

// Source delivers tokens one at a time. After the last token it returns a
// token of type token.EOF; any failure is returned as a *errors.ParseError.
type Source interface {
	NextToken() (token.Token, error)
}

// Lexer reads tokens with the standard library XML decoder in raw mode.
// Element nesting is not checked here; the parser owns that.
type Lexer struct {
	d         *xml.Decoder
	line, col int
}

// New creates and returns a new Lexer reading from r.
func New(r io.Reader) *Lexer {
	d := xml.NewDecoder(r)
	d.Strict = true
	d.Entity = xml.HTMLEntity
	return &Lexer{d: d, line: 1, col: 1}
}

// NextToken scans the input and returns the next token.
func (l *Lexer) NextToken() (token.Token, error) {
	for {
		line, col := l.line, l.col
		raw, err := l.d.RawToken()
		l.line, l.col = l.d.InputPos()
		if err == io.EOF {
			return token.Token{Type: token.EOF, Line: l.line, Column: l.col}, nil
		}
		if err != nil {
			return token.Token{}, wrapError(err, line, col)
		}

		tok := token.Token{Line: line, Column: col}
		switch t := raw.(type) {
		case xml.StartElement:
			tok.Type = token.START
			tok.Name = token.Name{Prefix: t.Name.Space, Local: t.Name.Local}
			if len(t.Attr) > 0 {
				tok.Attrs = make([]token.Attr, len(t.Attr))
				for i, a := range t.Attr {
					tok.Attrs[i] = token.Attr{
						Name:  token.Name{Prefix: a.Name.Space, Local: a.Name.Local},
						Value: a.Value,
					}
				}
			}
		case xml.EndElement:
			tok.Type = token.END
			tok.Name = token.Name{Prefix: t.Name.Space, Local: t.Name.Local}
		case xml.CharData:
			tok.Type = token.TEXT
			tok.Text = string(t)
		default:
			// Comments, processing instructions and directives carry nothing
			// the document tree keeps.
			continue
		}
		return tok, nil
	}
}

// wrapError classifies an error from the XML decoder. Encoding problems
// become decoding errors, malformed markup is a syntax error and errors from
// the underlying reader are returned unchanged.
func wrapError(err error, line, col int) error {
	var synErr *xml.SyntaxError
	if !errors.As(err, &synErr) {
		if strings.HasPrefix(err.Error(), "xml: ") {
			return &kmlerrors.ParseError{Err: kmlerrors.ErrDecoding, Message: err.Error(), Line: line, Column: col}
		}
		return err
	}
	pe := &kmlerrors.ParseError{Err: kmlerrors.ErrSyntax, Message: synErr.Msg, Line: synErr.Line, Column: col}
	switch {
	case strings.Contains(synErr.Msg, "UTF-8"), strings.Contains(synErr.Msg, "entity"):
		pe.Err = kmlerrors.ErrDecoding
	case strings.Contains(synErr.Msg, "unexpected EOF"):
		pe.Err = kmlerrors.ErrUnexpectedEOF
	}
	return pe
}
