// Package parser builds a KML document tree from a token stream.
//
// The parser is an explicit loop over a stack of open elements. Each frame
// holds the builder that receives the element's children and text; a frame
// without a builder belongs to a skipped subtree. Child nodes are attached to
// their parent when their start tag is read, so source order is kept without
// any reordering on close.
package parser

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/KimNorgaard/go-kml/ast"
	kmlerrors "github.com/KimNorgaard/go-kml/errors"
	"github.com/KimNorgaard/go-kml/internal/lexer"
	"github.com/KimNorgaard/go-kml/internal/token"
)

// builder receives the content of one open element.
type builder interface {
	// open is called for each child start tag. A nil builder means the
	// child and its subtree are skipped.
	open(tok token.Token) (builder, error)
	// text is called with character data directly inside the element.
	text(s string)
	// close is called when the element's end tag is read.
	close() error
}

type frame struct {
	name   token.Name
	b      builder
	line   int
	column int
}

// Config holds the parser settings.
type Config struct {
	// Logger receives a debug event for every skipped element.
	Logger zerolog.Logger
	// MaxDepth limits element nesting. Zero means no limit.
	MaxDepth int
}

// Parser holds the state of the parser.
type Parser[T ast.Float] struct {
	src   lexer.Source
	log   zerolog.Logger
	max   int
	stack []frame
}

// New creates a new parser reading from src.
func New[T ast.Float](src lexer.Source, cfg Config) *Parser[T] {
	return &Parser[T]{src: src, log: cfg.Logger, max: cfg.MaxDepth}
}

// Parse reads the whole input and returns its top-level elements in source
// order. Unknown top-level elements are skipped like any other unknown
// element. No partial result is returned on error.
func (p *Parser[T]) Parse() ([]ast.Node[T], error) {
	top := &topBuilder[T]{p: p}
	p.stack = append(p.stack[:0], frame{b: top})

	for {
		tok, err := p.src.NextToken()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case token.EOF:
			if len(p.stack) > 1 {
				open := p.stack[len(p.stack)-1]
				return nil, &kmlerrors.ParseError{
					Err:     kmlerrors.ErrUnexpectedEOF,
					Message: fmt.Sprintf("unexpected end of input, element <%s> is not closed", open.name),
					Line:    tok.Line,
					Column:  tok.Column,
				}
			}
			return top.nodes, nil

		case token.START:
			if err := p.push(tok); err != nil {
				return nil, err
			}

		case token.END:
			if err := p.pop(tok); err != nil {
				return nil, err
			}

		case token.TEXT:
			if b := p.stack[len(p.stack)-1].b; b != nil {
				b.text(tok.Text)
			}
		}
	}
}

func (p *Parser[T]) push(tok token.Token) error {
	if p.max > 0 && len(p.stack) > p.max {
		return &kmlerrors.ParseError{
			Err:     kmlerrors.ErrDepthExceeded,
			Message: fmt.Sprintf("element <%s> exceeds maximum depth %d", tok.Name, p.max),
			Line:    tok.Line,
			Column:  tok.Column,
		}
	}

	parent := p.stack[len(p.stack)-1]
	var child builder
	if parent.b != nil {
		var err error
		child, err = parent.b.open(tok)
		if err != nil {
			return withPosition(err, tok.Line, tok.Column)
		}
		if child == nil {
			p.log.Debug().
				Str("element", tok.Name.String()).
				Str("parent", parent.name.String()).
				Int("line", tok.Line).
				Int("column", tok.Column).
				Msg("Skipping unknown element")
		}
	}
	p.stack = append(p.stack, frame{name: tok.Name, b: child, line: tok.Line, column: tok.Column})
	return nil
}

func (p *Parser[T]) pop(tok token.Token) error {
	if len(p.stack) == 1 {
		return &kmlerrors.ParseError{
			Err:     kmlerrors.ErrMismatchedTag,
			Message: fmt.Sprintf("unexpected end tag </%s>", tok.Name),
			Line:    tok.Line,
			Column:  tok.Column,
		}
	}
	f := p.stack[len(p.stack)-1]
	if f.name != tok.Name {
		return &kmlerrors.ParseError{
			Err:     kmlerrors.ErrMismatchedTag,
			Message: fmt.Sprintf("end tag </%s> does not match <%s>", tok.Name, f.name),
			Line:    tok.Line,
			Column:  tok.Column,
		}
	}
	p.stack = p.stack[:len(p.stack)-1]
	if f.b == nil {
		return nil
	}
	if err := f.b.close(); err != nil {
		return withPosition(err, f.line, f.column)
	}
	return nil
}

// withPosition attaches a position to errors raised by builders.
func withPosition(err error, line, column int) error {
	var pe *kmlerrors.ParseError
	if errors.As(err, &pe) {
		if pe.Line == 0 {
			pe.Line, pe.Column = line, column
		}
		return err
	}
	return &kmlerrors.ParseError{Err: err, Line: line, Column: column}
}

// valueError reports content of field that could not be converted.
func valueError(field string, err error) error {
	return &kmlerrors.ParseError{Err: kmlerrors.ErrValue, Field: field, Message: err.Error()}
}

// missingError reports a required child element that never appeared.
func missingError(parent, child string) error {
	return &kmlerrors.ParseError{
		Err:     kmlerrors.ErrMissingElement,
		Field:   parent,
		Message: fmt.Sprintf("missing <%s>", child),
	}
}

// readAttrs stores the id attribute in id and every other attribute, in
// order, in attrs. Prefixed names keep their prefix.
func readAttrs(tok token.Token, id *string, attrs *ast.Attrs) {
	for _, a := range tok.Attrs {
		if id != nil && a.Name.Prefix == "" && a.Name.Local == "id" {
			*id = a.Value
			continue
		}
		*attrs = append(*attrs, ast.Attr{Name: a.Name.String(), Value: a.Value})
	}
}

// topBuilder collects the top-level elements of the input.
type topBuilder[T ast.Float] struct {
	p     *Parser[T]
	nodes []ast.Node[T]
}

func (b *topBuilder[T]) open(tok token.Token) (builder, error) {
	n, child, err := b.p.node(tok)
	if n != nil {
		b.nodes = append(b.nodes, n)
	}
	return child, err
}

func (b *topBuilder[T]) text(string) {}

func (b *topBuilder[T]) close() error { return nil }
