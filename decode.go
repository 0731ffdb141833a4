package kml

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-kml/ast"
	kmlerrors "github.com/KimNorgaard/go-kml/errors"
	"github.com/KimNorgaard/go-kml/internal/lexer"
	"github.com/KimNorgaard/go-kml/internal/parser"
)

// Decoder reads a KML document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder may buffer data from r as necessary. It is the caller's
// responsibility to call Close on r if required.
//
// Functional options can be provided to configure the decoding process,
// such as setting a maximum nesting depth with the MaxDepth option.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input and returns its document tree with float64
// coordinates.
//
// A single top-level element is returned as is, usually a *ast.Root.
// Several top-level elements are wrapped in a *ast.Root with
// ast.VersionUnknown. Input without any element yields ErrNoElements.
func (d *Decoder) Decode() (ast.Node[float64], error) {
	return DecodeAs[float64](d)
}

// DecodeAs is like Decoder.Decode with coordinates of type T.
func DecodeAs[T ast.Float](d *Decoder) (ast.Node[T], error) {
	if d.r == nil {
		return nil, fmt.Errorf("kml: Decode(nil reader)")
	}
	o, err := newOptions(d.opts)
	if err != nil {
		return nil, err
	}

	var src lexer.Source
	if o.fast {
		src = lexer.NewFast(d.r)
	} else {
		src = lexer.New(d.r)
	}
	p := parser.New[T](src, parser.Config{Logger: o.logger, MaxDepth: o.maxDepth})
	nodes, err := p.Parse()
	if err != nil {
		return nil, err
	}

	switch len(nodes) {
	case 0:
		return nil, fmt.Errorf("kml: %w", kmlerrors.ErrNoElements)
	case 1:
		if root, ok := nodes[0].(*ast.Root[T]); ok {
			o.logger.Debug().
				Str("version", root.Version.String()).
				Int("elements", len(root.Elements)).
				Msg("Decoded KML document")
		}
		return nodes[0], nil
	default:
		o.logger.Debug().Int("elements", len(nodes)).Msg("Wrapping top-level elements in a kml root")
		return &ast.Root[T]{Version: ast.VersionUnknown, Elements: nodes}, nil
	}
}
