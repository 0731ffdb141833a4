package kml

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tdewolff/minify/v2"
	mxml "github.com/tdewolff/minify/v2/xml"

	"github.com/KimNorgaard/go-kml/ast"
	"github.com/KimNorgaard/go-kml/internal/formatter"
)

// An Encoder writes KML documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
//
// Functional options can be provided to configure the encoding process,
// such as setting indentation with the Indent option.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the XML encoding of v to the stream. v must be a node of a
// float32 or float64 document tree.
func (e *Encoder) Encode(v any) error {
	switch n := v.(type) {
	case ast.Node[float64]:
		return encode(e.w, n, e.opts)
	case ast.Node[float32]:
		return encode(e.w, n, e.opts)
	default:
		return fmt.Errorf("kml: cannot encode value of type %T", v)
	}
}

// Marshal returns the XML encoding of n.
func Marshal[T ast.Float](n ast.Node[T], opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, n, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode[T ast.Float](w io.Writer, n ast.Node[T], opts []Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	cfg := formatter.Config{Indent: o.indent, Declaration: o.declaration, CDATA: o.minify}
	if !o.minify {
		return formatter.New[T](w, cfg).Format(n)
	}

	var buf bytes.Buffer
	if err := formatter.New[T](&buf, cfg).Format(n); err != nil {
		return err
	}
	m := minify.New()
	m.AddFunc("text/xml", mxml.Minify)
	if err := m.Minify("text/xml", w, &buf); err != nil {
		return fmt.Errorf("kml: minify: %w", err)
	}
	return nil
}
