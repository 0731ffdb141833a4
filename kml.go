package kml

import (
	"bytes"

	"github.com/KimNorgaard/go-kml/ast"
)

// Parse parses a KML document held in data and returns its tree with
// float64 coordinates. See Decoder.Decode for how top-level elements are
// returned.
func Parse(data []byte, opts ...Option) (ast.Node[float64], error) {
	return ParseAs[float64](data, opts...)
}

// ParseAs is like Parse with coordinates of type T.
func ParseAs[T ast.Float](data []byte, opts ...Option) (ast.Node[T], error) {
	return DecodeAs[T](NewDecoder(bytes.NewReader(data), opts...))
}
