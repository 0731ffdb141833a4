//go:build nokmz

package kml

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/KimNorgaard/go-kml/ast"
)

// ReadFile parses the KML file at path. KMZ files are rejected with
// ErrKMZUnsupported in this build.
func ReadFile(path string, opts ...Option) (ast.Node[float64], error) {
	return ReadFileAs[float64](path, opts...)
}

// ReadFileAs is like ReadFile with coordinates of type T.
func ReadFileAs[T ast.Float](path string, opts ...Option) (ast.Node[T], error) {
	if strings.EqualFold(filepath.Ext(path), ".kmz") {
		return nil, ErrKMZUnsupported
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeAs[T](NewDecoder(f, opts...))
}
