//go:build !nokmz

package kml

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/KimNorgaard/go-kml/ast"
	"github.com/KimNorgaard/go-kml/kmz"
)

// ReadFile parses the KML or KMZ file at path. A .kmz file is opened as an
// archive and its primary document is parsed.
func ReadFile(path string, opts ...Option) (ast.Node[float64], error) {
	return ReadFileAs[float64](path, opts...)
}

// ReadFileAs is like ReadFile with coordinates of type T.
func ReadFileAs[T ast.Float](path string, opts ...Option) (ast.Node[T], error) {
	if !strings.EqualFold(filepath.Ext(path), ".kmz") {
		return readKML[T](path, opts)
	}
	a, err := kmz.Open(path)
	if err != nil {
		return nil, err
	}
	defer a.Close()
	return parsePrimary[T](a, opts)
}

// ParseKMZ parses the primary document of the KMZ archive read from r.
func ParseKMZ(r io.ReaderAt, size int64, opts ...Option) (ast.Node[float64], error) {
	a, err := kmz.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return parsePrimary[float64](a, opts)
}

// ParseEntry parses the named entry of an opened archive.
func ParseEntry(a *kmz.Archive, name string, opts ...Option) (ast.Node[float64], error) {
	rc, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return NewDecoder(rc, opts...).Decode()
}

func parsePrimary[T ast.Float](a *kmz.Archive, opts []Option) (ast.Node[T], error) {
	rc, err := a.Document()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return DecodeAs[T](NewDecoder(rc, opts...))
}

func readKML[T ast.Float](path string, opts []Option) (ast.Node[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeAs[T](NewDecoder(f, opts...))
}
