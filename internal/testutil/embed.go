// Package testutil provides the KML fixtures shared by the package tests.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

// TestdataFS holds the embedded fixture documents.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded fixture.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, path.Join("testdata", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// KMLFiles returns the names of all embedded .kml fixtures, sorted.
func KMLFiles() ([]string, error) {
	names, err := fs.Glob(TestdataFS, "testdata/*.kml")
	if err != nil {
		return nil, err
	}
	for i, n := range names {
		names[i] = path.Base(n)
	}
	sort.Strings(names)
	return names, nil
}
