// Package kmz reads and writes KMZ archives: zip files holding a primary KML
// document and the resources it references.
package kmz

import (
	"archive/zip"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"path"
	"strings"

	// Decoders for the image formats found in KMZ resources.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultDocument is the conventional name of the primary document.
const DefaultDocument = "doc.kml"

// ErrNoDocument is returned when an archive contains no KML entry.
var ErrNoDocument = errors.New("kmz: archive contains no .kml entry")

// Archive is an opened KMZ file.
type Archive struct {
	zr      *zip.Reader
	closer  io.Closer
	primary string
}

// Open opens the KMZ file at path. The caller must Close the archive.
func Open(path string) (*Archive, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	a := newArchive(&rc.Reader)
	a.closer = rc
	return a, nil
}

// NewReader reads a KMZ archive of the given size from r.
func NewReader(r io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return newArchive(zr), nil
}

func newArchive(zr *zip.Reader) *Archive {
	a := &Archive{zr: zr}
	for _, f := range zr.File {
		if f.Name == DefaultDocument {
			a.primary = f.Name
			return a
		}
	}
	for _, f := range zr.File {
		if strings.EqualFold(path.Ext(f.Name), ".kml") {
			a.primary = f.Name
			break
		}
	}
	return a
}

// Close releases the file opened by Open. It is a no-op for archives
// created with NewReader.
func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Primary returns the name of the primary document: doc.kml at the archive
// root if present, otherwise the first entry with a .kml extension. It
// returns "" if the archive has no KML entry.
func (a *Archive) Primary() string {
	return a.primary
}

// Entries returns the names of all file entries in archive order.
func (a *Archive) Entries() []string {
	names := make([]string, 0, len(a.zr.File))
	for _, f := range a.zr.File {
		if !f.FileInfo().IsDir() {
			names = append(names, f.Name)
		}
	}
	return names
}

// Document opens the primary document.
func (a *Archive) Document() (io.ReadCloser, error) {
	if a.primary == "" {
		return nil, ErrNoDocument
	}
	return a.Open(a.primary)
}

// Open opens the named entry. A missing entry yields an error matching
// fs.ErrNotExist.
func (a *Archive) Open(name string) (io.ReadCloser, error) {
	for _, f := range a.zr.File {
		if f.Name == name {
			return f.Open()
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// ImageConfig decodes the dimensions and format of an image entry without
// decoding the whole image.
func (a *Archive) ImageConfig(name string) (image.Config, string, error) {
	rc, err := a.Open(name)
	if err != nil {
		return image.Config{}, "", err
	}
	defer rc.Close()

	cfg, format, err := image.DecodeConfig(rc)
	if err != nil {
		return image.Config{}, "", fmt.Errorf("kmz: %s: %w", name, err)
	}
	return cfg, format, nil
}
