package kmz

import (
	"archive/zip"
	"fmt"
	"io"
)

// Writer creates a KMZ archive. The document must be written before any
// resource so that it is the first entry.
type Writer struct {
	zw      *zip.Writer
	written bool
}

// NewWriter returns a Writer writing an archive to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{zw: zip.NewWriter(w)}
}

// WriteDocument stores doc as doc.kml.
func (w *Writer) WriteDocument(doc []byte) error {
	if w.written {
		return fmt.Errorf("kmz: document already written")
	}
	f, err := w.zw.Create(DefaultDocument)
	if err != nil {
		return err
	}
	if _, err := f.Write(doc); err != nil {
		return err
	}
	w.written = true
	return nil
}

// Add stores a resource entry read from r.
func (w *Writer) Add(name string, r io.Reader) error {
	if !w.written {
		return fmt.Errorf("kmz: resource %q written before the document", name)
	}
	if name == DefaultDocument {
		return fmt.Errorf("kmz: resource name %q is reserved", name)
	}
	f, err := w.zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(f, r)
	return err
}

// Close finishes the archive. It does not close the underlying writer.
func (w *Writer) Close() error {
	return w.zw.Close()
}
