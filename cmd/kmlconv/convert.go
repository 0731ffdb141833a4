package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/KimNorgaard/go-kml"
	"github.com/KimNorgaard/go-kml/kmz"
)

// ConvertCommand rewrites its input in canonical form.
type ConvertCommand struct {
	Output        string `short:"o" long:"out"            description:"Output file, stdout if empty"`
	Indent        int    `short:"i" long:"indent"         description:"Spaces per nesting level, 2 unless configured" default:"-1"`
	Minify        bool   `short:"m" long:"minify"         description:"Remove insignificant whitespace"`
	NoDeclaration bool   `long:"no-declaration"           description:"Omit the XML declaration"`
	KMZ           bool   `short:"z" long:"kmz"            description:"Write a KMZ archive; implied by a .kmz output name"`
	Args          Input  `positional-args:"yes" required:"yes"`
}

func (c *ConvertCommand) encodeOptions() []kml.Option {
	var o []kml.Option
	switch {
	case c.Indent >= 0:
		o = append(o, kml.Indent(c.Indent))
	case cfg.Indent != nil:
		o = append(o, kml.Indent(*cfg.Indent))
	}
	if c.Minify || cfg.Minify {
		o = append(o, kml.Minify())
	}
	declaration := !c.NoDeclaration
	if !c.NoDeclaration && cfg.Declaration != nil {
		declaration = *cfg.Declaration
	}
	return append(o, kml.Declaration(declaration))
}

// Execute runs the command.
func (c *ConvertCommand) Execute([]string) error {
	root, err := readInput(c.Args.Path)
	if err != nil {
		return err
	}
	data, err := kml.Marshal(root, c.encodeOptions()...)
	if err != nil {
		return err
	}

	out, err := createOutput(c.Output)
	if err != nil {
		return err
	}
	if c.KMZ || isKMZ(c.Output) {
		err = c.writeKMZ(out, data)
	} else {
		_, err = out.Write(data)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	log.Info().
		Str("input", c.Args.Path).
		Str("output", c.Output).
		Int("bytes", len(data)).
		Msg("Converted document")
	return nil
}

// writeKMZ stores the document and, for KMZ input, copies every other entry
// of the input archive.
func (c *ConvertCommand) writeKMZ(out io.Writer, doc []byte) error {
	w := kmz.NewWriter(out)
	if err := w.WriteDocument(doc); err != nil {
		return err
	}
	if isKMZ(c.Args.Path) {
		if err := copyResources(w, c.Args.Path); err != nil {
			return err
		}
	}
	return w.Close()
}

func copyResources(w *kmz.Writer, path string) error {
	a, err := kmz.Open(path)
	if err != nil {
		return err
	}
	defer a.Close()

	primary := a.Primary()
	for _, name := range a.Entries() {
		if name == primary || name == kmz.DefaultDocument {
			continue
		}
		if err := copyEntry(w, a, name); err != nil {
			return fmt.Errorf("copy %s: %w", name, err)
		}
		log.Debug().Str("entry", name).Msg("Copied resource")
	}
	return nil
}

func copyEntry(w *kmz.Writer, a *kmz.Archive, name string) error {
	rc, err := a.Open(name)
	if err != nil {
		return err
	}
	defer rc.Close()
	return w.Add(name, rc)
}

func isKMZ(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".kmz")
}
