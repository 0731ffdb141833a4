package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/KimNorgaard/go-kml"
	"github.com/KimNorgaard/go-kml/ast"
	"github.com/KimNorgaard/go-kml/geo"
)

// GeoJSONCommand exports placemarks as GeoJSON.
type GeoJSONCommand struct {
	Output string `short:"o" long:"out" description:"Output file, stdout if empty"`
	Args   Input  `positional-args:"yes" required:"yes"`
}

// Execute runs the command.
func (c *GeoJSONCommand) Execute([]string) error {
	root, err := readInput(c.Args.Path)
	if err != nil {
		return err
	}
	fc, err := geo.FeatureCollection(root)
	if err != nil {
		return err
	}

	out, err := createOutput(c.Output)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	err = enc.Encode(fc)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	log.Info().Int("features", len(fc.Features)).Msg("Exported GeoJSON")
	return nil
}

// ImportCommand builds a KML document from a GeoJSON feature collection.
type ImportCommand struct {
	Output string `short:"o" long:"out"  description:"Output file, stdout if empty"`
	Name   string `short:"n" long:"name" description:"Document name"`
	Args   struct {
		Path string `positional-arg-name:"input" description:"GeoJSON file, - for stdin" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the command.
func (c *ImportCommand) Execute([]string) error {
	var data []byte
	var err error
	if c.Args.Path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(c.Args.Path)
	}
	if err != nil {
		return err
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("decode %s: %w", c.Args.Path, err)
	}
	doc, err := geo.DocumentFromFeatureCollection[float64](&fc)
	if err != nil {
		return err
	}
	doc.Name = c.Name

	root := &ast.Root[float64]{Version: ast.Version22, Elements: []ast.Node[float64]{doc}}
	out, err := kml.Marshal[float64](root, (&ConvertCommand{Indent: -1}).encodeOptions()...)
	if err != nil {
		return err
	}

	w, err := createOutput(c.Output)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	log.Info().Int("placemarks", len(doc.Children)).Msg("Imported GeoJSON")
	return nil
}
