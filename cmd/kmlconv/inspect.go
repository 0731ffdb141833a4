package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KimNorgaard/go-kml/ast"
	"github.com/KimNorgaard/go-kml/geo"
	"github.com/KimNorgaard/go-kml/kmz"
)

// InspectCommand prints a summary of a document.
type InspectCommand struct {
	Format string `short:"f" long:"format" description:"Output format, yaml unless configured" choice:"yaml" choice:"json"`
	Args   Input  `positional-args:"yes" required:"yes"`
}

// Summary describes a parsed document.
type Summary struct {
	Path       string         `yaml:"path" json:"path"`
	Version    string         `yaml:"version" json:"version"`
	Kinds      map[string]int `yaml:"kinds" json:"kinds"`
	Placemarks []string       `yaml:"placemarks,omitempty" json:"placemarks,omitempty"`
	Bounds     []float64      `yaml:"bounds,flow,omitempty" json:"bounds,omitempty"`
	Resources  []Resource     `yaml:"resources,omitempty" json:"resources,omitempty"`
}

// Resource describes a KMZ entry other than the document.
type Resource struct {
	Name   string `yaml:"name" json:"name"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Width  int    `yaml:"width,omitempty" json:"width,omitempty"`
	Height int    `yaml:"height,omitempty" json:"height,omitempty"`
}

// Execute runs the command.
func (c *InspectCommand) Execute([]string) error {
	root, err := readInput(c.Args.Path)
	if err != nil {
		return err
	}
	s, err := summarize(c.Args.Path, root)
	if err != nil {
		return err
	}
	if isKMZ(c.Args.Path) {
		if s.Resources, err = resources(c.Args.Path); err != nil {
			return err
		}
	}

	format := c.Format
	if format == "" {
		format = cfg.InspectFormat
	}
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "", "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func summarize(path string, root ast.Node[float64]) (*Summary, error) {
	s := &Summary{
		Path:    path,
		Version: ast.VersionUnknown.String(),
		Kinds:   map[string]int{},
	}
	if r, ok := root.(*ast.Root[float64]); ok {
		s.Version = r.Version.String()
	}
	ast.Walk(root, func(n ast.Node[float64]) bool {
		s.Kinds[n.Kind().String()]++
		return true
	})
	for _, pm := range ast.Placemarks(root) {
		s.Placemarks = append(s.Placemarks, pm.Name)
	}

	gc, err := geo.Collect(root)
	if err != nil {
		return nil, err
	}
	if b := gc.Bounds(); !b.IsEmpty() {
		s.Bounds = []float64{b.Min(0), b.Min(1), b.Max(0), b.Max(1)}
	}
	return s, nil
}

func resources(path string) ([]Resource, error) {
	a, err := kmz.Open(path)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	var out []Resource
	for _, name := range a.Entries() {
		if name == a.Primary() {
			continue
		}
		r := Resource{Name: name}
		if img, format, err := a.ImageConfig(name); err == nil {
			r.Format, r.Width, r.Height = format, img.Width, img.Height
		}
		out = append(out, r)
	}
	return out, nil
}
