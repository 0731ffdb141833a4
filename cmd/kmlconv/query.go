package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/KimNorgaard/go-kml/geo"
)

// QueryCommand lists placemarks within a bounding box.
type QueryCommand struct {
	BBox string `short:"b" long:"bbox" description:"Bounding box as minLon,minLat,maxLon,maxLat" required:"yes"`
	Args Input  `positional-args:"yes" required:"yes"`
}

// Execute runs the command.
func (c *QueryCommand) Execute([]string) error {
	bounds, err := parseBBox(c.BBox)
	if err != nil {
		return err
	}
	root, err := readInput(c.Args.Path)
	if err != nil {
		return err
	}
	ix, err := geo.NewIndex(root)
	if err != nil {
		return err
	}

	hits, err := ix.Search(bounds)
	if err != nil {
		return err
	}
	for _, pm := range hits {
		fmt.Fprintf(os.Stdout, "%s\t%s\n", pm.ID, pm.Name)
	}
	log.Info().Int("indexed", ix.Len()).Int("matched", len(hits)).Msg("Query finished")
	return nil
}

func parseBBox(s string) (geo.Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geo.Bounds{}, fmt.Errorf("bbox %q: want minLon,minLat,maxLon,maxLat", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geo.Bounds{}, fmt.Errorf("bbox %q: %w", s, err)
		}
		v[i] = f
	}
	b := geo.Bounds{MinLon: v[0], MinLat: v[1], MaxLon: v[2], MaxLat: v[3]}
	if err := b.Validate(); err != nil {
		return geo.Bounds{}, fmt.Errorf("bbox %q: %w", s, err)
	}
	return b, nil
}
