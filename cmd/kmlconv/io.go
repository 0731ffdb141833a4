package main

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/KimNorgaard/go-kml"
	"github.com/KimNorgaard/go-kml/ast"
)

// Input is the positional input argument shared by all commands.
type Input struct {
	Path string `positional-arg-name:"input" description:"KML or KMZ file, - for stdin" required:"yes"`
}

func decodeOptions() []kml.Option {
	o := []kml.Option{kml.Logger(log.Logger)}
	if opts.Fast || cfg.Fast {
		o = append(o, kml.FastTokenizer())
	}
	return o
}

// readInput parses a file or, for "-", standard input.
func readInput(path string) (ast.Node[float64], error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return kml.Parse(data, decodeOptions()...)
	}
	return kml.ReadFile(path, decodeOptions()...)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// createOutput opens path for writing, or standard output when it is empty
// or "-".
func createOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
