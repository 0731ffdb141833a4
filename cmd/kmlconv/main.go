// Command kmlconv converts, inspects and queries KML and KMZ files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/KimNorgaard/go-kml/internal/logger"
)

// Options are the global command line options.
type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"KMLCONV_CONFIG" description:"Path to a YAML file with default settings"`
	Fast       bool   `short:"F" long:"fast"   description:"Decode with the fast tokenizer"`

	Convert ConvertCommand `command:"convert" description:"Rewrite a KML or KMZ file as KML or KMZ"`
	GeoJSON GeoJSONCommand `command:"geojson" description:"Export placemarks as a GeoJSON feature collection"`
	Import  ImportCommand  `command:"import"  description:"Build a KML document from a GeoJSON feature collection"`
	Inspect InspectCommand `command:"inspect" description:"Summarize a KML or KMZ file"`
	Query   QueryCommand   `command:"query"   description:"List placemarks intersecting a bounding box"`
}

var (
	opts Options
	cfg  Config
)

func main() {
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		opts.Logger.Setup()
		if opts.ConfigFile != "" {
			c, err := LoadConfig(opts.ConfigFile)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			cfg = *c
			log.Debug().Str("path", opts.ConfigFile).Msg("Loaded configuration")
		}
		return cmd.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Fprintln(os.Stdout, err)
				os.Exit(0)
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("kmlconv failed")
	}
}
