package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	testCases := []struct {
		name    string
		opts    Logger
		level   zerolog.Level
		logged  bool
		jsonOut bool
	}{
		{name: "json debug", opts: Logger{Level: "debug", Format: "json"}, level: zerolog.DebugLevel, logged: true, jsonOut: true},
		{name: "console warn filters debug", opts: Logger{Level: "warn", Format: "console"}, level: zerolog.WarnLevel},
		{name: "empty level falls back to info", opts: Logger{Format: "json"}, level: zerolog.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			tc.opts.setup(&buf)
			require.Equal(t, tc.level, zerolog.GlobalLevel())

			log.Debug().Str("element", "gx:Track").Msg("Skipping unknown element")
			if !tc.logged {
				require.Zero(t, buf.Len())
				return
			}
			out := buf.String()
			require.Contains(t, out, "Skipping unknown element")
			if tc.jsonOut {
				require.Contains(t, out, `"element":"gx:Track"`)
			}
		})
	}
}
