package kml

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Option configures decoding and encoding.
type Option func(*options) error

type options struct {
	indent      int
	minify      bool
	declaration bool
	logger      zerolog.Logger
	maxDepth    int
	fast        bool
}

const defaultIndent = 2

func newOptions(opts []Option) (*options, error) {
	o := &options{
		indent:      defaultIndent,
		declaration: true,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Indent returns an Option that sets the number of spaces used per nesting
// level when encoding. Zero writes the document on a single line.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("kml: indent must not be negative")
		}
		o.indent = n
		return nil
	}
}

// Minify returns an Option that removes all insignificant whitespace from
// the encoded document.
func Minify() Option {
	return func(o *options) error {
		o.minify = true
		o.indent = 0
		return nil
	}
}

// Declaration returns an Option that controls whether the XML declaration
// is written before a kml root element. It is written by default.
func Declaration(enabled bool) Option {
	return func(o *options) error {
		o.declaration = enabled
		return nil
	}
}

// Logger returns an Option that sets the logger used while decoding.
// Skipped elements are reported at debug level. The default logger discards
// everything.
func Logger(l zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = l
		return nil
	}
}

// MaxDepth returns an Option that limits element nesting while decoding.
// This guards against pathological inputs.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("kml: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// FastTokenizer returns an Option that decodes with a faster tokenizer.
// Errors reported in this mode carry no line or column.
func FastTokenizer() Option {
	return func(o *options) error {
		o.fast = true
		return nil
	}
}
