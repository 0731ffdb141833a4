package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-kml/ast"
	"github.com/KimNorgaard/go-kml/internal/token"
)

// textBuilder accumulates the character data of a leaf element and hands
// the trimmed result to set when the element closes. Child elements of a
// leaf are skipped.
type textBuilder struct {
	field string
	buf   strings.Builder
	set   func(string) error
}

func (b *textBuilder) open(token.Token) (builder, error) { return nil, nil }

func (b *textBuilder) text(s string) { b.buf.WriteString(s) }

func (b *textBuilder) close() error {
	if err := b.set(strings.TrimSpace(b.buf.String())); err != nil {
		return valueError(b.field, err)
	}
	return nil
}

// fieldFn creates the builder for a known child element.
type fieldFn func(tok token.Token) (builder, error)

func leaf(set func(string) error) fieldFn {
	return func(tok token.Token) (builder, error) {
		return &textBuilder{field: tok.Name.Local, set: set}, nil
	}
}

func str(dst *string) fieldFn {
	return leaf(func(s string) error {
		*dst = s
		return nil
	})
}

func parseBool(s string) (bool, error) {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q", s)
	}
	return v, nil
}

func boolean(dst *bool) fieldFn {
	return leaf(func(s string) error {
		v, err := parseBool(s)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	})
}

func boolPtr(dst **bool) fieldFn {
	return leaf(func(s string) error {
		v, err := parseBool(s)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	})
}

func float[T ast.Float](dst *T) fieldFn {
	return leaf(func(s string) error {
		v, err := ast.ParseFloat[T](s)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	})
}

func floatPtr[T ast.Float](dst **T) fieldFn {
	return leaf(func(s string) error {
		v, err := ast.ParseFloat[T](s)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	})
}

func intPtr(dst **int) fieldFn {
	return leaf(func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*dst = &v
		return nil
	})
}

func enum[E ~string](dst *E, valid func(E) bool) fieldFn {
	return leaf(func(s string) error {
		v := E(s)
		if !valid(v) {
			return fmt.Errorf("unknown value %q", s)
		}
		*dst = v
		return nil
	})
}

// elemBuilder dispatches child elements through a field table. Children
// without an entry go to other, if set, and are skipped otherwise.
type elemBuilder struct {
	fields map[string]fieldFn
	other  fieldFn
	done   func() error
}

func (b *elemBuilder) open(tok token.Token) (builder, error) {
	if f, ok := b.fields[tok.Name.Local]; ok {
		return f(tok)
	}
	if b.other != nil {
		return b.other(tok)
	}
	return nil, nil
}

func (b *elemBuilder) text(string) {}

func (b *elemBuilder) close() error {
	if b.done != nil {
		return b.done()
	}
	return nil
}
