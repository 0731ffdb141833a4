package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord is a single coordinate tuple: longitude, latitude and an optional
// altitude. A missing altitude is distinct from an altitude of zero.
type Coord[T Float] struct {
	X    T
	Y    T
	Z    T
	HasZ bool
}

// XY returns a two-dimensional coordinate.
func XY[T Float](x, y T) Coord[T] {
	return Coord[T]{X: x, Y: y}
}

// XYZ returns a three-dimensional coordinate.
func XYZ[T Float](x, y, z T) Coord[T] {
	return Coord[T]{X: x, Y: y, Z: z, HasZ: true}
}

// String formats the coordinate as an "x,y[,z]" tuple.
func (c Coord[T]) String() string {
	var b strings.Builder
	c.appendTo(&b)
	return b.String()
}

func (c Coord[T]) appendTo(b *strings.Builder) {
	b.WriteString(FormatFloat(c.X))
	b.WriteByte(',')
	b.WriteString(FormatFloat(c.Y))
	if c.HasZ {
		b.WriteByte(',')
		b.WriteString(FormatFloat(c.Z))
	}
}

// bitSize returns the precision strconv needs for T.
func bitSize[T Float]() int {
	var zero T
	switch any(zero).(type) {
	case float32:
		return 32
	default:
		return 64
	}
}

// ParseFloat parses s as a scalar of type T.
func ParseFloat[T Float](s string) (T, error) {
	v, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return T(v), nil
}

// FormatFloat formats v with the fewest digits that parse back to the same
// value of type T.
func FormatFloat[T Float](v T) string {
	return strconv.FormatFloat(float64(v), 'f', -1, bitSize[T]())
}

// ParseCoord parses a single "x,y[,z]" tuple. Components after the third are
// ignored.
func ParseCoord[T Float](s string) (Coord[T], error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) < 2 {
		return Coord[T]{}, fmt.Errorf("coordinate %q needs at least two components", s)
	}
	var c Coord[T]
	var err error
	if c.X, err = ParseFloat[T](parts[0]); err != nil {
		return Coord[T]{}, err
	}
	if c.Y, err = ParseFloat[T](parts[1]); err != nil {
		return Coord[T]{}, err
	}
	if len(parts) > 2 {
		if c.Z, err = ParseFloat[T](parts[2]); err != nil {
			return Coord[T]{}, err
		}
		c.HasZ = true
	}
	return c, nil
}

// ParseCoords parses a whitespace separated list of coordinate tuples. Any
// run of whitespace separates tuples; blank input yields nil.
func ParseCoords[T Float](s string) ([]Coord[T], error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	coords := make([]Coord[T], 0, len(fields))
	for _, f := range fields {
		c, err := ParseCoord[T](f)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}

// FormatCoords formats coordinates as tuples separated by a single space.
func FormatCoords[T Float](coords []Coord[T]) string {
	var b strings.Builder
	for i, c := range coords {
		if i > 0 {
			b.WriteByte(' ')
		}
		c.appendTo(&b)
	}
	return b.String()
}
