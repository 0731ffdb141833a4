package parser

import (
	"errors"

	"github.com/KimNorgaard/go-kml/ast"
	"github.com/KimNorgaard/go-kml/internal/token"
)

func coords[T ast.Float](dst *[]ast.Coord[T], seen *bool) fieldFn {
	return leaf(func(s string) error {
		c, err := ast.ParseCoords[T](s)
		if err != nil {
			return err
		}
		*dst = c
		*seen = true
		return nil
	})
}

func (p *Parser[T]) point(n *ast.Point[T]) builder {
	var (
		cs   []ast.Coord[T]
		seen bool
	)
	return &elemBuilder{
		fields: map[string]fieldFn{
			"extrude":      boolean(&n.Extrude),
			"altitudeMode": enum(&n.AltitudeMode, ast.AltitudeMode.Valid),
			"coordinates":  coords(&cs, &seen),
		},
		done: func() error {
			if !seen {
				return missingError("Point", "coordinates")
			}
			if len(cs) == 0 {
				return valueError("coordinates", errors.New("point has no coordinate"))
			}
			n.Coord = cs[0]
			return nil
		},
	}
}

// path builds the fields shared by LineString and LinearRing.
func (p *Parser[T]) path(kind string, extrude, tessellate *bool, mode *ast.AltitudeMode, dst *[]ast.Coord[T]) builder {
	var seen bool
	return &elemBuilder{
		fields: map[string]fieldFn{
			"extrude":      boolean(extrude),
			"tessellate":   boolean(tessellate),
			"altitudeMode": enum(mode, ast.AltitudeMode.Valid),
			"coordinates":  coords(dst, &seen),
		},
		done: func() error {
			if !seen {
				return missingError(kind, "coordinates")
			}
			return nil
		},
	}
}

func (p *Parser[T]) ring(n *ast.LinearRing[T]) builder {
	return p.path("LinearRing", &n.Extrude, &n.Tessellate, &n.AltitudeMode, &n.Coords)
}

func (p *Parser[T]) polygon(n *ast.Polygon[T]) builder {
	var boundary, outer bool
	return &elemBuilder{
		fields: map[string]fieldFn{
			"extrude":      boolean(&n.Extrude),
			"tessellate":   boolean(&n.Tessellate),
			"altitudeMode": enum(&n.AltitudeMode, ast.AltitudeMode.Valid),
			"outerBoundaryIs": func(token.Token) (builder, error) {
				boundary = true
				return p.boundary(func(tok token.Token) (builder, error) {
					if outer {
						return nil, valueError("outerBoundaryIs", errors.New("polygon has more than one outer boundary"))
					}
					outer = true
					n.Outer = ast.LinearRing[T]{}
					readAttrs(tok, &n.Outer.ID, &n.Outer.Attrs)
					return p.ring(&n.Outer), nil
				}), nil
			},
			"innerBoundaryIs": func(token.Token) (builder, error) {
				return p.boundary(func(tok token.Token) (builder, error) {
					n.Inner = append(n.Inner, ast.LinearRing[T]{})
					r := &n.Inner[len(n.Inner)-1]
					readAttrs(tok, &r.ID, &r.Attrs)
					return p.ring(r), nil
				}), nil
			},
		},
		done: func() error {
			if !outer && boundary {
				return missingError("outerBoundaryIs", "LinearRing")
			}
			if !outer {
				return missingError("Polygon", "outerBoundaryIs")
			}
			return nil
		},
	}
}

// boundary builds an outerBoundaryIs or innerBoundaryIs element. Each
// LinearRing inside it is handed to ring.
func (p *Parser[T]) boundary(ring fieldFn) builder {
	return &elemBuilder{fields: map[string]fieldFn{"LinearRing": ring}}
}

func (p *Parser[T]) multiGeometry(n *ast.MultiGeometry[T]) builder {
	return &elemBuilder{
		other: child(p, func(g ast.Geometry[T]) {
			n.Geometries = append(n.Geometries, g)
		}),
	}
}

func (p *Parser[T]) model(n *ast.Model[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"altitudeMode": enum(&n.AltitudeMode, ast.AltitudeMode.Valid),
			"Location":     child(p, func(v *ast.Location[T]) { n.Location = v }),
			"Orientation":  child(p, func(v *ast.Orientation[T]) { n.Orientation = v }),
			"Scale":        child(p, func(v *ast.Scale[T]) { n.Scale = v }),
			"Link":         child(p, func(v *ast.Link[T]) { n.Link = v }),
			"ResourceMap":  child(p, func(v *ast.ResourceMap[T]) { n.ResourceMap = v }),
		},
	}
}
