// Package geo converts between KML geometry nodes and github.com/twpayne/go-geom
// geometries.
//
// Only geometry subtrees are converted. Features are rejected with an
// ErrUnsupportedNode conversion error; use Collect to gather every geometry
// of a document.
package geo

import (
	"fmt"

	"github.com/twpayne/go-geom"

	"github.com/KimNorgaard/go-kml/ast"
	kmlerrors "github.com/KimNorgaard/go-kml/errors"
)

// ToGeom converts a geometry node.
//
// A LinearRing converts to a LineString. A MultiGeometry converts to a
// GeometryCollection whose nested groups are flattened. Coordinates are
// carried over verbatim, ring closure is not corrected. A geometry mixing
// tuples with and without altitude fails with ErrMixedDimensions.
func ToGeom[T ast.Float](n ast.Node[T]) (geom.T, error) {
	switch n := n.(type) {
	case nil:
		return nil, &kmlerrors.ConversionError{Err: kmlerrors.ErrUnsupportedNode}
	case *ast.Point[T]:
		layout := layoutOf(n.Coord.HasZ)
		return geom.NewPointFlat(layout, appendFlat(nil, layout, n.Coord)), nil
	case *ast.LineString[T]:
		return lineString(n.Kind(), n.Coords)
	case *ast.LinearRing[T]:
		return lineString(n.Kind(), n.Coords)
	case *ast.Polygon[T]:
		return polygon(n)
	case *ast.MultiGeometry[T]:
		gc := geom.NewGeometryCollection()
		for _, member := range Flatten(n).Geometries {
			g, err := ToGeom[T](member)
			if err != nil {
				return nil, err
			}
			if err := gc.Push(g); err != nil {
				return nil, &kmlerrors.ConversionError{Err: err, Kind: n.Kind().String()}
			}
		}
		return gc, nil
	default:
		return nil, unsupported(n.Kind().String())
	}
}

func lineString[T ast.Float](kind ast.Kind, coords []ast.Coord[T]) (*geom.LineString, error) {
	layout, err := layoutOfCoords(kind, coords)
	if err != nil {
		return nil, err
	}
	flat := make([]float64, 0, len(coords)*layout.Stride())
	for _, c := range coords {
		flat = appendFlat(flat, layout, c)
	}
	return geom.NewLineStringFlat(layout, flat), nil
}

func polygon[T ast.Float](p *ast.Polygon[T]) (*geom.Polygon, error) {
	rings := make([][]ast.Coord[T], 0, 1+len(p.Inner))
	rings = append(rings, p.Outer.Coords)
	var all []ast.Coord[T]
	all = append(all, p.Outer.Coords...)
	for _, r := range p.Inner {
		rings = append(rings, r.Coords)
		all = append(all, r.Coords...)
	}
	layout, err := layoutOfCoords(p.Kind(), all)
	if err != nil {
		return nil, err
	}

	flat := make([]float64, 0, len(all)*layout.Stride())
	ends := make([]int, 0, len(rings))
	for _, ring := range rings {
		for _, c := range ring {
			flat = appendFlat(flat, layout, c)
		}
		ends = append(ends, len(flat))
	}
	return geom.NewPolygonFlat(layout, flat, ends), nil
}

func layoutOf(hasZ bool) geom.Layout {
	if hasZ {
		return geom.XYZ
	}
	return geom.XY
}

// layoutOfCoords returns XYZ when every coordinate has an altitude and XY
// when none has.
func layoutOfCoords[T ast.Float](kind ast.Kind, coords []ast.Coord[T]) (geom.Layout, error) {
	if len(coords) == 0 {
		return geom.XY, nil
	}
	hasZ := coords[0].HasZ
	for _, c := range coords[1:] {
		if c.HasZ != hasZ {
			return geom.NoLayout, &kmlerrors.ConversionError{Err: kmlerrors.ErrMixedDimensions, Kind: kind.String()}
		}
	}
	return layoutOf(hasZ), nil
}

func appendFlat[T ast.Float](flat []float64, layout geom.Layout, c ast.Coord[T]) []float64 {
	flat = append(flat, float64(c.X), float64(c.Y))
	if layout == geom.XYZ {
		flat = append(flat, float64(c.Z))
	}
	return flat
}

// FromGeom converts a go-geom geometry into a bare geometry node without
// style or attributes.
//
// Multi geometries and collections become a flat MultiGeometry. Altitude is
// kept when the layout has a Z dimension; M values are dropped. An empty
// point or polygon fails with ErrEmptyGeometry.
func FromGeom[T ast.Float](g geom.T) (ast.Geometry[T], error) {
	switch g := g.(type) {
	case nil:
		return nil, &kmlerrors.ConversionError{Err: kmlerrors.ErrUnsupportedNode}
	case *geom.Point:
		if g.Empty() {
			return nil, &kmlerrors.ConversionError{Err: kmlerrors.ErrEmptyGeometry, Kind: "Point"}
		}
		return &ast.Point[T]{Coord: coordOf[T](g.Layout(), g.Coords())}, nil
	case *geom.LineString:
		return &ast.LineString[T]{Coords: coordsOf[T](g.Layout(), g.Coords())}, nil
	case *geom.LinearRing:
		return &ast.LinearRing[T]{Coords: coordsOf[T](g.Layout(), g.Coords())}, nil
	case *geom.Polygon:
		if g.NumLinearRings() == 0 {
			return nil, &kmlerrors.ConversionError{Err: kmlerrors.ErrEmptyGeometry, Kind: "Polygon"}
		}
		p := &ast.Polygon[T]{
			Outer: ast.LinearRing[T]{Coords: coordsOf[T](g.Layout(), g.LinearRing(0).Coords())},
		}
		for i := 1; i < g.NumLinearRings(); i++ {
			p.Inner = append(p.Inner, ast.LinearRing[T]{Coords: coordsOf[T](g.Layout(), g.LinearRing(i).Coords())})
		}
		return p, nil
	case *geom.MultiPoint:
		members := make([]geom.T, g.NumPoints())
		for i := range members {
			members[i] = g.Point(i)
		}
		return multi[T](members)
	case *geom.MultiLineString:
		members := make([]geom.T, g.NumLineStrings())
		for i := range members {
			members[i] = g.LineString(i)
		}
		return multi[T](members)
	case *geom.MultiPolygon:
		members := make([]geom.T, g.NumPolygons())
		for i := range members {
			members[i] = g.Polygon(i)
		}
		return multi[T](members)
	case *geom.GeometryCollection:
		return multi[T](g.Geoms())
	default:
		return nil, unsupported(fmt.Sprintf("%T", g))
	}
}

func multi[T ast.Float](members []geom.T) (*ast.MultiGeometry[T], error) {
	m := &ast.MultiGeometry[T]{}
	for _, member := range members {
		g, err := FromGeom[T](member)
		if err != nil {
			return nil, err
		}
		m.Geometries = append(m.Geometries, g)
	}
	return Flatten(m), nil
}

func coordOf[T ast.Float](layout geom.Layout, c geom.Coord) ast.Coord[T] {
	if z := layout.ZIndex(); z >= 0 {
		return ast.XYZ(T(c[0]), T(c[1]), T(c[z]))
	}
	return ast.XY(T(c[0]), T(c[1]))
}

func coordsOf[T ast.Float](layout geom.Layout, cs []geom.Coord) []ast.Coord[T] {
	if len(cs) == 0 {
		return nil
	}
	out := make([]ast.Coord[T], len(cs))
	for i, c := range cs {
		out[i] = coordOf[T](layout, c)
	}
	return out
}

func unsupported(kind string) error {
	return &kmlerrors.ConversionError{Err: kmlerrors.ErrUnsupportedNode, Kind: kind}
}
