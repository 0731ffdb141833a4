package geo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/KimNorgaard/go-kml"
	"github.com/KimNorgaard/go-kml/ast"
	kmlerrors "github.com/KimNorgaard/go-kml/errors"
	"github.com/KimNorgaard/go-kml/geo"
	"github.com/KimNorgaard/go-kml/internal/testutil"
)

func parseFixture(t *testing.T, name string) ast.Node[float64] {
	t.Helper()
	data, err := testutil.ReadTestData(name)
	require.NoError(t, err)
	root, err := kml.Parse(data)
	require.NoError(t, err)
	return root
}

func square(x, y float64) []ast.Coord[float64] {
	return []ast.Coord[float64]{
		ast.XY(x, y), ast.XY(x+1, y), ast.XY(x+1, y+1), ast.XY(x, y),
	}
}

func TestToGeomPoint(t *testing.T) {
	testCases := []struct {
		name     string
		coord    ast.Coord[float64]
		layout   geom.Layout
		expected []float64
	}{
		{name: "2d", coord: ast.XY(1.0, 1.0), layout: geom.XY, expected: []float64{1, 1}},
		{name: "3d", coord: ast.XYZ(1.0, 2.0, 0.0), layout: geom.XYZ, expected: []float64{1, 2, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := geo.ToGeom[float64](&ast.Point[float64]{Coord: tc.coord})
			require.NoError(t, err)
			p, ok := g.(*geom.Point)
			require.True(t, ok, "expected *geom.Point, got %T", g)
			require.Equal(t, tc.layout, p.Layout())
			require.Equal(t, tc.expected, p.FlatCoords())
		})
	}
}

func TestToGeomLines(t *testing.T) {
	coords := []ast.Coord[float64]{ast.XY(1.0, 1.0), ast.XY(2.0, 1.0), ast.XY(3.0, 1.0)}

	g, err := geo.ToGeom[float64](&ast.LineString[float64]{Coords: coords})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 2, 1, 3, 1}, g.FlatCoords())

	g, err = geo.ToGeom[float64](&ast.LinearRing[float64]{Coords: square(0, 0)})
	require.NoError(t, err)
	_, ok := g.(*geom.LineString)
	require.True(t, ok, "a linear ring converts to a line string, got %T", g)
}

func TestToGeomMixedDimensions(t *testing.T) {
	_, err := geo.ToGeom[float64](&ast.LineString[float64]{
		Coords: []ast.Coord[float64]{ast.XY(1.0, 1.0), ast.XYZ(2.0, 1.0, 5.0)},
	})
	require.ErrorIs(t, err, kmlerrors.ErrMixedDimensions)

	var convErr *kmlerrors.ConversionError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, "LineString", convErr.Kind)

	_, err = geo.ToGeom[float64](&ast.Polygon[float64]{
		Outer: ast.LinearRing[float64]{Coords: square(0, 0)},
		Inner: []ast.LinearRing[float64]{{Coords: []ast.Coord[float64]{ast.XYZ(0.5, 0.5, 1.0)}}},
	})
	require.ErrorIs(t, err, kmlerrors.ErrMixedDimensions)
}

func TestPolygonHolesRoundTrip(t *testing.T) {
	root := parseFixture(t, "polygon.kml")
	pm := ast.Placemarks(root)[0]
	src := pm.Geometry.(*ast.Polygon[float64])
	require.Len(t, src.Inner, 2)

	g, err := geo.ToGeom[float64](src)
	require.NoError(t, err)
	p, ok := g.(*geom.Polygon)
	require.True(t, ok, "expected *geom.Polygon, got %T", g)
	require.Equal(t, geom.XYZ, p.Layout())
	require.Equal(t, 3, p.NumLinearRings())
	require.Equal(t, 6, p.LinearRing(0).NumCoords())
	require.Equal(t, 6, p.LinearRing(1).NumCoords())
	require.Equal(t, 4, p.LinearRing(2).NumCoords())

	back, err := geo.FromGeom[float64](p)
	require.NoError(t, err)
	poly, ok := back.(*ast.Polygon[float64])
	require.True(t, ok, "expected *ast.Polygon, got %T", back)
	require.Equal(t, src.Outer.Coords, poly.Outer.Coords)
	require.Len(t, poly.Inner, 2)
	for i := range src.Inner {
		require.Equal(t, src.Inner[i].Coords, poly.Inner[i].Coords)
	}
	require.Empty(t, poly.Attrs)
	require.Empty(t, poly.ID)
}

func TestToGeomMultiGeometry(t *testing.T) {
	m := &ast.MultiGeometry[float64]{Geometries: []ast.Geometry[float64]{
		&ast.Point[float64]{Coord: ast.XY(1.0, 1.0)},
		&ast.MultiGeometry[float64]{Geometries: []ast.Geometry[float64]{
			&ast.LineString[float64]{Coords: []ast.Coord[float64]{ast.XY(1.0, 1.0), ast.XY(2.0, 2.0)}},
			&ast.MultiGeometry[float64]{Geometries: []ast.Geometry[float64]{
				&ast.Point[float64]{Coord: ast.XYZ(3.0, 3.0, 3.0)},
			}},
		}},
	}}

	g, err := geo.ToGeom[float64](m)
	require.NoError(t, err)
	gc, ok := g.(*geom.GeometryCollection)
	require.True(t, ok, "expected *geom.GeometryCollection, got %T", g)
	require.Equal(t, 3, gc.NumGeoms())
	require.IsType(t, &geom.Point{}, gc.Geom(0))
	require.IsType(t, &geom.LineString{}, gc.Geom(1))
	require.IsType(t, &geom.Point{}, gc.Geom(2))
	require.Equal(t, geom.XYZ, gc.Geom(2).Layout())
}

func TestToGeomUnsupported(t *testing.T) {
	testCases := []struct {
		name string
		node ast.Node[float64]
		kind string
	}{
		{name: "placemark", node: &ast.Placemark[float64]{Geometry: &ast.Point[float64]{}}, kind: "Placemark"},
		{name: "folder", node: &ast.Folder[float64]{}, kind: "Folder"},
		{name: "document", node: &ast.Document[float64]{}, kind: "Document"},
		{name: "model", node: &ast.Model[float64]{}, kind: "Model"},
		{name: "style", node: &ast.Style[float64]{}, kind: "Style"},
		{
			name: "model inside multigeometry",
			node: &ast.MultiGeometry[float64]{Geometries: []ast.Geometry[float64]{&ast.Model[float64]{}}},
			kind: "Model",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := geo.ToGeom(tc.node)
			require.ErrorIs(t, err, kmlerrors.ErrUnsupportedNode)
			var convErr *kmlerrors.ConversionError
			require.ErrorAs(t, err, &convErr)
			require.Equal(t, tc.kind, convErr.Kind)
		})
	}
}

func TestFromGeom(t *testing.T) {
	t.Run("point keeps z", func(t *testing.T) {
		g, err := geo.FromGeom[float64](geom.NewPointFlat(geom.XYZ, []float64{1, 2, 3}))
		require.NoError(t, err)
		require.Equal(t, &ast.Point[float64]{Coord: ast.XYZ(1.0, 2.0, 3.0)}, g)
	})

	t.Run("m is dropped", func(t *testing.T) {
		g, err := geo.FromGeom[float64](geom.NewPointFlat(geom.XYM, []float64{1, 2, 9}))
		require.NoError(t, err)
		require.Equal(t, &ast.Point[float64]{Coord: ast.XY(1.0, 2.0)}, g)
	})

	t.Run("float32", func(t *testing.T) {
		g, err := geo.FromGeom[float32](geom.NewLineStringFlat(geom.XY, []float64{1.5, 2, 3, 4}))
		require.NoError(t, err)
		require.Equal(t, &ast.LineString[float32]{
			Coords: []ast.Coord[float32]{ast.XY[float32](1.5, 2), ast.XY[float32](3, 4)},
		}, g)
	})

	t.Run("multi polygon", func(t *testing.T) {
		mp := geom.NewMultiPolygonFlat(geom.XY, []float64{
			0, 0, 1, 0, 1, 1, 0, 0,
			5, 5, 6, 5, 6, 6, 5, 5,
		}, [][]int{{8}, {16}})
		g, err := geo.FromGeom[float64](mp)
		require.NoError(t, err)
		m, ok := g.(*ast.MultiGeometry[float64])
		require.True(t, ok, "expected *ast.MultiGeometry, got %T", g)
		require.Len(t, m.Geometries, 2)
		require.Equal(t, square(5, 5), m.Geometries[1].(*ast.Polygon[float64]).Outer.Coords)
	})

	t.Run("nested collection is flattened", func(t *testing.T) {
		inner := geom.NewGeometryCollection().MustPush(
			geom.NewPointFlat(geom.XY, []float64{2, 2}),
			geom.NewMultiPointFlat(geom.XY, []float64{3, 3, 4, 4}),
		)
		gc := geom.NewGeometryCollection().MustPush(
			geom.NewPointFlat(geom.XY, []float64{1, 1}),
			inner,
		)
		g, err := geo.FromGeom[float64](gc)
		require.NoError(t, err)
		m := g.(*ast.MultiGeometry[float64])
		require.Len(t, m.Geometries, 4)
		for i, member := range m.Geometries {
			p := member.(*ast.Point[float64])
			require.Equal(t, float64(i+1), p.Coord.X)
		}
	})

	t.Run("empty point", func(t *testing.T) {
		_, err := geo.FromGeom[float64](geom.NewPointEmpty(geom.XY))
		require.ErrorIs(t, err, kmlerrors.ErrEmptyGeometry)
	})

	t.Run("empty polygon", func(t *testing.T) {
		_, err := geo.FromGeom[float64](geom.NewPolygon(geom.XY))
		require.ErrorIs(t, err, kmlerrors.ErrEmptyGeometry)
	})
}

func TestGeometryRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		node ast.Geometry[float64]
	}{
		{name: "point", node: &ast.Point[float64]{Coord: ast.XYZ(-1.0, 2.0, 0.0)}},
		{name: "line string", node: &ast.LineString[float64]{Coords: square(3, 4)}},
		{name: "polygon", node: &ast.Polygon[float64]{
			Outer: ast.LinearRing[float64]{Coords: square(0, 0)},
			Inner: []ast.LinearRing[float64]{{Coords: square(0.2, 0.2)}, {Coords: square(0.6, 0.6)}},
		}},
		{name: "multigeometry", node: &ast.MultiGeometry[float64]{Geometries: []ast.Geometry[float64]{
			&ast.Point[float64]{Coord: ast.XY(1.0, 1.0)},
			&ast.LineString[float64]{Coords: square(1, 1)},
		}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := geo.ToGeom[float64](tc.node)
			require.NoError(t, err)
			back, err := geo.FromGeom[float64](g)
			require.NoError(t, err)
			require.Equal(t, tc.node, back)
		})
	}
}
