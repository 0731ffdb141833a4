package parser_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-kml/ast"
	kmlerrors "github.com/KimNorgaard/go-kml/errors"
	"github.com/KimNorgaard/go-kml/internal/lexer"
	"github.com/KimNorgaard/go-kml/internal/parser"
	"github.com/KimNorgaard/go-kml/internal/testutil"
)

func parse(t *testing.T, input string) []ast.Node[float64] {
	t.Helper()
	nodes, err := parser.New[float64](lexer.New(strings.NewReader(input)), parser.Config{}).Parse()
	require.NoError(t, err)
	return nodes
}

func parseFixture(t *testing.T, name string) *ast.Root[float64] {
	t.Helper()
	data, err := testutil.ReadTestData(name)
	require.NoError(t, err)
	nodes := parse(t, string(data))
	require.Len(t, nodes, 1)
	root, ok := nodes[0].(*ast.Root[float64])
	require.True(t, ok, "expected *ast.Root, got %T", nodes[0])
	return root
}

func featureNames(nodes []ast.Node[float64]) []string {
	var names []string
	for _, n := range nodes {
		if f, ok := n.(ast.Feature[float64]); ok {
			names = append(names, f.Common().Name)
		}
	}
	return names
}

func TestParseSample(t *testing.T) {
	root := parseFixture(t, "sample.kml")
	require.Equal(t, ast.Version22, root.Version)
	require.Equal(t, ast.Attrs{
		{Name: "xmlns:gx", Value: "http://www.google.com/kml/ext/2.2"},
		{Name: "xmlns:atom", Value: "http://www.w3.org/2005/Atom"},
	}, root.Attrs)

	require.Len(t, root.Elements, 1)
	doc := root.Elements[0].(*ast.Document[float64])
	require.Equal(t, "root-doc", doc.ID)
	require.Equal(t, ast.Attrs{{Name: "targetId", Value: "legacy"}}, doc.Attrs)
	require.Equal(t, "Places of <b>interest</b> &amp; more", doc.Description)
	require.True(t, doc.Open)

	// atom:author is skipped; everything else keeps source order.
	kinds := make([]ast.Kind, len(doc.Children))
	for i, c := range doc.Children {
		kinds[i] = c.Kind()
	}
	require.Equal(t, []ast.Kind{
		ast.KindStyle, ast.KindStyleMap, ast.KindPlacemark, ast.KindFolder, ast.KindPlacemark, ast.KindNetworkLink,
	}, kinds)
	require.Equal(t, []string{"A", "F", "B", "Remote"}, featureNames(doc.Children))

	style := doc.Children[0].(*ast.Style[float64])
	require.Equal(t, "7f00ffff", style.LineStyle.Color)
	require.Equal(t, 4.0, *style.LineStyle.Width)
	require.True(t, *style.PolyStyle.Fill)
	require.False(t, *style.PolyStyle.Outline)
	require.Equal(t, ast.ColorModeNormal, style.PolyStyle.ColorMode)

	styleMap := doc.Children[1].(*ast.StyleMap[float64])
	require.Len(t, styleMap.Pairs, 2)
	require.Equal(t, "#pinNormal", styleMap.Pairs[0].StyleURL)
	icon := styleMap.Pairs[1].Style.IconStyle
	require.Equal(t, 1.3, *icon.Scale)
	require.Equal(t, 45.0, icon.Heading)
	require.Equal(t, "http://maps.google.com/mapfiles/kml/pushpin/ylw-pushpin.png", icon.Icon.Href)
	require.Equal(t, &ast.Vec2[float64]{X: 20, Y: 2, XUnits: ast.Pixels, YUnits: ast.Pixels}, icon.HotSpot)
	require.Equal(t, ast.ListCheckHideChildren, styleMap.Pairs[1].Style.ListStyle.ListItemType)
	require.Equal(t, 2, *styleMap.Pairs[1].Style.ListStyle.MaxSnippetLines)

	a := doc.Children[2].(*ast.Placemark[float64])
	require.Equal(t, "a", a.ID)
	require.False(t, *a.Visibility)
	require.Equal(t, "#pin", a.StyleURL)
	require.Equal(t, &ast.Point[float64]{
		Extrude:      true,
		AltitudeMode: ast.Absolute,
		Coord:        ast.XYZ(-122.0822035425683, 37.42228990140251, 0),
	}, a.Geometry)
	require.Equal(t, "holeNumber", a.ExtendedData.Data[0].Name)
	require.Equal(t, "Hole", a.ExtendedData.Data[0].DisplayName)
	require.Equal(t, "#TrailHeadTypeId", a.ExtendedData.SchemaData[0].SchemaURL)
	require.Equal(t, "Pi in the sky", a.ExtendedData.SchemaData[0].SimpleData[0].Value)
	require.Equal(t, []string{"86", "103"}, a.ExtendedData.SchemaData[0].SimpleArrayData[0].Values)

	folder := doc.Children[3].(*ast.Folder[float64])
	require.Equal(t, []string{"Inner", "Group"}, featureNames(folder.Children))
	group := folder.Children[1].(*ast.Placemark[float64]).Geometry.(*ast.MultiGeometry[float64])
	require.Len(t, group.Geometries, 2)
	require.IsType(t, &ast.MultiGeometry[float64]{}, group.Geometries[1])

	model := doc.Children[4].(*ast.Placemark[float64]).Geometry.(*ast.Model[float64])
	require.Equal(t, "khModel543", model.ID)
	require.Equal(t, 1223.0, model.Location.Altitude)
	require.Equal(t, 10.0, model.Orientation.Tilt)
	require.Equal(t, ast.OnExpire, model.Link.RefreshMode)
	require.Equal(t, "CU-Macky---Center-StairsnoCulling.jpg", model.ResourceMap.Aliases[0].SourceHref)

	link := doc.Children[5].(*ast.NetworkLink[float64])
	require.True(t, link.RefreshVisibility)
	require.True(t, link.FlyToView)
	require.Equal(t, 3600.0, *link.Link.RefreshInterval)
	require.Equal(t, ast.OnStop, link.Link.ViewRefreshMode)
	require.Equal(t, 0.5, *link.Link.ViewBoundScale)
	require.Equal(t, "client=[clientName]", link.Link.HTTPQuery)
}

func TestParsePolygonHoles(t *testing.T) {
	root := parseFixture(t, "polygon.kml")
	poly := root.Elements[0].(*ast.Placemark[float64]).Geometry.(*ast.Polygon[float64])

	require.True(t, poly.Extrude)
	require.Equal(t, ast.RelativeToGround, poly.AltitudeMode)
	require.Len(t, poly.Outer.Coords, 6)
	require.Equal(t, poly.Outer.Coords[0], poly.Outer.Coords[5])
	require.Len(t, poly.Inner, 2)
	require.Equal(t, ast.XYZ(-77.05668055019126, 38.87154239798456, 100.0), poly.Inner[0].Coords[0])
	require.Equal(t, ast.XYZ(-77.056, 38.871, 100.0), poly.Inner[1].Coords[0])
}

func TestParseLegacyVersion(t *testing.T) {
	root := parseFixture(t, "legacy20.kml")
	require.Equal(t, ast.Version20, root.Version)
	require.Empty(t, root.Attrs)

	folder := root.Elements[0].(*ast.Folder[float64])
	link := folder.Children[0].(*ast.NetworkLink[float64])
	require.Equal(t, "http://example.com/feed.kml", link.Link.Href)

	poly := folder.Children[1].(*ast.Placemark[float64]).Geometry.(*ast.Polygon[float64])
	require.Len(t, poly.Inner, 2, "several rings inside one innerBoundaryIs")
	require.Equal(t, ast.XY(1.0, 1.0), poly.Inner[0].Coords[0])
	require.Equal(t, ast.XY(3.0, 3.0), poly.Inner[1].Coords[0])
}

func TestParseSiblingDocuments(t *testing.T) {
	data, err := testutil.ReadTestData("siblings.kml")
	require.NoError(t, err)
	nodes := parse(t, string(data))

	require.Len(t, nodes, 2)
	first := nodes[0].(*ast.Document[float64])
	second := nodes[1].(*ast.Document[float64])
	require.Equal(t, "First", first.Name)
	require.Equal(t, []string{"one"}, featureNames(first.Children))
	require.Equal(t, "Second", second.Name)
	require.Equal(t, []string{"empty"}, featureNames(second.Children))
}

func TestParseUnknownNamespace(t *testing.T) {
	nodes := parse(t, `<kml xmlns="urn:example:kml"><Placemark/></kml>`)
	root := nodes[0].(*ast.Root[float64])
	require.Equal(t, ast.VersionUnknown, root.Version)
	require.Equal(t, ast.Attrs{{Name: "xmlns", Value: "urn:example:kml"}}, root.Attrs)
	require.Len(t, root.Elements, 1)
}

func TestParsePrefixedElements(t *testing.T) {
	nodes := parse(t, `<kml:Placemark xmlns:kml="http://www.opengis.net/kml/2.2"><kml:name>n</kml:name></kml:Placemark>`)
	p := nodes[0].(*ast.Placemark[float64])
	require.Equal(t, "n", p.Name)
	require.Equal(t, ast.Attrs{{Name: "xmlns:kml", Value: "http://www.opengis.net/kml/2.2"}}, p.Attrs)
}

func TestParseCoordinateGrammar(t *testing.T) {
	nodes := parse(t, "<LinearRing><coordinates>-1,2,0\n-1.5,3,0\n-1.5,2,0\n-1,2,0</coordinates></LinearRing>")
	ring := nodes[0].(*ast.LinearRing[float64])
	require.Equal(t, []ast.Coord[float64]{
		ast.XYZ(-1.0, 2.0, 0.0),
		ast.XYZ(-1.5, 3.0, 0.0),
		ast.XYZ(-1.5, 2.0, 0.0),
		ast.XYZ(-1.0, 2.0, 0.0),
	}, ring.Coords)

	nodes = parse(t, "<Point><coordinates>1,1</coordinates></Point>")
	require.Equal(t, ast.XY(1.0, 1.0), nodes[0].(*ast.Point[float64]).Coord)

	nodes = parse(t, "<LineString><coordinates> </coordinates></LineString>")
	require.Nil(t, nodes[0].(*ast.LineString[float64]).Coords)
}

func TestParseFloat32(t *testing.T) {
	nodes, err := parser.New[float32](lexer.New(strings.NewReader(
		"<Point><coordinates>0.1,0.2,0.3</coordinates></Point>")), parser.Config{}).Parse()
	require.NoError(t, err)
	require.Equal(t, ast.XYZ[float32](0.1, 0.2, 0.3), nodes[0].(*ast.Point[float32]).Coord)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected error
		field    string
	}{
		{name: "mismatched end tag", input: "<Folder><name>x</Folder>", expected: kmlerrors.ErrMismatchedTag},
		{name: "stray end tag", input: "<Folder></Folder></Document>", expected: kmlerrors.ErrMismatchedTag},
		{name: "unclosed element", input: "<Document><Folder>", expected: kmlerrors.ErrUnexpectedEOF},
		{name: "malformed number", input: "<Point><coordinates>1,abc,0</coordinates></Point>", expected: kmlerrors.ErrValue, field: "coordinates"},
		{name: "missing outer boundary", input: "<Polygon><innerBoundaryIs><LinearRing><coordinates>0,0</coordinates></LinearRing></innerBoundaryIs></Polygon>", expected: kmlerrors.ErrMissingElement, field: "Polygon"},
		{name: "empty outer boundary", input: "<Polygon><outerBoundaryIs></outerBoundaryIs></Polygon>", expected: kmlerrors.ErrMissingElement, field: "outerBoundaryIs"},
		{name: "duplicate outer boundary", input: "<Polygon><outerBoundaryIs><LinearRing><coordinates>0,0</coordinates></LinearRing></outerBoundaryIs><outerBoundaryIs><LinearRing><coordinates>0,0</coordinates></LinearRing></outerBoundaryIs></Polygon>", expected: kmlerrors.ErrValue, field: "outerBoundaryIs"},
		{name: "point without coordinates", input: "<Point></Point>", expected: kmlerrors.ErrMissingElement, field: "Point"},
		{name: "empty point", input: "<Point><coordinates/></Point>", expected: kmlerrors.ErrValue, field: "coordinates"},
		{name: "bad boolean", input: "<Placemark><visibility>maybe</visibility></Placemark>", expected: kmlerrors.ErrValue, field: "visibility"},
		{name: "bad altitude mode", input: "<Point><altitudeMode>onTheMoon</altitudeMode><coordinates>0,0</coordinates></Point>", expected: kmlerrors.ErrValue, field: "altitudeMode"},
		{name: "bad units", input: `<IconStyle><hotSpot x="1" y="1" xunits="pixels-from-edge"/></IconStyle>`, expected: kmlerrors.ErrValue, field: "hotSpot@xunits"},
		{name: "invalid UTF-8", input: "<Placemark><name>\xff</name></Placemark>", expected: kmlerrors.ErrDecoding},
		{name: "empty input", input: "", expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			nodes, err := parser.New[float64](lexer.New(strings.NewReader(tc.input)), parser.Config{}).Parse()
			if tc.expected == nil {
				require.NoError(t, err)
				require.Empty(t, nodes)
				return
			}
			require.ErrorIs(t, err, tc.expected)
			require.Nil(t, nodes)

			var pe *kmlerrors.ParseError
			require.ErrorAs(t, err, &pe)
			require.Equal(t, tc.field, pe.Field)
			require.Positive(t, pe.Line)
		})
	}
}

func TestParseEmptyOuterBoundaryNamesRing(t *testing.T) {
	_, err := parser.New[float64](lexer.New(strings.NewReader(
		"<Polygon><outerBoundaryIs></outerBoundaryIs></Polygon>")), parser.Config{}).Parse()
	require.ErrorContains(t, err, "missing <LinearRing>")
}

func TestParseMalformedNumberNamesText(t *testing.T) {
	_, err := parser.New[float64](lexer.New(strings.NewReader(
		"<Placemark>\n<Point>\n<coordinates>1,abc,0</coordinates></Point></Placemark>")), parser.Config{}).Parse()
	require.ErrorContains(t, err, `"abc"`)

	var pe *kmlerrors.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 3, pe.Line)
}

func TestParseMaxDepth(t *testing.T) {
	input := "<Folder><Folder><Folder><Placemark/></Folder></Folder></Folder>"

	_, err := parser.New[float64](lexer.New(strings.NewReader(input)), parser.Config{MaxDepth: 3}).Parse()
	require.ErrorIs(t, err, kmlerrors.ErrDepthExceeded)

	nodes, err := parser.New[float64](lexer.New(strings.NewReader(input)), parser.Config{MaxDepth: 4}).Parse()
	require.NoError(t, err)
	require.Len(t, nodes, 1)
}

func TestParseLogsSkippedElements(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	input := `<Placemark><name>x</name><TimeStamp><when>2020</when></TimeStamp><gx:balloonVisibility>1</gx:balloonVisibility></Placemark>`
	nodes, err := parser.New[float64](lexer.New(strings.NewReader(input)), parser.Config{Logger: logger}).Parse()
	require.NoError(t, err)
	require.Equal(t, "x", nodes[0].(*ast.Placemark[float64]).Name)

	out := buf.String()
	require.Contains(t, out, `"element":"TimeStamp"`)
	require.Contains(t, out, `"element":"gx:balloonVisibility"`)
	require.NotContains(t, out, `"element":"when"`, "children of a skipped element are not reported")
	require.Equal(t, 2, strings.Count(out, "Skipping unknown element"))
}

func TestFastLexerMatches(t *testing.T) {
	for _, name := range []string{"polygon.kml", "countries.kml", "legacy20.kml"} {
		t.Run(name, func(t *testing.T) {
			data, err := testutil.ReadTestData(name)
			require.NoError(t, err)

			want, err := parser.New[float64](lexer.New(bytes.NewReader(data)), parser.Config{}).Parse()
			require.NoError(t, err)
			got, err := parser.New[float64](lexer.NewFast(bytes.NewReader(data)), parser.Config{}).Parse()
			require.NoError(t, err)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("fast lexer tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
