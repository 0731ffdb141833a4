package kml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-kml"
	"github.com/KimNorgaard/go-kml/ast"
	"github.com/KimNorgaard/go-kml/internal/testutil"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected []string
	}{
		{
			name:     "float64 point",
			value:    ast.Node[float64](&ast.Point[float64]{Coord: ast.XYZ(1.5, -2.0, 0.0)}),
			expected: []string{"<Point>", "<coordinates>1.5,-2,0</coordinates>", "</Point>"},
		},
		{
			name:     "float32 keeps shortest form",
			value:    ast.Node[float32](&ast.Point[float32]{Coord: ast.XY[float32](0.1, 0.2)}),
			expected: []string{"<coordinates>0.1,0.2</coordinates>"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, kml.NewEncoder(&buf).Encode(tc.value))
			for _, want := range tc.expected {
				require.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestEncodeRejectsOtherValues(t *testing.T) {
	var buf bytes.Buffer
	err := kml.NewEncoder(&buf).Encode(struct{}{})
	require.ErrorContains(t, err, "cannot encode value of type struct {}")

	err = kml.NewEncoder(&buf, kml.Indent(-1)).Encode(ast.Node[float64](&ast.Folder[float64]{}))
	require.Error(t, err)
}

func TestMarshalAttributeFidelity(t *testing.T) {
	n := mustParse(t, `<Placemark id="p1" foo:bar="x &amp; y" xmlns:foo="urn:foo"><name>a</name></Placemark>`)
	out, err := kml.Marshal(n)
	require.NoError(t, err)
	require.Contains(t, string(out), `<Placemark id="p1" foo:bar="x &amp; y" xmlns:foo="urn:foo">`)

	again := mustParse(t, string(out))
	require.Equal(t, n, again)
}

func TestMarshalDeclaration(t *testing.T) {
	root := &ast.Root[float64]{Version: ast.Version22}

	out, err := kml.Marshal[float64](root)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "<?xml"), "declaration is written by default")
	require.Contains(t, string(out), `xmlns="http://www.opengis.net/kml/2.2"`)

	out, err = kml.Marshal[float64](root, kml.Declaration(false))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "<kml"))
}

func TestMarshalMinify(t *testing.T) {
	data, err := testutil.ReadTestData("countries.kml")
	require.NoError(t, err)
	n, err := kml.Parse(data)
	require.NoError(t, err)

	pretty, err := kml.Marshal(n)
	require.NoError(t, err)
	minified, err := kml.Marshal(n, kml.Minify())
	require.NoError(t, err)

	require.Less(t, len(minified), len(pretty))
	require.NotContains(t, string(minified), "\n  <")
	require.Contains(t, string(minified), "<name>Aruba</name>")

	back, err := kml.Parse(minified)
	require.NoError(t, err)
	require.Equal(t, n, back)
}

func TestMarshalMinifyKeepsText(t *testing.T) {
	texts := []string{
		"line1\n\nline2   end",
		"<p>balloon</p>\n\t<i>text</i>",
		"tabs\tand  ]]>  brackets",
	}
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			n := ast.Node[float64](&ast.Placemark[float64]{
				FeatureCommon: ast.FeatureCommon[float64]{
					Description: text,
					ExtendedData: &ast.ExtendedData[float64]{
						Data: []*ast.Data[float64]{{Name: "note", Value: text}},
					},
				},
			})
			minified, err := kml.Marshal(n, kml.Minify())
			require.NoError(t, err)

			back, err := kml.Parse(minified)
			require.NoError(t, err)
			require.Equal(t, n, back, "output:\n%s", minified)

			fast, err := kml.Parse(minified, kml.FastTokenizer())
			require.NoError(t, err)
			require.Equal(t, n, fast)
		})
	}
}

func TestMarshalIndent(t *testing.T) {
	n := ast.Node[float64](&ast.Folder[float64]{FeatureCommon: ast.FeatureCommon[float64]{Name: "f"}})
	out, err := kml.Marshal(n, kml.Indent(4))
	require.NoError(t, err)
	require.Contains(t, string(out), "\n    <name>f</name>")
}
