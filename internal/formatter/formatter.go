// Package formatter writes a KML document tree as XML. It is the structural
// inverse of the parser: every field the parser fills is written back, in
// the element order the KML schema requires.
package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shabbyrobe/xmlwriter"

	"github.com/KimNorgaard/go-kml/ast"
)

// Config holds the formatter settings.
type Config struct {
	// Indent is the number of spaces per nesting level. Zero writes
	// everything on one line.
	Indent int
	// Declaration writes an XML declaration before a kml root element.
	Declaration bool
	// CDATA writes text holding tabs, newlines or repeated spaces as CDATA
	// sections, which whitespace-collapsing minifiers leave alone.
	CDATA bool
}

// Formatter writes a KML document tree to an output stream.
type Formatter[T ast.Float] struct {
	w   *xmlwriter.Writer
	cfg Config
	err error
}

// New returns a new formatter that writes to w.
func New[T ast.Float](w io.Writer, cfg Config) *Formatter[T] {
	var opts []xmlwriter.Option
	if cfg.Indent > 0 {
		opts = append(opts, xmlwriter.WithIndentString(strings.Repeat(" ", cfg.Indent)))
	}
	return &Formatter[T]{w: xmlwriter.Open(w, opts...), cfg: cfg}
}

// Format writes the XML representation of node and flushes the output.
func (f *Formatter[T]) Format(node ast.Node[T]) error {
	if node == nil {
		return fmt.Errorf("kml: cannot format nil node")
	}
	if _, ok := node.(*ast.Root[T]); ok && f.cfg.Declaration {
		f.check(f.w.Start(xmlwriter.Doc{}))
	}
	f.node(node)
	if f.err != nil {
		return f.err
	}
	return f.w.EndAllFlush()
}

// check records the first error. Later writes become no-ops.
func (f *Formatter[T]) check(err error) {
	if f.err == nil && err != nil {
		f.err = err
	}
}

func attrs(id string, extra ast.Attrs) []xmlwriter.Attr {
	if id == "" && len(extra) == 0 {
		return nil
	}
	out := make([]xmlwriter.Attr, 0, len(extra)+1)
	if id != "" {
		out = append(out, xmlwriter.Attr{Name: "id", Value: id})
	}
	for _, a := range extra {
		out = append(out, xmlwriter.Attr{Name: a.Name, Value: a.Value})
	}
	return out
}

func (f *Formatter[T]) start(name string, a []xmlwriter.Attr) {
	if f.err != nil {
		return
	}
	f.check(f.w.Start(xmlwriter.Elem{Name: name, Attrs: a}))
}

func (f *Formatter[T]) end(name string) {
	if f.err != nil {
		return
	}
	f.check(f.w.End(xmlwriter.ElemNode, name))
}

// leaf writes an element with text content.
func (f *Formatter[T]) leaf(name, text string) {
	f.start(name, nil)
	f.text(text)
	f.end(name)
}

func (f *Formatter[T]) text(s string) {
	if f.err != nil || s == "" {
		return
	}
	if !f.cfg.CDATA || !collapsible(s) {
		f.check(f.w.Write(xmlwriter.Text(s)))
		return
	}
	// A section cannot contain "]]>"; the '>' is written as escaped text.
	for s != "" {
		i := strings.Index(s, "]]>")
		if i < 0 {
			f.check(f.w.Write(xmlwriter.CData{Content: s}))
			return
		}
		f.check(f.w.Write(xmlwriter.CData{Content: s[:i+2]}, xmlwriter.Text(">")))
		s = s[i+3:]
	}
}

// collapsible reports whether s has whitespace other than single spaces.
func collapsible(s string) bool {
	return strings.ContainsAny(s, "\t\n\r") || strings.Contains(s, "  ")
}

func (f *Formatter[T]) str(name, v string) {
	if v != "" {
		f.leaf(name, v)
	}
}

func (f *Formatter[T]) boolean(name string, v bool) {
	if v {
		f.leaf(name, "1")
	}
}

func (f *Formatter[T]) boolPtr(name string, v *bool) {
	if v == nil {
		return
	}
	if *v {
		f.leaf(name, "1")
	} else {
		f.leaf(name, "0")
	}
}

func (f *Formatter[T]) float(name string, v T) {
	if v != 0 {
		f.leaf(name, ast.FormatFloat(v))
	}
}

func (f *Formatter[T]) floatPtr(name string, v *T) {
	if v != nil {
		f.leaf(name, ast.FormatFloat(*v))
	}
}

func (f *Formatter[T]) intPtr(name string, v *int) {
	if v != nil {
		f.leaf(name, strconv.Itoa(*v))
	}
}

func (f *Formatter[T]) node(node ast.Node[T]) { //nolint:gocyclo
	switch n := node.(type) {
	case *ast.Root[T]:
		var a []xmlwriter.Attr
		if ns := n.Version.Namespace(); ns != "" {
			a = append(a, xmlwriter.Attr{Name: "xmlns", Value: ns})
		}
		a = append(a, attrs("", n.Attrs)...)
		f.start("kml", a)
		for _, e := range n.Elements {
			f.node(e)
		}
		f.end("kml")

	case *ast.Point[T]:
		f.start("Point", attrs(n.ID, n.Attrs))
		f.boolean("extrude", n.Extrude)
		f.str("altitudeMode", string(n.AltitudeMode))
		f.leaf("coordinates", n.Coord.String())
		f.end("Point")

	case *ast.LineString[T]:
		f.path("LineString", n.ID, n.Attrs, n.Extrude, n.Tessellate, n.AltitudeMode, n.Coords)

	case *ast.LinearRing[T]:
		f.ring(n)

	case *ast.Polygon[T]:
		f.start("Polygon", attrs(n.ID, n.Attrs))
		f.boolean("extrude", n.Extrude)
		f.boolean("tessellate", n.Tessellate)
		f.str("altitudeMode", string(n.AltitudeMode))
		f.start("outerBoundaryIs", nil)
		f.ring(&n.Outer)
		f.end("outerBoundaryIs")
		for i := range n.Inner {
			f.start("innerBoundaryIs", nil)
			f.ring(&n.Inner[i])
			f.end("innerBoundaryIs")
		}
		f.end("Polygon")

	case *ast.MultiGeometry[T]:
		f.start("MultiGeometry", attrs(n.ID, n.Attrs))
		for _, g := range n.Geometries {
			f.node(g)
		}
		f.end("MultiGeometry")

	case *ast.Model[T]:
		f.start("Model", attrs(n.ID, n.Attrs))
		f.str("altitudeMode", string(n.AltitudeMode))
		if n.Location != nil {
			f.node(n.Location)
		}
		if n.Orientation != nil {
			f.node(n.Orientation)
		}
		if n.Scale != nil {
			f.node(n.Scale)
		}
		if n.Link != nil {
			f.node(n.Link)
		}
		if n.ResourceMap != nil {
			f.node(n.ResourceMap)
		}
		f.end("Model")

	case *ast.Placemark[T]:
		f.start("Placemark", attrs(n.ID, n.Attrs))
		f.feature(&n.FeatureCommon, func() {
			for _, s := range n.Styles {
				f.node(s)
			}
		})
		if n.Geometry != nil {
			f.node(n.Geometry)
		}
		f.end("Placemark")

	case *ast.Document[T]:
		f.container("Document", &n.FeatureCommon, n.Children)

	case *ast.Folder[T]:
		f.container("Folder", &n.FeatureCommon, n.Children)

	case *ast.NetworkLink[T]:
		f.start("NetworkLink", attrs(n.ID, n.Attrs))
		f.feature(&n.FeatureCommon, nil)
		f.boolean("refreshVisibility", n.RefreshVisibility)
		f.boolean("flyToView", n.FlyToView)
		if n.Link != nil {
			f.node(n.Link)
		}
		f.end("NetworkLink")

	case *ast.Style[T], *ast.StyleMap[T], *ast.Pair[T], *ast.IconStyle[T], *ast.LabelStyle[T],
		*ast.LineStyle[T], *ast.PolyStyle[T], *ast.BalloonStyle[T], *ast.ListStyle[T],
		*ast.Icon[T], *ast.Link[T]:
		f.style(n)

	default:
		f.support(n)
	}
}

func (f *Formatter[T]) path(name, id string, a ast.Attrs, extrude, tessellate bool, mode ast.AltitudeMode, coords []ast.Coord[T]) {
	f.start(name, attrs(id, a))
	f.boolean("extrude", extrude)
	f.boolean("tessellate", tessellate)
	f.str("altitudeMode", string(mode))
	f.leaf("coordinates", ast.FormatCoords(coords))
	f.end(name)
}

func (f *Formatter[T]) ring(n *ast.LinearRing[T]) {
	f.path("LinearRing", n.ID, n.Attrs, n.Extrude, n.Tessellate, n.AltitudeMode, n.Coords)
}

// feature writes the shared feature fields. styles, if set, runs between
// styleUrl and ExtendedData.
func (f *Formatter[T]) feature(c *ast.FeatureCommon[T], styles func()) {
	f.str("name", c.Name)
	f.boolPtr("visibility", c.Visibility)
	f.boolean("open", c.Open)
	f.str("description", c.Description)
	f.str("styleUrl", c.StyleURL)
	if styles != nil {
		styles()
	}
	if c.ExtendedData != nil {
		f.node(c.ExtendedData)
	}
}

func (f *Formatter[T]) container(name string, c *ast.FeatureCommon[T], children []ast.Node[T]) {
	f.start(name, attrs(c.ID, c.Attrs))
	f.feature(c, nil)
	for _, child := range children {
		f.node(child)
	}
	f.end(name)
}
