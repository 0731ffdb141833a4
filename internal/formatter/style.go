package formatter

import (
	"github.com/shabbyrobe/xmlwriter"

	"github.com/KimNorgaard/go-kml/ast"
)

func (f *Formatter[T]) style(node ast.Node[T]) {
	switch n := node.(type) {
	case *ast.Style[T]:
		f.start("Style", attrs(n.ID, n.Attrs))
		if n.IconStyle != nil {
			f.node(n.IconStyle)
		}
		if n.LabelStyle != nil {
			f.node(n.LabelStyle)
		}
		if n.LineStyle != nil {
			f.node(n.LineStyle)
		}
		if n.PolyStyle != nil {
			f.node(n.PolyStyle)
		}
		if n.BalloonStyle != nil {
			f.node(n.BalloonStyle)
		}
		if n.ListStyle != nil {
			f.node(n.ListStyle)
		}
		f.end("Style")

	case *ast.StyleMap[T]:
		f.start("StyleMap", attrs(n.ID, n.Attrs))
		for _, p := range n.Pairs {
			f.node(p)
		}
		f.end("StyleMap")

	case *ast.Pair[T]:
		f.start("Pair", attrs(n.ID, n.Attrs))
		f.str("key", n.Key)
		f.str("styleUrl", n.StyleURL)
		if n.Style != nil {
			f.node(n.Style)
		}
		f.end("Pair")

	case *ast.IconStyle[T]:
		f.start("IconStyle", attrs(n.ID, n.Attrs))
		f.color(&n.ColorStyle)
		f.floatPtr("scale", n.Scale)
		f.float("heading", n.Heading)
		if n.Icon != nil {
			f.node(n.Icon)
		}
		if n.HotSpot != nil {
			f.vec2("hotSpot", n.HotSpot)
		}
		f.end("IconStyle")

	case *ast.LabelStyle[T]:
		f.start("LabelStyle", attrs(n.ID, n.Attrs))
		f.color(&n.ColorStyle)
		f.floatPtr("scale", n.Scale)
		f.end("LabelStyle")

	case *ast.LineStyle[T]:
		f.start("LineStyle", attrs(n.ID, n.Attrs))
		f.color(&n.ColorStyle)
		f.floatPtr("width", n.Width)
		f.end("LineStyle")

	case *ast.PolyStyle[T]:
		f.start("PolyStyle", attrs(n.ID, n.Attrs))
		f.color(&n.ColorStyle)
		f.boolPtr("fill", n.Fill)
		f.boolPtr("outline", n.Outline)
		f.end("PolyStyle")

	case *ast.BalloonStyle[T]:
		f.start("BalloonStyle", attrs(n.ID, n.Attrs))
		f.str("bgColor", n.BgColor)
		f.str("textColor", n.TextColor)
		f.str("text", n.Text)
		f.str("displayMode", string(n.DisplayMode))
		f.end("BalloonStyle")

	case *ast.ListStyle[T]:
		f.start("ListStyle", attrs(n.ID, n.Attrs))
		f.str("listItemType", string(n.ListItemType))
		f.str("bgColor", n.BgColor)
		f.intPtr("maxSnippetLines", n.MaxSnippetLines)
		f.end("ListStyle")

	case *ast.Icon[T]:
		f.start("Icon", attrs(n.ID, n.Attrs))
		f.linkParams(&n.LinkParams)
		f.end("Icon")

	case *ast.Link[T]:
		f.start("Link", attrs(n.ID, n.Attrs))
		f.linkParams(&n.LinkParams)
		f.end("Link")
	}
}

func (f *Formatter[T]) color(c *ast.ColorStyle) {
	f.str("color", c.Color)
	f.str("colorMode", string(c.ColorMode))
}

func (f *Formatter[T]) linkParams(l *ast.LinkParams[T]) {
	f.str("href", l.Href)
	f.str("refreshMode", string(l.RefreshMode))
	f.floatPtr("refreshInterval", l.RefreshInterval)
	f.str("viewRefreshMode", string(l.ViewRefreshMode))
	f.floatPtr("viewRefreshTime", l.ViewRefreshTime)
	f.floatPtr("viewBoundScale", l.ViewBoundScale)
	f.str("viewFormat", l.ViewFormat)
	f.str("httpQuery", l.HTTPQuery)
}

// vec2 writes an attribute-only element.
func (f *Formatter[T]) vec2(name string, v *ast.Vec2[T]) {
	a := []xmlwriter.Attr{
		{Name: "x", Value: ast.FormatFloat(v.X)},
		{Name: "y", Value: ast.FormatFloat(v.Y)},
	}
	if v.XUnits != "" {
		a = append(a, xmlwriter.Attr{Name: "xunits", Value: string(v.XUnits)})
	}
	if v.YUnits != "" {
		a = append(a, xmlwriter.Attr{Name: "yunits", Value: string(v.YUnits)})
	}
	a = append(a, attrs("", v.Attrs)...)
	f.start(name, a)
	f.end(name)
}
