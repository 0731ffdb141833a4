package parser

import (
	"fmt"

	"github.com/KimNorgaard/go-kml/ast"
	"github.com/KimNorgaard/go-kml/internal/token"
)

func (p *Parser[T]) style(n *ast.Style[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"IconStyle":    child(p, func(v *ast.IconStyle[T]) { n.IconStyle = v }),
			"LabelStyle":   child(p, func(v *ast.LabelStyle[T]) { n.LabelStyle = v }),
			"LineStyle":    child(p, func(v *ast.LineStyle[T]) { n.LineStyle = v }),
			"PolyStyle":    child(p, func(v *ast.PolyStyle[T]) { n.PolyStyle = v }),
			"BalloonStyle": child(p, func(v *ast.BalloonStyle[T]) { n.BalloonStyle = v }),
			"ListStyle":    child(p, func(v *ast.ListStyle[T]) { n.ListStyle = v }),
		},
	}
}

func (p *Parser[T]) styleMap(n *ast.StyleMap[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"Pair": child(p, func(v *ast.Pair[T]) { n.Pairs = append(n.Pairs, v) }),
		},
	}
}

func (p *Parser[T]) pair(n *ast.Pair[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"key":      str(&n.Key),
			"styleUrl": str(&n.StyleURL),
			"Style":    child(p, func(v *ast.Style[T]) { n.Style = v }),
		},
	}
}

func colorFields(c *ast.ColorStyle) map[string]fieldFn {
	return map[string]fieldFn{
		"color":     str(&c.Color),
		"colorMode": enum(&c.ColorMode, ast.ColorMode.Valid),
	}
}

func (p *Parser[T]) iconStyle(n *ast.IconStyle[T]) builder {
	fields := colorFields(&n.ColorStyle)
	fields["scale"] = floatPtr(&n.Scale)
	fields["heading"] = float(&n.Heading)
	fields["Icon"] = child(p, func(v *ast.Icon[T]) { n.Icon = v })
	fields["hotSpot"] = func(tok token.Token) (builder, error) {
		v, err := readVec2[T](tok)
		if err != nil {
			return nil, err
		}
		n.HotSpot = v
		return &elemBuilder{}, nil
	}
	return &elemBuilder{fields: fields}
}

func (p *Parser[T]) labelStyle(n *ast.LabelStyle[T]) builder {
	fields := colorFields(&n.ColorStyle)
	fields["scale"] = floatPtr(&n.Scale)
	return &elemBuilder{fields: fields}
}

func (p *Parser[T]) lineStyle(n *ast.LineStyle[T]) builder {
	fields := colorFields(&n.ColorStyle)
	fields["width"] = floatPtr(&n.Width)
	return &elemBuilder{fields: fields}
}

func (p *Parser[T]) polyStyle(n *ast.PolyStyle[T]) builder {
	fields := colorFields(&n.ColorStyle)
	fields["fill"] = boolPtr(&n.Fill)
	fields["outline"] = boolPtr(&n.Outline)
	return &elemBuilder{fields: fields}
}

func (p *Parser[T]) balloonStyle(n *ast.BalloonStyle[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"bgColor":     str(&n.BgColor),
			"textColor":   str(&n.TextColor),
			"text":        str(&n.Text),
			"displayMode": enum(&n.DisplayMode, ast.DisplayMode.Valid),
		},
	}
}

func (p *Parser[T]) listStyle(n *ast.ListStyle[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"listItemType":    enum(&n.ListItemType, ast.ListItemType.Valid),
			"bgColor":         str(&n.BgColor),
			"maxSnippetLines": intPtr(&n.MaxSnippetLines),
		},
	}
}

func (p *Parser[T]) linkParams(n *ast.LinkParams[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"href":            str(&n.Href),
			"refreshMode":     enum(&n.RefreshMode, ast.RefreshMode.Valid),
			"refreshInterval": floatPtr(&n.RefreshInterval),
			"viewRefreshMode": enum(&n.ViewRefreshMode, ast.ViewRefreshMode.Valid),
			"viewRefreshTime": floatPtr(&n.ViewRefreshTime),
			"viewBoundScale":  floatPtr(&n.ViewBoundScale),
			"viewFormat":      str(&n.ViewFormat),
			"httpQuery":       str(&n.HTTPQuery),
		},
	}
}

// readVec2 reads an attribute-only element such as hotSpot.
func readVec2[T ast.Float](tok token.Token) (*ast.Vec2[T], error) {
	v := &ast.Vec2[T]{}
	for _, a := range tok.Attrs {
		if a.Name.Prefix != "" {
			v.Attrs = append(v.Attrs, ast.Attr{Name: a.Name.String(), Value: a.Value})
			continue
		}
		var err error
		switch a.Name.Local {
		case "x":
			v.X, err = ast.ParseFloat[T](a.Value)
		case "y":
			v.Y, err = ast.ParseFloat[T](a.Value)
		case "xunits":
			v.XUnits, err = parseUnits(a.Value)
		case "yunits":
			v.YUnits, err = parseUnits(a.Value)
		default:
			v.Attrs = append(v.Attrs, ast.Attr{Name: a.Name.Local, Value: a.Value})
		}
		if err != nil {
			return nil, valueError(tok.Name.Local+"@"+a.Name.Local, err)
		}
	}
	return v, nil
}

func parseUnits(s string) (ast.Units, error) {
	u := ast.Units(s)
	if !u.Valid() {
		return "", fmt.Errorf("unknown units %q", s)
	}
	return u, nil
}
