package parser

import (
	"github.com/KimNorgaard/go-kml/ast"
	"github.com/KimNorgaard/go-kml/internal/token"
)

// featureFields returns the field table shared by all features.
func (p *Parser[T]) featureFields(c *ast.FeatureCommon[T]) map[string]fieldFn {
	return map[string]fieldFn{
		"name":         str(&c.Name),
		"visibility":   boolPtr(&c.Visibility),
		"open":         boolean(&c.Open),
		"description":  str(&c.Description),
		"styleUrl":     str(&c.StyleURL),
		"ExtendedData": child(p, func(v *ast.ExtendedData[T]) { c.ExtendedData = v }),
	}
}

func (p *Parser[T]) root(n *ast.Root[T]) builder {
	return &elemBuilder{
		other: child(p, func(v ast.Node[T]) {
			n.Elements = append(n.Elements, v)
		}),
	}
}

// container builds a Document or Folder. Any known element that is not a
// feature field becomes a child, in source order.
func (p *Parser[T]) container(c *ast.FeatureCommon[T], children *[]ast.Node[T]) builder {
	return &elemBuilder{
		fields: p.featureFields(c),
		other: child(p, func(v ast.Node[T]) {
			*children = append(*children, v)
		}),
	}
}

func (p *Parser[T]) placemark(n *ast.Placemark[T]) builder {
	return &elemBuilder{
		fields: p.featureFields(&n.FeatureCommon),
		other: func(tok token.Token) (builder, error) {
			v, b, err := p.node(tok)
			if err != nil {
				return nil, err
			}
			switch v := v.(type) {
			case ast.Geometry[T]:
				n.Geometry = v
			case ast.StyleSelector[T]:
				n.Styles = append(n.Styles, v)
			default:
				return nil, nil
			}
			return b, nil
		},
	}
}

func (p *Parser[T]) networkLink(n *ast.NetworkLink[T]) builder {
	fields := p.featureFields(&n.FeatureCommon)
	fields["refreshVisibility"] = boolean(&n.RefreshVisibility)
	fields["flyToView"] = boolean(&n.FlyToView)
	fields["Link"] = child(p, func(v *ast.Link[T]) { n.Link = v })
	// KML 2.0 documents name the link element Url.
	fields["Url"] = func(tok token.Token) (builder, error) {
		n.Link = &ast.Link[T]{}
		readAttrs(tok, &n.Link.ID, &n.Link.Attrs)
		return p.linkParams(&n.Link.LinkParams), nil
	}
	return &elemBuilder{fields: fields}
}
