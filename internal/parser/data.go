package parser

import (
	"github.com/KimNorgaard/go-kml/ast"
)

func (p *Parser[T]) location(n *ast.Location[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"longitude": float(&n.Longitude),
			"latitude":  float(&n.Latitude),
			"altitude":  float(&n.Altitude),
		},
	}
}

func (p *Parser[T]) orientation(n *ast.Orientation[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"heading": float(&n.Heading),
			"tilt":    float(&n.Tilt),
			"roll":    float(&n.Roll),
		},
	}
}

func (p *Parser[T]) scale(n *ast.Scale[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"x": float(&n.X),
			"y": float(&n.Y),
			"z": float(&n.Z),
		},
	}
}

func (p *Parser[T]) alias(n *ast.Alias[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"targetHref": str(&n.TargetHref),
			"sourceHref": str(&n.SourceHref),
		},
	}
}

func (p *Parser[T]) resourceMap(n *ast.ResourceMap[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"Alias": child(p, func(v *ast.Alias[T]) { n.Aliases = append(n.Aliases, v) }),
		},
	}
}

func (p *Parser[T]) extendedData(n *ast.ExtendedData[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"Data":       child(p, func(v *ast.Data[T]) { n.Data = append(n.Data, v) }),
			"SchemaData": child(p, func(v *ast.SchemaData[T]) { n.SchemaData = append(n.SchemaData, v) }),
		},
	}
}

func (p *Parser[T]) data(n *ast.Data[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"displayName": str(&n.DisplayName),
			"value":       str(&n.Value),
		},
	}
}

func (p *Parser[T]) schemaData(n *ast.SchemaData[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"SimpleData":      child(p, func(v *ast.SimpleData[T]) { n.SimpleData = append(n.SimpleData, v) }),
			"SimpleArrayData": child(p, func(v *ast.SimpleArrayData[T]) { n.SimpleArrayData = append(n.SimpleArrayData, v) }),
		},
	}
}

func (p *Parser[T]) simpleData(n *ast.SimpleData[T]) builder {
	return &textBuilder{
		field: "SimpleData",
		set: func(s string) error {
			n.Value = s
			return nil
		},
	}
}

func (p *Parser[T]) simpleArrayData(n *ast.SimpleArrayData[T]) builder {
	return &elemBuilder{
		fields: map[string]fieldFn{
			"value": leaf(func(s string) error {
				n.Values = append(n.Values, s)
				return nil
			}),
		},
	}
}
