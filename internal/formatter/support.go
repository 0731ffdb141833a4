package formatter

import (
	"fmt"

	"github.com/shabbyrobe/xmlwriter"

	"github.com/KimNorgaard/go-kml/ast"
)

func (f *Formatter[T]) support(node ast.Node[T]) { //nolint:gocyclo
	switch n := node.(type) {
	case *ast.Location[T]:
		f.start("Location", attrs(n.ID, n.Attrs))
		f.leaf("longitude", ast.FormatFloat(n.Longitude))
		f.leaf("latitude", ast.FormatFloat(n.Latitude))
		f.leaf("altitude", ast.FormatFloat(n.Altitude))
		f.end("Location")

	case *ast.Orientation[T]:
		f.start("Orientation", attrs(n.ID, n.Attrs))
		f.leaf("heading", ast.FormatFloat(n.Heading))
		f.leaf("tilt", ast.FormatFloat(n.Tilt))
		f.leaf("roll", ast.FormatFloat(n.Roll))
		f.end("Orientation")

	case *ast.Scale[T]:
		f.start("Scale", attrs(n.ID, n.Attrs))
		f.leaf("x", ast.FormatFloat(n.X))
		f.leaf("y", ast.FormatFloat(n.Y))
		f.leaf("z", ast.FormatFloat(n.Z))
		f.end("Scale")

	case *ast.Alias[T]:
		f.start("Alias", attrs(n.ID, n.Attrs))
		f.str("targetHref", n.TargetHref)
		f.str("sourceHref", n.SourceHref)
		f.end("Alias")

	case *ast.ResourceMap[T]:
		f.start("ResourceMap", attrs(n.ID, n.Attrs))
		for _, a := range n.Aliases {
			f.node(a)
		}
		f.end("ResourceMap")

	case *ast.ExtendedData[T]:
		f.start("ExtendedData", attrs("", n.Attrs))
		for _, d := range n.Data {
			f.node(d)
		}
		for _, d := range n.SchemaData {
			f.node(d)
		}
		f.end("ExtendedData")

	case *ast.Data[T]:
		f.start("Data", named(n.Name, n.ID, n.Attrs))
		f.str("displayName", n.DisplayName)
		f.leaf("value", n.Value)
		f.end("Data")

	case *ast.SchemaData[T]:
		var a []xmlwriter.Attr
		if n.SchemaURL != "" {
			a = append(a, xmlwriter.Attr{Name: "schemaUrl", Value: n.SchemaURL})
		}
		f.start("SchemaData", append(a, attrs(n.ID, n.Attrs)...))
		for _, d := range n.SimpleData {
			f.node(d)
		}
		for _, d := range n.SimpleArrayData {
			f.node(d)
		}
		f.end("SchemaData")

	case *ast.SimpleData[T]:
		f.start("SimpleData", named(n.Name, "", n.Attrs))
		f.text(n.Value)
		f.end("SimpleData")

	case *ast.SimpleArrayData[T]:
		name := ast.KindSimpleArrayData.String()
		f.start(name, named(n.Name, "", n.Attrs))
		for _, v := range n.Values {
			f.leaf("gx:value", v)
		}
		f.end(name)

	default:
		f.check(fmt.Errorf("kml: unsupported node type for formatting: %T", n))
	}
}

// named returns the attributes of an element keyed by a name attribute.
func named(name, id string, extra ast.Attrs) []xmlwriter.Attr {
	var a []xmlwriter.Attr
	if name != "" {
		a = append(a, xmlwriter.Attr{Name: "name", Value: name})
	}
	return append(a, attrs(id, extra)...)
}
