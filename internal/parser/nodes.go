package parser

import (
	"github.com/KimNorgaard/go-kml/ast"
	"github.com/KimNorgaard/go-kml/internal/token"
)

// node creates the node for a start tag together with the builder that
// fills it. Unknown elements return a nil node and a nil builder.
func (p *Parser[T]) node(tok token.Token) (ast.Node[T], builder, error) {
	switch ast.KindOf(tok.Name.Local) {
	case ast.KindRoot:
		n := &ast.Root[T]{}
		readRootAttrs(tok, n)
		return n, p.root(n), nil
	case ast.KindPoint:
		n := &ast.Point[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.point(n), nil
	case ast.KindLineString:
		n := &ast.LineString[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.path("LineString", &n.Extrude, &n.Tessellate, &n.AltitudeMode, &n.Coords), nil
	case ast.KindLinearRing:
		n := &ast.LinearRing[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.ring(n), nil
	case ast.KindPolygon:
		n := &ast.Polygon[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.polygon(n), nil
	case ast.KindMultiGeometry:
		n := &ast.MultiGeometry[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.multiGeometry(n), nil
	case ast.KindModel:
		n := &ast.Model[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.model(n), nil
	case ast.KindPlacemark:
		n := &ast.Placemark[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.placemark(n), nil
	case ast.KindDocument:
		n := &ast.Document[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.container(&n.FeatureCommon, &n.Children), nil
	case ast.KindFolder:
		n := &ast.Folder[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.container(&n.FeatureCommon, &n.Children), nil
	case ast.KindNetworkLink:
		n := &ast.NetworkLink[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.networkLink(n), nil
	case ast.KindStyle:
		n := &ast.Style[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.style(n), nil
	case ast.KindStyleMap:
		n := &ast.StyleMap[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.styleMap(n), nil
	case ast.KindPair:
		n := &ast.Pair[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.pair(n), nil
	case ast.KindIconStyle:
		n := &ast.IconStyle[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.iconStyle(n), nil
	case ast.KindLabelStyle:
		n := &ast.LabelStyle[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.labelStyle(n), nil
	case ast.KindLineStyle:
		n := &ast.LineStyle[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.lineStyle(n), nil
	case ast.KindPolyStyle:
		n := &ast.PolyStyle[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.polyStyle(n), nil
	case ast.KindBalloonStyle:
		n := &ast.BalloonStyle[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.balloonStyle(n), nil
	case ast.KindListStyle:
		n := &ast.ListStyle[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.listStyle(n), nil
	case ast.KindIcon:
		n := &ast.Icon[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.linkParams(&n.LinkParams), nil
	case ast.KindLink:
		n := &ast.Link[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.linkParams(&n.LinkParams), nil
	case ast.KindLocation:
		n := &ast.Location[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.location(n), nil
	case ast.KindOrientation:
		n := &ast.Orientation[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.orientation(n), nil
	case ast.KindScale:
		n := &ast.Scale[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.scale(n), nil
	case ast.KindAlias:
		n := &ast.Alias[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.alias(n), nil
	case ast.KindResourceMap:
		n := &ast.ResourceMap[T]{}
		readAttrs(tok, &n.ID, &n.Attrs)
		return n, p.resourceMap(n), nil
	case ast.KindExtendedData:
		n := &ast.ExtendedData[T]{}
		readAttrs(tok, nil, &n.Attrs)
		return n, p.extendedData(n), nil
	case ast.KindData:
		n := &ast.Data[T]{}
		readDataAttrs(tok, &n.ID, &n.Name, &n.Attrs)
		return n, p.data(n), nil
	case ast.KindSchemaData:
		n := &ast.SchemaData[T]{}
		readSchemaDataAttrs(tok, n)
		return n, p.schemaData(n), nil
	case ast.KindSimpleData:
		n := &ast.SimpleData[T]{}
		readDataAttrs(tok, nil, &n.Name, &n.Attrs)
		return n, p.simpleData(n), nil
	case ast.KindSimpleArrayData:
		n := &ast.SimpleArrayData[T]{}
		readDataAttrs(tok, nil, &n.Name, &n.Attrs)
		return n, p.simpleArrayData(n), nil
	}
	return nil, nil, nil
}

// child returns a fieldFn that builds a known node of type N and passes it
// to set. Elements of other kinds are skipped.
func child[T ast.Float, N ast.Node[T]](p *Parser[T], set func(N)) fieldFn {
	return func(tok token.Token) (builder, error) {
		n, b, err := p.node(tok)
		if err != nil {
			return nil, err
		}
		v, ok := n.(N)
		if !ok {
			return nil, nil
		}
		set(v)
		return b, nil
	}
}

func readRootAttrs[T ast.Float](tok token.Token, n *ast.Root[T]) {
	for _, a := range tok.Attrs {
		if a.Name.Prefix == "" && a.Name.Local == "xmlns" {
			if v := ast.VersionOf(a.Value); v != ast.VersionUnknown {
				n.Version = v
				continue
			}
		}
		n.Attrs = append(n.Attrs, ast.Attr{Name: a.Name.String(), Value: a.Value})
	}
}

// readDataAttrs handles elements whose name attribute is part of the model.
func readDataAttrs(tok token.Token, id, name *string, attrs *ast.Attrs) {
	for _, a := range tok.Attrs {
		switch {
		case a.Name.Prefix == "" && a.Name.Local == "name":
			*name = a.Value
		case id != nil && a.Name.Prefix == "" && a.Name.Local == "id":
			*id = a.Value
		default:
			*attrs = append(*attrs, ast.Attr{Name: a.Name.String(), Value: a.Value})
		}
	}
}

func readSchemaDataAttrs[T ast.Float](tok token.Token, n *ast.SchemaData[T]) {
	for _, a := range tok.Attrs {
		switch {
		case a.Name.Prefix == "" && a.Name.Local == "schemaUrl":
			n.SchemaURL = a.Value
		case a.Name.Prefix == "" && a.Name.Local == "id":
			n.ID = a.Value
		default:
			n.Attrs = append(n.Attrs, ast.Attr{Name: a.Name.String(), Value: a.Value})
		}
	}
}
