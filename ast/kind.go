package ast

// Kind identifies the element a node represents.
type Kind int

const (
	KindInvalid Kind = iota
	KindRoot
	KindPoint
	KindLineString
	KindLinearRing
	KindPolygon
	KindMultiGeometry
	KindModel
	KindPlacemark
	KindDocument
	KindFolder
	KindNetworkLink
	KindStyle
	KindStyleMap
	KindPair
	KindIconStyle
	KindLabelStyle
	KindLineStyle
	KindPolyStyle
	KindBalloonStyle
	KindListStyle
	KindIcon
	KindLink
	KindLocation
	KindOrientation
	KindScale
	KindAlias
	KindResourceMap
	KindExtendedData
	KindData
	KindSchemaData
	KindSimpleData
	KindSimpleArrayData
)

var kindNames = [...]string{
	KindInvalid:         "",
	KindRoot:            "kml",
	KindPoint:           "Point",
	KindLineString:      "LineString",
	KindLinearRing:      "LinearRing",
	KindPolygon:         "Polygon",
	KindMultiGeometry:   "MultiGeometry",
	KindModel:           "Model",
	KindPlacemark:       "Placemark",
	KindDocument:        "Document",
	KindFolder:          "Folder",
	KindNetworkLink:     "NetworkLink",
	KindStyle:           "Style",
	KindStyleMap:        "StyleMap",
	KindPair:            "Pair",
	KindIconStyle:       "IconStyle",
	KindLabelStyle:      "LabelStyle",
	KindLineStyle:       "LineStyle",
	KindPolyStyle:       "PolyStyle",
	KindBalloonStyle:    "BalloonStyle",
	KindListStyle:       "ListStyle",
	KindIcon:            "Icon",
	KindLink:            "Link",
	KindLocation:        "Location",
	KindOrientation:     "Orientation",
	KindScale:           "Scale",
	KindAlias:           "Alias",
	KindResourceMap:     "ResourceMap",
	KindExtendedData:    "ExtendedData",
	KindData:            "Data",
	KindSchemaData:      "SchemaData",
	KindSimpleData:      "SimpleData",
	KindSimpleArrayData: "gx:SimpleArrayData",
}

// String returns the element name of the kind, as written by the encoder.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return ""
	}
	return kindNames[k]
}

// KindOf returns the kind for an element local name. Namespace prefixes must
// be stripped by the caller.
func KindOf(local string) Kind {
	switch local {
	case "SimpleArrayData":
		return KindSimpleArrayData
	case "kml":
		return KindRoot
	}
	for k, name := range kindNames {
		if k > int(KindRoot) && name == local {
			return Kind(k)
		}
	}
	return KindInvalid
}
