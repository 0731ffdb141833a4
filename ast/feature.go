package ast

// Version is the KML version detected from the root namespace.
type Version int

const (
	VersionUnknown Version = iota
	Version20
	Version21
	Version22
)

// Namespace URIs of the supported KML versions.
const (
	Namespace20 = "http://earth.google.com/kml/2.0"
	Namespace21 = "http://earth.google.com/kml/2.1"
	Namespace22 = "http://www.opengis.net/kml/2.2"

	namespace22Google = "http://earth.google.com/kml/2.2"
)

// VersionOf maps a namespace URI to a version.
func VersionOf(ns string) Version {
	switch ns {
	case Namespace20:
		return Version20
	case Namespace21:
		return Version21
	case Namespace22, namespace22Google:
		return Version22
	}
	return VersionUnknown
}

// Namespace returns the canonical namespace URI of v, or "" for
// VersionUnknown.
func (v Version) Namespace() string {
	switch v {
	case Version20:
		return Namespace20
	case Version21:
		return Namespace21
	case Version22:
		return Namespace22
	}
	return ""
}

func (v Version) String() string {
	switch v {
	case Version20:
		return "2.0"
	case Version21:
		return "2.1"
	case Version22:
		return "2.2"
	}
	return "unknown"
}

// Root is the kml element. It also wraps several top-level elements read
// from a document without a kml root.
type Root[T Float] struct {
	Version  Version
	Attrs    Attrs
	Elements []Node[T]
}

// FeatureCommon holds the fields shared by every feature.
type FeatureCommon[T Float] struct {
	ID           string
	Attrs        Attrs
	Name         string
	Visibility   *bool
	Open         bool
	Description  string
	StyleURL     string
	ExtendedData *ExtendedData[T]
}

// Placemark is a feature with an optional geometry.
type Placemark[T Float] struct {
	FeatureCommon[T]
	Styles   []StyleSelector[T]
	Geometry Geometry[T]
}

// Document is a container of features, styles and schemas.
type Document[T Float] struct {
	FeatureCommon[T]
	Children []Node[T]
}

// Folder is a container of features.
type Folder[T Float] struct {
	FeatureCommon[T]
	Children []Node[T]
}

// NetworkLink references a remote KML document.
type NetworkLink[T Float] struct {
	FeatureCommon[T]
	RefreshVisibility bool
	FlyToView         bool
	Link              *Link[T]
}

func (*Root[T]) Kind() Kind        { return KindRoot }
func (*Placemark[T]) Kind() Kind   { return KindPlacemark }
func (*Document[T]) Kind() Kind    { return KindDocument }
func (*Folder[T]) Kind() Kind      { return KindFolder }
func (*NetworkLink[T]) Kind() Kind { return KindNetworkLink }

func (*Root[T]) isNode(T)        {}
func (*Placemark[T]) isNode(T)   {}
func (*Document[T]) isNode(T)    {}
func (*Folder[T]) isNode(T)      {}
func (*NetworkLink[T]) isNode(T) {}

func (f *FeatureCommon[T]) Common() *FeatureCommon[T] { return f }
