package ast

// Point is a single geographic location.
type Point[T Float] struct {
	ID           string
	Attrs        Attrs
	Extrude      bool
	AltitudeMode AltitudeMode
	Coord        Coord[T]
}

// LineString is a connected set of line segments.
type LineString[T Float] struct {
	ID           string
	Attrs        Attrs
	Extrude      bool
	Tessellate   bool
	AltitudeMode AltitudeMode
	Coords       []Coord[T]
}

// LinearRing is a closed line string, usually a polygon boundary. Closure is
// not enforced; coordinates are kept exactly as read.
type LinearRing[T Float] struct {
	ID           string
	Attrs        Attrs
	Extrude      bool
	Tessellate   bool
	AltitudeMode AltitudeMode
	Coords       []Coord[T]
}

// Polygon is defined by one outer boundary and zero or more holes.
type Polygon[T Float] struct {
	ID           string
	Attrs        Attrs
	Extrude      bool
	Tessellate   bool
	AltitudeMode AltitudeMode
	Outer        LinearRing[T]
	Inner        []LinearRing[T]
}

// MultiGeometry is an ordered, possibly nested group of geometries.
type MultiGeometry[T Float] struct {
	ID         string
	Attrs      Attrs
	Geometries []Geometry[T]
}

// Model is a 3D object described in an external resource.
type Model[T Float] struct {
	ID           string
	Attrs        Attrs
	AltitudeMode AltitudeMode
	Location     *Location[T]
	Orientation  *Orientation[T]
	Scale        *Scale[T]
	Link         *Link[T]
	ResourceMap  *ResourceMap[T]
}

func (*Point[T]) Kind() Kind         { return KindPoint }
func (*LineString[T]) Kind() Kind    { return KindLineString }
func (*LinearRing[T]) Kind() Kind    { return KindLinearRing }
func (*Polygon[T]) Kind() Kind       { return KindPolygon }
func (*MultiGeometry[T]) Kind() Kind { return KindMultiGeometry }
func (*Model[T]) Kind() Kind         { return KindModel }

func (*Point[T]) isNode(T)         {}
func (*LineString[T]) isNode(T)    {}
func (*LinearRing[T]) isNode(T)    {}
func (*Polygon[T]) isNode(T)       {}
func (*MultiGeometry[T]) isNode(T) {}
func (*Model[T]) isNode(T)         {}

func (*Point[T]) isGeometry(T)         {}
func (*LineString[T]) isGeometry(T)    {}
func (*LinearRing[T]) isGeometry(T)    {}
func (*Polygon[T]) isGeometry(T)       {}
func (*MultiGeometry[T]) isGeometry(T) {}
func (*Model[T]) isGeometry(T)         {}
