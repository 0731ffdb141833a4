// Package ast defines the document tree produced by the KML parser and
// consumed by the writer and the geometry converter.
//
// Every node is generic over its coordinate scalar type T, which is either
// float32 or float64. Nodes are plain structs handled through pointers; the
// tree is fully materialized and strictly hierarchical.
package ast

// Float is the set of scalar types a document tree can be instantiated with.
type Float interface {
	float32 | float64
}

// Node is the base interface for all document tree nodes. The set of
// implementations is closed; the unexported method keeps it sealed.
type Node[T Float] interface {
	// Kind reports the node's element kind.
	Kind() Kind
	isNode(T)
}

// Geometry is a node that can appear as the geometry of a Placemark or as
// a member of a MultiGeometry.
type Geometry[T Float] interface {
	Node[T]
	isGeometry(T)
}

// Feature is a node that derives from the abstract KML Feature element.
type Feature[T Float] interface {
	Node[T]
	// Common returns the fields shared by all features.
	Common() *FeatureCommon[T]
}

// StyleSelector is either a Style or a StyleMap.
type StyleSelector[T Float] interface {
	Node[T]
	isStyleSelector(T)
}

// Attr is a single attribute not recognized by the parser. Name holds the
// qualified name exactly as it appeared in the source, e.g. "xmlns:gx".
type Attr struct {
	Name  string
	Value string
}

// Attrs is an ordered side-table of unrecognized attributes.
type Attrs []Attr

// Get returns the value of the attribute with the given qualified name.
func (a Attrs) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Set replaces the value of an existing attribute or appends a new one.
func (a *Attrs) Set(name, value string) {
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attr{Name: name, Value: value})
}

// Ptr returns a pointer to v. It is a convenience for optional fields.
func Ptr[V any](v V) *V {
	return &v
}
