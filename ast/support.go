package ast

// Location positions a Model.
type Location[T Float] struct {
	ID        string
	Attrs     Attrs
	Longitude T
	Latitude  T
	Altitude  T
}

// Orientation rotates a Model. Angles are in degrees.
type Orientation[T Float] struct {
	ID      string
	Attrs   Attrs
	Heading T
	Tilt    T
	Roll    T
}

// Scale scales a Model along each axis.
type Scale[T Float] struct {
	ID    string
	Attrs Attrs
	X     T
	Y     T
	Z     T
}

// Alias maps a texture path used inside a model to a path in the archive.
type Alias[T Float] struct {
	ID         string
	Attrs      Attrs
	TargetHref string
	SourceHref string
}

// ResourceMap lists the aliases of a Model.
type ResourceMap[T Float] struct {
	ID      string
	Attrs   Attrs
	Aliases []*Alias[T]
}

// ExtendedData carries custom data attached to a feature.
type ExtendedData[T Float] struct {
	Attrs      Attrs
	Data       []*Data[T]
	SchemaData []*SchemaData[T]
}

// Data is an untyped name/value pair.
type Data[T Float] struct {
	ID          string
	Attrs       Attrs
	Name        string
	DisplayName string
	Value       string
}

// SchemaData holds typed values for a Schema referenced by URL.
type SchemaData[T Float] struct {
	ID              string
	Attrs           Attrs
	SchemaURL       string
	SimpleData      []*SimpleData[T]
	SimpleArrayData []*SimpleArrayData[T]
}

// SimpleData is a single typed field value.
type SimpleData[T Float] struct {
	Attrs Attrs
	Name  string
	Value string
}

// SimpleArrayData is an array of values for a single field, written as a
// sequence of gx:value elements.
type SimpleArrayData[T Float] struct {
	Attrs  Attrs
	Name   string
	Values []string
}

func (*Location[T]) Kind() Kind        { return KindLocation }
func (*Orientation[T]) Kind() Kind     { return KindOrientation }
func (*Scale[T]) Kind() Kind           { return KindScale }
func (*Alias[T]) Kind() Kind           { return KindAlias }
func (*ResourceMap[T]) Kind() Kind     { return KindResourceMap }
func (*ExtendedData[T]) Kind() Kind    { return KindExtendedData }
func (*Data[T]) Kind() Kind            { return KindData }
func (*SchemaData[T]) Kind() Kind      { return KindSchemaData }
func (*SimpleData[T]) Kind() Kind      { return KindSimpleData }
func (*SimpleArrayData[T]) Kind() Kind { return KindSimpleArrayData }

func (*Location[T]) isNode(T)        {}
func (*Orientation[T]) isNode(T)     {}
func (*Scale[T]) isNode(T)           {}
func (*Alias[T]) isNode(T)           {}
func (*ResourceMap[T]) isNode(T)     {}
func (*ExtendedData[T]) isNode(T)    {}
func (*Data[T]) isNode(T)            {}
func (*SchemaData[T]) isNode(T)      {}
func (*SimpleData[T]) isNode(T)      {}
func (*SimpleArrayData[T]) isNode(T) {}
