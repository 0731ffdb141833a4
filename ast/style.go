package ast

// Style groups the sub-styles that apply to a feature.
type Style[T Float] struct {
	ID           string
	Attrs        Attrs
	IconStyle    *IconStyle[T]
	LabelStyle   *LabelStyle[T]
	LineStyle    *LineStyle[T]
	PolyStyle    *PolyStyle[T]
	BalloonStyle *BalloonStyle[T]
	ListStyle    *ListStyle[T]
}

// StyleMap maps style states, such as "normal" and "highlight", to styles.
type StyleMap[T Float] struct {
	ID    string
	Attrs Attrs
	Pairs []*Pair[T]
}

// Pair is a single StyleMap entry. It refers to a style by URL, carries an
// inline style, or both.
type Pair[T Float] struct {
	ID       string
	Attrs    Attrs
	Key      string
	StyleURL string
	Style    *Style[T]
}

// ColorStyle holds the fields shared by the color based sub-styles.
type ColorStyle struct {
	// Color is an aabbggrr hex string.
	Color     string
	ColorMode ColorMode
}

// IconStyle describes how point icons are drawn.
type IconStyle[T Float] struct {
	ID    string
	Attrs Attrs
	ColorStyle
	Scale   *T
	Heading T
	Icon    *Icon[T]
	HotSpot *Vec2[T]
}

// LabelStyle describes how feature names are drawn.
type LabelStyle[T Float] struct {
	ID    string
	Attrs Attrs
	ColorStyle
	Scale *T
}

// LineStyle describes how lines are drawn.
type LineStyle[T Float] struct {
	ID    string
	Attrs Attrs
	ColorStyle
	Width *T
}

// PolyStyle describes how polygons are drawn.
type PolyStyle[T Float] struct {
	ID    string
	Attrs Attrs
	ColorStyle
	Fill    *bool
	Outline *bool
}

// BalloonStyle describes the description balloon of a feature.
type BalloonStyle[T Float] struct {
	ID          string
	Attrs       Attrs
	BgColor     string
	TextColor   string
	Text        string
	DisplayMode DisplayMode
}

// ListStyle describes how a feature appears in a list view.
type ListStyle[T Float] struct {
	ID              string
	Attrs           Attrs
	ListItemType    ListItemType
	BgColor         string
	MaxSnippetLines *int
}

// Vec2 is a two-dimensional point with units, carried entirely in
// attributes, such as the hotSpot of an IconStyle.
type Vec2[T Float] struct {
	X      T
	Y      T
	XUnits Units
	YUnits Units
	Attrs  Attrs
}

func (*Style[T]) Kind() Kind        { return KindStyle }
func (*StyleMap[T]) Kind() Kind     { return KindStyleMap }
func (*Pair[T]) Kind() Kind         { return KindPair }
func (*IconStyle[T]) Kind() Kind    { return KindIconStyle }
func (*LabelStyle[T]) Kind() Kind   { return KindLabelStyle }
func (*LineStyle[T]) Kind() Kind    { return KindLineStyle }
func (*PolyStyle[T]) Kind() Kind    { return KindPolyStyle }
func (*BalloonStyle[T]) Kind() Kind { return KindBalloonStyle }
func (*ListStyle[T]) Kind() Kind    { return KindListStyle }

func (*Style[T]) isNode(T)        {}
func (*StyleMap[T]) isNode(T)     {}
func (*Pair[T]) isNode(T)         {}
func (*IconStyle[T]) isNode(T)    {}
func (*LabelStyle[T]) isNode(T)   {}
func (*LineStyle[T]) isNode(T)    {}
func (*PolyStyle[T]) isNode(T)    {}
func (*BalloonStyle[T]) isNode(T) {}
func (*ListStyle[T]) isNode(T)    {}

func (*Style[T]) isStyleSelector(T)    {}
func (*StyleMap[T]) isStyleSelector(T) {}
