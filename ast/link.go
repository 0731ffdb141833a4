package ast

// LinkParams holds the fields shared by Link and Icon.
type LinkParams[T Float] struct {
	Href            string
	RefreshMode     RefreshMode
	RefreshInterval *T
	ViewRefreshMode ViewRefreshMode
	ViewRefreshTime *T
	ViewBoundScale  *T
	ViewFormat      string
	HTTPQuery       string
}

// Link locates a resource for a NetworkLink or a Model.
type Link[T Float] struct {
	ID    string
	Attrs Attrs
	LinkParams[T]
}

// Icon locates an image, for example the icon of an IconStyle.
type Icon[T Float] struct {
	ID    string
	Attrs Attrs
	LinkParams[T]
}

func (*Link[T]) Kind() Kind { return KindLink }
func (*Icon[T]) Kind() Kind { return KindIcon }

func (*Link[T]) isNode(T) {}
func (*Icon[T]) isNode(T) {}
