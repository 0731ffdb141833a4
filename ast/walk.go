package ast

// Walk traverses the tree rooted at n in depth-first order, calling fn for
// each node before its children. If fn returns false the children of that
// node are skipped.
//
// Walk descends through Root, Document, Folder, Placemark styles and
// geometry, MultiGeometry members, StyleMap pairs and Polygon boundaries.
func Walk[T Float](n Node[T], fn func(Node[T]) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Root[T]:
		for _, c := range n.Elements {
			Walk(c, fn)
		}
	case *Document[T]:
		for _, c := range n.Children {
			Walk(c, fn)
		}
	case *Folder[T]:
		for _, c := range n.Children {
			Walk(c, fn)
		}
	case *Placemark[T]:
		for _, s := range n.Styles {
			Walk[T](s, fn)
		}
		if n.Geometry != nil {
			Walk[T](n.Geometry, fn)
		}
	case *MultiGeometry[T]:
		for _, g := range n.Geometries {
			Walk[T](g, fn)
		}
	case *Polygon[T]:
		Walk[T](&n.Outer, fn)
		for i := range n.Inner {
			Walk[T](&n.Inner[i], fn)
		}
	case *StyleMap[T]:
		for _, p := range n.Pairs {
			Walk[T](p, fn)
		}
	case *Pair[T]:
		if n.Style != nil {
			Walk[T](n.Style, fn)
		}
	}
}

// Placemarks returns every placemark below n in document order.
func Placemarks[T Float](n Node[T]) []*Placemark[T] {
	var out []*Placemark[T]
	Walk(n, func(n Node[T]) bool {
		if p, ok := n.(*Placemark[T]); ok {
			out = append(out, p)
		}
		return true
	})
	return out
}
