package geo

import "github.com/KimNorgaard/go-kml/ast"

// Flatten returns a copy of m in which every nested MultiGeometry is
// replaced by its members, recursively. Member order is kept. Flattening a
// flat MultiGeometry yields an equal one.
func Flatten[T ast.Float](m *ast.MultiGeometry[T]) *ast.MultiGeometry[T] {
	if m == nil {
		return nil
	}
	return &ast.MultiGeometry[T]{
		ID:         m.ID,
		Attrs:      m.Attrs,
		Geometries: appendMembers(nil, m.Geometries),
	}
}

func appendMembers[T ast.Float](dst, gs []ast.Geometry[T]) []ast.Geometry[T] {
	for _, g := range gs {
		if inner, ok := g.(*ast.MultiGeometry[T]); ok {
			dst = appendMembers(dst, inner.Geometries)
			continue
		}
		dst = append(dst, g)
	}
	return dst
}
