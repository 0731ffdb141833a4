package geo

import (
	"github.com/twpayne/go-geom"

	"github.com/KimNorgaard/go-kml/ast"
)

// Collect converts every geometry found below n into one flat collection,
// in document order. It descends through the kml root, Documents, Folders
// and Placemarks, and expands MultiGeometry members. Models and nodes
// without geometry contribute nothing.
func Collect[T ast.Float](n ast.Node[T]) (*geom.GeometryCollection, error) {
	gc := geom.NewGeometryCollection()
	if err := collect(gc, n); err != nil {
		return nil, err
	}
	return gc, nil
}

func collect[T ast.Float](gc *geom.GeometryCollection, n ast.Node[T]) error {
	switch n := n.(type) {
	case *ast.Root[T]:
		return collectAll(gc, n.Elements)
	case *ast.Document[T]:
		return collectAll(gc, n.Children)
	case *ast.Folder[T]:
		return collectAll(gc, n.Children)
	case *ast.Placemark[T]:
		if n.Geometry == nil {
			return nil
		}
		return collect[T](gc, n.Geometry)
	case *ast.MultiGeometry[T]:
		for _, g := range Flatten(n).Geometries {
			if err := collect[T](gc, g); err != nil {
				return err
			}
		}
	case *ast.Model[T]:
	case ast.Geometry[T]:
		g, err := ToGeom[T](n)
		if err != nil {
			return err
		}
		return gc.Push(g)
	}
	return nil
}

func collectAll[T ast.Float](gc *geom.GeometryCollection, nodes []ast.Node[T]) error {
	for _, c := range nodes {
		if err := collect(gc, c); err != nil {
			return err
		}
	}
	return nil
}

// placemarkGeom converts the geometry of pm. Models are left out, also
// inside a MultiGeometry, and nil is returned when nothing remains.
func placemarkGeom[T ast.Float](pm *ast.Placemark[T]) (geom.T, error) {
	switch g := pm.Geometry.(type) {
	case nil, *ast.Model[T]:
		return nil, nil
	case *ast.MultiGeometry[T]:
		gc := geom.NewGeometryCollection()
		if err := collect[T](gc, g); err != nil {
			return nil, err
		}
		if gc.NumGeoms() == 0 {
			return nil, nil
		}
		return gc, nil
	}
	return ToGeom[T](pm.Geometry)
}
