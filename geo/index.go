package geo

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/dhconnelly/rtreego"
	"github.com/twpayne/go-geom"

	"github.com/KimNorgaard/go-kml/ast"
)

// Bounds is a longitude/latitude bounding box.
type Bounds struct {
	MinLon, MinLat float64
	MaxLon, MaxLat float64
}

// minExtent is the smallest box side stored in the index. Points and
// axis-aligned lines have no area and the R-tree needs one.
const minExtent = 0.0001

// ErrInvalidBounds is returned for boxes with a minimum above the maximum
// or a NaN corner.
var ErrInvalidBounds = errors.New("geo: invalid bounds")

// Validate reports whether b is a usable box. Boxes crossing the
// antimeridian are not supported.
func (b Bounds) Validate() error {
	for _, v := range [...]float64{b.MinLon, b.MinLat, b.MaxLon, b.MaxLat} {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: NaN corner", ErrInvalidBounds)
		}
	}
	if b.MinLon > b.MaxLon || b.MinLat > b.MaxLat {
		return fmt.Errorf("%w: minimum exceeds maximum", ErrInvalidBounds)
	}
	return nil
}

// rect returns the R-tree rectangle of a valid b.
func (b Bounds) rect() (rtreego.Rect, error) {
	w := max(b.MaxLon-b.MinLon, minExtent)
	h := max(b.MaxLat-b.MinLat, minExtent)
	return rtreego.NewRect(rtreego.Point{b.MinLon, b.MinLat}, []float64{w, h})
}

// Index answers bounding box queries over the placemarks of a document.
type Index[T ast.Float] struct {
	tree *rtreego.Rtree
	n    int
}

type entry[T ast.Float] struct {
	placemark *ast.Placemark[T]
	seq       int
	rect      rtreego.Rect
}

func (e *entry[T]) Bounds() rtreego.Rect {
	return e.rect
}

// NewIndex indexes every placemark below n that carries a geometry. Model
// placemarks are indexed at their location. Placemarks without coordinates
// are left out.
func NewIndex[T ast.Float](n ast.Node[T]) (*Index[T], error) {
	ix := &Index[T]{tree: rtreego.NewTree(2, 25, 50)}
	for _, pm := range ast.Placemarks(n) {
		b, ok, err := placemarkBounds(pm)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		r, err := b.rect()
		if err != nil {
			return nil, fmt.Errorf("geo: placemark %q: %w", pm.Name, err)
		}
		ix.tree.Insert(&entry[T]{placemark: pm, seq: ix.n, rect: r})
		ix.n++
	}
	return ix, nil
}

// Len returns the number of indexed placemarks.
func (ix *Index[T]) Len() int {
	return ix.n
}

// Search returns the placemarks whose bounds intersect b, in document order.
// An invalid b yields ErrInvalidBounds.
func (ix *Index[T]) Search(b Bounds) ([]*ast.Placemark[T], error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	r, err := b.rect()
	if err != nil {
		return nil, err
	}
	hits := ix.tree.SearchIntersect(r)
	entries := make([]*entry[T], 0, len(hits))
	for _, h := range hits {
		entries = append(entries, h.(*entry[T]))
	}
	slices.SortFunc(entries, func(a, b *entry[T]) int { return a.seq - b.seq })

	out := make([]*ast.Placemark[T], len(entries))
	for i, e := range entries {
		out[i] = e.placemark
	}
	return out, nil
}

func placemarkBounds[T ast.Float](pm *ast.Placemark[T]) (Bounds, bool, error) {
	if pm.Geometry == nil {
		return Bounds{}, false, nil
	}
	gb := geom.NewBounds(geom.NoLayout)
	if err := extendBounds(gb, pm.Geometry); err != nil {
		return Bounds{}, false, err
	}
	b, ok := boundsOf(gb)
	return b, ok, nil
}

// extendBounds grows b to cover g. A Model counts at its location, also
// inside a MultiGeometry.
func extendBounds[T ast.Float](b *geom.Bounds, g ast.Geometry[T]) error {
	switch g := g.(type) {
	case *ast.Model[T]:
		if g.Location != nil {
			lon, lat := float64(g.Location.Longitude), float64(g.Location.Latitude)
			b.Extend(geom.NewPointFlat(geom.XY, []float64{lon, lat}))
		}
		return nil
	case *ast.MultiGeometry[T]:
		for _, m := range Flatten(g).Geometries {
			if err := extendBounds(b, m); err != nil {
				return err
			}
		}
		return nil
	}
	gg, err := ToGeom[T](g)
	if err != nil {
		return err
	}
	b.Extend(gg)
	return nil
}

func boundsOf(b *geom.Bounds) (Bounds, bool) {
	if b.IsEmpty() {
		return Bounds{}, false
	}
	return Bounds{MinLon: b.Min(0), MinLat: b.Min(1), MaxLon: b.Max(0), MaxLat: b.Max(1)}, true
}
