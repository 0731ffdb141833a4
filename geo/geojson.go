package geo

import (
	"fmt"
	"slices"
	"strings"

	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/KimNorgaard/go-kml/ast"
)

// FeatureCollection exports the placemarks below n as GeoJSON features.
//
// Each feature carries the placemark id, and its name, description,
// styleUrl and extended data as properties. Placemarks without a
// convertible geometry are left out.
func FeatureCollection[T ast.Float](n ast.Node[T]) (*geojson.FeatureCollection, error) {
	fc := &geojson.FeatureCollection{Features: []*geojson.Feature{}}
	for _, pm := range ast.Placemarks(n) {
		g, err := placemarkGeom(pm)
		if err != nil {
			return nil, err
		}
		if g == nil {
			continue
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         pm.ID,
			Geometry:   g,
			Properties: properties(pm),
		})
	}
	return fc, nil
}

func properties[T ast.Float](pm *ast.Placemark[T]) map[string]any {
	props := map[string]any{}
	if pm.Name != "" {
		props["name"] = pm.Name
	}
	if pm.Description != "" {
		props["description"] = pm.Description
	}
	if pm.StyleURL != "" {
		props["styleUrl"] = pm.StyleURL
	}
	if ed := pm.ExtendedData; ed != nil {
		for _, d := range ed.Data {
			props[d.Name] = d.Value
		}
		for _, sd := range ed.SchemaData {
			for _, s := range sd.SimpleData {
				props[s.Name] = s.Value
			}
			for _, s := range sd.SimpleArrayData {
				props[s.Name] = s.Values
			}
		}
	}
	return props
}

// DocumentFromFeatureCollection builds a Document holding one Placemark per
// GeoJSON feature. The name, description and styleUrl properties fill the
// matching placemark fields; the remaining properties become Data entries
// sorted by name. Features without geometry yield placemarks without one.
func DocumentFromFeatureCollection[T ast.Float](fc *geojson.FeatureCollection) (*ast.Document[T], error) {
	doc := &ast.Document[T]{}
	for i, f := range fc.Features {
		pm := &ast.Placemark[T]{}
		pm.ID = f.ID
		if f.Geometry != nil {
			g, err := FromGeom[T](f.Geometry)
			if err != nil {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
			pm.Geometry = g
		}

		keys := make([]string, 0, len(f.Properties))
		for k := range f.Properties {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			v := propertyString(f.Properties[k])
			switch k {
			case "name":
				pm.Name = v
			case "description":
				pm.Description = v
			case "styleUrl":
				pm.StyleURL = v
			default:
				if pm.ExtendedData == nil {
					pm.ExtendedData = &ast.ExtendedData[T]{}
				}
				pm.ExtendedData.Data = append(pm.ExtendedData.Data, &ast.Data[T]{Name: k, Value: v})
			}
		}
		doc.Children = append(doc.Children, pm)
	}
	return doc, nil
}

func propertyString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, len(v))
		for i, p := range v {
			parts[i] = propertyString(p)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
