// Package geojson bridges go-geom geometries to and from GeoJSON
// documents, with github.com/paulmach/go.geojson as the document model.
// GeoJSON has no linear ring type, so a lone ring serializes as a line
// string and does not read back as a ring. Coordinate layouts are
// inferred from position length on read: two values are XY, three XYZ,
// four or more XYZM.
package geojson

import (
	"github.com/cockroachdb/errors"
	gj "github.com/paulmach/go.geojson"
	"github.com/twpayne/go-geom"
)

// FromGeom converts a go-geom geometry into a GeoJSON geometry.
func FromGeom(g geom.T) (*gj.Geometry, error) {
	switch g := g.(type) {
	case *geom.Point:
		if g.Empty() {
			return gj.NewPointGeometry([]float64{}), nil
		}
		return gj.NewPointGeometry(append([]float64(nil), g.FlatCoords()...)), nil
	case *geom.LineString:
		return gj.NewLineStringGeometry(positions(g.Layout().Stride(), g.FlatCoords())), nil
	case *geom.LinearRing:
		return gj.NewLineStringGeometry(positions(g.Layout().Stride(), g.FlatCoords())), nil
	case *geom.MultiPoint:
		return gj.NewMultiPointGeometry(positions(g.Layout().Stride(), g.FlatCoords())...), nil
	case *geom.MultiLineString:
		return gj.NewMultiLineStringGeometry(positionSets(g.Layout().Stride(), g.FlatCoords(), g.Ends())...), nil
	case *geom.Polygon:
		return gj.NewPolygonGeometry(positionSets(g.Layout().Stride(), g.FlatCoords(), g.Ends())), nil
	case *geom.MultiPolygon:
		polygons := make([][][][]float64, 0, g.NumPolygons())
		for i := 0; i < g.NumPolygons(); i++ {
			p := g.Polygon(i)
			polygons = append(polygons, positionSets(p.Layout().Stride(), p.FlatCoords(), p.Ends()))
		}
		return gj.NewMultiPolygonGeometry(polygons...), nil
	case *geom.GeometryCollection:
		children := make([]*gj.Geometry, 0, g.NumGeoms())
		for i := 0; i < g.NumGeoms(); i++ {
			child, err := FromGeom(g.Geom(i))
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return gj.NewCollectionGeometry(children...), nil
	default:
		return nil, errors.Newf("unsupported geometry type %T", g)
	}
}

// ToGeom converts a GeoJSON geometry into a go-geom geometry.
func ToGeom(g *gj.Geometry) (geom.T, error) {
	if g == nil {
		return nil, errors.New("nil geojson geometry")
	}
	switch g.Type {
	case gj.GeometryPoint:
		if len(g.Point) == 0 {
			return geom.NewPointEmpty(geom.XY), nil
		}
		layout := layoutForLen(len(g.Point))
		return geom.NewPointFlat(layout, position(layout.Stride(), g.Point)), nil
	case gj.GeometryMultiPoint:
		layout := layoutForPositions(g.MultiPoint)
		return geom.NewMultiPointFlat(layout, flatten(layout.Stride(), g.MultiPoint)), nil
	case gj.GeometryLineString:
		layout := layoutForPositions(g.LineString)
		return geom.NewLineStringFlat(layout, flatten(layout.Stride(), g.LineString)), nil
	case gj.GeometryMultiLineString:
		layout := layoutForPositionSets(g.MultiLineString)
		flat, ends := flattenSets(layout.Stride(), g.MultiLineString, nil)
		return geom.NewMultiLineStringFlat(layout, flat, ends), nil
	case gj.GeometryPolygon:
		layout := layoutForPositionSets(g.Polygon)
		flat, ends := flattenSets(layout.Stride(), g.Polygon, nil)
		return geom.NewPolygonFlat(layout, flat, ends), nil
	case gj.GeometryMultiPolygon:
		layout := geom.XY
		if len(g.MultiPolygon) > 0 {
			layout = layoutForPositionSets(g.MultiPolygon[0])
		}
		var flat []float64
		endss := make([][]int, 0, len(g.MultiPolygon))
		for _, polygon := range g.MultiPolygon {
			var ends []int
			flat, ends = flattenSets(layout.Stride(), polygon, flat)
			endss = append(endss, ends)
		}
		return geom.NewMultiPolygonFlat(layout, flat, endss), nil
	case gj.GeometryCollection:
		out := geom.NewGeometryCollection()
		for _, child := range g.Geometries {
			c, err := ToGeom(child)
			if err != nil {
				return nil, err
			}
			if err := out.Push(c); err != nil {
				return nil, errors.Wrap(err, "building collection")
			}
		}
		return out, nil
	default:
		return nil, errors.Newf("unsupported geojson geometry type %q", g.Type)
	}
}

func layoutForLen(n int) geom.Layout {
	switch {
	case n >= 4:
		return geom.XYZM
	case n == 3:
		return geom.XYZ
	default:
		return geom.XY
	}
}

func layoutForPositions(ps [][]float64) geom.Layout {
	if len(ps) == 0 {
		return geom.XY
	}
	return layoutForLen(len(ps[0]))
}

func layoutForPositionSets(sets [][][]float64) geom.Layout {
	if len(sets) == 0 {
		return geom.XY
	}
	return layoutForPositions(sets[0])
}

// position pads a short position with zeros and drops axes beyond the
// stride, so ragged documents never crash a read.
func position(stride int, p []float64) []float64 {
	out := make([]float64, stride)
	copy(out, p)
	return out
}

func positions(stride int, flat []float64) [][]float64 {
	out := make([][]float64, 0, len(flat)/stride)
	for i := 0; i+stride <= len(flat); i += stride {
		out = append(out, append([]float64(nil), flat[i:i+stride]...))
	}
	return out
}

func positionSets(stride int, flat []float64, ends []int) [][][]float64 {
	out := make([][][]float64, 0, len(ends))
	prev := 0
	for _, end := range ends {
		out = append(out, positions(stride, flat[prev:end]))
		prev = end
	}
	return out
}

func flatten(stride int, ps [][]float64) []float64 {
	flat := make([]float64, 0, len(ps)*stride)
	for _, p := range ps {
		flat = append(flat, position(stride, p)...)
	}
	return flat
}

func flattenSets(stride int, sets [][][]float64, flat []float64) ([]float64, []int) {
	ends := make([]int, 0, len(sets))
	for _, ps := range sets {
		for _, p := range ps {
			flat = append(flat, position(stride, p)...)
		}
		ends = append(ends, len(flat))
	}
	return flat, ends
}
