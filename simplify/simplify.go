// Package simplify reduces the coordinate detail of geometries while
// keeping their structure intact: polygons stay polygons where possible, a
// hole that collapses under reduction vanishes and a shell that collapses
// takes its polygon with it. The Douglas-Peucker and Visvalingam-Whyatt
// reducers share the same rebuild rules.
package simplify

import (
	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"

	"github.com/peterhenningsen/jsts/transform"
)

// A Simplifier reduces geometries with the Douglas-Peucker algorithm.
// Clean, when non-nil, runs over polygonal results to repair any
// self-intersection the reduction introduced, typically a zero-width
// buffer in an external geometry engine.
type Simplifier struct {
	Tolerance float64
	Clean     func(geom.T) (geom.T, error)
}

// Simplify reduces g with the Douglas-Peucker algorithm. The tolerance is
// the largest chord offset the reduction may discard.
func Simplify(g geom.T, tolerance float64) (geom.T, error) {
	s := &Simplifier{Tolerance: tolerance}
	return s.Simplify(g)
}

// Simplify reduces g, returning a fresh geometry. The input is never
// modified.
func (s *Simplifier) Simplify(g geom.T) (geom.T, error) {
	if !(s.Tolerance >= 0) {
		return nil, errors.Newf("invalid simplification tolerance %v", s.Tolerance)
	}
	if g.Empty() {
		return copyGeom(g)
	}
	tr := areaTransformer(func(coords []geom.Coord, parent geom.T) ([]geom.Coord, error) {
		return DouglasPeucker(coords, s.Tolerance), nil
	}, s.Clean)
	return tr.Transform(g)
}

// areaTransformer wires a coordinate reducer into the rebuild rules shared
// by both algorithms: a ring that demotes under reduction is dropped from
// its owning polygon, empty polygons are dropped, and polygonal results
// pass through clean. A polygon nested in a multipolygon skips clean; the
// multipolygon's own pass covers it.
func areaTransformer(coords transform.CoordsFunc, clean func(geom.T) (geom.T, error)) *transform.Transformer {
	tr := transform.New()
	tr.Coords = coords
	tr.LinearRing = func(t *transform.Transformer, g *geom.LinearRing, parent geom.T) (geom.T, error) {
		out, err := t.TransformLinearRing(g, parent)
		if err != nil {
			return nil, err
		}
		if _, inPolygon := parent.(*geom.Polygon); !inPolygon {
			return out, nil
		}
		if _, stillRing := out.(*geom.LinearRing); !stillRing {
			return nil, nil
		}
		return out, nil
	}
	tr.Polygon = func(t *transform.Transformer, g *geom.Polygon, parent geom.T) (geom.T, error) {
		if g.Empty() {
			return nil, nil
		}
		raw, err := t.TransformPolygon(g, parent)
		if err != nil {
			return nil, err
		}
		if _, inMulti := parent.(*geom.MultiPolygon); inMulti {
			return raw, nil
		}
		return cleanArea(raw, clean)
	}
	tr.MultiPolygon = func(t *transform.Transformer, g *geom.MultiPolygon, parent geom.T) (geom.T, error) {
		raw, err := t.TransformMultiPolygon(g, parent)
		if err != nil {
			return nil, err
		}
		return cleanArea(raw, clean)
	}
	return tr
}

func cleanArea(g geom.T, clean func(geom.T) (geom.T, error)) (geom.T, error) {
	if clean == nil {
		return g, nil
	}
	switch g.(type) {
	case *geom.Polygon, *geom.MultiPolygon:
	default:
		return g, nil
	}
	cleaned, err := clean(g)
	if err != nil {
		return nil, errors.Wrap(err, "cleaning simplified geometry")
	}
	return cleaned, nil
}

func copyGeom(g geom.T) (geom.T, error) {
	flat := append([]float64(nil), g.FlatCoords()...)
	switch g := g.(type) {
	case *geom.Point:
		return geom.NewPointFlat(g.Layout(), flat).SetSRID(g.SRID()), nil
	case *geom.LineString:
		return geom.NewLineStringFlat(g.Layout(), flat).SetSRID(g.SRID()), nil
	case *geom.LinearRing:
		return geom.NewLinearRingFlat(g.Layout(), flat).SetSRID(g.SRID()), nil
	case *geom.Polygon:
		return geom.NewPolygonFlat(g.Layout(), flat, append([]int(nil), g.Ends()...)).SetSRID(g.SRID()), nil
	case *geom.MultiPoint:
		return geom.NewMultiPointFlat(g.Layout(), flat).SetSRID(g.SRID()), nil
	case *geom.MultiLineString:
		return geom.NewMultiLineStringFlat(g.Layout(), flat, append([]int(nil), g.Ends()...)).SetSRID(g.SRID()), nil
	case *geom.MultiPolygon:
		endss := make([][]int, len(g.Endss()))
		for i, ends := range g.Endss() {
			endss[i] = append([]int(nil), ends...)
		}
		return geom.NewMultiPolygonFlat(g.Layout(), flat, endss).SetSRID(g.SRID()), nil
	case *geom.GeometryCollection:
		out := geom.NewGeometryCollection()
		for i := 0; i < g.NumGeoms(); i++ {
			c, err := copyGeom(g.Geom(i))
			if err != nil {
				return nil, err
			}
			if err := out.Push(c); err != nil {
				return nil, errors.Wrap(err, "copying collection")
			}
		}
		return out.SetSRID(g.SRID()), nil
	default:
		return nil, errors.AssertionFailedf("unknown geometry type: %T", g)
	}
}
