package geomfn

import (
	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
)

// CompareSameClass orders two geometries of the same concrete kind, returning
// -1, 0 or +1. Points order 2-D lexicographically with empty before anything,
// line strings and rings lexicographically over their coordinate sequences
// with a strict prefix first, and polygons by their shells alone: interior
// rings never influence polygon order. Collections compare elementwise and
// then by length. Comparing different kinds is a programming error.
func CompareSameClass(a, b geom.T) (int, error) {
	switch ta := a.(type) {
	case *geom.Point:
		tb, ok := b.(*geom.Point)
		if !ok {
			return 0, compareMismatch(a, b)
		}
		return comparePointFlat(ta.FlatCoords(), tb.FlatCoords()), nil
	case *geom.LineString:
		tb, ok := b.(*geom.LineString)
		if !ok {
			return 0, compareMismatch(a, b)
		}
		return compareFlatSeqs(ta, tb), nil
	case *geom.LinearRing:
		tb, ok := b.(*geom.LinearRing)
		if !ok {
			return 0, compareMismatch(a, b)
		}
		return compareFlatSeqs(ta, tb), nil
	case *geom.Polygon:
		tb, ok := b.(*geom.Polygon)
		if !ok {
			return 0, compareMismatch(a, b)
		}
		return compareCoordSeqs(shellCoords(ta), shellCoords(tb)), nil
	case *geom.MultiPoint:
		tb, ok := b.(*geom.MultiPoint)
		if !ok {
			return 0, compareMismatch(a, b)
		}
		return compareElements(ta.NumPoints(), tb.NumPoints(), func(i int) (geom.T, geom.T) {
			return ta.Point(i), tb.Point(i)
		})
	case *geom.MultiLineString:
		tb, ok := b.(*geom.MultiLineString)
		if !ok {
			return 0, compareMismatch(a, b)
		}
		return compareElements(ta.NumLineStrings(), tb.NumLineStrings(), func(i int) (geom.T, geom.T) {
			return ta.LineString(i), tb.LineString(i)
		})
	case *geom.MultiPolygon:
		tb, ok := b.(*geom.MultiPolygon)
		if !ok {
			return 0, compareMismatch(a, b)
		}
		return compareElements(ta.NumPolygons(), tb.NumPolygons(), func(i int) (geom.T, geom.T) {
			return ta.Polygon(i), tb.Polygon(i)
		})
	case *geom.GeometryCollection:
		tb, ok := b.(*geom.GeometryCollection)
		if !ok {
			return 0, compareMismatch(a, b)
		}
		return compareElements(ta.NumGeoms(), tb.NumGeoms(), func(i int) (geom.T, geom.T) {
			return ta.Geom(i), tb.Geom(i)
		})
	default:
		return 0, errors.AssertionFailedf("unknown geometry type: %T", a)
	}
}

func compareMismatch(a, b geom.T) error {
	return errors.AssertionFailedf("cannot compare %T with %T", a, b)
}

func comparePointFlat(a, b []float64) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return -1
	case len(b) == 0:
		return 1
	}
	return compareCoords2D(geom.Coord(a), geom.Coord(b))
}

func compareFlatSeqs(a, b geom.T) int {
	return compareCoordSeqs(
		coordsFromFlat(a.Layout().Stride(), a.FlatCoords()),
		coordsFromFlat(b.Layout().Stride(), b.FlatCoords()),
	)
}

func shellCoords(p *geom.Polygon) []geom.Coord {
	if p.NumLinearRings() == 0 {
		return nil
	}
	r := p.LinearRing(0)
	return coordsFromFlat(r.Layout().Stride(), r.FlatCoords())
}

func compareElements(na, nb int, pair func(i int) (geom.T, geom.T)) (int, error) {
	n := na
	if nb < n {
		n = nb
	}
	for i := 0; i < n; i++ {
		ea, eb := pair(i)
		c, err := CompareSameClass(ea, eb)
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	switch {
	case na < nb:
		return -1, nil
	case na > nb:
		return 1, nil
	}
	return 0, nil
}
