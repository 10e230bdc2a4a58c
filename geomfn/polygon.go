package geomfn

import (
	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
)

// ExteriorRing returns the shell of p. An empty polygon yields an empty ring
// with the same layout.
func ExteriorRing(p *geom.Polygon) *geom.LinearRing {
	if p.NumLinearRings() == 0 {
		return geom.NewLinearRing(p.Layout())
	}
	return p.LinearRing(0)
}

// NumInteriorRings returns the number of holes in p.
func NumInteriorRings(p *geom.Polygon) int {
	if n := p.NumLinearRings(); n > 0 {
		return n - 1
	}
	return 0
}

// InteriorRingN returns hole n of p, zero-based. Asking for a hole that does
// not exist is a programming error.
func InteriorRingN(p *geom.Polygon, n int) (*geom.LinearRing, error) {
	if n < 0 || n >= NumInteriorRings(p) {
		return nil, errors.AssertionFailedf(
			"interior ring %d out of range, polygon has %d interior rings",
			n, NumInteriorRings(p),
		)
	}
	return p.LinearRing(n + 1), nil
}

// Boundary returns the one-dimensional boundary of a polygonal geometry.
// An empty polygon yields an empty MultiLineString, a polygon without holes
// a copy of its shell ring, and a polygon with holes a MultiLineString of
// every ring, shell first. A MultiPolygon yields its members' rings merged
// into a single MultiLineString.
func Boundary(g geom.T) (geom.T, error) {
	switch g := g.(type) {
	case *geom.Polygon:
		return polygonBoundary(g)
	case *geom.MultiPolygon:
		mls := geom.NewMultiLineString(g.Layout())
		for i := 0; i < g.NumPolygons(); i++ {
			if err := pushRingsAsLines(mls, g.Polygon(i)); err != nil {
				return nil, err
			}
		}
		return mls, nil
	default:
		return nil, errors.AssertionFailedf("unsupported type for boundary: %T", g)
	}
}

func polygonBoundary(p *geom.Polygon) (geom.T, error) {
	switch p.NumLinearRings() {
	case 0:
		return geom.NewMultiLineString(p.Layout()), nil
	case 1:
		return p.LinearRing(0).Clone(), nil
	default:
		mls := geom.NewMultiLineString(p.Layout())
		if err := pushRingsAsLines(mls, p); err != nil {
			return nil, err
		}
		return mls, nil
	}
}

func pushRingsAsLines(mls *geom.MultiLineString, p *geom.Polygon) error {
	for i := 0; i < p.NumLinearRings(); i++ {
		flat := append([]float64(nil), p.LinearRing(i).FlatCoords()...)
		if err := mls.Push(geom.NewLineStringFlat(p.Layout(), flat)); err != nil {
			return err
		}
	}
	return nil
}
