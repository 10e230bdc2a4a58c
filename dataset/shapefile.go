package dataset

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r2"
	shp "github.com/jonas-p/go-shp"
	"github.com/twpayne/go-geom"
)

// LoadShapefile reads all polygon shapes from an ESRI shapefile. Each
// shape becomes a Polygon or MultiPolygon, degenerate and near-empty
// rings are dropped.
func LoadShapefile(path string) ([]geom.T, error) {
	shape, err := shp.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer shape.Close()

	geoms := make([]geom.T, 0)
	for shape.Next() {
		_, p := shape.Shape()
		poly, ok := p.(*shp.Polygon)
		if !ok {
			return nil, errors.Newf("non-polygon shape in %s: %T", path, p)
		}

		g, err := polygonShape(poly)
		if err != nil {
			return nil, err
		}
		if g != nil {
			geoms = append(geoms, g)
		}
	}
	return geoms, nil
}

type shell struct {
	ring  []shp.Point
	box   r2.Rect
	area  float64
	holes [][]shp.Point
}

// polygonShape assembles the parts of a polygon shape into a geometry.
// Rings with fewer than three points or a near-zero area are dropped, a
// shape without any outer ring becomes nil.
func polygonShape(poly *shp.Polygon) (geom.T, error) {
	outer := make([][]shp.Point, 0)
	inner := make([][]shp.Point, 0)

	for i, first := range poly.Parts {
		last := len(poly.Points)
		if i < len(poly.Parts)-1 {
			last = int(poly.Parts[i+1])
		}

		points := poly.Points[first:last]

		if len(points) < 3 {
			continue
		}

		// Drop tiny geometries
		area := ringArea(points)
		if math.Abs(area) < 1e-5 {
			continue
		}

		if area >= 0 {
			outer = append(outer, points)
		} else {
			// Holes are encoded counter-clockwise in
			// shape files, thus leading to a negative
			// area
			inner = append(inner, points)
		}
	}

	if len(outer) == 0 {
		return nil, nil
	}

	shells := make([]*shell, len(outer))
	for i, ring := range outer {
		shells[i] = &shell{
			ring: ring,
			box:  ringRect(ring),
			area: ringArea(ring),
		}
	}

	// Holes belong to the smallest shell whose bounding rectangle
	// encloses them. Holes outside every shell are dropped.
	for _, hole := range inner {
		box := ringRect(hole)
		best := -1
		for i, s := range shells {
			if !s.box.Contains(box) {
				continue
			}
			if best == -1 || s.area < shells[best].area {
				best = i
			}
		}
		if best >= 0 {
			shells[best].holes = append(shells[best].holes, hole)
		}
	}

	if len(shells) == 1 {
		return buildPolygon(shells[0]), nil
	}

	mp := geom.NewMultiPolygon(geom.XY)
	for _, s := range shells {
		if err := mp.Push(buildPolygon(s)); err != nil {
			return nil, errors.Wrap(err, "assembling multipolygon")
		}
	}
	return mp, nil
}

func buildPolygon(s *shell) *geom.Polygon {
	flat := appendRing(nil, s.ring)
	ends := []int{len(flat)}
	for _, hole := range s.holes {
		flat = appendRing(flat, hole)
		ends = append(ends, len(flat))
	}
	return geom.NewPolygonFlat(geom.XY, flat, ends)
}

func appendRing(flat []float64, points []shp.Point) []float64 {
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}
	return flat
}

// ringArea is positive for clockwise rings, the shapefile winding for
// outer rings.
func ringArea(points []shp.Point) float64 {
	sum := 0.0
	for i, point := range points[:len(points)-1] {
		next := points[i+1]
		sum += (next.X - point.X) * (next.Y + point.Y)
	}
	return sum / 2
}

func ringRect(points []shp.Point) r2.Rect {
	r := r2.EmptyRect()
	for _, p := range points {
		r = r.AddPoint(r2.Point{X: p.X, Y: p.Y})
	}
	return r
}
