package simplify

import (
	"github.com/cockroachdb/errors"
	geo "github.com/paulmach/go.geo"
	"github.com/paulmach/go.geo/reducers"
	"github.com/twpayne/go-geom"
)

// SimplifyVW reduces g with the Visvalingam-Whyatt algorithm: interior
// points are removed while the triangle they form with their neighbours
// stays below the area threshold. Rebuild rules are shared with Simplify.
// The reducer is strictly 2-D, so only XY layouts are accepted.
func SimplifyVW(g geom.T, threshold float64) (geom.T, error) {
	if !(threshold >= 0) {
		return nil, errors.Newf("invalid simplification threshold %v", threshold)
	}
	if g.Empty() {
		return copyGeom(g)
	}
	tr := areaTransformer(func(coords []geom.Coord, parent geom.T) ([]geom.Coord, error) {
		if parent.Layout() != geom.XY {
			return nil, errors.Newf("visvalingam reduction needs an XY layout, got %v", parent.Layout())
		}
		return visvalingam(coords, threshold), nil
	}, nil)
	return tr.Transform(g)
}

func visvalingam(coords []geom.Coord, threshold float64) []geom.Coord {
	if len(coords) < 3 {
		out := make([]geom.Coord, 0, len(coords))
		for _, c := range coords {
			out = append(out, c.Clone())
		}
		return out
	}

	path := geo.NewPathPreallocate(len(coords), len(coords))
	for i, c := range coords {
		path.SetAt(i, &geo.Point{c[0], c[1]})
	}
	simplified := reducers.VisvalingamThreshold(path, threshold)

	length := simplified.Length()
	out := make([]geom.Coord, 0, length)
	for j := 0; j < length; j++ {
		point := simplified.GetAt(j)
		out = append(out, geom.Coord{point[0], point[1]})
	}
	return out
}
