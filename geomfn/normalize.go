package geomfn

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// Normalize rewrites a polygonal geometry into its canonical form, in place.
// Shells end up counter-clockwise and holes clockwise, every closed ring is
// rotated to start at its minimum coordinate, holes are sorted, and the
// elements of a MultiPolygon are sorted as well. Two geometrically identical
// polygons that differ only in ring start point, winding or hole order
// normalize to identical coordinates, and normalizing twice changes nothing.
func Normalize(g geom.T) error {
	switch g := g.(type) {
	case *geom.Polygon:
		return normalizePolygon(g)
	case *geom.MultiPolygon:
		return normalizeMultiPolygon(g)
	default:
		return errors.AssertionFailedf("unsupported type for normalize: %T", g)
	}
}

func normalizePolygon(p *geom.Polygon) error {
	if p.NumLinearRings() == 0 {
		return nil
	}
	rings := p.Coords()
	rings[0] = canonicalRing(p.Layout(), rings[0], true)
	holes := rings[1:]
	for i := range holes {
		holes[i] = canonicalRing(p.Layout(), holes[i], false)
	}
	sort.SliceStable(holes, func(i, j int) bool {
		return compareCoordSeqs(holes[i], holes[j]) < 0
	})
	_, err := p.SetCoords(rings)
	return errors.Wrap(err, "normalizing polygon")
}

func normalizeMultiPolygon(mp *geom.MultiPolygon) error {
	if mp.NumPolygons() == 0 {
		return nil
	}
	polys := make([][][]geom.Coord, 0, mp.NumPolygons())
	for i := 0; i < mp.NumPolygons(); i++ {
		p := mp.Polygon(i)
		if err := normalizePolygon(p); err != nil {
			return err
		}
		polys = append(polys, p.Coords())
	}
	sort.SliceStable(polys, func(i, j int) bool {
		return compareCoordSeqs(shellSeq(polys[i]), shellSeq(polys[j])) < 0
	})
	_, err := mp.SetCoords(polys)
	return errors.Wrap(err, "normalizing multipolygon")
}

func shellSeq(rings [][]geom.Coord) []geom.Coord {
	if len(rings) == 0 {
		return nil
	}
	return rings[0]
}

// canonicalRing orients a closed ring counter-clockwise when ccw is true and
// clockwise otherwise, then rotates it to start at its minimum coordinate
// under the full per-axis lexicographic order, keeping the closing duplicate.
// Empty, unclosed or too-short sequences are returned unchanged: callers that
// hand in degenerate rings get them back untouched rather than a crash.
func canonicalRing(layout geom.Layout, ring []geom.Coord, ccw bool) []geom.Coord {
	if len(ring) < 4 || !coordsEqual2D(ring[0], ring[len(ring)-1]) {
		return ring
	}
	if isRingCCW(layout, ring) != ccw {
		ring = reverseCoords(ring)
	}
	open := ring[: len(ring)-1 : len(ring)-1]
	min := 0
	for i := 1; i < len(open); i++ {
		if compareCoordsFull(layout.Stride(), open[i], open[min]) < 0 {
			min = i
		}
	}
	rotated := make([]geom.Coord, 0, len(ring))
	rotated = append(rotated, open[min:]...)
	rotated = append(rotated, open[:min]...)
	rotated = append(rotated, rotated[0].Clone())
	return rotated
}

func isRingCCW(layout geom.Layout, ring []geom.Coord) bool {
	return xy.IsRingCounterClockwise(layout, flatFromCoords(layout.Stride(), ring))
}

func reverseCoords(coords []geom.Coord) []geom.Coord {
	out := make([]geom.Coord, len(coords))
	for i, c := range coords {
		out[len(coords)-1-i] = c
	}
	return out
}
