package simplify

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// DouglasPeucker reduces a coordinate sequence by recursive splitting: a
// span collapses to its chord when no interior point lies further from the
// chord than tolerance, otherwise it splits at the furthest point and both
// halves are reduced. The first and last points are always kept, so a
// closed sequence stays closed. The result holds fresh coordinate values.
func DouglasPeucker(coords []geom.Coord, tolerance float64) []geom.Coord {
	keep := make([]bool, len(coords))
	for i := range keep {
		keep[i] = true
	}
	if len(coords) > 2 {
		dpSection(coords, keep, 0, len(coords)-1, tolerance)
	}
	out := make([]geom.Coord, 0, len(coords))
	for i, c := range coords {
		if keep[i] {
			out = append(out, c.Clone())
		}
	}
	return out
}

// dpSection clears the keep flag of every interior point the chord between
// first and last can absorb.
func dpSection(coords []geom.Coord, keep []bool, first, last int, tolerance float64) {
	if first+1 >= last {
		return
	}
	maxDist := -1.0
	maxIndex := first
	for k := first + 1; k < last; k++ {
		if d := xy.DistanceFromPointToLine(coords[k], coords[first], coords[last]); d > maxDist {
			maxDist = d
			maxIndex = k
		}
	}
	if maxDist <= tolerance {
		for k := first + 1; k < last; k++ {
			keep[k] = false
		}
		return
	}
	dpSection(coords, keep, first, maxIndex, tolerance)
	dpSection(coords, keep, maxIndex, last, tolerance)
}
