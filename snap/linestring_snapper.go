// Package snap improves the robustness of planar overlay operations by
// snapping the vertices and segments of a geometry to the vertices of
// another geometry, or to its own, within a small distance tolerance.
package snap

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// A LineStringSnapper snaps a single coordinate sequence to a set of target
// coordinates. Snapping happens in two passes: first every source vertex
// strictly within tolerance of a target is replaced by the closest such
// target, then every remaining target strictly within tolerance of a source
// segment is inserted into the closest one. A closed sequence stays closed.
type LineStringSnapper struct {
	srcPts        []geom.Coord
	snapTolerance float64
	isClosed      bool

	// AllowSnappingToSourceVertices permits segment snapping of targets
	// that coincide with a source vertex, which is wanted when a geometry
	// is snapped to its own coordinate set.
	AllowSnappingToSourceVertices bool
}

// NewLineStringSnapper returns a snapper for one source sequence. The
// sequence counts as closed when it has more than one point and its first
// and last coordinates are 2-D equal.
func NewLineStringSnapper(srcPts []geom.Coord, snapTolerance float64) *LineStringSnapper {
	return &LineStringSnapper{
		srcPts:        srcPts,
		snapTolerance: snapTolerance,
		isClosed:      len(srcPts) > 1 && coordsEqual2D(srcPts[0], srcPts[len(srcPts)-1]),
	}
}

// SnapTo snaps the source sequence to snapPts and returns the resulting
// sequence. The source is never mutated. A tolerance of zero or less turns
// snapping off and the result is an unchanged copy. The same inputs always
// produce the same output.
func (s *LineStringSnapper) SnapTo(snapPts []geom.Coord) []geom.Coord {
	coords := cloneCoords(s.srcPts)
	if s.snapTolerance <= 0 || len(snapPts) == 0 || len(coords) == 0 {
		return coords
	}
	s.snapVertices(coords, snapPts)
	return s.snapSegments(coords, snapPts)
}

func (s *LineStringSnapper) snapVertices(srcCoords []geom.Coord, snapPts []geom.Coord) {
	// vertices outside the expanded target extent cannot be in range of
	// any target
	targetRect := coordsRect(snapPts).ExpandedByMargin(s.snapTolerance)

	end := len(srcCoords)
	if s.isClosed {
		end--
	}
	for i := 0; i < end; i++ {
		if !targetRect.ContainsPoint(r2Point(srcCoords[i])) {
			continue
		}
		snapPt, ok := s.findSnapForVertex(srcCoords[i], snapPts)
		if !ok {
			continue
		}
		srcCoords[i] = cloneCoord(snapPt)
		// keep rings closed by mirroring a replaced start point
		if i == 0 && s.isClosed {
			srcCoords[len(srcCoords)-1] = cloneCoord(snapPt)
		}
	}
}

// findSnapForVertex picks the closest target strictly within tolerance of
// pt. Ties keep the earliest target in the fixed target order. A target
// exactly equal to pt means the vertex is already snapped and must not be
// moved anywhere else.
func (s *LineStringSnapper) findSnapForVertex(pt geom.Coord, snapPts []geom.Coord) (geom.Coord, bool) {
	best := -1
	bestDist := 0.0
	for i, snapPt := range snapPts {
		if coordsEqual2D(pt, snapPt) {
			return nil, false
		}
		d := dist2D(pt, snapPt)
		if d < s.snapTolerance && (best < 0 || d < bestDist) {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return nil, false
	}
	return snapPts[best], true
}

func (s *LineStringSnapper) snapSegments(srcCoords []geom.Coord, snapPts []geom.Coord) []geom.Coord {
	distinct := len(snapPts)
	// a closed target sequence repeats its first point at the end; do not
	// consider the duplicate a second time
	if distinct > 1 && coordsEqual2D(snapPts[0], snapPts[distinct-1]) {
		distinct--
	}
	// targets outside the expanded source extent cannot reach any segment;
	// the extent grows as insertions land
	extent := coordsRect(srcCoords)
	for i := 0; i < distinct; i++ {
		snapPt := snapPts[i]
		if !extent.ExpandedByMargin(s.snapTolerance).ContainsPoint(r2Point(snapPt)) {
			continue
		}
		index := s.findSegmentIndexToSnap(snapPt, srcCoords)
		if index < 0 {
			continue
		}
		inserted := cloneCoord(snapPt)
		srcCoords = append(srcCoords, nil)
		copy(srcCoords[index+2:], srcCoords[index+1:])
		srcCoords[index+1] = inserted
		extent = extent.AddPoint(r2Point(inserted))
	}
	return srcCoords
}

// findSegmentIndexToSnap returns the index of the segment closest to
// snapPt among those strictly within tolerance, or -1. Distance ties keep
// the lowest index. A target equal to a segment endpoint is already a
// vertex of the source: unless AllowSnappingToSourceVertices is set, such
// a target must not be inserted anywhere at all.
func (s *LineStringSnapper) findSegmentIndexToSnap(snapPt geom.Coord, srcCoords []geom.Coord) int {
	minDist := math.MaxFloat64
	snapIndex := -1
	for i := 0; i+1 < len(srcCoords); i++ {
		p0, p1 := srcCoords[i], srcCoords[i+1]
		if coordsEqual2D(p0, snapPt) || coordsEqual2D(p1, snapPt) {
			if s.AllowSnappingToSourceVertices {
				continue
			}
			return -1
		}
		d := xy.DistanceFromPointToLine(snapPt, p0, p1)
		if d < s.snapTolerance && d < minDist {
			minDist = d
			snapIndex = i
		}
	}
	return snapIndex
}

func coordsEqual2D(a, b geom.Coord) bool {
	return a[0] == b[0] && a[1] == b[1]
}

func dist2D(a, b geom.Coord) float64 {
	return math.Hypot(a[0]-b[0], a[1]-b[1])
}

func cloneCoord(c geom.Coord) geom.Coord {
	out := make(geom.Coord, len(c))
	copy(out, c)
	return out
}

func cloneCoords(coords []geom.Coord) []geom.Coord {
	out := make([]geom.Coord, len(coords))
	for i, c := range coords {
		out[i] = cloneCoord(c)
	}
	return out
}

func r2Point(c geom.Coord) r2.Point {
	return r2.Point{X: c[0], Y: c[1]}
}

func coordsRect(coords []geom.Coord) r2.Rect {
	r := r2.EmptyRect()
	for _, c := range coords {
		r = r.AddPoint(r2Point(c))
	}
	return r
}
