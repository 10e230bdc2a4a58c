package snap

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/sorting"
	geomtransform "github.com/twpayne/go-geom/transform"

	"github.com/peterhenningsen/jsts/geomfn"
)

// SnapPrecisionFactor relates the size of a geometry to the largest snap
// tolerance overlay preparation can use without visibly distorting it.
const SnapPrecisionFactor = 1e-9

// CleanFunc repairs a polygonal geometry after self-snapping, typically a
// self-union or zero-width buffer in an external geometry engine. Self
// snapping can leave duplicate or near-coincident structure that such an
// operation removes.
type CleanFunc func(geom.T) (geom.T, error)

// A GeometrySnapper snaps the coordinates of one geometry to the vertex
// set of another, or to its own.
type GeometrySnapper struct {
	srcGeom geom.T
}

// NewGeometrySnapper binds a snapper to the geometry it will snap.
func NewGeometrySnapper(g geom.T) *GeometrySnapper {
	return &GeometrySnapper{srcGeom: g}
}

// Snap prepares two geometries for overlay: g0 is snapped to g1's
// vertices, and g1 is then snapped to the already-snapped g0, so both
// sides of a near-coincident pair end on the same coordinate value. The
// snapped pair is returned in input order; the inputs are not modified.
func Snap(g0, g1 geom.T, tolerance float64) (geom.T, geom.T, error) {
	snapped0, err := NewGeometrySnapper(g0).SnapTo(g1, tolerance)
	if err != nil {
		return nil, nil, errors.Wrap(err, "snapping first geometry")
	}
	snapped1, err := NewGeometrySnapper(g1).SnapTo(snapped0, tolerance)
	if err != nil {
		return nil, nil, errors.Wrap(err, "snapping second geometry")
	}
	return snapped0, snapped1, nil
}

// SnapTo snaps the bound geometry to the vertices of target and returns
// the result. The two geometries must share a coordinate layout.
func (s *GeometrySnapper) SnapTo(target geom.T, tolerance float64) (geom.T, error) {
	srcLayout, targetLayout := layoutOf(s.srcGeom), layoutOf(target)
	if srcLayout != geom.NoLayout && targetLayout != geom.NoLayout && srcLayout != targetLayout {
		return nil, errors.Newf("cannot snap layout %v to layout %v", srcLayout, targetLayout)
	}
	snapPts, err := ExtractTargetCoordinates(target)
	if err != nil {
		return nil, err
	}
	st := &snapTransformer{snapTolerance: tolerance, snapPts: snapPts}
	return st.transformer().Transform(s.srcGeom)
}

// SnapToSelf snaps the bound geometry to its own vertex set, repairing
// near-coincident vertices and near-self-intersections. When clean is
// non-nil and the snapped result is polygonal it is passed through clean
// before being returned.
func (s *GeometrySnapper) SnapToSelf(tolerance float64, clean CleanFunc) (geom.T, error) {
	snapPts, err := ExtractTargetCoordinates(s.srcGeom)
	if err != nil {
		return nil, err
	}
	st := &snapTransformer{snapTolerance: tolerance, snapPts: snapPts, isSelfSnap: true}
	snapped, err := st.transformer().Transform(s.srcGeom)
	if err != nil {
		return nil, err
	}
	if clean == nil || !isPolygonal(snapped) {
		return snapped, nil
	}
	cleaned, err := clean(snapped)
	if err != nil {
		return nil, errors.Wrap(err, "cleaning self-snapped geometry")
	}
	return cleaned, nil
}

type coordCompare struct{}

func (coordCompare) IsEquals(x, y geom.Coord) bool {
	return x[0] == y[0] && x[1] == y[1]
}

func (coordCompare) IsLess(x, y geom.Coord) bool {
	return sorting.IsLess2D(x, y)
}

// ExtractTargetCoordinates returns the distinct vertices of g sorted 2-D
// lexicographically: the fixed, deterministic target order every snap
// iterates in.
func ExtractTargetCoordinates(g geom.T) ([]geom.Coord, error) {
	coords, err := geomfn.Coordinates(g)
	if err != nil {
		return nil, err
	}
	layout := layoutOf(g)
	if layout == geom.NoLayout {
		layout = geom.XY
	}
	stride := layout.Stride()
	flat := make([]float64, 0, len(coords)*stride)
	for _, c := range coords {
		for i := 0; i < stride; i++ {
			if i < len(c) {
				flat = append(flat, c[i])
			} else {
				flat = append(flat, 0)
			}
		}
	}
	unique := geomtransform.UniqueCoords(layout, coordCompare{}, flat)

	out := make([]geom.Coord, 0, len(unique)/stride)
	for i := 0; i+stride <= len(unique); i += stride {
		c := make(geom.Coord, stride)
		copy(c, unique[i:i+stride])
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return sorting.IsLess2D(out[i], out[j])
	})
	return out, nil
}

// SizeBasedSnapTolerance estimates a usable snap tolerance for a geometry
// from its extent: a small fraction of the smaller bounding dimension. An
// empty geometry has no extent and yields zero.
func SizeBasedSnapTolerance(g geom.T) float64 {
	if g == nil || g.Empty() {
		return 0
	}
	b := g.Bounds()
	minDim := math.Min(b.Max(0)-b.Min(0), b.Max(1)-b.Min(1))
	return minDim * SnapPrecisionFactor
}

// OverlaySnapTolerance estimates the snap tolerance for an overlay of two
// geometries: the smaller of their size-based tolerances, so the snap
// never moves either operand further than its own precision allows.
func OverlaySnapTolerance(g0, g1 geom.T) float64 {
	return math.Min(SizeBasedSnapTolerance(g0), SizeBasedSnapTolerance(g1))
}

func layoutOf(g geom.T) geom.Layout {
	if gc, ok := g.(*geom.GeometryCollection); ok {
		for i := 0; i < gc.NumGeoms(); i++ {
			if l := layoutOf(gc.Geom(i)); l != geom.NoLayout {
				return l
			}
		}
		return geom.NoLayout
	}
	return g.Layout()
}

func isPolygonal(g geom.T) bool {
	switch g.(type) {
	case *geom.Polygon, *geom.MultiPolygon:
		return true
	}
	return false
}
