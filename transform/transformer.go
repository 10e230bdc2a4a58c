// Package transform implements a type-preserving geometry rewrite framework.
// A Transformer walks a geometry tree, runs a coordinate hook over every
// leaf sequence and rebuilds the tree bottom-up, demoting rings that
// collapse and dropping members that vanish, so that the output is always a
// usable geometry of the most faithful possible type.
package transform

import (
	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
)

// CoordsFunc rewrites a single coordinate sequence. parent is the geometry
// owning the sequence (the point, line string or ring itself, not its
// container), so a hook can tell ring sequences from open lines. The input
// slice and its coordinates are fresh copies owned by the hook: it may
// mutate them in place, return them, or return a brand new slice.
type CoordsFunc func(coords []geom.Coord, parent geom.T) ([]geom.Coord, error)

// A Transformer rebuilds geometry trees. Assign Coords to rewrite
// coordinates everywhere, or any per-kind hook to take over the rebuild of
// that kind; hooks receive the transformer so they can delegate to the
// matching Transform* default rule. The per-kind hooks also receive the
// containing geometry (nil at the root), which lets a hook behave
// differently for, say, a Polygon inside a MultiPolygon.
//
// A Transformer holds no state between calls. The same instance can be
// reused, and distinct instances are independent.
type Transformer struct {
	Coords CoordsFunc

	Point           func(t *Transformer, g *geom.Point, parent geom.T) (geom.T, error)
	MultiPoint      func(t *Transformer, g *geom.MultiPoint, parent geom.T) (geom.T, error)
	LineString      func(t *Transformer, g *geom.LineString, parent geom.T) (geom.T, error)
	LinearRing      func(t *Transformer, g *geom.LinearRing, parent geom.T) (geom.T, error)
	Polygon         func(t *Transformer, g *geom.Polygon, parent geom.T) (geom.T, error)
	MultiLineString func(t *Transformer, g *geom.MultiLineString, parent geom.T) (geom.T, error)
	MultiPolygon    func(t *Transformer, g *geom.MultiPolygon, parent geom.T) (geom.T, error)
	Collection      func(t *Transformer, g *geom.GeometryCollection, parent geom.T) (geom.T, error)

	// PruneEmpty drops empty members when rebuilding a GeometryCollection.
	PruneEmpty bool
	// PreserveCollectionType keeps a GeometryCollection input a
	// GeometryCollection instead of letting the builder pick a more
	// specific type for the surviving members.
	PreserveCollectionType bool
	// PreserveCollections keeps Multi* outputs Multi* even when only a
	// single member survives.
	PreserveCollections bool
	// PreserveType keeps rings that collapse below four points as
	// (invalid) rings instead of demoting them to line strings.
	PreserveType bool
}

// New returns a Transformer with the default behavior: empty collection
// members are pruned and collection inputs stay collections.
func New() *Transformer {
	return &Transformer{
		PruneEmpty:             true,
		PreserveCollectionType: true,
	}
}

// Transform rebuilds g. The input is never mutated and every node of the
// result is a fresh allocation. On a nil error the result is never nil: if
// the hooks collapse everything it is an empty GeometryCollection. The
// input's SRID is copied onto the result.
func (t *Transformer) Transform(g geom.T) (geom.T, error) {
	out, err := t.transform(g, nil)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = geom.NewGeometryCollection()
	}
	setSRID(out, g.SRID())
	return out, nil
}

func (t *Transformer) transform(g geom.T, parent geom.T) (geom.T, error) {
	switch g := g.(type) {
	case *geom.Point:
		if t.Point != nil {
			return t.Point(t, g, parent)
		}
		return t.TransformPoint(g, parent)
	case *geom.MultiPoint:
		if t.MultiPoint != nil {
			return t.MultiPoint(t, g, parent)
		}
		return t.TransformMultiPoint(g, parent)
	case *geom.LineString:
		if t.LineString != nil {
			return t.LineString(t, g, parent)
		}
		return t.TransformLineString(g, parent)
	case *geom.LinearRing:
		if t.LinearRing != nil {
			return t.LinearRing(t, g, parent)
		}
		return t.TransformLinearRing(g, parent)
	case *geom.Polygon:
		if t.Polygon != nil {
			return t.Polygon(t, g, parent)
		}
		return t.TransformPolygon(g, parent)
	case *geom.MultiLineString:
		if t.MultiLineString != nil {
			return t.MultiLineString(t, g, parent)
		}
		return t.TransformMultiLineString(g, parent)
	case *geom.MultiPolygon:
		if t.MultiPolygon != nil {
			return t.MultiPolygon(t, g, parent)
		}
		return t.TransformMultiPolygon(g, parent)
	case *geom.GeometryCollection:
		if t.Collection != nil {
			return t.Collection(t, g, parent)
		}
		return t.TransformCollection(g, parent)
	default:
		return nil, errors.AssertionFailedf("unknown geometry type: %T", g)
	}
}

// TransformPoint is the default Point rule: the coordinate hook runs on the
// point's coordinate, and an empty result stays an empty point.
func (t *Transformer) TransformPoint(g *geom.Point, parent geom.T) (geom.T, error) {
	coords, err := t.applyCoords(g)
	if err != nil {
		return nil, err
	}
	if len(coords) == 0 {
		return geom.NewPointEmpty(g.Layout()), nil
	}
	return geom.NewPointFlat(g.Layout(), flatten(g.Layout().Stride(), coords[:1])), nil
}

// TransformLineString is the default LineString rule: hook and re-wrap.
// No minimum length is enforced; a collapsed line is passed through as-is.
func (t *Transformer) TransformLineString(g *geom.LineString, parent geom.T) (geom.T, error) {
	coords, err := t.applyCoords(g)
	if err != nil {
		return nil, err
	}
	return geom.NewLineStringFlat(g.Layout(), flatten(g.Layout().Stride(), coords)), nil
}

// TransformLinearRing is the default ring rule. A result with no points is
// an empty ring; one to three points (closing duplicate included) cannot
// close a ring anymore and demote to a LineString unless PreserveType keeps
// the broken ring; four or more stay a ring.
func (t *Transformer) TransformLinearRing(g *geom.LinearRing, parent geom.T) (geom.T, error) {
	coords, err := t.applyCoords(g)
	if err != nil {
		return nil, err
	}
	flat := flatten(g.Layout().Stride(), coords)
	switch {
	case len(coords) == 0:
		return geom.NewLinearRing(g.Layout()), nil
	case len(coords) < 4 && !t.PreserveType:
		return geom.NewLineStringFlat(g.Layout(), flat), nil
	}
	return geom.NewLinearRingFlat(g.Layout(), flat), nil
}

// TransformPolygon is the default Polygon rule. Shell and holes each run
// through the ring rule; empty hole results are dropped. If the shell
// survives as a non-empty ring and every hole is still a ring, the result
// is a Polygon again. Otherwise the polygon degrades gracefully: whatever
// survived is handed to BuildGeometry as loose components.
func (t *Transformer) TransformPolygon(g *geom.Polygon, parent geom.T) (geom.T, error) {
	shellIn := geom.NewLinearRing(g.Layout())
	if g.NumLinearRings() > 0 {
		shellIn = g.LinearRing(0)
	}
	shell, err := t.transform(shellIn, g)
	if err != nil {
		return nil, err
	}
	shellRing, shellIsRing := shell.(*geom.LinearRing)
	allRings := shell != nil && shellIsRing && !shellRing.Empty()

	var holes []geom.T
	for i := 1; i < g.NumLinearRings(); i++ {
		hole, err := t.transform(g.LinearRing(i), g)
		if err != nil {
			return nil, err
		}
		if hole == nil || hole.Empty() {
			continue
		}
		if _, ok := hole.(*geom.LinearRing); !ok {
			allRings = false
		}
		holes = append(holes, hole)
	}

	if allRings {
		p := geom.NewPolygon(g.Layout())
		if err := p.Push(shellRing); err != nil {
			return nil, errors.Wrap(err, "rebuilding polygon shell")
		}
		for _, hole := range holes {
			if err := p.Push(hole.(*geom.LinearRing)); err != nil {
				return nil, errors.Wrap(err, "rebuilding polygon hole")
			}
		}
		return p, nil
	}

	components := make([]geom.T, 0, len(holes)+1)
	if shell != nil {
		components = append(components, shell)
	}
	components = append(components, holes...)
	return BuildGeometry(components, t.PreserveCollections)
}

// TransformMultiPoint is the default MultiPoint rule: members go through
// the point rule and empty results are dropped.
func (t *Transformer) TransformMultiPoint(g *geom.MultiPoint, parent geom.T) (geom.T, error) {
	parts := make([]geom.T, 0, g.NumPoints())
	for i := 0; i < g.NumPoints(); i++ {
		p, err := t.transform(g.Point(i), g)
		if err != nil {
			return nil, err
		}
		if p == nil || p.Empty() {
			continue
		}
		parts = append(parts, p)
	}
	return BuildGeometry(parts, t.PreserveCollections)
}

// TransformMultiLineString is the default MultiLineString rule.
func (t *Transformer) TransformMultiLineString(g *geom.MultiLineString, parent geom.T) (geom.T, error) {
	parts := make([]geom.T, 0, g.NumLineStrings())
	for i := 0; i < g.NumLineStrings(); i++ {
		ls, err := t.transform(g.LineString(i), g)
		if err != nil {
			return nil, err
		}
		if ls == nil || ls.Empty() {
			continue
		}
		parts = append(parts, ls)
	}
	return BuildGeometry(parts, t.PreserveCollections)
}

// TransformMultiPolygon is the default MultiPolygon rule: members go
// through the polygon rule, so a degraded member may contribute something
// other than a polygon and push the rebuild into a GeometryCollection.
func (t *Transformer) TransformMultiPolygon(g *geom.MultiPolygon, parent geom.T) (geom.T, error) {
	parts := make([]geom.T, 0, g.NumPolygons())
	for i := 0; i < g.NumPolygons(); i++ {
		p, err := t.transform(g.Polygon(i), g)
		if err != nil {
			return nil, err
		}
		if p == nil || p.Empty() {
			continue
		}
		parts = append(parts, p)
	}
	return BuildGeometry(parts, t.PreserveCollections)
}

// TransformCollection is the default GeometryCollection rule: full
// recursive dispatch per member, dropping nils always and empties when
// PruneEmpty. With PreserveCollectionType the output stays a
// GeometryCollection; otherwise the builder picks the most specific type.
func (t *Transformer) TransformCollection(g *geom.GeometryCollection, parent geom.T) (geom.T, error) {
	parts := make([]geom.T, 0, g.NumGeoms())
	for i := 0; i < g.NumGeoms(); i++ {
		c, err := t.transform(g.Geom(i), g)
		if err != nil {
			return nil, err
		}
		if c == nil {
			continue
		}
		if t.PruneEmpty && c.Empty() {
			continue
		}
		parts = append(parts, c)
	}
	if t.PreserveCollectionType {
		gc := geom.NewGeometryCollection()
		for _, p := range parts {
			if err := gc.Push(p); err != nil {
				return nil, errors.Wrap(err, "rebuilding collection")
			}
		}
		return gc, nil
	}
	return BuildGeometry(parts, t.PreserveCollections)
}

func (t *Transformer) applyCoords(g geom.T) ([]geom.Coord, error) {
	coords := coordsCopy(g.Layout().Stride(), g.FlatCoords())
	if t.Coords == nil {
		return coords, nil
	}
	out, err := t.Coords(coords, g)
	if err != nil {
		return nil, errors.Wrapf(err, "transforming %T coordinates", g)
	}
	return out, nil
}

func coordsCopy(stride int, flatCoords []float64) []geom.Coord {
	coords := make([]geom.Coord, 0, len(flatCoords)/stride)
	for i := 0; i+stride <= len(flatCoords); i += stride {
		c := make(geom.Coord, stride)
		copy(c, flatCoords[i:i+stride])
		coords = append(coords, c)
	}
	return coords
}

func flatten(stride int, coords []geom.Coord) []float64 {
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
	return flat
}

func setSRID(g geom.T, srid int) {
	switch g := g.(type) {
	case *geom.Point:
		g.SetSRID(srid)
	case *geom.LineString:
		g.SetSRID(srid)
	case *geom.LinearRing:
		g.SetSRID(srid)
	case *geom.Polygon:
		g.SetSRID(srid)
	case *geom.MultiPoint:
		g.SetSRID(srid)
	case *geom.MultiLineString:
		g.SetSRID(srid)
	case *geom.MultiPolygon:
		g.SetSRID(srid)
	case *geom.GeometryCollection:
		g.SetSRID(srid)
	}
}
