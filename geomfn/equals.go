package geomfn

import (
	"github.com/twpayne/go-geom"
)

// EqualsExact reports whether a and b are structurally identical within
// tolerance: same concrete kind, same layout, same ring and member structure,
// and coordinates pairwise equal in order with every axis differing by at
// most tolerance. Nothing is reordered or matched, so two polygons that
// differ only in hole order are not equal; normalize first to compare
// canonical forms. A zero tolerance demands exact coordinate equality.
func EqualsExact(a, b geom.T, tolerance float64) bool {
	switch a := a.(type) {
	case *geom.Point:
		b, ok := b.(*geom.Point)
		return ok && flatPartEqual(a, b, tolerance)
	case *geom.LineString:
		b, ok := b.(*geom.LineString)
		return ok && flatPartEqual(a, b, tolerance)
	case *geom.LinearRing:
		b, ok := b.(*geom.LinearRing)
		return ok && flatPartEqual(a, b, tolerance)
	case *geom.Polygon:
		b, ok := b.(*geom.Polygon)
		return ok && endsEqual(a.Ends(), b.Ends()) && flatPartEqual(a, b, tolerance)
	case *geom.MultiPoint:
		b, ok := b.(*geom.MultiPoint)
		if !ok || a.Layout() != b.Layout() || a.NumPoints() != b.NumPoints() {
			return false
		}
		for i := 0; i < a.NumPoints(); i++ {
			if !EqualsExact(a.Point(i), b.Point(i), tolerance) {
				return false
			}
		}
		return true
	case *geom.MultiLineString:
		b, ok := b.(*geom.MultiLineString)
		if !ok || a.Layout() != b.Layout() || a.NumLineStrings() != b.NumLineStrings() {
			return false
		}
		for i := 0; i < a.NumLineStrings(); i++ {
			if !EqualsExact(a.LineString(i), b.LineString(i), tolerance) {
				return false
			}
		}
		return true
	case *geom.MultiPolygon:
		b, ok := b.(*geom.MultiPolygon)
		if !ok || a.Layout() != b.Layout() || a.NumPolygons() != b.NumPolygons() {
			return false
		}
		for i := 0; i < a.NumPolygons(); i++ {
			if !EqualsExact(a.Polygon(i), b.Polygon(i), tolerance) {
				return false
			}
		}
		return true
	case *geom.GeometryCollection:
		b, ok := b.(*geom.GeometryCollection)
		if !ok || a.NumGeoms() != b.NumGeoms() {
			return false
		}
		for i := 0; i < a.NumGeoms(); i++ {
			if !EqualsExact(a.Geom(i), b.Geom(i), tolerance) {
				return false
			}
		}
		return true
	}
	return false
}

func flatPartEqual(a, b geom.T, tolerance float64) bool {
	return a.Layout() == b.Layout() &&
		flatWithinTolerance(a.FlatCoords(), b.FlatCoords(), tolerance)
}

func endsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
