// Package geomfn provides planar primitives over go-geom values: ring and
// polygon accessors, coordinate extraction, boundaries, normalization and
// structural comparison.
package geomfn

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
)

// Coordinates returns every vertex of g as a list of coordinates in storage
// order: for polygons the shell's coordinates followed by each hole's, for
// collections the members' in member order, recursively. The returned
// coordinates are copies and may be mutated freely.
func Coordinates(g geom.T) ([]geom.Coord, error) {
	switch g := g.(type) {
	case *geom.Point, *geom.LineString, *geom.LinearRing, *geom.Polygon,
		*geom.MultiPoint, *geom.MultiLineString, *geom.MultiPolygon:
		return coordsFromFlat(g.Layout().Stride(), g.FlatCoords()), nil
	case *geom.GeometryCollection:
		coords := []geom.Coord{}
		for i := 0; i < g.NumGeoms(); i++ {
			sub, err := Coordinates(g.Geom(i))
			if err != nil {
				return nil, err
			}
			coords = append(coords, sub...)
		}
		return coords, nil
	default:
		return nil, errors.AssertionFailedf("unknown geometry type: %T", g)
	}
}

func coordsFromFlat(stride int, flatCoords []float64) []geom.Coord {
	coords := make([]geom.Coord, 0, len(flatCoords)/stride)
	for i := 0; i+stride <= len(flatCoords); i += stride {
		c := make(geom.Coord, stride)
		copy(c, flatCoords[i:i+stride])
		coords = append(coords, c)
	}
	return coords
}

func flatFromCoords(stride int, coords []geom.Coord) []float64 {
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

// compareCoords2D orders coordinates by x, then y.
func compareCoords2D(a, b geom.Coord) int {
	switch {
	case a[0] < b[0]:
		return -1
	case a[0] > b[0]:
		return 1
	case a[1] < b[1]:
		return -1
	case a[1] > b[1]:
		return 1
	}
	return 0
}

// compareCoordsFull orders coordinates by every axis the layout carries,
// x and y first.
func compareCoordsFull(stride int, a, b geom.Coord) int {
	for i := 0; i < stride && i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// compareCoordSeqs orders coordinate sequences lexicographically under the
// 2-D coordinate order. A strict prefix sorts before its extension.
func compareCoordSeqs(a, b []geom.Coord) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := compareCoords2D(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func coordsEqual2D(a, b geom.Coord) bool {
	return a[0] == b[0] && a[1] == b[1]
}

// flatWithinTolerance reports whether two flat coordinate arrays of the same
// length differ by at most tolerance on every single axis value.
func flatWithinTolerance(a, b []float64, tolerance float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tolerance {
			return false
		}
	}
	return true
}
