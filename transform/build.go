package transform

import (
	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
)

// Component kinds for the builder's homogeneity test. Rings are their own
// kind: a mix of rings and line strings builds a GeometryCollection, while
// rings alone build a MultiLineString.
type componentKind int

const (
	kindPoint componentKind = iota
	kindLineString
	kindLinearRing
	kindPolygon
	kindCollection
)

func kindOf(g geom.T) (componentKind, error) {
	switch g.(type) {
	case *geom.Point:
		return kindPoint, nil
	case *geom.LineString:
		return kindLineString, nil
	case *geom.LinearRing:
		return kindLinearRing, nil
	case *geom.Polygon:
		return kindPolygon, nil
	case *geom.MultiPoint, *geom.MultiLineString, *geom.MultiPolygon, *geom.GeometryCollection:
		return kindCollection, nil
	default:
		return 0, errors.AssertionFailedf("unknown geometry type: %T", g)
	}
}

// BuildGeometry assembles loose components into the most specific single
// geometry that can hold them. No components yield an empty
// GeometryCollection. Mixed kinds, or any component that is itself a
// collection, yield a GeometryCollection of everything. A single component
// is returned unchanged unless preserveCollections asks for a Multi*
// wrapper. A homogeneous list becomes the matching Multi* geometry, with
// lone rings rewrapped as line strings inside a MultiLineString.
func BuildGeometry(components []geom.T, preserveCollections bool) (geom.T, error) {
	if len(components) == 0 {
		return geom.NewGeometryCollection(), nil
	}
	k0, err := kindOf(components[0])
	if err != nil {
		return nil, err
	}
	heterogeneous := false
	hasCollection := k0 == kindCollection
	for _, c := range components[1:] {
		k, err := kindOf(c)
		if err != nil {
			return nil, err
		}
		if k != k0 {
			heterogeneous = true
		}
		if k == kindCollection {
			hasCollection = true
		}
	}
	if heterogeneous || hasCollection {
		return collectionOf(components)
	}
	if len(components) == 1 && !preserveCollections {
		return components[0], nil
	}

	layout := components[0].Layout()
	switch k0 {
	case kindPoint:
		mp := geom.NewMultiPoint(layout)
		for _, c := range components {
			if err := mp.Push(c.(*geom.Point)); err != nil {
				return nil, errors.Wrap(err, "building multipoint")
			}
		}
		return mp, nil
	case kindLineString, kindLinearRing:
		mls := geom.NewMultiLineString(layout)
		for _, c := range components {
			if err := mls.Push(asLineString(c)); err != nil {
				return nil, errors.Wrap(err, "building multilinestring")
			}
		}
		return mls, nil
	case kindPolygon:
		mp := geom.NewMultiPolygon(layout)
		for _, c := range components {
			if err := mp.Push(c.(*geom.Polygon)); err != nil {
				return nil, errors.Wrap(err, "building multipolygon")
			}
		}
		return mp, nil
	}
	return nil, errors.AssertionFailedf("unreachable builder kind %d", k0)
}

func asLineString(g geom.T) *geom.LineString {
	switch g := g.(type) {
	case *geom.LineString:
		return g
	case *geom.LinearRing:
		flat := append([]float64(nil), g.FlatCoords()...)
		return geom.NewLineStringFlat(g.Layout(), flat)
	}
	return nil
}

func collectionOf(components []geom.T) (geom.T, error) {
	gc := geom.NewGeometryCollection()
	for _, c := range components {
		if err := gc.Push(c); err != nil {
			return nil, errors.Wrap(err, "building collection")
		}
	}
	return gc, nil
}
