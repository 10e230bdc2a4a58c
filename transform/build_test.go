package transform

import (
	"testing"

	"github.com/cheekybits/is"
	"github.com/twpayne/go-geom"
)

// nothing to build yields an empty collection
func TestBuildEmpty(t *testing.T) {
	is := is.New(t)

	out, err := BuildGeometry(nil, false)
	is.NoErr(err)

	gc, ok := out.(*geom.GeometryCollection)
	is.True(ok)
	is.True(gc.Empty())
}

// a single component passes through untouched unless collections are forced
func TestBuildSingle(t *testing.T) {
	is := is.New(t)

	pt := geom.NewPointFlat(geom.XY, []float64{1, 2})

	out, err := BuildGeometry([]geom.T{pt}, false)
	is.NoErr(err)
	is.Equal(out, pt)

	out, err = BuildGeometry([]geom.T{pt}, true)
	is.NoErr(err)
	mp, ok := out.(*geom.MultiPoint)
	is.True(ok)
	is.Equal(mp.NumPoints(), 1)
}

// homogeneous components build the matching multi geometry
func TestBuildHomogeneous(t *testing.T) {
	is := is.New(t)

	out, err := BuildGeometry([]geom.T{
		geom.NewPointFlat(geom.XY, []float64{1, 2}),
		geom.NewPointFlat(geom.XY, []float64{3, 4}),
	}, false)
	is.NoErr(err)
	mp, ok := out.(*geom.MultiPoint)
	is.True(ok)
	is.Equal(mp.NumPoints(), 2)

	out, err = BuildGeometry([]geom.T{
		xyPolygon([]float64{0, 0, 1, 0, 1, 1, 0, 1, 0, 0}),
		xyPolygon([]float64{5, 5, 6, 5, 6, 6, 5, 6, 5, 5}),
	}, false)
	is.NoErr(err)
	mpoly, ok := out.(*geom.MultiPolygon)
	is.True(ok)
	is.Equal(mpoly.NumPolygons(), 2)
}

// rings alone become linestrings inside a multilinestring
func TestBuildRingsRewrap(t *testing.T) {
	is := is.New(t)

	out, err := BuildGeometry([]geom.T{
		geom.NewLinearRingFlat(geom.XY, []float64{0, 0, 1, 0, 1, 1, 0, 0}),
		geom.NewLinearRingFlat(geom.XY, []float64{5, 5, 6, 5, 6, 6, 5, 5}),
	}, false)
	is.NoErr(err)

	mls, ok := out.(*geom.MultiLineString)
	is.True(ok)
	is.Equal(mls.NumLineStrings(), 2)
	is.Equal(mls.LineString(0).FlatCoords(), []float64{0, 0, 1, 0, 1, 1, 0, 0})
}

// mixing kinds falls back to a geometry collection
func TestBuildHeterogeneous(t *testing.T) {
	is := is.New(t)

	out, err := BuildGeometry([]geom.T{
		geom.NewPointFlat(geom.XY, []float64{1, 2}),
		geom.NewLineStringFlat(geom.XY, []float64{0, 0, 1, 1}),
	}, false)
	is.NoErr(err)

	gc, ok := out.(*geom.GeometryCollection)
	is.True(ok)
	is.Equal(gc.NumGeoms(), 2)
}

// a ring mixed with a linestring is heterogeneous, they are distinct kinds
func TestBuildRingLineMix(t *testing.T) {
	is := is.New(t)

	out, err := BuildGeometry([]geom.T{
		geom.NewLineStringFlat(geom.XY, []float64{0, 0, 1, 1}),
		geom.NewLinearRingFlat(geom.XY, []float64{0, 0, 1, 0, 1, 1, 0, 0}),
	}, false)
	is.NoErr(err)

	_, ok := out.(*geom.GeometryCollection)
	is.True(ok)
}

// any component that is itself a collection forces a geometry collection,
// even alone
func TestBuildNestedCollection(t *testing.T) {
	is := is.New(t)

	inner := geom.NewMultiPointFlat(geom.XY, []float64{1, 1, 2, 2})

	out, err := BuildGeometry([]geom.T{inner}, false)
	is.NoErr(err)

	gc, ok := out.(*geom.GeometryCollection)
	is.True(ok)
	is.Equal(gc.NumGeoms(), 1)
}
