package geomfn

import (
	"testing"

	"github.com/cheekybits/is"
	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
)

// points order by x first, then y
func TestComparePoints(t *testing.T) {
	is := is.New(t)

	c, err := CompareSameClass(
		geom.NewPointFlat(geom.XY, []float64{1, 9}),
		geom.NewPointFlat(geom.XY, []float64{2, 0}),
	)
	is.NoErr(err)
	is.Equal(c, -1)

	c, err = CompareSameClass(
		geom.NewPointFlat(geom.XY, []float64{1, 3}),
		geom.NewPointFlat(geom.XY, []float64{1, 2}),
	)
	is.NoErr(err)
	is.Equal(c, 1)

	c, err = CompareSameClass(
		geom.NewPointEmpty(geom.XY),
		geom.NewPointFlat(geom.XY, []float64{-100, -100}),
	)
	is.NoErr(err)
	is.Equal(c, -1)
}

// a strict prefix sequence sorts before its extension
func TestCompareLineStrings(t *testing.T) {
	is := is.New(t)

	short := geom.NewLineStringFlat(geom.XY, []float64{0, 0, 1, 1})
	long := geom.NewLineStringFlat(geom.XY, []float64{0, 0, 1, 1, 2, 2})

	c, err := CompareSameClass(short, long)
	is.NoErr(err)
	is.Equal(c, -1)

	c, err = CompareSameClass(long, short)
	is.NoErr(err)
	is.Equal(c, 1)

	c, err = CompareSameClass(short, geom.NewLineStringFlat(geom.XY, []float64{0, 0, 1, 1}))
	is.NoErr(err)
	is.Equal(c, 0)
}

// polygon order is decided by shells alone, holes never matter
func TestComparePolygonsShellOnly(t *testing.T) {
	is := is.New(t)

	shell := []float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0}
	withHole := xyPolygon(shell, []float64{2, 2, 2, 4, 4, 4, 4, 2, 2, 2})
	without := xyPolygon(shell)

	c, err := CompareSameClass(withHole, without)
	is.NoErr(err)
	is.Equal(c, 0)

	bigger := xyPolygon([]float64{5, 5, 15, 5, 15, 15, 5, 15, 5, 5})
	c, err = CompareSameClass(without, bigger)
	is.NoErr(err)
	is.Equal(c, -1)
}

// collections compare elementwise and shorter ties sort first
func TestCompareMultiPolygons(t *testing.T) {
	is := is.New(t)

	a := xyMultiPolygon(xyPolygon([]float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0}))
	b := xyMultiPolygon(
		xyPolygon([]float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0}),
		xyPolygon([]float64{20, 20, 30, 20, 30, 30, 20, 30, 20, 20}),
	)

	c, err := CompareSameClass(a, b)
	is.NoErr(err)
	is.Equal(c, -1)

	c, err = CompareSameClass(b, a)
	is.NoErr(err)
	is.Equal(c, 1)
}

// comparing different kinds is a programming error
func TestCompareKindMismatch(t *testing.T) {
	is := is.New(t)

	_, err := CompareSameClass(
		geom.NewPointFlat(geom.XY, []float64{0, 0}),
		geom.NewLineStringFlat(geom.XY, []float64{0, 0, 1, 1}),
	)
	is.NotNil(err)
	is.True(errors.HasAssertionFailure(err))
}
