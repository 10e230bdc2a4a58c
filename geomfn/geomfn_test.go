package geomfn

import (
	"testing"

	"github.com/cheekybits/is"
	"github.com/twpayne/go-geom"
)

func xyPolygon(rings ...[]float64) *geom.Polygon {
	flat := []float64{}
	ends := []int{}
	for _, r := range rings {
		flat = append(flat, r...)
		ends = append(ends, len(flat))
	}
	return geom.NewPolygonFlat(geom.XY, flat, ends)
}

func xyMultiPolygon(polys ...*geom.Polygon) *geom.MultiPolygon {
	flat := []float64{}
	endss := [][]int{}
	for _, p := range polys {
		ends := []int{}
		for _, e := range p.Ends() {
			ends = append(ends, e+len(flat))
		}
		flat = append(flat, p.FlatCoords()...)
		endss = append(endss, ends)
	}
	return geom.NewMultiPolygonFlat(geom.XY, flat, endss)
}

// coordinates of a polygon come out shell first, then holes in hole order
func TestCoordinatesPolygon(t *testing.T) {
	is := is.New(t)

	p := xyPolygon(
		[]float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0},
		[]float64{2, 2, 2, 4, 4, 4, 4, 2, 2, 2},
	)

	coords, err := Coordinates(p)
	is.NoErr(err)
	is.Equal(len(coords), 10)
	is.Equal(coords[0], geom.Coord{0, 0})
	is.Equal(coords[5], geom.Coord{2, 2})
	is.Equal(coords[9], geom.Coord{2, 2})
}

// coordinates of a collection are gathered recursively in member order
func TestCoordinatesCollection(t *testing.T) {
	is := is.New(t)

	gc := geom.NewGeometryCollection()
	is.NoErr(gc.Push(geom.NewPointFlat(geom.XY, []float64{1, 2})))
	is.NoErr(gc.Push(geom.NewLineStringFlat(geom.XY, []float64{3, 4, 5, 6})))

	inner := geom.NewGeometryCollection()
	is.NoErr(inner.Push(geom.NewPointFlat(geom.XY, []float64{7, 8})))
	is.NoErr(gc.Push(inner))

	coords, err := Coordinates(gc)
	is.NoErr(err)
	is.Equal(coords, []geom.Coord{{1, 2}, {3, 4}, {5, 6}, {7, 8}})
}

// an empty geometry has no coordinates
func TestCoordinatesEmpty(t *testing.T) {
	is := is.New(t)

	coords, err := Coordinates(geom.NewPointEmpty(geom.XY))
	is.NoErr(err)
	is.Equal(len(coords), 0)

	coords, err = Coordinates(xyPolygon())
	is.NoErr(err)
	is.Equal(len(coords), 0)
}

// returned coordinates are copies, mutating them leaves the input alone
func TestCoordinatesCopies(t *testing.T) {
	is := is.New(t)

	line := geom.NewLineStringFlat(geom.XY, []float64{0, 0, 1, 1})
	coords, err := Coordinates(line)
	is.NoErr(err)

	coords[0][0] = 99
	is.Equal(line.FlatCoords(), []float64{0, 0, 1, 1})
}
