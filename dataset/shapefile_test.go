package dataset

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/cheekybits/is"
	shp "github.com/jonas-p/go-shp"
	"github.com/twpayne/go-geom"
)

func ring(xy ...float64) []shp.Point {
	points := make([]shp.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		points = append(points, shp.Point{X: xy[i], Y: xy[i+1]})
	}
	return points
}

func shapeFromRings(rings ...[]shp.Point) *shp.Polygon {
	poly := &shp.Polygon{}
	for _, r := range rings {
		poly.Parts = append(poly.Parts, int32(len(poly.Points)))
		poly.Points = append(poly.Points, r...)
	}
	return poly
}

// clockwise rings are outer, counter-clockwise rings are holes
func TestRingArea(t *testing.T) {
	is := is.New(t)

	shell := ring(0, 0, 0, 10, 10, 10, 10, 0, 0, 0)
	is.Equal(ringArea(shell), 100.0)

	hole := ring(2, 2, 4, 2, 4, 4, 2, 4, 2, 2)
	is.Equal(ringArea(hole), -4.0)
}

func TestPolygonShape(t *testing.T) {
	is := is.New(t)

	poly := shapeFromRings(
		ring(0, 0, 0, 10, 10, 10, 10, 0, 0, 0),
		ring(2, 2, 4, 2, 4, 4, 2, 4, 2, 2),
	)

	g, err := polygonShape(poly)
	is.NoErr(err)

	got, ok := g.(*geom.Polygon)
	is.True(ok)
	is.Equal(got.NumLinearRings(), 2)
	is.Equal(got.LinearRing(0).FlatCoords(), []float64{0, 0, 0, 10, 10, 10, 10, 0, 0, 0})
	is.Equal(got.LinearRing(1).FlatCoords(), []float64{2, 2, 4, 2, 4, 4, 2, 4, 2, 2})
}

func TestPolygonShapeMultipleShells(t *testing.T) {
	is := is.New(t)

	poly := shapeFromRings(
		ring(0, 0, 0, 10, 10, 10, 10, 0, 0, 0),
		ring(2, 2, 4, 2, 4, 4, 2, 4, 2, 2),
		ring(20, 0, 20, 5, 25, 5, 25, 0, 20, 0),
	)

	g, err := polygonShape(poly)
	is.NoErr(err)

	got, ok := g.(*geom.MultiPolygon)
	is.True(ok)
	is.Equal(got.NumPolygons(), 2)
	is.Equal(got.Polygon(0).NumLinearRings(), 2)
	is.Equal(got.Polygon(1).NumLinearRings(), 1)
	is.Equal(got.Polygon(1).LinearRing(0).FlatCoords(), []float64{20, 0, 20, 5, 25, 5, 25, 0, 20, 0})
}

// a hole inside two nested shells lands in the smaller one
func TestPolygonShapeNestedShells(t *testing.T) {
	is := is.New(t)

	poly := shapeFromRings(
		ring(0, 0, 0, 100, 100, 100, 100, 0, 0, 0),
		ring(10, 10, 10, 30, 30, 30, 30, 10, 10, 10),
		ring(15, 15, 20, 15, 20, 20, 15, 20, 15, 15),
	)

	g, err := polygonShape(poly)
	is.NoErr(err)

	got, ok := g.(*geom.MultiPolygon)
	is.True(ok)
	is.Equal(got.NumPolygons(), 2)
	is.Equal(got.Polygon(0).NumLinearRings(), 1)
	is.Equal(got.Polygon(1).NumLinearRings(), 2)
	is.Equal(got.Polygon(1).LinearRing(1).FlatCoords(), []float64{15, 15, 20, 15, 20, 20, 15, 20, 15, 15})
}

func TestPolygonShapeDropsDegenerateRings(t *testing.T) {
	is := is.New(t)

	poly := shapeFromRings(
		ring(0, 0, 0, 10, 10, 10, 10, 0, 0, 0),
		ring(50, 50, 60, 60),
		ring(70, 70, 70.000001, 70, 70, 70.000001, 70, 70),
	)

	g, err := polygonShape(poly)
	is.NoErr(err)

	got, ok := g.(*geom.Polygon)
	is.True(ok)
	is.Equal(got.NumLinearRings(), 1)

	empty, err := polygonShape(shapeFromRings(ring(0, 0, 1, 1)))
	is.NoErr(err)
	is.Nil(empty)
}

// holes outside every shell are dropped
func TestPolygonShapeStrayHole(t *testing.T) {
	is := is.New(t)

	poly := shapeFromRings(
		ring(0, 0, 0, 10, 10, 10, 10, 0, 0, 0),
		ring(50, 50, 55, 50, 55, 55, 50, 55, 50, 50),
	)

	g, err := polygonShape(poly)
	is.NoErr(err)

	got, ok := g.(*geom.Polygon)
	is.True(ok)
	is.Equal(got.NumLinearRings(), 1)
}

func TestRingRect(t *testing.T) {
	is := is.New(t)

	r := ringRect(ring(3, 1, 7, 2, 5, 9))
	is.Equal(r.X.Lo, 3.0)
	is.Equal(r.X.Hi, 7.0)
	is.Equal(r.Y.Lo, 1.0)
	is.Equal(r.Y.Hi, 9.0)

	is.True(r.Contains(ringRect(ring(4, 2, 6, 8))))
	is.False(r.Contains(ringRect(ring(0, 2, 6, 8))))
}

func TestLoadShapefileMissing(t *testing.T) {
	is := is.New(t)

	_, err := LoadShapefile(filepath.Join(t.TempDir(), "missing.shp"))
	is.NotNil(err)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	is := is.New(t)

	_, err := Load("borders.gpkg")
	is.NotNil(err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	is := is.New(t)

	geoms := []geom.T{
		geom.NewPolygonFlat(geom.XY, []float64{0, 0, 4, 0, 4, 4, 0, 4, 0, 0}, []int{10}),
		geom.NewLineStringFlat(geom.XY, []float64{0, 0, 2, 2}),
	}

	path := filepath.Join(t.TempDir(), "out.geojson")
	err := Save(path, geoms)
	is.NoErr(err)

	back, err := Load(path)
	is.NoErr(err)
	is.Equal(len(back), 2)
	is.Equal(back[0].FlatCoords(), geoms[0].FlatCoords())
	is.Equal(back[1].FlatCoords(), geoms[1].FlatCoords())
}

func TestRingAreaSign(t *testing.T) {
	is := is.New(t)

	ccw := ring(0, 0, 4, 0, 4, 4, 0, 4, 0, 0)
	is.True(ringArea(ccw) < 0)
	is.Equal(math.Abs(ringArea(ccw)), 16.0)
}
