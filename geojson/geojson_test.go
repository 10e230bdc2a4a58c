package geojson

import (
	"encoding/json"
	"testing"

	"github.com/cheekybits/is"
	"github.com/cockroachdb/errors"
	gj "github.com/paulmach/go.geojson"
	"github.com/twpayne/go-geom"
)

func TestRoundTripPolygon(t *testing.T) {
	is := is.New(t)

	in := `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}`

	doc := &gj.Geometry{}
	err := json.Unmarshal([]byte(in), doc)
	is.NoErr(err)

	g, err := ToGeom(doc)
	is.NoErr(err)

	poly, ok := g.(*geom.Polygon)
	is.True(ok)
	is.Equal(poly.FlatCoords(), []float64{0, 0, 1, 0, 1, 1, 0, 1, 0, 0})
	is.Equal(poly.Ends(), []int{10})

	doc2, err := FromGeom(poly)
	is.NoErr(err)

	j2, err := json.Marshal(doc2)
	is.NoErr(err)
	is.Equal(in, string(j2))
}

func TestRoundTripPolygonWithHole(t *testing.T) {
	is := is.New(t)

	poly := geom.NewPolygonFlat(geom.XY,
		[]float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0, 2, 2, 2, 4, 4, 4, 2, 2},
		[]int{10, 18},
	)

	doc, err := FromGeom(poly)
	is.NoErr(err)
	is.Equal(doc.Type, gj.GeometryPolygon)
	is.Equal(len(doc.Polygon), 2)
	is.Equal(doc.Polygon[1], [][]float64{{2, 2}, {2, 4}, {4, 4}, {2, 2}})

	back, err := ToGeom(doc)
	is.NoErr(err)
	is.Equal(back.FlatCoords(), poly.FlatCoords())
	is.Equal(back.(*geom.Polygon).Ends(), poly.Ends())
}

func TestRoundTripMultiPolygon(t *testing.T) {
	is := is.New(t)

	mp := geom.NewMultiPolygonFlat(geom.XY,
		[]float64{0, 0, 1, 0, 1, 1, 0, 0, 5, 5, 6, 5, 6, 6, 5, 5},
		[][]int{{8}, {16}},
	)

	doc, err := FromGeom(mp)
	is.NoErr(err)
	is.Equal(doc.Type, gj.GeometryMultiPolygon)
	is.Equal(len(doc.MultiPolygon), 2)
	is.Equal(doc.MultiPolygon[1], [][][]float64{{{5, 5}, {6, 5}, {6, 6}, {5, 5}}})

	back, err := ToGeom(doc)
	is.NoErr(err)
	got, ok := back.(*geom.MultiPolygon)
	is.True(ok)
	is.Equal(got.FlatCoords(), mp.FlatCoords())
	is.Equal(got.Endss(), mp.Endss())
}

// geojson has no ring variant, rings flatten to line strings
func TestRingBecomesLineString(t *testing.T) {
	is := is.New(t)

	ring := geom.NewLinearRingFlat(geom.XY, []float64{0, 0, 4, 0, 4, 4, 0, 0})

	doc, err := FromGeom(ring)
	is.NoErr(err)
	is.Equal(doc.Type, gj.GeometryLineString)

	back, err := ToGeom(doc)
	is.NoErr(err)
	_, ok := back.(*geom.LineString)
	is.True(ok)
	is.Equal(back.FlatCoords(), ring.FlatCoords())
}

// three-value positions read back with a Z axis, ragged positions get
// padded with zeroes
func TestToGeomLayouts(t *testing.T) {
	is := is.New(t)

	line, err := ToGeom(gj.NewLineStringGeometry([][]float64{{0, 0, 5}, {1, 1, 6}}))
	is.NoErr(err)
	is.Equal(line.Layout(), geom.XYZ)
	is.Equal(line.FlatCoords(), []float64{0, 0, 5, 1, 1, 6})

	ragged, err := ToGeom(gj.NewLineStringGeometry([][]float64{{0, 0}, {1}}))
	is.NoErr(err)
	is.Equal(ragged.Layout(), geom.XY)
	is.Equal(ragged.FlatCoords(), []float64{0, 0, 1, 0})
}

func TestRoundTripEmptyPoint(t *testing.T) {
	is := is.New(t)

	doc, err := FromGeom(geom.NewPointEmpty(geom.XY))
	is.NoErr(err)
	is.Equal(doc.Type, gj.GeometryPoint)
	is.Equal(len(doc.Point), 0)

	back, err := ToGeom(doc)
	is.NoErr(err)
	is.True(back.Empty())
}

func TestRoundTripCollection(t *testing.T) {
	is := is.New(t)

	gc := geom.NewGeometryCollection()
	is.NoErr(gc.Push(geom.NewPointFlat(geom.XY, []float64{1, 2})))
	is.NoErr(gc.Push(geom.NewLineStringFlat(geom.XY, []float64{0, 0, 3, 3})))

	doc, err := FromGeom(gc)
	is.NoErr(err)
	is.Equal(doc.Type, gj.GeometryCollection)
	is.Equal(len(doc.Geometries), 2)

	back, err := ToGeom(doc)
	is.NoErr(err)
	got, ok := back.(*geom.GeometryCollection)
	is.True(ok)
	is.Equal(got.NumGeoms(), 2)
	is.Equal(got.Geom(0).FlatCoords(), []float64{1, 2})
	is.Equal(got.Geom(1).FlatCoords(), []float64{0, 0, 3, 3})
}

// failures at the encoding boundary are data errors, not assertions
func TestUnknownTypes(t *testing.T) {
	is := is.New(t)

	_, err := FromGeom(badGeom{})
	is.NotNil(err)
	is.False(errors.HasAssertionFailure(err))

	_, err = ToGeom(&gj.Geometry{Type: "Banana"})
	is.NotNil(err)
	is.False(errors.HasAssertionFailure(err))

	_, err = ToGeom(nil)
	is.NotNil(err)
}

type badGeom struct {
	geom.T
}
