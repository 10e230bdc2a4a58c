package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkbhex"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/peterhenningsen/jsts/dataset"
)

// WriteGeoms writes geometries to a file in the globally selected output
// format: a GeoJSON feature collection, or one WKT/EWKB-hex geometry per
// line.
func (g *GlobalOptions) WriteGeoms(path string, geoms []geom.T) error {
	switch g.Format {
	case "", "geojson":
		return dataset.Save(path, geoms)
	case "wkt":
		return writeLines(path, geoms, func(gm geom.T) (string, error) {
			return wkt.Marshal(gm, wkt.EncodeOptionWithMaxDecimalDigits(g.Digits))
		})
	case "ewkbhex":
		return writeLines(path, geoms, func(gm geom.T) (string, error) {
			return ewkbhex.Encode(gm, ewkbhex.NDR)
		})
	}
	return fmt.Errorf("Unknown output format: %s", g.Format)
}

func writeLines(path string, geoms []geom.T, encode func(geom.T) (string, error)) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for _, g := range geoms {
		line, err := encode(g)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

// loadSingle reads a dataset file as one geometry, wrapping multi-feature
// files in a collection so they snap as a unit.
func loadSingle(path string) (geom.T, error) {
	geoms, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	if len(geoms) == 1 {
		return geoms[0], nil
	}
	return geom.NewGeometryCollection().MustPush(geoms...), nil
}

// splitSingle undoes the wrapping of loadSingle for output: a collection
// becomes a feature per member again.
func splitSingle(g geom.T) []geom.T {
	if gc, ok := g.(*geom.GeometryCollection); ok {
		out := make([]geom.T, 0, gc.NumGeoms())
		for i := 0; i < gc.NumGeoms(); i++ {
			out = append(out, gc.Geom(i))
		}
		return out
	}
	return []geom.T{g}
}
