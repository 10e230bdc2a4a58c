package cmd

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/peterhenningsen/jsts/dataset"
	"github.com/peterhenningsen/jsts/geomfn"
)

type CmdInfo struct {
	global  *GlobalOptions
	Verbose bool `short:"v" long:"verbose" description:"Dump the parsed geometry structure"`
}

func init() {
	_, err := parser.AddCommand("info",
		"Describe a dataset",
		"Print the kind, point count and bounds of every geometry in a dataset",
		&CmdInfo{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdInfo) Usage() string {
	return "in.geojson"
}

func (cmd CmdInfo) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	geoms, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d geometries\n", args[0], len(geoms))
	for i, g := range geoms {
		coords, err := geomfn.Coordinates(g)
		if err != nil {
			return err
		}

		preview := ""
		if !g.Empty() {
			preview, err = wkt.Marshal(g, wkt.EncodeOptionWithMaxDecimalDigits(cmd.global.Digits))
			if err != nil {
				return err
			}
			if len(preview) > 60 {
				preview = preview[:57] + "..."
			}
		}

		b := g.Bounds()
		fmt.Printf("%4d  %-18s %6d points  [%g %g, %g %g]  %s\n",
			i, kindName(g), len(coords),
			b.Min(0), b.Min(1), b.Max(0), b.Max(1), preview)

		if cmd.Verbose {
			fmt.Printf("%# v\n", pretty.Formatter(g))
		}
	}

	return nil
}

func kindName(g geom.T) string {
	switch g.(type) {
	case *geom.Point:
		return "Point"
	case *geom.LineString:
		return "LineString"
	case *geom.LinearRing:
		return "LinearRing"
	case *geom.Polygon:
		return "Polygon"
	case *geom.MultiPoint:
		return "MultiPoint"
	case *geom.MultiLineString:
		return "MultiLineString"
	case *geom.MultiPolygon:
		return "MultiPolygon"
	case *geom.GeometryCollection:
		return "GeometryCollection"
	}
	return fmt.Sprintf("%T", g)
}
