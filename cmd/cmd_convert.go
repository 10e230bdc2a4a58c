package cmd

import (
	"fmt"

	"github.com/cheggaaa/pb"
	gj "github.com/paulmach/go.geojson"

	"github.com/peterhenningsen/jsts/dataset"
	"github.com/peterhenningsen/jsts/geojson"
)

type CmdConvert struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("convert",
		"Convert a dataset",
		"Convert between dataset formats, e.g. shapefile to GeoJSON",
		&CmdConvert{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdConvert) Usage() string {
	return "in.shp out.geojson"
}

func (cmd CmdConvert) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	geoms, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	var bar *pb.ProgressBar
	if !cmd.global.Quiet {
		bar = pb.StartNew(len(geoms))
	}

	fc := gj.NewFeatureCollection()
	for _, g := range geoms {
		gg, err := geojson.FromGeom(g)
		if err != nil {
			return err
		}
		fc.AddFeature(gj.NewFeature(gg))
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	return geojson.WriteFile(args[1], fc)
}
