package cmd

import (
	"fmt"

	"github.com/twpayne/go-geom"

	"github.com/peterhenningsen/jsts/dataset"
	"github.com/peterhenningsen/jsts/geomfn"
)

type CmdNormalize struct {
	global *GlobalOptions
	Out    string `short:"o" long:"out" description:"Output file (required)"`
}

func init() {
	_, err := parser.AddCommand("normalize",
		"Normalize polygons",
		"Rewrite every polygonal geometry into its canonical form: shells counter-clockwise, holes clockwise, rings starting at their minimum coordinate, holes sorted",
		&CmdNormalize{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdNormalize) Usage() string {
	return "in.geojson -o out.geojson"
}

func (cmd CmdNormalize) Execute(args []string) error {
	if len(args) != 1 || cmd.Out == "" {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	geoms, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	for _, g := range geoms {
		switch g.(type) {
		case *geom.Polygon, *geom.MultiPolygon:
			err = geomfn.Normalize(g)
			if err != nil {
				return err
			}
		}
	}

	return cmd.global.WriteGeoms(cmd.Out, geoms)
}
