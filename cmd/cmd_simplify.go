package cmd

import (
	"fmt"

	"github.com/twpayne/go-geom"

	"github.com/peterhenningsen/jsts/dataset"
	"github.com/peterhenningsen/jsts/simplify"
)

type CmdSimplify struct {
	global    *GlobalOptions
	Tolerance float64 `short:"t" long:"tolerance" description:"Simplification tolerance" default:"0"`
	Algorithm string  `short:"a" long:"algorithm" description:"Simplification algorithm" choice:"dp" choice:"vw" default:"dp"`
	Out       string  `short:"o" long:"out" description:"Output file (required)"`
}

func init() {
	_, err := parser.AddCommand("simplify",
		"Simplify geometries",
		"Reduce geometry detail with Douglas-Peucker (dp) or Visvalingam-Whyatt (vw)",
		&CmdSimplify{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdSimplify) Usage() string {
	return "in.geojson -t tolerance -o out.geojson"
}

func (cmd CmdSimplify) Execute(args []string) error {
	if len(args) != 1 || cmd.Out == "" {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	geoms, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	out := make([]geom.T, 0, len(geoms))
	for _, g := range geoms {
		var simplified geom.T
		switch cmd.Algorithm {
		case "vw":
			simplified, err = simplify.SimplifyVW(g, cmd.Tolerance)
		default:
			simplified, err = simplify.Simplify(g, cmd.Tolerance)
		}
		if err != nil {
			return err
		}
		if simplified.Empty() {
			continue
		}
		out = append(out, simplified)
	}

	return cmd.global.WriteGeoms(cmd.Out, out)
}
