package cmd

import (
	"fmt"
	"log"

	"github.com/peterhenningsen/jsts/snap"
)

type CmdSelfSnap struct {
	global    *GlobalOptions
	Tolerance float64 `short:"t" long:"tolerance" description:"Snap tolerance, 0 picks one from the geometry extent" default:"0"`
	Out       string  `short:"o" long:"out" description:"Output file (required)"`
}

func init() {
	_, err := parser.AddCommand("selfsnap",
		"Snap a geometry to itself",
		"Snap a geometry's vertices to its own vertex set, repairing near-self-intersections",
		&CmdSelfSnap{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdSelfSnap) Usage() string {
	return "in.geojson -o out.geojson"
}

func (cmd CmdSelfSnap) Execute(args []string) error {
	if len(args) != 1 || cmd.Out == "" {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	g, err := loadSingle(args[0])
	if err != nil {
		return err
	}

	tolerance := cmd.Tolerance
	if tolerance == 0 {
		tolerance = snap.SizeBasedSnapTolerance(g)
	}
	if !cmd.global.Quiet {
		log.Printf("Self-snapping with tolerance %g", tolerance)
	}

	snapped, err := snap.NewGeometrySnapper(g).SnapToSelf(tolerance, nil)
	if err != nil {
		return err
	}

	return cmd.global.WriteGeoms(cmd.Out, splitSingle(snapped))
}
