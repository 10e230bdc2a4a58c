package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/peterhenningsen/jsts/snap"
)

type CmdSnap struct {
	global    *GlobalOptions
	Tolerance float64 `short:"t" long:"tolerance" description:"Snap tolerance, 0 picks one from the geometry extents" default:"0"`
	Out       string  `short:"o" long:"out" description:"Output directory (required)"`
}

func init() {
	_, err := parser.AddCommand("snap",
		"Snap two geometries",
		"Snap nearly-coincident vertices of two geometry files together, preparing them for overlay",
		&CmdSnap{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdSnap) Usage() string {
	return "a.geojson b.geojson -o outdir"
}

func (cmd CmdSnap) Execute(args []string) error {
	if len(args) != 2 || cmd.Out == "" {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	g0, err := loadSingle(args[0])
	if err != nil {
		return err
	}
	g1, err := loadSingle(args[1])
	if err != nil {
		return err
	}

	tolerance := cmd.Tolerance
	if tolerance == 0 {
		tolerance = snap.OverlaySnapTolerance(g0, g1)
	}
	if !cmd.global.Quiet {
		log.Printf("Snapping with tolerance %g", tolerance)
	}

	snapped0, snapped1, err := snap.Snap(g0, g1, tolerance)
	if err != nil {
		return err
	}

	err = os.MkdirAll(cmd.Out, 0755)
	if err != nil {
		return err
	}

	err = cmd.global.WriteGeoms(filepath.Join(cmd.Out, filepath.Base(args[0])), splitSingle(snapped0))
	if err != nil {
		return err
	}
	return cmd.global.WriteGeoms(filepath.Join(cmd.Out, filepath.Base(args[1])), splitSingle(snapped1))
}
