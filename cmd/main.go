package cmd

import (
	"os"

	"github.com/jessevdk/go-flags"
)

type GlobalOptions struct {
	Format string `short:"f" long:"format" description:"Output format" choice:"geojson" choice:"wkt" choice:"ewkbhex" default:"geojson"`
	Digits int    `long:"digits" description:"Maximum decimal digits in WKT output" default:"9"`
	Quiet  bool   `short:"q" long:"quiet" description:"Suppress progress output"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}
