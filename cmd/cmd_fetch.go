package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/cheggaaa/pb"
)

type CmdFetch struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("fetch",
		"Download a dataset",
		"Download a remote dataset file over HTTP",
		&CmdFetch{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdFetch) Usage() string {
	return "url filename"
}

func (cmd CmdFetch) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer out.Close()

	resp, err := http.Get(args[0])
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Failed to fetch %s: %s", args[0], resp.Status)
	}

	var reader io.Reader = resp.Body
	if !cmd.global.Quiet {
		bar := pb.New(int(resp.ContentLength)).SetUnits(pb.U_BYTES).Format("[=> ]")
		bar.Start()
		reader = bar.NewProxyReader(resp.Body)
	}

	_, err = io.Copy(out, reader)
	return err
}
