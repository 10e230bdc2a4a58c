package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cheggaaa/pb"
	"golang.org/x/sync/errgroup"

	"github.com/peterhenningsen/jsts/snap"
)

type CmdBatch struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("batch",
		"Run a batch of snap jobs",
		"Run the snap jobs listed in a configuration file on a worker pool",
		&CmdBatch{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdBatch) Usage() string {
	return "config.yaml"
}

func (cmd CmdBatch) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	config, err := LoadBatchConfig(args[0])
	if err != nil {
		return err
	}

	workers := config.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	var bar *pb.ProgressBar
	if !cmd.global.Quiet {
		bar = pb.StartNew(len(config.Jobs))
	}

	// Queue everything up front so a failing worker never leaves the
	// feeder blocked on a send.
	jobs := make(chan *BatchJob, len(config.Jobs))
	for _, job := range config.Jobs {
		jobs <- job
	}
	close(jobs)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for job := range jobs {
				err := cmd.runJob(job)
				if err != nil {
					return err
				}
				if bar != nil {
					bar.Increment()
				}
			}
			return nil
		})
	}

	err = g.Wait()
	if bar != nil {
		bar.Finish()
	}
	return err
}

func (cmd CmdBatch) runJob(job *BatchJob) error {
	err := os.MkdirAll(job.Out, 0755)
	if err != nil {
		return err
	}

	if job.Self != "" {
		g, err := loadSingle(job.Self)
		if err != nil {
			return err
		}
		tolerance := job.Tolerance
		if tolerance == 0 {
			tolerance = snap.SizeBasedSnapTolerance(g)
		}
		snapped, err := snap.NewGeometrySnapper(g).SnapToSelf(tolerance, nil)
		if err != nil {
			return err
		}
		return cmd.global.WriteGeoms(filepath.Join(job.Out, filepath.Base(job.Self)), splitSingle(snapped))
	}

	g0, err := loadSingle(job.A)
	if err != nil {
		return err
	}
	g1, err := loadSingle(job.B)
	if err != nil {
		return err
	}
	tolerance := job.Tolerance
	if tolerance == 0 {
		tolerance = snap.OverlaySnapTolerance(g0, g1)
	}
	snapped0, snapped1, err := snap.Snap(g0, g1, tolerance)
	if err != nil {
		return err
	}
	err = cmd.global.WriteGeoms(filepath.Join(job.Out, filepath.Base(job.A)), splitSingle(snapped0))
	if err != nil {
		return err
	}
	return cmd.global.WriteGeoms(filepath.Join(job.Out, filepath.Base(job.B)), splitSingle(snapped1))
}
