package cmd

import (
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// BatchConfig describes a list of snap jobs to run concurrently.
type BatchConfig struct {
	Workers int         `yaml:"workers"`
	Jobs    []*BatchJob `yaml:"jobs"`
}

// BatchJob is one snap operation: either a pairwise snap of A and B, or a
// self-snap of Self. Outputs land in the Out directory under the input
// file names.
type BatchJob struct {
	A         string  `yaml:"a"`
	B         string  `yaml:"b"`
	Self      string  `yaml:"self"`
	Tolerance float64 `yaml:"tolerance"`
	Out       string  `yaml:"out"`
}

func (j *BatchJob) validate() error {
	if j.Out == "" {
		return fmt.Errorf("Job has no output directory")
	}
	if j.Self != "" {
		if j.A != "" || j.B != "" {
			return fmt.Errorf("Job mixes self with a/b: %s", j.Self)
		}
		return nil
	}
	if j.A == "" || j.B == "" {
		return fmt.Errorf("Job needs both a and b, or self")
	}
	return nil
}

// ParseBatchConfig reads a batch configuration document.
func ParseBatchConfig(in io.Reader) (*BatchConfig, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	config := &BatchConfig{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	for _, job := range config.Jobs {
		err = job.validate()
		if err != nil {
			return nil, err
		}
	}
	return config, nil
}

// LoadBatchConfig reads a batch configuration file.
func LoadBatchConfig(path string) (*BatchConfig, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	return ParseBatchConfig(in)
}
