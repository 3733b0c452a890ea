// Package config loads the optional YAML configuration file for a suite run.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/axion-project/orac-benchmark/internal/benchmarks"
	suiteerrors "github.com/axion-project/orac-benchmark/internal/errors"
)

// Duration is a time.Duration that unmarshals from YAML strings like "10m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("durations must be strings like \"10m\": %w", err)
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Suite is the on-disk configuration schema. Every field is optional;
// explicit command-line flags take precedence over file values, which take
// precedence over built-in defaults.
type Suite struct {
	Mode        string            `yaml:"mode"`
	Output      string            `yaml:"output"`
	Parallel    *bool             `yaml:"parallel"`
	MaxParallel int               `yaml:"max_parallel"`
	TaskTimeout Duration          `yaml:"task_timeout"`
	Benchmarks  benchmarks.Config `yaml:"benchmarks"`
}

// Load reads and strictly decodes a configuration file. Unknown keys are
// rejected so typos fail loudly instead of being silently ignored.
func Load(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, suiteerrors.NewConfigFileError(path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var s Suite
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			// an empty file is a valid "all defaults" configuration
			return &Suite{}, nil
		}
		return nil, suiteerrors.NewConfigFileError(path, err)
	}
	return &s, nil
}
