package cmd

import (
	"github.com/spf13/cobra"

	"github.com/axion-project/orac-benchmark/internal/benchmarks"
	"github.com/axion-project/orac-benchmark/internal/config"
	suiteerrors "github.com/axion-project/orac-benchmark/internal/errors"
	"github.com/axion-project/orac-benchmark/internal/logger"
	"github.com/axion-project/orac-benchmark/internal/suite"
	"github.com/axion-project/orac-benchmark/internal/validation"
)

// resolveRunOptions assembles the effective run options: explicit flags win
// over the config file, the config file wins over built-in defaults. Flag
// values are validated by PreRunE; values taken from the file are validated
// here, so a bad file fails before any benchmark runs.
func resolveRunOptions(cmd *cobra.Command) (suite.Options, benchmarks.Config, error) {
	opts := suite.Options{
		Mode:        runMode,
		OutputPath:  runOutput,
		Parallel:    runParallel,
		MaxParallel: runMaxParallel,
		TaskTimeout: runTaskTimeout,
	}
	benchCfg := benchmarks.DefaultConfig()

	if runConfigPath == "" {
		return opts, benchCfg, nil
	}

	fileCfg, err := config.Load(runConfigPath)
	if err != nil {
		return opts, benchCfg, err
	}
	logger.Op.WithFields(map[string]interface{}{
		"path": runConfigPath,
	}).Debug("configuration file loaded")

	flags := cmd.Flags()
	if !flags.Changed("mode") && fileCfg.Mode != "" {
		opts.Mode = validation.NormalizeMode(fileCfg.Mode)
	}
	if !flags.Changed("output") && fileCfg.Output != "" {
		opts.OutputPath = fileCfg.Output
	}
	if !flags.Changed("parallel") && fileCfg.Parallel != nil {
		opts.Parallel = *fileCfg.Parallel
	}
	if !flags.Changed("max-parallel") && fileCfg.MaxParallel > 0 {
		opts.MaxParallel = fileCfg.MaxParallel
	}
	if !flags.Changed("task-timeout") && fileCfg.TaskTimeout > 0 {
		opts.TaskTimeout = fileCfg.TaskTimeout.Std()
	}
	benchCfg = fileCfg.Benchmarks

	if err := validateOptions(opts); err != nil {
		return opts, benchCfg, suiteerrors.NewConfigFileError(runConfigPath, err)
	}
	return opts, benchCfg, nil
}

// validateOptions checks the merged run options with the same rules the
// flag validation applies.
func validateOptions(opts suite.Options) error {
	if err := validation.ValidateMode(opts.Mode, benchmarks.Names()); err != nil {
		return err
	}
	if err := validation.ValidateMaxParallel(opts.MaxParallel, maxParallelLimit); err != nil {
		return err
	}
	if err := validation.ValidateTimeout(opts.TaskTimeout); err != nil {
		return err
	}
	return validation.ValidateOutputPath(opts.OutputPath)
}
