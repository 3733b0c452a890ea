package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/axion-project/orac-benchmark/internal/benchmarks"
	suiteerrors "github.com/axion-project/orac-benchmark/internal/errors"
	"github.com/axion-project/orac-benchmark/internal/logger"
	"github.com/axion-project/orac-benchmark/internal/report"
	"github.com/axion-project/orac-benchmark/internal/suite"
	"github.com/axion-project/orac-benchmark/internal/utils"
	"github.com/axion-project/orac-benchmark/internal/validation"
)

const (
	defaultReportPath = "civitas_report.json"
	maxParallelLimit  = 32
)

var (
	runMode        string
	runOutput      string
	runParallel    bool
	runMaxParallel int
	runTaskTimeout time.Duration
	runConfigPath  string
	runForce       bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark suite and stream results to a JSON report",
	Long: `Runs the registered benchmarks and streams every completed result to a
durable JSON report.

EXECUTION MODEL:
1. Selection: --mode picks every benchmark ("all") or a single one by name
2. Planning: with --parallel, concurrency-safe benchmarks form one wave and
   the rest run strictly in registration order after the wave completes
3. Execution: the report is rewritten atomically after every completion, so
   'orac-bench watch' (or any poller) always reads a valid snapshot
4. Summary: insights and a performance grade are appended at the end

A failing benchmark is recorded in the report with its error and the suite
continues; the command then exits non-zero.

EXAMPLES:
# Full suite, sequential, default report path
orac-bench run

# Parallel where safe, custom report location
orac-bench run --parallel --output /tmp/results.json

# One benchmark with a tight budget
orac-bench run --mode memory --task-timeout 30s

# Tuning knobs from a config file, flags still win
orac-bench run --config suite.yaml --parallel
`,
	PreRunE: validateRunFlags,
	RunE:    runSuite,
}

func init() {
	runCmd.Flags().StringVarP(&runMode, "mode", "m", validation.ModeAll, "Benchmark selection: 'all' or a registered benchmark name")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", defaultReportPath, "Report file path")
	runCmd.Flags().BoolVar(&runParallel, "parallel", false, "Run concurrency-safe benchmarks in a parallel wave")
	runCmd.Flags().IntVar(&runMaxParallel, "max-parallel", 4, "Maximum benchmarks to run simultaneously (1-32)")
	runCmd.Flags().DurationVar(&runTaskTimeout, "task-timeout", 10*time.Minute, "Time budget for a single benchmark")
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "YAML configuration file (optional)")
	runCmd.Flags().BoolVar(&runForce, "force", false, "Overwrite an existing report without prompting")
}

func validateRunFlags(cmd *cobra.Command, args []string) error {
	runMode = validation.NormalizeMode(runMode)
	if result := validation.CheckMode(runMode, benchmarks.Names()); !result.Valid {
		return suiteerrors.NewUnknownModeError(runMode, benchmarks.Names())
	}

	if err := validation.ValidateMaxParallel(runMaxParallel, maxParallelLimit); err != nil {
		return suiteerrors.NewInvalidFlagError("max-parallel", runMaxParallel, err.Error())
	}

	if err := validation.ValidateTimeout(runTaskTimeout); err != nil {
		return suiteerrors.NewInvalidFlagError("task-timeout", runTaskTimeout.String(), err.Error())
	}

	if err := validation.ValidateOutputPath(runOutput); err != nil {
		return suiteerrors.NewInvalidFlagError("output", runOutput, err.Error())
	}

	return nil
}

func runSuite(cmd *cobra.Command, args []string) error {
	logger.User.Starting("Starting benchmark suite...")

	opts, benchCfg, err := resolveRunOptions(cmd)
	if err != nil {
		return err
	}

	logger.Op.Debugf("Options: %+v", opts)
	logger.User.Infof("Mode: %s", opts.Mode)
	logger.User.Infof("Report: %s", opts.OutputPath)
	if opts.Parallel {
		logger.User.Infof("Parallelism: enabled (max %d)", opts.MaxParallel)
	} else {
		logger.User.Info("Parallelism: disabled")
	}

	if _, statErr := os.Stat(opts.OutputPath); statErr == nil {
		confirmed, promptErr := utils.PromptForConfirmation(runForce,
			"Overwrite existing report",
			fmt.Sprintf("A report already exists at %s and will be replaced.", opts.OutputPath))
		if promptErr != nil {
			return promptErr
		}
		if !confirmed {
			logger.User.Info("Keeping the existing report. Use --force or a different --output.")
			return nil
		}
	}

	// --- Phase 1: Registry Assembly ---
	logger.User.Info("--- Phase 1: Registry Assembly ---")
	reg, err := benchmarks.NewRegistry(benchCfg)
	if err != nil {
		return suiteerrors.NewRegistryDefinitionError("Benchmark registry failed validation", err)
	}
	logger.User.Infof("Registered %d benchmark(s).", reg.Len())

	// --- Phase 2: Suite Execution ---
	logger.User.Info("--- Phase 2: Suite Execution ---")
	result, err := suite.NewRunner(reg).Run(context.Background(), opts)
	if err != nil {
		return err
	}

	// --- Phase 3: Results Summary ---
	logger.User.Info("--- Phase 3: Results Summary ---")
	report.GenerateReport(result.Document)
	report.PrintCompletionSummary(result.Document, result.Outcome.Duration, result.Path)

	if !result.Outcome.Success() {
		return fmt.Errorf("benchmark suite completed with %d failure(s): %w",
			result.Outcome.Failed, result.Outcome.FirstError)
	}

	logger.User.Success("Benchmark suite finished.")
	return nil
}
