package cmd

import (
	"github.com/axion-project/orac-benchmark/internal/logger"
	"github.com/spf13/cobra"
)

var (
	debug    bool
	verbose  bool
	jsonLogs bool
	quiet    bool
	version  = "2.0.0"

	rootCmd = &cobra.Command{
		Use:   "orac-bench",
		Short: "A benchmark suite orchestrator with real-time JSON reporting",
		Long: `A benchmark suite orchestrator: runs a fixed set of system benchmarks with
declared dependencies, executes the concurrency-safe ones in a bounded parallel
wave and the rest strictly in order, and streams every completed result to a
durable JSON report that external monitors can poll mid-run.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(verbose || debug, jsonLogs, quiet)
		},
	}
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
}
