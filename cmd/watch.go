package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	suiteerrors "github.com/axion-project/orac-benchmark/internal/errors"
	"github.com/axion-project/orac-benchmark/internal/logger"
	"github.com/axion-project/orac-benchmark/internal/monitor"
	"github.com/axion-project/orac-benchmark/internal/report"
	"github.com/axion-project/orac-benchmark/internal/validation"
)

var (
	watchOutput        string
	watchInterval      time.Duration
	watchUntilComplete bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor a report file as a suite run streams results into it",
	Long: `Tails a report produced by 'orac-bench run' and prints each benchmark
result as it lands. The run side rewrites the report atomically after every
completion, so the monitor always reads a valid snapshot; the report does
not have to exist yet when the monitor starts.

Exits once the report gains its summary (with --until-complete, the
default) or on interrupt. With --until-complete=false the monitor keeps
watching across repeated runs until interrupted.`,
	PreRunE: validateWatchFlags,
	RunE:    runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", defaultReportPath, "Report file to monitor")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 200*time.Millisecond, "Debounce window between a change and the re-read")
	watchCmd.Flags().BoolVar(&watchUntilComplete, "until-complete", true, "Exit once the report gains its summary")
}

func validateWatchFlags(cmd *cobra.Command, args []string) error {
	if err := validation.ValidateOutputPath(watchOutput); err != nil {
		return suiteerrors.NewInvalidFlagError("output", watchOutput, err.Error())
	}

	if err := validation.ValidateWatchInterval(watchInterval); err != nil {
		return suiteerrors.NewInvalidFlagError("interval", watchInterval.String(), err.Error())
	}

	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cancel()
	}()

	logger.User.Watchf("Monitoring %s (Ctrl+C to stop)", watchOutput)

	mon := monitor.New(watchOutput, monitor.Config{
		Interval:      watchInterval,
		UntilComplete: watchUntilComplete,
	})

	doc, err := mon.Run(ctx, renderUpdate)
	if err != nil {
		if ctx.Err() != nil {
			logger.User.Info("Monitor stopped.")
			return nil
		}
		return err
	}

	if doc != nil {
		report.GenerateReport(doc)
	}
	logger.User.Success("Report complete.")
	return nil
}

func renderUpdate(u monitor.Update) {
	switch {
	case u.Summary != nil:
		logger.User.Watchf("Suite complete: %d benchmark(s), grade %s",
			u.Summary.BenchmarkCount, u.Summary.PerformanceGrade)
	case u.Entry.Failed():
		logger.User.Watchf("%s failed: %s", u.Name, u.Entry.Error)
	default:
		logger.User.Watchf("%s completed at %s", u.Name, u.Entry.CompletedAt)
	}
}
