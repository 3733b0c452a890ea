package report

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/axion-project/orac-benchmark/internal/logger"
	"github.com/axion-project/orac-benchmark/internal/utils"
)

// GenerateReport prints the per-benchmark results table and overall
// statistics for a completed run.
func GenerateReport(d *Document) {
	logger.Starting("Results Summary")

	if d.Len() == 0 {
		logger.Info("No benchmark results to report.")
		logger.Success("Reporting completed")
		return
	}

	printResultsTable(d)
	printStatistics(d)

	logger.Success("Reporting completed")
}

func printResultsTable(d *Document) {
	header := utils.NewReportBuilder().
		Header("[REPORT] Benchmark Results")
	fmt.Println(header.Build())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Benchmark\tStatus\tCompleted At\tDetails")
	fmt.Fprintln(w, "---------\t------\t------------\t-------")

	for _, e := range d.Entries() {
		status := "Success"
		details := summarizeResult(e.Result)
		if e.Failed() {
			status = "Failed"
			details = truncate(e.Error, 60)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, status, e.CompletedAt, details)
	}

	w.Flush()
}

func printStatistics(d *Document) {
	failures := d.FailureCount()

	stats := utils.NewReportBuilder().
		Section("[STATISTICS] Overall Summary").
		AddKeyValue("Benchmarks completed", fmt.Sprintf("%d", d.Len()-failures)).
		AddKeyValue("Benchmarks failed", fmt.Sprintf("%d", failures))

	if d.Summary != nil {
		stats.AddKeyValue("Performance grade", d.Summary.PerformanceGrade)
	}
	if d.Metadata.TotalDuration != "" {
		stats.AddKeyValue("Total duration", d.Metadata.TotalDuration)
	}

	stats.AddSeparator()
	fmt.Println(stats.Build())
}

// PrintCompletionSummary prints the closing box with insights and the
// report location.
func PrintCompletionSummary(d *Document, duration time.Duration, path string) {
	failures := d.FailureCount()

	box := utils.NewBox(utils.SuccessMessage, "Benchmark suite completed!").
		AddLine(fmt.Sprintf("Benchmarks run: %d", d.Len())).
		AddLine(fmt.Sprintf("Duration: %v", duration.Round(time.Millisecond)))
	if d.Summary != nil {
		box.AddLine(fmt.Sprintf("Performance grade: %s", d.Summary.PerformanceGrade))
	}
	box.AddLine(fmt.Sprintf("Report: %s", path))

	fmt.Println(box.Render())

	if d.Summary != nil && len(d.Summary.KeyInsights) > 0 {
		insights := utils.NewReportBuilder().
			Section("Key insights:")
		for _, insight := range d.Summary.KeyInsights {
			insights.AddBullet(insight)
		}
		fmt.Println(insights.Build())
	}

	if failures > 0 {
		warning := utils.NewBox(utils.WarningMessage, "Some benchmarks failed").
			AddLine(fmt.Sprintf("%d out of %d benchmarks failed", failures, d.Len())).
			AddLine("Check the error details in the results table above")
		fmt.Println(warning.Render())
	}
}

// summarizeResult renders an opaque result value as a single short line.
func summarizeResult(result interface{}) string {
	if result == nil {
		return "-"
	}
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf("%v", result)
	}
	return truncate(string(data), 60)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
