package progress

import (
	"fmt"
	"strings"
	"time"
)

// Phase represents a phase of a suite run
type Phase string

const (
	PhaseSelection Phase = "Selection"
	PhasePlanning  Phase = "Planning"
	PhaseWave      Phase = "Wave"
	PhaseTail      Phase = "Tail"
	PhaseSummary   Phase = "Summary"
)

// Snapshot contains progress information at one instant of a run
type Snapshot struct {
	CurrentPhase   Phase
	TotalTasks     int
	CompletedTasks int
	FailedTasks    int
	Running        []string // names of benchmarks currently executing
	ElapsedTime    time.Duration
}

// Reporter handles periodic progress reporting
type Reporter struct {
	startTime      time.Time
	lastReportTime time.Time
	reportInterval time.Duration
}

// NewReporter creates a new progress reporter
func NewReporter(interval time.Duration) *Reporter {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Reporter{
		startTime:      time.Now(),
		lastReportTime: time.Now(),
		reportInterval: interval,
	}
}

// ShouldReport returns true if it's time to report progress
func (r *Reporter) ShouldReport() bool {
	return time.Since(r.lastReportTime) >= r.reportInterval
}

// Elapsed returns the time since the reporter was created
func (r *Reporter) Elapsed() time.Duration {
	return time.Since(r.startTime)
}

// Report generates a formatted progress report and resets the report timer
func (r *Reporter) Report(info Snapshot) string {
	r.lastReportTime = time.Now()

	var sb strings.Builder

	percentage := 0.0
	if info.TotalTasks > 0 {
		percentage = float64(info.CompletedTasks) / float64(info.TotalTasks) * 100
	}

	sb.WriteString(fmt.Sprintf("Progress: %d/%d benchmarks completed (%.1f%%)",
		info.CompletedTasks, info.TotalTasks, percentage))

	if info.CurrentPhase != "" {
		sb.WriteString(fmt.Sprintf(" | Phase: %s", info.CurrentPhase))
	}

	sb.WriteString(fmt.Sprintf(" | Elapsed: %v", info.ElapsedTime.Round(time.Second)))

	if info.FailedTasks > 0 {
		sb.WriteString(fmt.Sprintf(" | Failed: %d", info.FailedTasks))
	}

	if len(info.Running) > 0 {
		sb.WriteString(fmt.Sprintf("\n   Running: %s", strings.Join(info.Running, ", ")))
	}

	if eta := CalculateETA(info.CompletedTasks, info.TotalTasks, info.ElapsedTime); eta > 0 {
		sb.WriteString(fmt.Sprintf("\n   ETA: %s", FormatDuration(eta)))
	}

	return sb.String()
}

// ReportPhaseStart reports the beginning of a new phase
func (r *Reporter) ReportPhaseStart(phase Phase, description string) string {
	return fmt.Sprintf("Starting %s phase: %s", phase, description)
}

// ReportPhaseComplete reports completion of a phase
func (r *Reporter) ReportPhaseComplete(phase Phase, duration time.Duration, success bool) string {
	status := "COMPLETED"
	if !success {
		status = "FAILED"
	}
	return fmt.Sprintf("%s phase %s in %v", phase, status, duration.Round(time.Second))
}

// CalculateETA estimates time remaining based on current progress
func CalculateETA(completed, total int, elapsed time.Duration) time.Duration {
	if completed <= 0 || total <= 0 || completed >= total {
		return 0
	}

	averageTimePerTask := elapsed / time.Duration(completed)
	remainingTasks := total - completed
	return averageTimePerTask * time.Duration(remainingTasks)
}

// FormatDuration formats a duration in a user-friendly way
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}
