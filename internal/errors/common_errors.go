package errors

import "fmt"

// Common error codes
const (
	// Validation error codes
	CodeValidationMode   = "001"
	CodeValidationFlag   = "002"
	CodeValidationTarget = "003"
	CodeValidationConfig = "004"

	// Configuration error codes
	CodeConfigFile     = "001"
	CodeConfigRegistry = "002"

	// Execution error codes
	CodeExecutionFailed  = "001"
	CodeExecutionTimeout = "002"
	CodeExecutionPanic   = "003"

	// Storage error codes
	CodeStorageWrite     = "001"
	CodeStorageSerialize = "002"

	// Watch error codes
	CodeWatchTarget = "001"
	CodeWatchSetup  = "002"
)

// NewUnknownModeError creates an error for an unrecognized execution mode
func NewUnknownModeError(mode string, available []string) *SuiteError {
	return NewValidationError(CodeValidationMode,
		fmt.Sprintf("Unknown execution mode '%s'", mode),
		"Mode selection").
		WithContext("mode", mode).
		WithContext("available", available).
		WithTroubleshooting(
			"Use 'all' to run the complete benchmark suite",
			"Use a registered benchmark name to run a single benchmark",
			"Run 'orac-bench list' to see the registered benchmarks",
		)
}

// NewInvalidFlagError creates an error for a flag value outside its accepted range
func NewInvalidFlagError(flag string, value interface{}, reason string) *SuiteError {
	return NewValidationError(CodeValidationFlag,
		fmt.Sprintf("Invalid value for --%s: %v", flag, value),
		"Flag validation").
		WithContext("flag", flag).
		WithContext("value", value).
		WithContext("reason", reason).
		WithTroubleshooting(
			"Check the command syntax and parameter values",
			"Use --help to see available options and accepted ranges",
		)
}

// NewConfigFileError creates an error for an unreadable or malformed configuration file
func NewConfigFileError(path string, originalErr error) *SuiteError {
	return NewConfigurationError(CodeConfigFile,
		fmt.Sprintf("Failed to load configuration file '%s'", path),
		"Configuration load").
		WithContext("path", path).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Verify the file exists and is readable",
			"Check the YAML syntax for errors",
			"Remove unknown keys; the configuration is strictly validated",
		)
}

// NewRegistryDefinitionError creates an error for an invalid benchmark registry
func NewRegistryDefinitionError(message string, originalErr error) *SuiteError {
	return NewConfigurationError(CodeConfigRegistry,
		message,
		"Registry validation").
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Check benchmark names for duplicates",
			"Verify every dependency names a registered benchmark",
			"Ensure the dependency graph has no cycles",
		)
}

// NewBenchmarkFailedError creates an error for a benchmark whose work function failed
func NewBenchmarkFailedError(benchmark string, originalErr error) *SuiteError {
	return NewExecutionError(CodeExecutionFailed,
		fmt.Sprintf("Benchmark '%s' failed", benchmark),
		"Benchmark execution").
		WithContext("benchmark", benchmark).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Check the error entry in the report for details",
			fmt.Sprintf("Re-run in isolation with 'orac-bench run --mode %s --verbose'", benchmark),
		)
}

// NewBenchmarkPanicError creates an error for a benchmark whose work function panicked
func NewBenchmarkPanicError(benchmark string, originalErr error) *SuiteError {
	return NewExecutionError(CodeExecutionPanic,
		fmt.Sprintf("Benchmark '%s' panicked", benchmark),
		"Benchmark execution").
		WithContext("benchmark", benchmark).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"This indicates a bug in the benchmark implementation",
			"Re-run with --debug to capture the stack trace in the operational log",
		)
}

// NewBenchmarkTimeoutError creates an error for a benchmark that exceeded its time budget
func NewBenchmarkTimeoutError(benchmark string, timeout string) *SuiteError {
	return NewExecutionError(CodeExecutionTimeout,
		fmt.Sprintf("Benchmark '%s' did not complete within %s", benchmark, timeout),
		"Benchmark execution").
		WithContext("benchmark", benchmark).
		WithContext("timeout", timeout).
		WithTroubleshooting(
			"Increase the budget with --task-timeout",
			"Reduce the benchmark workload in the configuration file",
		)
}

// NewReportWriteError creates an error for a failed report persistence attempt
func NewReportWriteError(path string, originalErr error) *SuiteError {
	return NewStorageError(CodeStorageWrite,
		fmt.Sprintf("Failed to write report to '%s'", path),
		"Report persistence").
		WithContext("path", path).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Verify the target directory exists and is writable",
			"Check available disk space",
		)
}

// NewWatchSetupError creates an error for a report monitor that could not be started
func NewWatchSetupError(originalErr error) *SuiteError {
	return NewWatchError(CodeWatchSetup,
		"Failed to initialize the report monitor",
		"Report watch").
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Inotify resources may be exhausted; close other file watchers and retry",
		)
}

// NewWatchTargetError creates an error for a watch target whose directory is unavailable
func NewWatchTargetError(path string, originalErr error) *SuiteError {
	return NewWatchError(CodeWatchTarget,
		fmt.Sprintf("Cannot watch report path '%s'", path),
		"Report watch").
		WithContext("path", path).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Verify the parent directory of the report exists",
			"Start the suite with 'orac-bench run' to create the report",
		)
}

// GetErrorSeverity returns the severity level of an error
func GetErrorSeverity(err error) string {
	if suiteErr, ok := err.(*SuiteError); ok {
		switch suiteErr.Category {
		case ErrorCategoryValidation, ErrorCategoryConfiguration:
			return "WARNING"
		case ErrorCategoryWatch:
			return "ERROR"
		case ErrorCategoryExecution, ErrorCategoryStorage:
			return "CRITICAL"
		default:
			return "ERROR"
		}
	}
	return "ERROR"
}
