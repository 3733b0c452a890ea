package validation

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ModeAll runs every registered benchmark; any other mode names a single benchmark.
const ModeAll = "all"

// ValidationResult represents the result of a mode check
type ValidationResult struct {
	Valid  bool
	Reason string
}

// NormalizeMode trims and lowercases a mode string for comparison
func NormalizeMode(mode string) string {
	return strings.ToLower(strings.TrimSpace(mode))
}

// CheckMode verifies an execution mode against the registered benchmark names
func CheckMode(mode string, available []string) ValidationResult {
	mode = NormalizeMode(mode)

	if mode == "" {
		return ValidationResult{
			Valid:  false,
			Reason: "execution mode cannot be empty",
		}
	}

	if mode == ModeAll {
		return ValidationResult{
			Valid:  true,
			Reason: "mode all selects every registered benchmark",
		}
	}

	for _, name := range available {
		if name == mode {
			return ValidationResult{
				Valid:  true,
				Reason: fmt.Sprintf("mode %s selects a single benchmark", mode),
			}
		}
	}

	return ValidationResult{
		Valid:  false,
		Reason: fmt.Sprintf("unknown mode: %s", mode),
	}
}

// ValidateMode validates an execution mode and returns an error when it
// neither equals "all" nor names a registered benchmark
func ValidateMode(mode string, available []string) error {
	result := CheckMode(mode, available)
	if !result.Valid {
		return fmt.Errorf("%s (available: %s, %s)", result.Reason, ModeAll, strings.Join(available, ", "))
	}
	return nil
}

// ValidateMaxParallel validates the parallelism value is within an acceptable range.
func ValidateMaxParallel(maxParallel int, max int) error {
	if maxParallel < 1 || maxParallel > max {
		return fmt.Errorf("max-parallel must be between 1 and %d, got %d", max, maxParallel)
	}
	return nil
}

// ValidateTimeout validates the per-benchmark time budget
func ValidateTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return fmt.Errorf("task-timeout must be positive, got %s", timeout)
	}
	return nil
}

// ValidateOutputPath validates the report destination path
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("output path %s is a directory", path)
	}
	return nil
}

// ValidateWatchInterval validates the watch debounce interval
func ValidateWatchInterval(interval time.Duration) error {
	if interval < 10*time.Millisecond {
		return fmt.Errorf("watch interval must be at least 10ms, got %s", interval)
	}
	return nil
}
