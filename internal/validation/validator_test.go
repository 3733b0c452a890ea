package validation

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckMode(t *testing.T) {
	available := []string{"memory", "latency", "security", "energy", "scaling"}

	tests := []struct {
		name     string
		mode     string
		expected ValidationResult
	}{
		{
			name: "all selects everything",
			mode: "all",
			expected: ValidationResult{
				Valid:  true,
				Reason: "mode all selects every registered benchmark",
			},
		},
		{
			name: "single benchmark by name",
			mode: "memory",
			expected: ValidationResult{
				Valid:  true,
				Reason: "mode memory selects a single benchmark",
			},
		},
		{
			name: "mixed case is normalized",
			mode: "  Latency ",
			expected: ValidationResult{
				Valid:  true,
				Reason: "mode latency selects a single benchmark",
			},
		},
		{
			name: "unknown mode",
			mode: "turbo",
			expected: ValidationResult{
				Valid:  false,
				Reason: "unknown mode: turbo",
			},
		},
		{
			name: "empty mode",
			mode: "",
			expected: ValidationResult{
				Valid:  false,
				Reason: "execution mode cannot be empty",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckMode(tt.mode, available)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestValidateMode(t *testing.T) {
	available := []string{"memory", "latency"}

	assert.NoError(t, ValidateMode("all", available))
	assert.NoError(t, ValidateMode("memory", available))

	err := ValidateMode("turbo", available)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode: turbo")
	assert.Contains(t, err.Error(), "memory, latency")
}

func TestValidateMaxParallel(t *testing.T) {
	tests := []struct {
		name        string
		maxParallel int
		wantErr     bool
	}{
		{name: "minimum", maxParallel: 1, wantErr: false},
		{name: "typical", maxParallel: 4, wantErr: false},
		{name: "maximum", maxParallel: 32, wantErr: false},
		{name: "zero", maxParallel: 0, wantErr: true},
		{name: "negative", maxParallel: -1, wantErr: true},
		{name: "too large", maxParallel: 33, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMaxParallel(tt.maxParallel, 32)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTimeout(t *testing.T) {
	assert.NoError(t, ValidateTimeout(10*time.Minute))
	assert.Error(t, ValidateTimeout(0))
	assert.Error(t, ValidateTimeout(-time.Second))
}

func TestValidateOutputPath(t *testing.T) {
	assert.NoError(t, ValidateOutputPath("report.json"))
	assert.NoError(t, ValidateOutputPath(filepath.Join(t.TempDir(), "missing", "report.json")))

	assert.Error(t, ValidateOutputPath(""))
	assert.Error(t, ValidateOutputPath("   "))

	dir := t.TempDir()
	assert.Error(t, ValidateOutputPath(dir), "directories are not valid report targets")

	existing := filepath.Join(dir, "report.json")
	assert.NoError(t, os.WriteFile(existing, []byte("{}"), 0644))
	assert.NoError(t, ValidateOutputPath(existing), "existing files may be overwritten")
}

func TestValidateWatchInterval(t *testing.T) {
	assert.NoError(t, ValidateWatchInterval(200*time.Millisecond))
	assert.Error(t, ValidateWatchInterval(time.Millisecond))
}
