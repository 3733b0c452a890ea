package testutil

import (
	"os"
	"path/filepath"
)

// GetBenchBinaryPath returns the path to the orac-bench binary for
// integration tests. It checks multiple locations in order of preference:
// 1. Current directory (./orac-bench) - where Makefile copies it
// 2. Parent directory (../orac-bench) - for a root-level 'go build'
// 3. bin directory (../bin/orac-bench) - where make build creates it
func GetBenchBinaryPath() string {
	// Check current directory first (where Makefile copies the binary)
	if _, err := os.Stat("orac-bench"); err == nil {
		return "./orac-bench"
	}

	// Check parent directory (root-level go build)
	if _, err := os.Stat("../orac-bench"); err == nil {
		return "../orac-bench"
	}

	// Check bin directory
	binPath := filepath.Join("..", "bin", "orac-bench")
	if _, err := os.Stat(binPath); err == nil {
		return binPath
	}

	// Default to current directory (will fail if binary doesn't exist)
	return "./orac-bench"
}
