package errors

import (
	"fmt"
	"strings"
)

// DisplayError formats an error for user-friendly display
func DisplayError(err error) string {
	if suiteErr, ok := err.(*SuiteError); ok {
		return suiteErr.Error()
	}

	// For non-suite errors, provide a simple format
	return fmt.Sprintf("Error: %v", err)
}

// DisplayErrorSummary provides a brief summary of the error for logs
func DisplayErrorSummary(err error) string {
	if suiteErr, ok := err.(*SuiteError); ok {
		return fmt.Sprintf("%s-%s: %s", suiteErr.Category, suiteErr.Code, suiteErr.Message)
	}

	errStr := err.Error()
	if len(errStr) > 100 {
		return errStr[:97] + "..."
	}
	return errStr
}

// ShouldDisplayTroubleshooting determines if troubleshooting info should be shown
func ShouldDisplayTroubleshooting(err error) bool {
	if suiteErr, ok := err.(*SuiteError); ok {
		return len(suiteErr.Troubleshooting) > 0
	}
	return false
}

// FormatForCLI formats an error for command-line display with proper spacing
func FormatForCLI(err error) string {
	if suiteErr, ok := err.(*SuiteError); ok {
		var sb strings.Builder

		// Error header
		sb.WriteString(fmt.Sprintf("\n%s Error [%s-%s]\n",
			string(suiteErr.Category), suiteErr.Category, suiteErr.Code))
		sb.WriteString(fmt.Sprintf("  %s\n", suiteErr.Message))

		// Operation context
		if suiteErr.Operation != "" {
			sb.WriteString(fmt.Sprintf("\nFailed Operation: %s\n", suiteErr.Operation))
		}

		// Context details
		if len(suiteErr.Context) > 0 {
			sb.WriteString("\nDetails:\n")
			for key, value := range suiteErr.Context {
				sb.WriteString(fmt.Sprintf("  %s: %v\n", key, value))
			}
		}

		// Troubleshooting steps
		if len(suiteErr.Troubleshooting) > 0 {
			sb.WriteString("\nHow to resolve:\n")
			for i, step := range suiteErr.Troubleshooting {
				sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
			}
		}

		// Original error (for debugging)
		if suiteErr.OriginalError != nil {
			sb.WriteString(fmt.Sprintf("\nTechnical details: %v\n", suiteErr.OriginalError))
		}

		return sb.String()
	}

	return fmt.Sprintf("\nError: %v\n", err)
}

// IsUserError determines if an error is due to user input/configuration
func IsUserError(err error) bool {
	if suiteErr, ok := err.(*SuiteError); ok {
		return suiteErr.Category == ErrorCategoryValidation ||
			suiteErr.Category == ErrorCategoryConfiguration
	}
	return false
}

// GetErrorCode extracts the error code for reporting
func GetErrorCode(err error) string {
	if suiteErr, ok := err.(*SuiteError); ok {
		return fmt.Sprintf("%s-%s", suiteErr.Category, suiteErr.Code)
	}
	return "UNKNOWN"
}
