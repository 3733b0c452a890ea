package errors

import (
	"fmt"
	"strings"
)

// ErrorCategory represents the category of error
type ErrorCategory string

const (
	// ErrorCategoryValidation represents input validation errors
	ErrorCategoryValidation ErrorCategory = "VALIDATION"
	// ErrorCategoryConfiguration represents configuration errors
	ErrorCategoryConfiguration ErrorCategory = "CONFIGURATION"
	// ErrorCategoryExecution represents benchmark execution errors
	ErrorCategoryExecution ErrorCategory = "EXECUTION"
	// ErrorCategoryStorage represents report persistence errors
	ErrorCategoryStorage ErrorCategory = "STORAGE"
	// ErrorCategoryWatch represents report monitoring errors
	ErrorCategoryWatch ErrorCategory = "WATCH"
)

// SuiteError represents a structured error with context and troubleshooting information
type SuiteError struct {
	Category        ErrorCategory
	Code            string
	Message         string
	Operation       string
	Context         map[string]interface{}
	Troubleshooting []string
	OriginalError   error
}

// Error implements the error interface
func (e *SuiteError) Error() string {
	var sb strings.Builder

	// Error header with category and code
	sb.WriteString(fmt.Sprintf("%s-%s: %s", e.Category, e.Code, e.Message))

	if e.Operation != "" {
		sb.WriteString(fmt.Sprintf("\nOperation: %s", e.Operation))
	}

	if len(e.Context) > 0 {
		sb.WriteString("\nContext:")
		for key, value := range e.Context {
			sb.WriteString(fmt.Sprintf("\n  %s: %v", key, value))
		}
	}

	if len(e.Troubleshooting) > 0 {
		sb.WriteString("\nTroubleshooting:")
		for i, step := range e.Troubleshooting {
			sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, step))
		}
	}

	if e.OriginalError != nil {
		sb.WriteString(fmt.Sprintf("\nUnderlying error: %v", e.OriginalError))
	}

	return sb.String()
}

// Unwrap returns the original error for error chain compatibility
func (e *SuiteError) Unwrap() error {
	return e.OriginalError
}

// NewSuiteError creates a new suite error with the specified parameters
func NewSuiteError(category ErrorCategory, code, message, operation string) *SuiteError {
	return &SuiteError{
		Category:        category,
		Code:            code,
		Message:         message,
		Operation:       operation,
		Context:         make(map[string]interface{}),
		Troubleshooting: []string{},
	}
}

// WithContext adds context information to the error
func (e *SuiteError) WithContext(key string, value interface{}) *SuiteError {
	e.Context[key] = value
	return e
}

// WithTroubleshooting adds troubleshooting steps to the error
func (e *SuiteError) WithTroubleshooting(steps ...string) *SuiteError {
	e.Troubleshooting = append(e.Troubleshooting, steps...)
	return e
}

// WithOriginalError adds the original error to the suite error
func (e *SuiteError) WithOriginalError(err error) *SuiteError {
	e.OriginalError = err
	return e
}

// Common error constructors

// NewValidationError creates a new validation error
func NewValidationError(code, message, operation string) *SuiteError {
	return NewSuiteError(ErrorCategoryValidation, code, message, operation)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(code, message, operation string) *SuiteError {
	return NewSuiteError(ErrorCategoryConfiguration, code, message, operation)
}

// NewExecutionError creates a new benchmark execution error
func NewExecutionError(code, message, operation string) *SuiteError {
	return NewSuiteError(ErrorCategoryExecution, code, message, operation)
}

// NewStorageError creates a new report persistence error
func NewStorageError(code, message, operation string) *SuiteError {
	return NewSuiteError(ErrorCategoryStorage, code, message, operation)
}

// NewWatchError creates a new report monitoring error
func NewWatchError(code, message, operation string) *SuiteError {
	return NewSuiteError(ErrorCategoryWatch, code, message, operation)
}
