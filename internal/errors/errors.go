package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Snapshot errors (SNAPSHOT-001 to SNAPSHOT-099)
	ErrCodeSnapshotNotFound  ErrorCode = "SNAPSHOT-001"
	ErrCodeSnapshotInvalid   ErrorCode = "SNAPSHOT-002"
	ErrCodeSnapshotUnmarshal ErrorCode = "SNAPSHOT-003"
	ErrCodeSnapshotEmpty     ErrorCode = "SNAPSHOT-004"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigNotFound      ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid       ErrorCode = "CONFIG-002"
	ErrCodeConfigWeights       ErrorCode = "CONFIG-003"
	ErrCodeConfigThreshold     ErrorCode = "CONFIG-004"
	ErrCodeConfigSeverity      ErrorCode = "CONFIG-005"
	ErrCodeConfigIgnorePattern ErrorCode = "CONFIG-006"

	// Baseline errors (BASELINE-001 to BASELINE-099)
	ErrCodeBaselineNotFound ErrorCode = "BASELINE-001"
	ErrCodeBaselineInvalid  ErrorCode = "BASELINE-002"
	ErrCodeBaselineWrite    ErrorCode = "BASELINE-003"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeFileUnmarshal   ErrorCode = "IO-004"
	ErrCodeFileMarshal     ErrorCode = "IO-005"
)

// DriftscopeError represents an enhanced error with code, suggestions, and documentation
type DriftscopeError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *DriftscopeError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *DriftscopeError) Unwrap() error {
	return e.Cause
}

// New creates a new DriftscopeError
func New(code ErrorCode, message string) *DriftscopeError {
	return &DriftscopeError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new DriftscopeError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *DriftscopeError {
	return &DriftscopeError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *DriftscopeError) WithSuggestion(suggestion string) *DriftscopeError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *DriftscopeError) WithSuggestions(suggestions ...string) *DriftscopeError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *DriftscopeError) WithDocs(url string) *DriftscopeError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewSnapshotNotFoundError creates a snapshot file not found error
func NewSnapshotNotFoundError(path string) *DriftscopeError {
	return New(ErrCodeSnapshotNotFound, fmt.Sprintf("snapshot file not found: %s", path)).
		WithSuggestion("Run your scanner to produce a normalized snapshot first").
		WithSuggestion("Check if the file path or glob pattern is correct")
}

// NewSnapshotUnmarshalError creates a snapshot parse error
func NewSnapshotUnmarshalError(path string, cause error) *DriftscopeError {
	return Wrap(ErrCodeSnapshotUnmarshal, fmt.Sprintf("failed to parse snapshot file: %s", path), cause).
		WithSuggestion("Snapshot files must be JSON or YAML in the normalized component/token schema").
		WithSuggestion("Re-run the scanner that produced this file")
}

// NewConfigWeightsError creates a similarity-weight validation error
func NewConfigWeightsError(sum float64) *DriftscopeError {
	return New(ErrCodeConfigWeights, fmt.Sprintf("similarity weights must sum to 1.0, got %.3f", sum)).
		WithSuggestion("Adjust matching.weights so name+props+variants+dependencies equals 1.0")
}

// NewConfigThresholdError creates a confidence-threshold validation error
func NewConfigThresholdError(field string, value float64) *DriftscopeError {
	return New(ErrCodeConfigThreshold, fmt.Sprintf("%s must be between 0 and 1, got %.3f", field, value)).
		WithSuggestion("Confidence thresholds are fractions in the range [0, 1]")
}

// NewBaselineNotFoundError creates a baseline file not found error
func NewBaselineNotFoundError(path string) *DriftscopeError {
	return New(ErrCodeBaselineNotFound, fmt.Sprintf("baseline file not found: %s", path)).
		WithSuggestion("Run 'driftscope baseline accept' to record the current drift as accepted")
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string) *DriftscopeError {
	return New(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Verify the file exists and you have read permissions")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *DriftscopeError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}
