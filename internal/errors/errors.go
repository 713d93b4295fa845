package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConfigNotFound    = errors.New("config file not found")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrClipboardDisabled = errors.New("clipboard unavailable")
)

// ArgumentError reports an argument a request cannot be built from.
type ArgumentError struct {
	Argument string
	Message  string
}

// InvalidArgument returns an ArgumentError for arg.
func InvalidArgument(arg, message string) *ArgumentError {
	return &ArgumentError{Argument: arg, Message: message}
}

func (e *ArgumentError) Error() string {
	if e.Argument == "" {
		return "invalid argument: " + e.Message
	}
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Message)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// GplayError wraps an error with a user-friendly suggestion.
type GplayError struct {
	Err        error
	Suggestion string
}

func (e *GplayError) Error() string {
	return e.Err.Error()
}

func (e *GplayError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &GplayError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// Check if it's already a GplayError with suggestion
	var gErr *GplayError
	if errors.As(err, &gErr) && gErr.Suggestion != "" {
		return gErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	// Station resolution
	var argErr *ArgumentError
	if errors.As(err, &argErr) && argErr.Argument == "station" {
		return "Pass --station-id, or --seed with --seed-type curated-station"
	}
	if errors.Is(err, ErrInvalidArgument) {
		return "Check the command flags with 'gplay <command> --help'"
	}

	// Input documents
	if errors.Is(err, ErrInvalidInput) || strings.Contains(errStr, "failed to decode") {
		return "Input must be a JSON object such as {\"id\":\"…\",\"client_id\":\"…\",\"response_code\":\"OK\"}"
	}

	if errors.Is(err, ErrClipboardDisabled) || strings.Contains(errStr, "clipboard") {
		return "No clipboard utility found. Install xclip, xsel or wl-clipboard, or drop --copy"
	}

	// Config errors
	if errors.Is(err, ErrConfigNotFound) {
		return "Run 'gplay config init' to create a configuration file"
	}
	if errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Run 'gplay config show' to inspect your configuration"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}

// PartialResult represents a result that may have partial failures.
type PartialResult[T any] struct {
	Data   T
	Errors []error
}

// HasErrors returns true if there were any errors.
func (p *PartialResult[T]) HasErrors() bool {
	return len(p.Errors) > 0
}

// AddError adds an error to the partial result.
func (p *PartialResult[T]) AddError(err error) {
	if err != nil {
		p.Errors = append(p.Errors, err)
	}
}

// ErrorSummary returns a summary of all errors.
func (p *PartialResult[T]) ErrorSummary() string {
	if len(p.Errors) == 0 {
		return ""
	}
	if len(p.Errors) == 1 {
		return p.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors occurred:\n", len(p.Errors)))
	for i, err := range p.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}
