// Package parsererror defines the errors returned while reading bank exports.
package parsererror

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAccountNumber is wrapped when the first line has no account number field.
	ErrMissingAccountNumber = errors.New("missing account number")

	// ErrInvalidAmount is wrapped when a transaction amount is not a number.
	ErrInvalidAmount = errors.New("invalid amount")
)

// ParseError represents a fatal error at a specific line of an export file.
// Line is 1-based.
type ParseError struct {
	File  string
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: failed to parse %s='%s': %v",
		e.File, e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected export format.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string // optional, for debugging
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// FileError wraps an I/O failure on an input file.
type FileError struct {
	FilePath string
	Op       string
	Err      error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.FilePath, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
