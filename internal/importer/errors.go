package importer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyValue is wrapped by a RowParseError for a blank required field.
	ErrEmptyValue = errors.New("value is empty")
	// ErrNegativeCount is wrapped by a RowParseError for a count below zero.
	ErrNegativeCount = errors.New("count must not be negative")
	// ErrNotFinite is wrapped by a RowParseError for NaN or infinite percentages.
	ErrNotFinite = errors.New("value must be a finite number")
	// ErrEmptySource is wrapped by a SourceUnavailableError when there is no header row.
	ErrEmptySource = errors.New("source has no header row")
)

// RowParseError reports a field of a data row that could not be parsed.
type RowParseError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *RowParseError) Error() string {
	return fmt.Sprintf("row %d: invalid %s %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *RowParseError) Unwrap() error {
	return e.Err
}

// MalformedRowError reports a data row with fewer fields than the layout needs.
type MalformedRowError struct {
	Row  int
	Got  int
	Want int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("row %d: expected at least %d fields, got %d", e.Row, e.Want, e.Got)
}

// SourceUnavailableError fails a whole import run: the source is absent or unreadable.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("stats source unavailable: %v", e.Err)
	}
	return fmt.Sprintf("stats source %s unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}
