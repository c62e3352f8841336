package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds, usable with errors.Is against any of the typed errors below
var (
	ErrLoad           = errors.New("load error")
	ErrParse          = errors.New("parse error")
	ErrEmptyInput     = errors.New("empty input")
	ErrNotFound       = errors.New("not found")
	ErrColumnNotFound = errors.New("column not found")
)

// LoadError reports a tabular source that could not be read or is malformed
type LoadError struct {
	Path   string // file path or source name
	Line   int    // 1-based line of the offending record (0 if unknown)
	Reason string // human-readable explanation
	Err    error  // underlying cause (may be nil)
}

func (e *LoadError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("failed to load %s", e.Path))

	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, ": ")
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// ParseError reports a value that could not be read as a number
type ParseError struct {
	Column   string
	Value    string
	RowIndex int // 0-based position in the aggregated rows (-1 if unknown)
	Err      error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("column %s: cannot parse %q as number", e.Column, e.Value)
	if e.RowIndex >= 0 {
		msg += fmt.Sprintf(" at row %d", e.RowIndex)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// EmptyInputError is returned when a reduction is asked for over zero rows
type EmptyInputError struct {
	Column string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("cannot aggregate column %s: no rows", e.Column)
}

func (e *EmptyInputError) Is(target error) bool { return target == ErrEmptyInput }

// NotFoundError is returned by catalog lookups that miss
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("table '%s' not found", e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ColumnNotFoundError is returned when a record has no value for a column
type ColumnNotFoundError struct {
	TableName  string
	ColumnName string
}

func (e *ColumnNotFoundError) Error() string {
	if e.TableName == "" {
		return fmt.Sprintf("column '%s' not found", e.ColumnName)
	}
	return fmt.Sprintf("column '%s' not found in table '%s'", e.ColumnName, e.TableName)
}

func (e *ColumnNotFoundError) Is(target error) bool { return target == ErrColumnNotFound }
