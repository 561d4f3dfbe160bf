package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumber marks a numeric field that could not be coerced.
	// It is the only failure the tools may recover from by skipping the record.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidDate marks a date field that does not match 2006-01-02.
	ErrInvalidDate = errors.New("invalid date")

	// ErrShortRow is returned when a row has fewer columns than its layout needs.
	ErrShortRow = errors.New("row too short for column layout")

	// ErrNoFeatures is returned when a GeoJSON document has no "features" array.
	ErrNoFeatures = errors.New("geojson document has no features array")
)

// FieldError describes one field that failed coercion.
type FieldError struct {
	Column int    // zero-based column index, or -1 for JSON paths
	Field  string // column or JSON path name
	Value  string // raw text as found in the source
	Err    error  // ErrInvalidNumber or ErrInvalidDate
}

func (e *FieldError) Error() string {
	if e.Column >= 0 {
		return fmt.Sprintf("column %d (%s): %q: %v", e.Column, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// IsSkippable reports whether err is a numeric coercion failure, the one kind
// of record error that may be logged and skipped.
func IsSkippable(err error) bool {
	return errors.Is(err, ErrInvalidNumber)
}
