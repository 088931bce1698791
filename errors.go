package timecard

import (
	"errors"
	"fmt"
)

// ErrNoSource is returned when a Converter has neither a filename nor a
// Source to read from.
var ErrNoSource = errors.New("timecard: no input source")

// ErrNoRecords is returned when the whole document yields no attendance
// records, typically because the input is not a timecard PDF.
var ErrNoRecords = errors.New("timecard: no attendance records found")

// PageError describes a failure local to one page. Page-local failures
// surface as warnings so the remaining pages still convert; the wrapped
// error is preserved for callers that inspect warnings programmatically.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}
