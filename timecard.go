// Package timecard converts scanned Hebrew payroll timecard PDFs into
// structured daily attendance records.
//
// Basic usage:
//
//	records, warnings, err := timecard.Open("timecards.pdf").Records()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", timecard.FormatWarnings(warnings))
//	}
//
// With options:
//
//	records, _, err := timecard.Open("timecards.pdf").
//	    FixedRanges(tables.DefaultRanges()).
//	    WithContext(ctx).
//	    Records()
//
// For advanced use cases the lower-level tables, headers and pdfdoc
// packages are also available.
package timecard

import (
	"github.com/ymizrahi/timecard/model"
	"github.com/ymizrahi/timecard/pdfdoc"
)

// Source supplies pages of positioned word tokens plus a raw text blob
// per page. pdfdoc.Document is the standard implementation; tests and
// other front ends can provide their own.
type Source interface {
	// PageCount returns the number of pages.
	PageCount() int
	// Page returns page i (1-based) as positioned word tokens and a
	// line-structured text blob, both in raw visual order.
	Page(i int) (tokens []model.WordToken, text string, err error)
	// Close releases the source's resources.
	Close() error
}

var _ Source = (*pdfdoc.Document)(nil)

// Open prepares a conversion of the PDF at filename and returns a
// Converter for fluent configuration. The file is opened lazily by the
// terminal operation and closed when it returns.
//
// Example:
//
//	records, warnings, err := timecard.Open("timecards.pdf").Records()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates a Converter over an already-open source. The caller
// keeps responsibility for closing the source.
//
// Example:
//
//	doc, err := pdfdoc.Open("timecards.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer doc.Close()
//	records, warnings, err := timecard.FromSource(doc).Records()
func FromSource(src Source) *Converter {
	return &Converter{
		source:       src,
		ownsSource:   false,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// Must wraps a call returning (T, error) and panics on error. Intended
// for scripts and tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRecords wraps a call to Records(), panics on error and discards
// warnings. Intended for scripts and tests.
//
// Example:
//
//	records := timecard.MustRecords(timecard.Open("timecards.pdf").Records())
func MustRecords[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
