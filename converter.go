package timecard

import (
	"context"
	"fmt"
	"strings"

	"github.com/ymizrahi/timecard/headers"
	"github.com/ymizrahi/timecard/hebtext"
	"github.com/ymizrahi/timecard/logging"
	"github.com/ymizrahi/timecard/model"
	"github.com/ymizrahi/timecard/pdfdoc"
	"github.com/ymizrahi/timecard/records"
	"github.com/ymizrahi/timecard/tables"
)

// Converter provides a fluent interface for converting timecard PDFs to
// attendance records. Each configuration method returns a new Converter
// instance, making it safe for concurrent use and allowing method
// chaining.
type Converter struct {
	// Source
	filename string
	source   Source

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool

	// Configuration
	options convertOptions
	ctx     context.Context

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a copy of options.
// Each chain method returns a new instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename:     c.filename,
		source:       c.source,
		ownsSource:   c.ownsSource,
		sourceOpened: c.sourceOpened,
		options:      c.options.clone(),
		ctx:          c.ctx,
		err:          c.err,
	}
}

// FixedRanges switches the conversion to the fixed-range binding
// strategy: tokens are bound to the named columns of t by horizontal
// containment instead of the adaptive nearest-column alignment. Use this
// for layouts whose column positions are known and stable.
func (c *Converter) FixedRanges(t *tables.RangeTable) *Converter {
	newConv := c.clone()
	if t == nil {
		newConv.err = fmt.Errorf("timecard: FixedRanges requires a non-nil range table")
		return newConv
	}
	newConv.options.ranges = t
	return newConv
}

// Labels overrides the label substrings that identify role rows under
// the adaptive strategy.
func (c *Converter) Labels(ls tables.LabelSet) *Converter {
	newConv := c.clone()
	newConv.options.labels = ls
	return newConv
}

// YTolerance overrides the vertical slack, in points, for grouping
// tokens into rows.
func (c *Converter) YTolerance(tol float64) *Converter {
	newConv := c.clone()
	if tol <= 0 {
		newConv.err = fmt.Errorf("timecard: YTolerance must be positive, got %v", tol)
		return newConv
	}
	newConv.options.yTolerance = tol
	return newConv
}

// WithContext attaches ctx to the conversion. Cancellation is checked
// between pages.
func (c *Converter) WithContext(ctx context.Context) *Converter {
	newConv := c.clone()
	newConv.ctx = ctx
	return newConv
}

// ensureSource opens the source if not already open.
func (c *Converter) ensureSource() error {
	if c.sourceOpened {
		return nil
	}
	if c.filename == "" {
		return ErrNoSource
	}
	doc, err := pdfdoc.Open(c.filename)
	if err != nil {
		return err
	}
	c.source = doc
	c.ownsSource = true
	c.sourceOpened = true
	return nil
}

// Close releases resources associated with the Converter. It is safe to
// call Close multiple times.
func (c *Converter) Close() error {
	if c.ownsSource && c.source != nil {
		err := c.source.Close()
		c.source = nil
		c.ownsSource = false
		c.sourceOpened = false
		return err
	}
	return nil
}

// Records is the terminal operation: it runs the conversion and returns
// the attendance records in page order. Warnings indicate non-fatal
// issues such as pages that failed to parse; an error means the
// conversion as a whole produced nothing usable.
//
// Example:
//
//	records, warnings, err := timecard.Open("timecards.pdf").Records()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", timecard.FormatWarnings(warnings))
//	}
func (c *Converter) Records() ([]model.AttendanceRecord, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	if err := c.ensureSource(); err != nil {
		return nil, nil, err
	}
	if c.ownsSource {
		defer c.Close()
	}

	log := logging.Logger()
	hdr := headers.NewContext()
	asm := records.NewAssembler()
	classifier := &tables.Classifier{Labels: c.options.labels}

	var out []model.AttendanceRecord
	var warnings []Warning

	pageCount := c.source.PageCount()
	for i := 1; i <= pageCount; i++ {
		if c.ctx != nil {
			if err := c.ctx.Err(); err != nil {
				return nil, warnings, err
			}
		}

		tokens, rawText, err := c.source.Page(i)
		if err != nil {
			pe := &PageError{Page: i, Err: err}
			log.Warn("page extraction failed", "page", i, "error", err)
			warnings = append(warnings, Warning{Code: WarnPageFailed, Page: i, Message: pe.Error()})
			continue
		}

		text := hebtext.NormalizeText(rawText)
		hdr.Apply(headers.Extract(text))

		if c.options.ranges != nil && !headers.IsDataPage(text) {
			log.Debug("skipping non-data page", "page", i)
			continue
		}

		pageRecords := c.convertPage(tokens, hdr, asm, classifier)
		if len(pageRecords) == 0 {
			log.Debug("page produced no records", "page", i)
			warnings = append(warnings, Warning{
				Code: WarnNoPageRecords, Page: i,
				Message: "page produced no attendance records",
			})
			continue
		}
		log.Debug("page converted", "page", i, "records", len(pageRecords))
		out = append(out, pageRecords...)
	}

	if !hdr.HasHeader() {
		warnings = append(warnings, Warning{
			Code:    WarnNoHeader,
			Message: "no salary-month header found; dates resolved against the sentinel month",
		})
	}
	if len(out) == 0 {
		return nil, warnings, ErrNoRecords
	}
	return out, warnings, nil
}

// convertPage turns one page's tokens into records using the configured
// strategy.
func (c *Converter) convertPage(tokens []model.WordToken, hdr *headers.Context, asm *records.Assembler, classifier *tables.Classifier) []model.AttendanceRecord {
	norm := hebtext.NormalizeTokens(tokens)

	if c.options.ranges != nil {
		rows := c.options.ranges.ParseRows(norm, c.options.yTolerance)
		return asm.FromRowCells(rows, hdr)
	}

	grouped := tables.GroupRows(norm, c.options.yTolerance)
	blocks := tables.SegmentBlocks(grouped)

	var out []model.AttendanceRecord
	for _, b := range blocks {
		roles := classifier.Classify(b)
		cells := tables.AlignBlock(b, roles)
		out = append(out, asm.FromDayCells(cells, hdr)...)
	}
	return out
}

// RecordsFromTokens converts pages of already-extracted word tokens, in
// logical order and without coordinates, using the label-driven row
// parser. Header fields are recognized from each page's joined token
// text. This entry point serves front ends that receive token streams
// from an external extraction step.
func RecordsFromTokens(pages [][]string) ([]model.AttendanceRecord, []Warning, error) {
	return RecordsFromTokensWithLabels(pages, tables.DefaultLabels())
}

// RecordsFromTokensWithLabels is RecordsFromTokens with a custom label
// set.
func RecordsFromTokensWithLabels(pages [][]string, labels tables.LabelSet) ([]model.AttendanceRecord, []Warning, error) {
	hdr := headers.NewContext()
	asm := records.NewAssembler()

	var out []model.AttendanceRecord
	var warnings []Warning

	for i, tokens := range pages {
		page := i + 1
		hdr.Apply(headers.Extract(strings.Join(tokens, " ")))

		cells := tables.ParseTokenStream(tokens, labels)
		if len(cells) == 0 {
			warnings = append(warnings, Warning{
				Code: WarnNoPageRecords, Page: page,
				Message: "page produced no attendance records",
			})
			continue
		}
		out = append(out, asm.FromDayCells(cells, hdr)...)
	}

	if !hdr.HasHeader() {
		warnings = append(warnings, Warning{
			Code:    WarnNoHeader,
			Message: "no salary-month header found; dates resolved against the sentinel month",
		})
	}
	if len(out) == 0 {
		return nil, warnings, ErrNoRecords
	}
	return out, warnings, nil
}
