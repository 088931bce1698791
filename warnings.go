package timecard

import (
	"fmt"
	"strings"
)

// Warning codes.
const (
	// WarnPageFailed marks a page whose extraction or parsing failed;
	// the page was skipped and conversion continued.
	WarnPageFailed = "page-failed"
	// WarnNoHeader means no page carried a recognizable salary-month
	// header, so record dates were resolved against the sentinel.
	WarnNoHeader = "no-header"
	// WarnNoPageRecords marks a data page that produced no records.
	WarnNoPageRecords = "no-page-records"
)

// Warning is a non-fatal issue encountered during conversion. Page is
// 1-based, or 0 when the warning is not tied to one page.
type Warning struct {
	Code    string
	Page    int
	Message string
}

// String returns the warning in "code: message" form, with the page
// number when present.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("%s (page %d): %s", w.Code, w.Page, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings renders warnings one per line for display.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
