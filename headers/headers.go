// Package headers extracts per-page header fields (salary month, employee
// identity) from normalized page text and carries them forward across pages,
// and reconstructs full calendar dates from day/month tokens against the
// salary month.
package headers

import (
	"regexp"
	"strings"
)

// SentinelSalaryMonth is the salary month in effect before any page supplies
// one. A document that never overwrites it has no header page at all, which
// is worth surfacing to the user.
const SentinelSalaryMonth = "01/01/1900"

// Header patterns match normalized text, where numbers appear before their
// Hebrew labels within a line.
var (
	salaryMonthRE = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s+שכר\s+בחודש`)
	employeeIDRE  = regexp.MustCompile(`(\d{7,9})\s+זהות`)
	tagNumberRE   = regexp.MustCompile(`(\d+)\s+תג:`)
	dataPageRE    = regexp.MustCompile(`חישוב:`)
	hebrewWordRE  = regexp.MustCompile(`[\x{05D0}-\x{05EA}]`)
)

// Fields holds the header values found on a single page. Empty fields were
// not present on the page.
type Fields struct {
	SalaryMonth  string // DD/MM/YYYY as printed
	EmployeeID   string
	EmployeeName string
	TagNumber    string
}

// Extract pulls header fields from a page's normalized, line-structured
// text. Absent fields stay empty; the caller decides whether to carry
// previous values forward.
func Extract(text string) Fields {
	var f Fields
	if m := salaryMonthRE.FindStringSubmatch(text); m != nil {
		f.SalaryMonth = m[1]
	}
	if m := employeeIDRE.FindStringSubmatch(text); m != nil {
		f.EmployeeID = m[1]
	}
	if m := tagNumberRE.FindStringSubmatch(text); m != nil {
		f.TagNumber = m[1]
	}
	f.EmployeeName = extractEmployeeName(text)
	return f
}

// IsDataPage reports whether the page carries attendance data. Summary pages
// lack the calculation marker and are skipped by the fixed-range pipeline.
func IsDataPage(text string) bool {
	return dataPageRE.MatchString(text)
}

// extractEmployeeName finds the employee name: the run of consecutive
// Hebrew-only words immediately preceding the name marker token, scanned
// backward until a non-Hebrew token is hit. Only lines carrying both the
// name and identity markers are considered.
func extractEmployeeName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "שם") || !strings.Contains(line, "זהות") {
			continue
		}
		before, _, _ := strings.Cut(line, "שם")
		tokens := strings.Fields(before)
		var name []string
		for i := len(tokens) - 1; i >= 0; i-- {
			if !hebrewWordRE.MatchString(tokens[i]) {
				break
			}
			name = append([]string{tokens[i]}, name...)
		}
		if len(name) > 0 {
			return strings.Join(name, " ")
		}
	}
	return ""
}

// Context is the carry-forward header state for one document. Fields persist
// across pages and are overwritten only when a page supplies a non-empty
// value, so a record's header fields always reflect the most recently seen
// values as of its page. Context has a single writer, the sequential page
// loop, and no concurrent readers.
type Context struct {
	SalaryMonth  string // DD/MM/YYYY
	EmployeeID   string
	EmployeeName string
	TagNumber    string
}

// NewContext returns a context with the sentinel salary month and empty
// identity fields.
func NewContext() *Context {
	return &Context{SalaryMonth: SentinelSalaryMonth}
}

// Apply overwrites context fields with the non-empty fields of f.
func (c *Context) Apply(f Fields) {
	if f.SalaryMonth != "" {
		c.SalaryMonth = f.SalaryMonth
	}
	if f.EmployeeID != "" {
		c.EmployeeID = f.EmployeeID
	}
	if f.EmployeeName != "" {
		c.EmployeeName = f.EmployeeName
	}
	if f.TagNumber != "" {
		c.TagNumber = f.TagNumber
	}
}

// HasHeader reports whether any page has supplied a salary month yet.
func (c *Context) HasHeader() bool {
	return c.SalaryMonth != SentinelSalaryMonth
}

// SalaryMonthDisplay returns the salary month as MM/YYYY for record output,
// or "" when only the sentinel is in effect.
func (c *Context) SalaryMonthDisplay() string {
	if !c.HasHeader() {
		return ""
	}
	if len(c.SalaryMonth) == len("DD/MM/YYYY") {
		return c.SalaryMonth[3:]
	}
	return c.SalaryMonth
}
