package tables

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ymizrahi/timecard/hebtext"
	"github.com/ymizrahi/timecard/model"
)

// Column names recognized by the fixed-range strategy. The date column
// locates data rows; shift_marker is a boolean flag column; activity is a
// free-text column that may span several tokens.
const (
	ColDate          = "date"
	ColDayOfWeek     = "day_of_week"
	ColShiftMarker   = "shift_marker"
	ColEntryActual   = "entry_actual"
	ColExitActual    = "exit_actual"
	ColTotalPresent  = "total_present"
	ColEntryForPay   = "entry_for_pay"
	ColExitForPay    = "exit_for_pay"
	ColTotalForPay   = "total_for_pay"
	ColActivity      = "activity"
	ColStandardHours = "standard_hours"
	ColOT100         = "ot_100"
	ColOT125         = "ot_125"
	ColOT150         = "ot_150"
	ColOT200         = "ot_200"
	ColShift87       = "shift_87"
	ColShift50       = "shift_50"
	ColShift20       = "shift_20"
	ColDeduction     = "deduction"
)

// ColumnRange is one named column with its inclusive horizontal range.
type ColumnRange struct {
	Name   string
	Lo, Hi float64
}

// Contains reports whether x falls inside the inclusive range.
func (c ColumnRange) Contains(x float64) bool {
	return x >= c.Lo && x <= c.Hi
}

// RangeTable is the fixed-range column binding: a static table of named
// columns, each an inclusive [lo, hi] horizontal range. A token binds to the
// first column whose range contains its left edge; the table is kept sorted
// by descending lower bound (rightmost column first, the grid's reading
// order) so assignment is deterministic regardless of configuration source.
type RangeTable struct {
	cols []ColumnRange
}

// DefaultRanges returns the built-in column table for the payroll layout.
func DefaultRanges() *RangeTable {
	return newRangeTable(map[string][2]float64{
		ColDate:          {795, 830},
		ColDayOfWeek:     {782, 800},
		ColShiftMarker:   {750, 765},
		ColEntryActual:   {704, 720},
		ColExitActual:    {677, 693},
		ColTotalPresent:  {652, 668},
		ColEntryForPay:   {620, 645},
		ColExitForPay:    {591, 607},
		ColTotalForPay:   {565, 581},
		ColActivity:      {485, 545},
		ColStandardHours: {434, 492},
		ColOT100:         {398, 420},
		ColOT125:         {362, 382},
		ColOT150:         {327, 347},
		ColOT200:         {291, 311},
		ColShift87:       {251, 272},
		ColShift50:       {222, 242},
		ColShift20:       {184, 207},
		ColDeduction:     {110, 135},
	})
}

func newRangeTable(ranges map[string][2]float64) *RangeTable {
	t := &RangeTable{cols: make([]ColumnRange, 0, len(ranges))}
	for name, r := range ranges {
		t.cols = append(t.cols, ColumnRange{Name: name, Lo: r[0], Hi: r[1]})
	}
	sort.Slice(t.cols, func(i, j int) bool { return t.cols[i].Lo > t.cols[j].Lo })
	return t
}

// ParseRanges decodes a column table from JSON of the form
// {"columnName": [lo, hi], ...}.
func ParseRanges(r io.Reader) (*RangeTable, error) {
	var raw map[string][2]float64
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing column ranges: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("parsing column ranges: no columns defined")
	}
	for name, v := range raw {
		if v[0] > v[1] {
			return nil, fmt.Errorf("parsing column ranges: column %q has lo > hi", name)
		}
	}
	return newRangeTable(raw), nil
}

// LoadRanges resolves the column table from an explicit, ordered list of
// candidate file paths: the first path that exists is decoded and returned.
// When no candidate exists the built-in defaults are returned. A candidate
// that exists but fails to decode is an error, not a silent fallback.
func LoadRanges(candidates []string) (*RangeTable, error) {
	for _, path := range candidates {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("opening column config %s: %w", path, err)
		}
		t, perr := ParseRanges(f)
		f.Close()
		if perr != nil {
			return nil, fmt.Errorf("%s: %w", path, perr)
		}
		return t, nil
	}
	return DefaultRanges(), nil
}

// Assign returns the name of the first column whose range contains x, or
// false when no column claims it.
func (t *RangeTable) Assign(x float64) (string, bool) {
	for _, c := range t.cols {
		if c.Contains(x) {
			return c.Name, true
		}
	}
	return "", false
}

// dateRange returns the date column's range, falling back to the built-in
// default when the configured table omits it.
func (t *RangeTable) dateRange() ColumnRange {
	for _, c := range t.cols {
		if c.Name == ColDate {
			return c
		}
	}
	return ColumnRange{Name: ColDate, Lo: 795, Hi: 830}
}

// RowCells holds the column-bound values of one data row under the
// fixed-range strategy.
type RowCells struct {
	DateToken    string
	Values       map[string]string
	Activity     string
	ShiftPremium bool
}

// ParseRows reconstructs data rows from a page's tokens. Tokens are grouped
// into vertical buckets by the rounded-grid policy with the given tolerance
// (zero or less falls back to DefaultYTolerance); a bucket is a data row
// iff it contains a date-shaped token inside the date column's range. Within
// a data row every token is bound to its containing column. Activity tokens
// are collected separately and joined rightmost-first, reconstructing the
// mirrored script's reading order; the shift-marker column becomes a boolean;
// the standard-hours column passes through the merged double-time split.
func (t *RangeTable) ParseRows(tokens []model.WordToken, tolerance float64) []RowCells {
	dateCol := t.dateRange()
	rows := GroupRowsGrid(tokens, tolerance)

	var out []RowCells
	for _, row := range rows {
		dateToken := ""
		for _, tok := range row.Tokens {
			if hebtext.IsDate(tok.Text) && dateCol.Contains(tok.X0) {
				dateToken = tok.Text
				break
			}
		}
		if dateToken == "" {
			continue
		}

		cells := RowCells{DateToken: dateToken, Values: make(map[string]string)}
		type activityWord struct {
			x0   float64
			text string
		}
		var activity []activityWord

		for _, tok := range row.Tokens {
			name, ok := t.Assign(tok.X0)
			if !ok {
				continue
			}
			switch name {
			case ColDate:
				// Already captured above.
			case ColShiftMarker:
				cells.ShiftPremium = tok.Text == "*"
			case ColActivity:
				activity = append(activity, activityWord{x0: tok.X0, text: tok.Text})
			case ColStandardHours:
				cells.Values[name] = hebtext.SplitMergedTime(tok.Text)
			default:
				cells.Values[name] = tok.Text
			}
		}

		sort.Slice(activity, func(i, j int) bool { return activity[i].x0 > activity[j].x0 })
		parts := make([]string, len(activity))
		for i, w := range activity {
			parts[i] = w.text
		}
		cells.Activity = strings.TrimSpace(strings.Join(parts, " "))

		out = append(out, cells)
	}
	return out
}
