package tables

import (
	"math"
	"sort"

	"github.com/ymizrahi/timecard/hebtext"
	"github.com/ymizrahi/timecard/model"
)

const (
	// toleranceFactor is the fraction of the average inter-column spacing a
	// value token may deviate from a column center and still bind to it.
	toleranceFactor = 0.45
	// toleranceFloor is the minimum binding tolerance in points.
	toleranceFloor = 10.0
	// singleColumnTolerance is used when the date row yields fewer than two
	// columns and no spacing can be derived.
	singleColumnTolerance = 15.0
)

// Column is one date-anchored column of the grid: the horizontal center of
// its date token and the date text itself.
type Column struct {
	X    float64
	Date string
}

// DateColumns collects the block's columns from its date row, sorted by
// horizontal center.
func DateColumns(dateRow model.Row) []Column {
	var cols []Column
	for _, t := range dateRow.Tokens {
		if hebtext.IsDate(t.Text) {
			cols = append(cols, Column{X: t.XCenter(), Date: t.Text})
		}
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i].X < cols[j].X })
	return cols
}

// Tolerance derives the column-binding tolerance from the column layout:
// 45% of the average inter-column spacing, floored at 10 points. With fewer
// than two columns there is no spacing to measure and a fixed fallback
// applies.
func Tolerance(cols []Column) float64 {
	if len(cols) < 2 {
		return singleColumnTolerance
	}
	avgSpacing := (cols[len(cols)-1].X - cols[0].X) / float64(len(cols)-1)
	return math.Max(avgSpacing*toleranceFactor, toleranceFloor)
}

// Lookup maps horizontal centers to token text for one role row.
type Lookup map[float64]string

// BuildLookup builds a position-to-text lookup from a row. A nil row yields
// an empty lookup. keep filters tokens by text; pass nil to keep everything.
func BuildLookup(r *model.Row, keep func(string) bool) Lookup {
	l := make(Lookup)
	if r == nil {
		return l
	}
	for _, t := range r.Tokens {
		if keep != nil && !keep(t.Text) {
			continue
		}
		l[t.XCenter()] = t.Text
	}
	return l
}

// Clamp returns a copy of the lookup without entries outside
// [minX-tolerance, maxX+tolerance]. This rejects row-label text sitting left
// of the grid before nearest-column matching runs.
func (l Lookup) Clamp(minX, maxX, tolerance float64) Lookup {
	out := make(Lookup, len(l))
	for x, text := range l {
		if x < minX-tolerance || x > maxX+tolerance {
			continue
		}
		out[x] = text
	}
	return out
}

// Nearest returns the text whose position is closest to x, or "" when the
// lookup is empty or the closest entry is farther than the tolerance. A
// token exactly midway between two columns and outside tolerance of both
// binds to neither.
func (l Lookup) Nearest(x, tolerance float64) string {
	best := ""
	bestDist := math.Inf(1)
	for kx, text := range l {
		d := math.Abs(kx - x)
		if d < bestDist {
			bestDist = d
			best = text
		}
	}
	if bestDist > tolerance {
		return ""
	}
	return best
}

// DayCells holds the values bound to one date column of a block, ready for
// record assembly. Absent values are empty strings.
type DayCells struct {
	Date    string
	Day     string
	Entry   string
	Exit    string
	Total   string
	DayType string
}

// AlignBlock binds each role row's values to the block's date columns using
// the adaptive nearest-column strategy and returns one DayCells per column,
// in left-to-right column order.
func AlignBlock(b model.Block, roles RowRoles) []DayCells {
	cols := DateColumns(b.DateRow)
	if len(cols) == 0 {
		return nil
	}
	tol := Tolerance(cols)
	minX, maxX := cols[0].X, cols[len(cols)-1].X

	dayLookup := BuildLookup(roles.Day, nil).Clamp(minX, maxX, tol)
	entryLookup := BuildLookup(roles.Entry, hebtext.IsTime)
	exitLookup := BuildLookup(roles.Exit, hebtext.IsTime)
	totalLookup := BuildLookup(roles.Total, hebtext.IsTime)
	typeLookup := BuildLookup(roles.DayType, isFreeTextValue).Clamp(minX, maxX, tol)

	cells := make([]DayCells, 0, len(cols))
	for _, col := range cols {
		cells = append(cells, DayCells{
			Date:    col.Date,
			Day:     dayLookup.Nearest(col.X, tol),
			Entry:   entryLookup.Nearest(col.X, tol),
			Exit:    exitLookup.Nearest(col.X, tol),
			Total:   totalLookup.Nearest(col.X, tol),
			DayType: typeLookup.Nearest(col.X, tol),
		})
	}
	return cells
}

// isFreeTextValue keeps day-type value tokens: multi-character script words.
// Categories are arbitrary words ("vacation", "sick"), so values are left
// unfiltered beyond excluding single letters and fixed-format tokens.
func isFreeTextValue(s string) bool {
	if hebtext.IsTime(s) || hebtext.IsDate(s) {
		return false
	}
	return hebtext.ContainsHebrew(s) && len([]rune(s)) > 1
}
