package tables

import (
	"math"
	"testing"

	"github.com/ymizrahi/timecard/model"
)

func TestDateColumns_SortedByCenter(t *testing.T) {
	row := model.Row{Tokens: []model.WordToken{
		tok("03/03", 300, 320, 10),
		tok("01/03", 100, 120, 10),
		tok("02/03", 200, 220, 10),
		tok("label", 20, 40, 10), // not a date, skipped
	}}

	cols := DateColumns(row)
	if len(cols) != 3 {
		t.Fatalf("DateColumns() returned %d columns, want 3", len(cols))
	}
	want := []string{"01/03", "02/03", "03/03"}
	for i, w := range want {
		if cols[i].Date != w {
			t.Errorf("column %d = %q, want %q", i, cols[i].Date, w)
		}
	}
	if cols[0].X != 110 {
		t.Errorf("column 0 center = %f, want 110", cols[0].X)
	}
}

func TestTolerance(t *testing.T) {
	tests := []struct {
		name string
		cols []Column
		want float64
	}{
		{"wide spacing", []Column{{X: 0}, {X: 100}}, 45},          // 0.45 * 100
		{"narrow spacing hits floor", []Column{{X: 0}, {X: 20}}, 10}, // 0.45*20=9 < floor
		{"single column fallback", []Column{{X: 50}}, 15},
		{"empty fallback", nil, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tolerance(tt.cols); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Tolerance() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestLookup_Nearest(t *testing.T) {
	l := Lookup{100: "a", 200: "b"}

	if got := l.Nearest(105, 10); got != "a" {
		t.Errorf("Nearest(105) = %q, want a", got)
	}
	if got := l.Nearest(195, 10); got != "b" {
		t.Errorf("Nearest(195) = %q, want b", got)
	}
	// Exactly midway and outside tolerance of both: binds to neither.
	if got := l.Nearest(150, 10); got != "" {
		t.Errorf("Nearest(150) = %q, want empty", got)
	}
	if got := (Lookup{}).Nearest(100, 10); got != "" {
		t.Errorf("Nearest() on empty lookup = %q, want empty", got)
	}
}

func TestLookup_Clamp(t *testing.T) {
	l := Lookup{50: "label", 100: "a", 200: "b"}
	clamped := l.Clamp(100, 200, 10)

	if _, ok := clamped[50]; ok {
		t.Error("entry left of the grid should be rejected")
	}
	if len(clamped) != 2 {
		t.Errorf("Clamp() kept %d entries, want 2", len(clamped))
	}
}

func TestAlignBlock_EvenColumnsZeroMismatches(t *testing.T) {
	// N evenly spaced columns and a role row with exactly N aligned tokens:
	// every value binds to its column.
	b := model.Block{
		DateRow: model.Row{Tokens: []model.WordToken{
			tok("01/03", 95, 105, 10),
			tok("02/03", 195, 205, 10),
			tok("03/03", 295, 305, 10),
		}},
	}
	entry := model.Row{Tokens: []model.WordToken{
		tok("08:00", 96, 106, 30),
		tok("08:15", 196, 206, 30),
		tok("08:30", 294, 304, 30),
	}}

	cells := AlignBlock(b, RowRoles{Entry: &entry})
	if len(cells) != 3 {
		t.Fatalf("AlignBlock() returned %d cells, want 3", len(cells))
	}
	want := []string{"08:00", "08:15", "08:30"}
	for i, w := range want {
		if cells[i].Entry != w {
			t.Errorf("cell %d entry = %q, want %q", i, cells[i].Entry, w)
		}
	}
}

func TestAlignBlock_MissingValueRendersEmpty(t *testing.T) {
	b := model.Block{
		DateRow: model.Row{Tokens: []model.WordToken{
			tok("01/03", 95, 105, 10),
			tok("02/03", 195, 205, 10),
			tok("03/03", 295, 305, 10),
		}},
	}
	// Only two values; the middle column has no token near it.
	entry := model.Row{Tokens: []model.WordToken{
		tok("08:00", 96, 106, 30),
		tok("08:30", 294, 304, 30),
	}}

	cells := AlignBlock(b, RowRoles{Entry: &entry})
	if cells[1].Entry != "" {
		t.Errorf("middle cell entry = %q, want empty", cells[1].Entry)
	}
	if cells[0].Entry != "08:00" || cells[2].Entry != "08:30" {
		t.Error("outer cells should still bind")
	}
}

func TestAlignBlock_RowLabelOutsideGridRejected(t *testing.T) {
	b := model.Block{
		DateRow: model.Row{Tokens: []model.WordToken{
			tok("01/03", 195, 205, 10),
			tok("02/03", 295, 305, 10),
			tok("03/03", 395, 405, 10),
		}},
	}
	// The day row carries a label token far left of the grid; it must not
	// bind to the first column.
	day := model.Row{Tokens: []model.WordToken{
		tok("יום", 20, 40, 20),
		tok("א", 198, 202, 20),
		tok("ב", 298, 302, 20),
		tok("ג", 398, 402, 20),
	}}

	cells := AlignBlock(b, RowRoles{Day: &day})
	if cells[0].Day != "א" {
		t.Errorf("first cell day = %q, want א", cells[0].Day)
	}
}

func TestAlignBlock_NoDateColumns(t *testing.T) {
	b := model.Block{DateRow: textRow(10, "not", "dates", "here")}
	if cells := AlignBlock(b, RowRoles{}); cells != nil {
		t.Errorf("AlignBlock() without date columns = %d cells, want nil", len(cells))
	}
}
