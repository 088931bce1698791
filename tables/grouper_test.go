package tables

import (
	"testing"

	"github.com/ymizrahi/timecard/model"
)

func tok(text string, x0, x1, top float64) model.WordToken {
	return model.WordToken{Text: text, X0: x0, X1: x1, Top: top}
}

func TestGroupRows_ClustersByProximity(t *testing.T) {
	tokens := []model.WordToken{
		tok("a", 10, 20, 100.0),
		tok("b", 30, 40, 102.5), // within tolerance of 100
		tok("c", 10, 20, 120.0), // new row
		tok("d", 30, 40, 121.0),
	}

	rows := GroupRows(tokens, 4.0)
	if len(rows) != 2 {
		t.Fatalf("GroupRows() produced %d rows, want 2", len(rows))
	}
	if len(rows[0].Tokens) != 2 || len(rows[1].Tokens) != 2 {
		t.Errorf("row sizes = %d, %d, want 2, 2", len(rows[0].Tokens), len(rows[1].Tokens))
	}
}

func TestGroupRows_SortedTopToBottom(t *testing.T) {
	tokens := []model.WordToken{
		tok("low", 0, 1, 300),
		tok("high", 0, 1, 50),
		tok("mid", 0, 1, 150),
	}

	rows := GroupRows(tokens, 4.0)
	if len(rows) != 3 {
		t.Fatalf("GroupRows() produced %d rows, want 3", len(rows))
	}
	want := []string{"high", "mid", "low"}
	for i, w := range want {
		if rows[i].Tokens[0].Text != w {
			t.Errorf("row %d = %q, want %q", i, rows[i].Tokens[0].Text, w)
		}
	}
}

func TestGroupRows_DiscoveryOrderWithinRow(t *testing.T) {
	tokens := []model.WordToken{
		tok("first", 500, 510, 100),
		tok("second", 100, 110, 101),
		tok("third", 300, 310, 99),
	}

	rows := GroupRows(tokens, 4.0)
	if len(rows) != 1 {
		t.Fatalf("GroupRows() produced %d rows, want 1", len(rows))
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if rows[0].Tokens[i].Text != w {
			t.Errorf("token %d = %q, want %q", i, rows[0].Tokens[i].Text, w)
		}
	}
}

func TestGroupRows_DefaultTolerance(t *testing.T) {
	tokens := []model.WordToken{
		tok("a", 0, 1, 100),
		tok("b", 0, 1, 103.9),
	}
	rows := GroupRows(tokens, 0)
	if len(rows) != 1 {
		t.Errorf("GroupRows() with zero tolerance produced %d rows, want 1 (default tolerance)", len(rows))
	}
}

func TestGroupRowsGrid_BucketsByRounding(t *testing.T) {
	tokens := []model.WordToken{
		tok("a", 0, 1, 99.0),  // rounds to bucket 100
		tok("b", 0, 1, 101.0), // rounds to bucket 100
		tok("c", 0, 1, 110.0), // bucket 108 or 112 depending on rounding; distinct either way
	}

	rows := GroupRowsGrid(tokens, 4.0)
	if len(rows) != 2 {
		t.Fatalf("GroupRowsGrid() produced %d rows, want 2", len(rows))
	}
	if len(rows[0].Tokens) != 2 {
		t.Errorf("first bucket has %d tokens, want 2", len(rows[0].Tokens))
	}
}

// The two clustering policies may disagree on tokens straddling a tolerance
// boundary; this pins the documented behavior of each.
func TestGroupRows_PolicyDivergence(t *testing.T) {
	// 100 and 104 are exactly one tolerance apart: incremental assignment
	// merges them, grid rounding may split them into adjacent buckets.
	tokens := []model.WordToken{
		tok("a", 0, 1, 100),
		tok("b", 0, 1, 104),
	}

	incremental := GroupRows(tokens, 4.0)
	if len(incremental) != 1 {
		t.Errorf("incremental policy produced %d rows, want 1", len(incremental))
	}

	grid := GroupRowsGrid(tokens, 4.0)
	if len(grid) != 2 {
		t.Errorf("grid policy produced %d rows, want 2", len(grid))
	}
}
