package pdfdoc

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

func ch(s string, x, y, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: w}
}

func TestAssembleWordsMergesAdjacentChars(t *testing.T) {
	chars := []pdf.Text{
		ch("0", 100, 700, 5),
		ch("8", 105, 700, 5),
		ch(":", 110, 700, 3),
		ch("3", 113, 700, 5),
		ch("0", 118, 700, 5),
	}
	words := assembleWords(chars, 800)
	if len(words) != 1 {
		t.Fatalf("got %d words, want 1: %+v", len(words), words)
	}
	w := words[0]
	if w.Text != "08:30" {
		t.Errorf("Text = %q, want 08:30", w.Text)
	}
	if w.X0 != 100 || w.X1 != 123 {
		t.Errorf("X0, X1 = %v, %v, want 100, 123", w.X0, w.X1)
	}
	if w.Top != 100 {
		t.Errorf("Top = %v, want pageHeight-Y = 100", w.Top)
	}
}

func TestAssembleWordsSplitsOnGap(t *testing.T) {
	chars := []pdf.Text{
		ch("a", 100, 700, 5),
		ch("b", 105, 700, 5),
		// 10pt gap opens a new word.
		ch("c", 120, 700, 5),
	}
	words := assembleWords(chars, 800)
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2: %+v", len(words), words)
	}
	if words[0].Text != "ab" || words[1].Text != "c" {
		t.Errorf("words = %q, %q, want ab, c", words[0].Text, words[1].Text)
	}
}

func TestAssembleWordsSplitsOnLineChange(t *testing.T) {
	chars := []pdf.Text{
		ch("a", 100, 700, 5),
		ch("b", 100, 680, 5),
	}
	words := assembleWords(chars, 800)
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2: %+v", len(words), words)
	}
	// The upper line (larger Y) comes first and gets the smaller Top.
	if words[0].Top >= words[1].Top {
		t.Errorf("words not in reading order: %+v", words)
	}
}

func TestAssembleWordsSortsScatteredInput(t *testing.T) {
	// Content-stream order does not match visual order.
	chars := []pdf.Text{
		ch("2", 205, 700, 5),
		ch("1", 100, 700, 5),
		ch("1", 200, 700, 5),
		ch("2", 105, 700, 5),
	}
	words := assembleWords(chars, 800)
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2: %+v", len(words), words)
	}
	if words[0].Text != "12" || words[1].Text != "12" {
		t.Errorf("words = %q, %q, want 12, 12", words[0].Text, words[1].Text)
	}
	if words[0].X0 != 100 || words[1].X0 != 200 {
		t.Errorf("X0s = %v, %v, want 100, 200", words[0].X0, words[1].X0)
	}
}

func TestAssembleWordsDropsWhitespaceChars(t *testing.T) {
	chars := []pdf.Text{
		ch(" ", 95, 700, 5),
		ch("x", 100, 700, 5),
	}
	words := assembleWords(chars, 800)
	if len(words) != 1 || words[0].Text != "x" {
		t.Fatalf("got %+v, want single word x", words)
	}
}

func TestLinesText(t *testing.T) {
	words := assembleWords([]pdf.Text{
		ch("b", 200, 700, 5),
		ch("a", 100, 700, 5),
		ch("c", 100, 680, 5),
	}, 800)
	got := linesText(words)
	want := "a b\nc"
	if got != want {
		t.Errorf("linesText = %q, want %q", got, want)
	}
}

func TestLinesTextEmpty(t *testing.T) {
	if got := linesText(nil); got != "" {
		t.Errorf("linesText(nil) = %q, want empty", got)
	}
}
