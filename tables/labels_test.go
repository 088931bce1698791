package tables

import "testing"

func TestParseTokenStream(t *testing.T) {
	tokens := []string{
		"01/03/2024", "02/03/2024", "03/03/2024",
		"א", "ב", "ג",
		"כניסה", "08:00", "08:15", "08:30",
		"יציאה", "17:00", "17:15", "17:30",
		"נוכח", "09:00", "09:00", "09:00",
		"סוג", "עבודה", "חופשה", "מחלה",
	}

	cells := ParseTokenStream(tokens, DefaultLabels())
	if len(cells) != 3 {
		t.Fatalf("ParseTokenStream() produced %d cells, want 3", len(cells))
	}

	first := cells[0]
	if first.Date != "01/03/2024" {
		t.Errorf("date = %q, want 01/03/2024", first.Date)
	}
	if first.Day != "א" || first.Entry != "08:00" || first.Exit != "17:00" ||
		first.Total != "09:00" || first.DayType != "עבודה" {
		t.Errorf("first cell = %+v, want full bindings", first)
	}
	if cells[2].Exit != "17:30" {
		t.Errorf("third exit = %q, want 17:30", cells[2].Exit)
	}
}

func TestParseTokenStream_NoDates(t *testing.T) {
	if cells := ParseTokenStream([]string{"a", "b"}, DefaultLabels()); cells != nil {
		t.Errorf("ParseTokenStream() without dates = %d cells, want nil", len(cells))
	}
}

func TestParseTokenStream_MissingRowsYieldEmptyValues(t *testing.T) {
	tokens := []string{"01/03/2024", "02/03/2024", "03/03/2024", "כניסה", "08:00"}

	cells := ParseTokenStream(tokens, DefaultLabels())
	if len(cells) != 3 {
		t.Fatalf("ParseTokenStream() produced %d cells, want 3", len(cells))
	}
	if cells[0].Entry != "08:00" {
		t.Errorf("first entry = %q, want 08:00", cells[0].Entry)
	}
	if cells[1].Entry != "" || cells[1].Exit != "" {
		t.Error("missing values must be empty, never fabricated")
	}
}

func TestParseTokenStream_DateTokenEndsRun(t *testing.T) {
	// A new date token after the label marks the next grid row; times past
	// it belong to another block.
	tokens := []string{
		"01/03/2024", "02/03/2024", "03/03/2024",
		"כניסה", "08:00",
		"04/03/2024",
		"09:00", "10:00",
	}

	cells := ParseTokenStream(tokens, DefaultLabels())
	if cells[1].Entry != "" {
		t.Errorf("entry run should stop at the date token, got %q", cells[1].Entry)
	}
}
