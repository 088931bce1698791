package model

// Direction represents the writing direction of a token's text.
type Direction int

const (
	// LTR (Left-to-Right) for Latin text, digits, times, dates.
	LTR Direction = iota
	// RTL (Right-to-Left) for Hebrew text.
	RTL
	// Neutral for punctuation and symbol-only tokens.
	Neutral
)

// String returns a string representation of the direction ("LTR", "RTL", or "Neutral").
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// WordToken is one extracted text fragment with its horizontal bounds and
// vertical position on the page. X0 is the left edge, X1 the right edge
// (X0 <= X1), and Top grows downward so that smaller values sit higher on
// the page. Tokens are immutable once produced by a source; normalization
// replaces them rather than mutating in place.
type WordToken struct {
	Text      string
	X0, X1    float64
	Top       float64
	Direction Direction
}

// XCenter returns the horizontal center of the token.
func (t WordToken) XCenter() float64 {
	return (t.X0 + t.X1) / 2
}

// Row is a set of tokens sharing one vertical cluster, kept in discovery
// order. AnchorY is the cluster's representative vertical position; it is
// used only for sorting rows top-to-bottom, never for matching logic.
type Row struct {
	AnchorY float64
	Tokens  []WordToken
}

// Texts returns the text of every token in the row, in discovery order.
func (r Row) Texts() []string {
	out := make([]string, len(r.Tokens))
	for i, t := range r.Tokens {
		out[i] = t.Text
	}
	return out
}

// Block is one self-contained date-anchored attendance grid within a page:
// exactly one date row followed by zero or more role rows belonging to the
// same grid.
type Block struct {
	DateRow Row
	Rows    []Row
}
