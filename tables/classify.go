package tables

import (
	"strings"

	"github.com/ymizrahi/timecard/hebtext"
	"github.com/ymizrahi/timecard/model"
)

// minRoleTokens is the number of matching value tokens a row needs to claim
// a role by shape alone (without a label).
const minRoleTokens = 3

// LabelSet holds the label substrings that identify role rows in documents
// where rows carry their own captions. Matching is done against the row's
// non-time, non-date text joined together.
type LabelSet struct {
	Entry   string
	Exit    string
	Total   string
	DayType string
}

// DefaultLabels returns the label substrings used by the payroll layout:
// entry, exit, total/attendance, and day-type markers.
func DefaultLabels() LabelSet {
	return LabelSet{
		Entry:   "כניסה",
		Exit:    "יציאה",
		Total:   "נוכח",
		DayType: "סוג",
	}
}

// RowRoles holds the at-most-one row assigned to each semantic role within a
// block. A nil entry means no row claimed that role.
type RowRoles struct {
	Day     *model.Row
	Entry   *model.Row
	Exit    *model.Row
	Total   *model.Row
	DayType *model.Row
}

// Classifier assigns semantic roles to a block's non-date rows.
type Classifier struct {
	Labels LabelSet
}

// NewClassifier creates a classifier with the default label set.
func NewClassifier() *Classifier {
	return &Classifier{Labels: DefaultLabels()}
}

// Classify walks the block's role rows top-to-bottom and assigns each to at
// most one role. First-match-wins per role: once a role is taken, later
// candidate rows for it are ignored, so duplicate or overtime breakdown rows
// cannot pollute the primary columns. Rows matching no role are skipped;
// that is expected noise, not an error.
//
// A time row claims its role by label when one is present, otherwise by
// position: unlabeled time rows fill entry, exit, total in order of
// appearance.
func (c *Classifier) Classify(b model.Block) RowRoles {
	var roles RowRoles

	for i := range b.Rows {
		row := &b.Rows[i]

		if dayLetterCount(*row) >= minRoleTokens {
			if roles.Day == nil {
				roles.Day = row
			}
			continue
		}

		label := joinLabelText(*row)
		times := timeTokenCount(*row)

		switch {
		case c.Labels.Entry != "" && strings.Contains(label, c.Labels.Entry):
			if roles.Entry == nil {
				roles.Entry = row
			}
		case c.Labels.Exit != "" && strings.Contains(label, c.Labels.Exit):
			if roles.Exit == nil {
				roles.Exit = row
			}
		case c.Labels.Total != "" && strings.Contains(label, c.Labels.Total):
			if roles.Total == nil {
				roles.Total = row
			}
		case times >= minRoleTokens:
			// Unlabeled time rows arrive in grid order: entry, exit, total.
			switch {
			case roles.Entry == nil:
				roles.Entry = row
			case roles.Exit == nil:
				roles.Exit = row
			case roles.Total == nil:
				roles.Total = row
			}
		case c.Labels.DayType != "" && strings.Contains(label, c.Labels.DayType):
			if roles.DayType == nil {
				roles.DayType = row
			}
		}
	}
	return roles
}

// dayLetterCount counts tokens matching the known single-letter day codes.
func dayLetterCount(r model.Row) int {
	n := 0
	for _, t := range r.Tokens {
		if hebtext.IsDayLetter(t.Text) {
			n++
		}
	}
	return n
}

// timeTokenCount counts time-shaped tokens in the row.
func timeTokenCount(r model.Row) int {
	n := 0
	for _, t := range r.Tokens {
		if hebtext.IsTime(t.Text) {
			n++
		}
	}
	return n
}

// joinLabelText joins the row's non-time, non-date token text, the material
// label matching runs against.
func joinLabelText(r model.Row) string {
	var parts []string
	for _, t := range r.Tokens {
		if hebtext.IsTime(t.Text) || hebtext.IsDate(t.Text) {
			continue
		}
		parts = append(parts, t.Text)
	}
	return strings.Join(parts, " ")
}
