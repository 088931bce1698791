package tables

import (
	"strings"

	"github.com/ymizrahi/timecard/hebtext"
)

// ParseTokenStream reconstructs day cells from a flat, ordered token stream
// with no coordinate data, as produced by batch document-processing services
// whose positions are unreliable across shards. Rows are located by label
// text instead of position: the values for a role are the time tokens that
// follow its label token, stopping at the next date token, capped at the
// page's date count.
//
// Tokens must already be normalized. Pages without date tokens yield nil.
func ParseTokenStream(tokens []string, labels LabelSet) []DayCells {
	var dates []string
	for _, t := range tokens {
		if hebtext.IsDate(t) {
			dates = append(dates, t)
		}
	}
	if len(dates) == 0 {
		return nil
	}

	days := dayLettersInStream(tokens, len(dates))
	entries := timesAfterLabel(tokens, labels.Entry, len(dates))
	exits := timesAfterLabel(tokens, labels.Exit, len(dates))
	totals := timesAfterLabel(tokens, labels.Total, len(dates))
	types := freeTextAfterLabel(tokens, labels.DayType, len(dates))

	at := func(vals []string, i int) string {
		if i < len(vals) {
			return vals[i]
		}
		return ""
	}

	cells := make([]DayCells, len(dates))
	for i, d := range dates {
		cells[i] = DayCells{
			Date:    d,
			Day:     at(days, i),
			Entry:   at(entries, i),
			Exit:    at(exits, i),
			Total:   at(totals, i),
			DayType: at(types, i),
		}
	}
	return cells
}

// dayLettersInStream collects up to limit day-letter tokens in stream order.
func dayLettersInStream(tokens []string, limit int) []string {
	var out []string
	for _, t := range tokens {
		if hebtext.IsDayLetter(t) {
			out = append(out, t)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// timesAfterLabel returns up to limit time tokens following the first token
// containing label. A date token ends the run: it marks the next grid row.
func timesAfterLabel(tokens []string, label string, limit int) []string {
	if label == "" {
		return nil
	}
	for i, t := range tokens {
		if !strings.Contains(t, label) {
			continue
		}
		var out []string
		for _, next := range tokens[i+1:] {
			if hebtext.IsDate(next) {
				break
			}
			if hebtext.IsTime(next) {
				out = append(out, next)
				if len(out) == limit {
					break
				}
			}
		}
		return out
	}
	return nil
}

// freeTextAfterLabel returns up to limit free-text value tokens following the
// first token containing label, stopping at any fixed-format or day-letter
// token.
func freeTextAfterLabel(tokens []string, label string, limit int) []string {
	if label == "" {
		return nil
	}
	for i, t := range tokens {
		if !strings.Contains(t, label) {
			continue
		}
		var out []string
		for _, next := range tokens[i+1:] {
			if hebtext.IsDate(next) || hebtext.IsTime(next) || hebtext.IsDayLetter(next) {
				break
			}
			if isFreeTextValue(next) {
				out = append(out, next)
				if len(out) == limit {
					break
				}
			}
		}
		return out
	}
	return nil
}
