package tables

import (
	"github.com/ymizrahi/timecard/hebtext"
	"github.com/ymizrahi/timecard/model"
)

// minDateTokens is the number of date-shaped tokens a row needs to be
// recognized as a date row.
const minDateTokens = 3

// IsDateRow reports whether the row contains at least three date-shaped
// tokens, marking it as the anchor row of a new attendance grid.
func IsDateRow(r model.Row) bool {
	n := 0
	for _, t := range r.Tokens {
		if hebtext.IsDate(t.Text) {
			n++
			if n >= minDateTokens {
				return true
			}
		}
	}
	return false
}

// SegmentBlocks partitions top-to-bottom ordered rows into date-anchored
// blocks. Encountering a date row closes the previous block and opens a new
// one; any other row is appended to the open block. Rows before the first
// date row carry no block-addressable data and are discarded.
func SegmentBlocks(rows []model.Row) []model.Block {
	var blocks []model.Block
	open := -1

	for _, r := range rows {
		if IsDateRow(r) {
			blocks = append(blocks, model.Block{DateRow: r})
			open = len(blocks) - 1
			continue
		}
		if open >= 0 {
			blocks[open].Rows = append(blocks[open].Rows, r)
		}
	}
	return blocks
}
