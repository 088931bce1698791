package tables

import (
	"math"
	"sort"

	"github.com/ymizrahi/timecard/model"
)

// DefaultYTolerance is the maximum vertical distance, in points, between two
// tokens considered part of the same row.
const DefaultYTolerance = 4.0

// GroupRows clusters tokens into rows by vertical proximity using
// incremental bucket assignment: each token joins the first existing row
// whose anchor position is within tolerance, otherwise it opens a new row.
// The first token assigned to a row fixes that row's anchor.
//
// Rows are returned sorted top-to-bottom; tokens within a row keep their
// discovery order. A tolerance of zero or less falls back to
// DefaultYTolerance.
//
// GroupRowsGrid implements the alternative rounded-grid policy; the two can
// disagree for tokens that straddle a tolerance boundary.
func GroupRows(tokens []model.WordToken, tolerance float64) []model.Row {
	if tolerance <= 0 {
		tolerance = DefaultYTolerance
	}

	var rows []model.Row
	for _, t := range tokens {
		idx := -1
		for i := range rows {
			if math.Abs(rows[i].AnchorY-t.Top) <= tolerance {
				idx = i
				break
			}
		}
		if idx < 0 {
			rows = append(rows, model.Row{AnchorY: t.Top})
			idx = len(rows) - 1
		}
		rows[idx].Tokens = append(rows[idx].Tokens, t)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AnchorY < rows[j].AnchorY
	})
	return rows
}

// GroupRowsGrid clusters tokens into rows by rounding each token's vertical
// position to the nearest tolerance-sized grid cell and grouping by the
// rounded value. This is the policy the fixed-range strategy uses; the date
// column decides afterwards which buckets are data rows at all.
func GroupRowsGrid(tokens []model.WordToken, tolerance float64) []model.Row {
	if tolerance <= 0 {
		tolerance = DefaultYTolerance
	}

	buckets := make(map[int]*model.Row)
	var keys []int
	for _, t := range tokens {
		k := int(math.Round(t.Top/tolerance) * tolerance)
		row, ok := buckets[k]
		if !ok {
			row = &model.Row{AnchorY: float64(k)}
			buckets[k] = row
			keys = append(keys, k)
		}
		row.Tokens = append(row.Tokens, t)
	}

	sort.Ints(keys)
	rows := make([]model.Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, *buckets[k])
	}
	return rows
}
