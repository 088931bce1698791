package timecard

import (
	"github.com/ymizrahi/timecard/tables"
)

// convertOptions holds configuration for a conversion.
type convertOptions struct {
	// ranges switches to the fixed-range binding strategy when non-nil;
	// nil means the adaptive column strategy.
	ranges *tables.RangeTable

	// labels identify role rows under the adaptive strategy.
	labels tables.LabelSet

	// yTolerance is the vertical slack for grouping tokens into rows.
	yTolerance float64
}

// defaultOptions returns the default conversion options.
func defaultOptions() convertOptions {
	return convertOptions{
		ranges:     nil,
		labels:     tables.DefaultLabels(),
		yTolerance: tables.DefaultYTolerance,
	}
}

// clone copies the options. The range table pointer is shared; tables are
// not mutated after construction.
func (o convertOptions) clone() convertOptions {
	return o
}
