// Package tables reconstructs the implicit attendance grid from positioned
// word tokens.
//
// The source provides no row or column structure, only tokens with
// floating-point coordinates that drift page to page. Reconstruction runs in
// stages: tokens are clustered into rows by vertical proximity (GroupRows),
// rows are partitioned into date-anchored blocks (SegmentBlocks), each
// block's rows are assigned semantic roles (Classifier), and role-row values
// are bound to date columns by horizontal position (AlignBlock).
//
// Two mutually exclusive column-binding strategies are provided. The adaptive
// strategy derives per-block columns and a tolerance from the date row itself
// and binds each value to its nearest column. The fixed-range strategy
// (RangeTable) binds a token to the named column whose configured [lo, hi]
// range contains its left edge; it is used when the caller supplies (or
// accepts the defaults of) an external column table.
//
// ParseTokenStream handles the coordinate-free variant, where an upstream
// batch-processing service yields only an ordered token stream per page and
// rows are located by label text instead of position.
package tables
