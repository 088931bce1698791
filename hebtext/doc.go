// Package hebtext normalizes Hebrew text extracted from positionally-rendered
// documents.
//
// Word extraction yields right-to-left script in visual (left-to-right) order,
// which inverts the logical reading order of every Hebrew token. This package
// detects affected tokens and reverses them back, while guarding fixed-format
// tokens (times, dates) that must never be reversed. It also carries the
// small pieces of script knowledge the pipeline needs: the day-letter table
// and the merged double-time split.
package hebtext
