// Package model provides the intermediate representation for attendance
// reconstruction.
//
// This package defines the data structures produced and consumed by the
// reconstruction pipeline. [WordToken] is the raw input: one extracted text
// fragment with horizontal bounds and a vertical position. [Row] and [Block]
// are ephemeral per-page working structures built while an implicit table is
// reconstructed from loosely-aligned tokens. [AttendanceRecord] is the only
// type that outlives a page: one calendar day's attendance data, carrying the
// header context (employee identity, salary month) that was in effect when
// its page was processed.
package model
