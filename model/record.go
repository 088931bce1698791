package model

import "time"

// AttendanceRecord is one calendar day's reconstructed attendance data.
//
// RawDate is the date token exactly as it appeared on the page (DD/MM or
// DD/MM/YYYY). Date is the fully resolved calendar date, or nil when the
// day/month combination could not be resolved against the salary month; a
// record with a nil Date is still emitted so that downstream consumers can
// flag the anomaly instead of silently losing the row.
//
// Missing values are empty strings, never fabricated.
type AttendanceRecord struct {
	// Carried-forward header context.
	EmployeeID   string
	EmployeeName string
	TagNumber    string
	SalaryMonth  string // MM/YYYY

	RawDate   string
	Date      *time.Time
	DayOfWeek string
	DayType   string

	ShiftPremium bool

	EntryTime  string
	ExitTime   string
	TotalHours string

	// Pay-adjusted variants (fixed-range strategy only).
	EntryForPay string
	ExitForPay  string
	TotalForPay string

	StandardHours string

	// Overtime buckets by percentage.
	OT100 string
	OT125 string
	OT150 string
	OT200 string

	// Shift bonus buckets.
	ShiftBonus87 string
	ShiftBonus50 string
	ShiftBonus20 string

	Deduction string
}

// HasTimes reports whether any of the primary time fields is populated.
func (r AttendanceRecord) HasTimes() bool {
	return r.EntryTime != "" || r.ExitTime != "" || r.TotalHours != ""
}
