// Package records turns column-bound day cells into attendance records,
// translating Hebrew activity labels and resolving partial dates against
// the carried-forward header context.
package records

import (
	"github.com/ymizrahi/timecard/headers"
	"github.com/ymizrahi/timecard/hebtext"
	"github.com/ymizrahi/timecard/model"
	"github.com/ymizrahi/timecard/tables"
)

// Assembler maps raw day cells to attendance records. Activities
// translates Hebrew activity labels to their English record values;
// labels without a translation pass through untouched. Null holds the
// activities that mean "no attendance happened": their records keep the
// day-type label but drop any stray time values.
type Assembler struct {
	Activities map[string]string
	Null       map[string]bool
}

// NewAssembler returns an assembler with the standard activity
// translations.
func NewAssembler() *Assembler {
	return &Assembler{
		Activities: map[string]string{
			"עבודה":             "Work",
			"חופשה":             "Vacation",
			"מחלה":              "Sick",
			"אין דיווח נוכחות":  "No Report",
			"ללא תקן עבודה":     "No Standard",
			"בחירה":             "Personal Day",
			"מחלת בן זוג":       "Spouse Sick",
			"מחלת הורה":         "Parent Sick",
			"מחלה בהצהרה":       "Declared Sick",
			"השתלמות":           "Training",
			"חג":                "Holiday",
			"חוה\"מ":            "Intermediate Holiday",
			"ע' חג":             "Holiday Eve",
		},
		Null: map[string]bool{
			"אין דיווח נוכחות": true,
			"ללא תקן עבודה":    true,
		},
	}
}

// dayType translates an activity label, passing unknown labels through.
func (a *Assembler) dayType(label string) string {
	if label == "" {
		return ""
	}
	if v, ok := a.Activities[label]; ok {
		return v
	}
	return label
}

// FromDayCells builds one record per day cell under the adaptive
// strategy, attaching the page's header context.
func (a *Assembler) FromDayCells(cells []tables.DayCells, ctx *headers.Context) []model.AttendanceRecord {
	out := make([]model.AttendanceRecord, 0, len(cells))
	for _, c := range cells {
		r := a.base(ctx)
		r.RawDate = c.Date
		r.Date = headers.ResolveDateToken(c.Date, ctx.SalaryMonth)
		r.DayOfWeek = hebtext.DayName(c.Day)
		r.DayType = a.dayType(c.DayType)
		r.EntryTime = c.Entry
		r.ExitTime = c.Exit
		r.TotalHours = c.Total
		if a.Null[c.DayType] {
			r.EntryTime, r.ExitTime, r.TotalHours = "", "", ""
		}
		out = append(out, r)
	}
	return out
}

// FromRowCells builds one record per data row under the fixed-range
// strategy, attaching the page's header context.
func (a *Assembler) FromRowCells(rows []tables.RowCells, ctx *headers.Context) []model.AttendanceRecord {
	out := make([]model.AttendanceRecord, 0, len(rows))
	for _, row := range rows {
		r := a.base(ctx)
		r.RawDate = row.DateToken
		r.Date = headers.ResolveDateToken(row.DateToken, ctx.SalaryMonth)
		r.DayOfWeek = hebtext.DayName(row.Values[tables.ColDayOfWeek])
		r.DayType = a.dayType(row.Activity)
		r.ShiftPremium = row.ShiftPremium
		r.EntryTime = row.Values[tables.ColEntryActual]
		r.ExitTime = row.Values[tables.ColExitActual]
		r.TotalHours = row.Values[tables.ColTotalPresent]
		r.EntryForPay = row.Values[tables.ColEntryForPay]
		r.ExitForPay = row.Values[tables.ColExitForPay]
		r.TotalForPay = row.Values[tables.ColTotalForPay]
		r.StandardHours = row.Values[tables.ColStandardHours]
		r.OT100 = row.Values[tables.ColOT100]
		r.OT125 = row.Values[tables.ColOT125]
		r.OT150 = row.Values[tables.ColOT150]
		r.OT200 = row.Values[tables.ColOT200]
		r.ShiftBonus87 = row.Values[tables.ColShift87]
		r.ShiftBonus50 = row.Values[tables.ColShift50]
		r.ShiftBonus20 = row.Values[tables.ColShift20]
		r.Deduction = row.Values[tables.ColDeduction]
		if a.Null[row.Activity] {
			r.EntryTime, r.ExitTime, r.TotalHours = "", "", ""
			r.EntryForPay, r.ExitForPay, r.TotalForPay = "", "", ""
			r.StandardHours = ""
			r.OT100, r.OT125, r.OT150, r.OT200 = "", "", "", ""
			r.ShiftBonus87, r.ShiftBonus50, r.ShiftBonus20 = "", "", ""
			r.Deduction = ""
		}
		out = append(out, r)
	}
	return out
}

func (a *Assembler) base(ctx *headers.Context) model.AttendanceRecord {
	return model.AttendanceRecord{
		EmployeeID:   ctx.EmployeeID,
		EmployeeName: ctx.EmployeeName,
		TagNumber:    ctx.TagNumber,
		SalaryMonth:  ctx.SalaryMonthDisplay(),
	}
}
