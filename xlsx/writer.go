// Package xlsx renders attendance records as an Excel workbook: a detail
// sheet with one row per day and an optional per-month summary sheet
// whose figures are live formulas over the detail sheet.
package xlsx

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ymizrahi/timecard/model"
)

// Sheet names.
const (
	DetailSheet  = "Daily Attendance"
	SummarySheet = "Monthly Summary"
)

var detailHeaders = []string{
	"Employee ID", "Employee Name", "Tag Number", "Salary Month",
	"Date", "Day of Week", "Day Type", "Shift Premium",
	"Entry", "Exit", "Total Hours",
	"Entry (Pay)", "Exit (Pay)", "Total (Pay)",
	"Standard Hours", "OT 100%", "OT 125%", "OT 150%", "OT 200%",
	"Shift 87%", "Shift 50%", "Shift 20%", "Deduction",
}

var summaryHeaders = []string{
	"Salary Month", "Work Days", "Vacation Days", "Sick Days", "No Report Days",
	"Total Hours", "Total (Pay)", "OT 100%", "OT 125%", "OT 150%", "OT 200%",
}

// Writer renders records into a workbook. Summary controls whether the
// per-month summary sheet is added.
type Writer struct {
	Summary bool
}

// NewWriter returns a writer that includes the summary sheet.
func NewWriter() *Writer {
	return &Writer{Summary: true}
}

// Save renders records and writes the workbook to path.
func (w *Writer) Save(records []model.AttendanceRecord, path string) error {
	f, err := w.build(records)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// Write renders records and streams the workbook to out.
func (w *Writer) Write(records []model.AttendanceRecord, out io.Writer) error {
	f, err := w.build(records)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(out)
}

func (w *Writer) build(records []model.AttendanceRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", DetailSheet); err != nil {
		return nil, err
	}
	if err := w.writeDetail(f, records); err != nil {
		f.Close()
		return nil, err
	}
	if w.Summary {
		if err := w.writeSummary(f, records); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func (w *Writer) writeDetail(f *excelize.File, records []model.AttendanceRecord) error {
	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return err
	}
	dateFmt := "dd/mm/yyyy"
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return err
	}
	dateZebraStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &dateFmt,
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"F2F2F2"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, h := range detailHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(DetailSheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(DetailSheet, "A1", "W1", headerStyle); err != nil {
		return err
	}

	zebraStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"F2F2F2"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, r := range records {
		row := i + 2
		cells := []any{
			r.EmployeeID, r.EmployeeName, r.TagNumber, r.SalaryMonth,
			nil, // date, set below to keep its cell type
			r.DayOfWeek, r.DayType, r.ShiftPremium,
			r.EntryTime, r.ExitTime, numeric(r.TotalHours),
			r.EntryForPay, r.ExitForPay, numeric(r.TotalForPay),
			numeric(r.StandardHours), numeric(r.OT100), numeric(r.OT125),
			numeric(r.OT150), numeric(r.OT200),
			numeric(r.ShiftBonus87), numeric(r.ShiftBonus50), numeric(r.ShiftBonus20),
			numeric(r.Deduction),
		}
		for col, v := range cells {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(DetailSheet, cell, v); err != nil {
				return err
			}
		}

		zebra := i%2 == 1
		if zebra {
			ref := strconv.Itoa(row)
			if err := f.SetCellStyle(DetailSheet, "A"+ref, "W"+ref, zebraStyle); err != nil {
				return err
			}
		}

		dateCell := "E" + strconv.Itoa(row)
		if r.Date != nil {
			if err := f.SetCellValue(DetailSheet, dateCell, *r.Date); err != nil {
				return err
			}
			ds := dateStyle
			if zebra {
				ds = dateZebraStyle
			}
			if err := f.SetCellStyle(DetailSheet, dateCell, dateCell, ds); err != nil {
				return err
			}
		} else if r.RawDate != "" {
			if err := f.SetCellValue(DetailSheet, dateCell, r.RawDate); err != nil {
				return err
			}
		}
	}

	// Fit each column to its widest value, header included.
	widths := make([]float64, len(detailHeaders))
	for i, h := range detailHeaders {
		widths[i] = float64(len(h))
	}
	for _, r := range records {
		for i, s := range detailStrings(r) {
			if w := float64(len([]rune(s))); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(DetailSheet, name, name, w+2); err != nil {
			return err
		}
	}

	lastRow := len(records) + 1
	if err := f.AutoFilter(DetailSheet, fmt.Sprintf("A1:W%d", lastRow), nil); err != nil {
		return err
	}
	return f.SetPanes(DetailSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// writeSummary adds one formula-driven row per salary month, in first-seen
// order, so the summary stays live when the detail sheet is edited.
func (w *Writer) writeSummary(f *excelize.File, records []model.AttendanceRecord) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}
	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return err
	}

	for i, h := range summaryHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SummarySheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "K1", headerStyle); err != nil {
		return err
	}

	seen := make(map[string]bool)
	var months []string
	for _, r := range records {
		if r.SalaryMonth == "" || seen[r.SalaryMonth] {
			continue
		}
		seen[r.SalaryMonth] = true
		months = append(months, r.SalaryMonth)
	}

	countFormula := func(row int, dayType string) string {
		return fmt.Sprintf(
			"COUNTIFS('%s'!$D:$D,$A%d,'%s'!$G:$G,%q)",
			DetailSheet, row, DetailSheet, dayType)
	}
	sumFormula := func(row int, col string) string {
		return fmt.Sprintf(
			"SUMIF('%s'!$D:$D,$A%d,'%s'!$%s:$%s)",
			DetailSheet, row, DetailSheet, col, col)
	}

	for i, month := range months {
		row := i + 2
		if err := f.SetCellValue(SummarySheet, "A"+strconv.Itoa(row), month); err != nil {
			return err
		}
		formulas := map[string]string{
			"B": countFormula(row, "Work"),
			"C": countFormula(row, "Vacation"),
			"D": countFormula(row, "Sick"),
			"E": countFormula(row, "No Report"),
			"F": sumFormula(row, "K"),
			"G": sumFormula(row, "N"),
			"H": sumFormula(row, "P"),
			"I": sumFormula(row, "Q"),
			"J": sumFormula(row, "R"),
			"K": sumFormula(row, "S"),
		}
		for _, col := range []string{"B", "C", "D", "E", "F", "G", "H", "I", "J", "K"} {
			if err := f.SetCellFormula(SummarySheet, col+strconv.Itoa(row), formulas[col]); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(SummarySheet, "A", "A", 14); err != nil {
		return err
	}
	return f.SetColWidth(SummarySheet, "B", "K", 13)
}

func newHeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
}

// detailStrings returns the record's display strings in detail-column
// order, for width fitting.
func detailStrings(r model.AttendanceRecord) []string {
	date := r.RawDate
	if r.Date != nil {
		date = r.Date.Format("02/01/2006")
	}
	premium := ""
	if r.ShiftPremium {
		premium = "TRUE"
	}
	return []string{
		r.EmployeeID, r.EmployeeName, r.TagNumber, r.SalaryMonth,
		date, r.DayOfWeek, r.DayType, premium,
		r.EntryTime, r.ExitTime, r.TotalHours,
		r.EntryForPay, r.ExitForPay, r.TotalForPay,
		r.StandardHours, r.OT100, r.OT125, r.OT150, r.OT200,
		r.ShiftBonus87, r.ShiftBonus50, r.ShiftBonus20, r.Deduction,
	}
}

// numeric converts hour and amount strings to numbers so spreadsheet
// aggregation works; non-numeric values pass through as text.
func numeric(s string) any {
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}
