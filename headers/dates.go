package headers

import (
	"strconv"
	"strings"
	"time"
)

// ParseDayMonth splits a DD/MM or DD/MM/YYYY token into numeric day and
// month. The year component, if any, is ignored here; ResolveDateToken
// handles full dates directly.
func ParseDayMonth(tok string) (day, month int, ok bool) {
	if len(tok) < 5 || tok[2] != '/' {
		return 0, 0, false
	}
	day, err := strconv.Atoi(tok[:2])
	if err != nil {
		return 0, 0, false
	}
	month, err = strconv.Atoi(tok[3:5])
	if err != nil {
		return 0, 0, false
	}
	return day, month, true
}

// ReconstructDate resolves a day/month pair against the salary month
// (DD/MM/YYYY). The pay period can span a year boundary: a row month at or
// before the salary month belongs to the salary year, a later row month
// belongs to the prior year (a December row in a January salary month is
// last December, not next). Invalid day/month combinations for the resolved
// year yield ok=false.
func ReconstructDate(day, month int, salaryMonth string) (time.Time, bool) {
	parts := strings.Split(salaryMonth, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	salMonth, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	salYear, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}

	year := salYear
	if month > salMonth {
		year--
	}

	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 becomes Mar 1/2); reject such rows.
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// ResolveDateToken resolves a raw date token to a full date. Tokens carrying
// their own four-digit year parse directly; bare DD/MM tokens are
// reconstructed against the salary month. Unresolvable tokens return nil;
// the record is still emitted with a null date so the anomaly stays visible.
func ResolveDateToken(tok, salaryMonth string) *time.Time {
	if len(tok) == len("DD/MM/YYYY") {
		if d, err := time.Parse("02/01/2006", tok); err == nil {
			d = d.UTC()
			return &d
		}
		return nil
	}
	day, month, ok := ParseDayMonth(tok)
	if !ok {
		return nil
	}
	if d, ok := ReconstructDate(day, month, salaryMonth); ok {
		return &d
	}
	return nil
}
