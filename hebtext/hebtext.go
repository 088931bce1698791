package hebtext

import (
	"regexp"
	"strings"

	"github.com/ymizrahi/timecard/model"
)

var (
	// timeRE matches HH:MM and HH:MM:SS tokens.
	timeRE = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
	// dateRE matches DD/MM, DD/MM/YY and DD/MM/YYYY tokens.
	dateRE = regexp.MustCompile(`^\d{2}/\d{2}(/(\d{2}|\d{4}))?$`)
)

// IsTime reports whether s is a fixed-format time token (HH:MM or HH:MM:SS).
func IsTime(s string) bool {
	return timeRE.MatchString(s)
}

// IsDate reports whether s is a fixed-format date token (DD/MM, optionally
// with a two- or four-digit year).
func IsDate(s string) bool {
	return dateRE.MatchString(s)
}

// ContainsHebrew reports whether s contains at least one Hebrew letter
// (U+05D0 through U+05EA).
func ContainsHebrew(s string) bool {
	for _, r := range s {
		if r >= 0x05D0 && r <= 0x05EA {
			return true
		}
	}
	return false
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// NormalizeWord corrects the character order of a single extracted token.
// Extraction yields right-to-left script in visual order, so a token whose
// dominant bidi class is right-to-left is reversed. Time and date tokens
// classify as LTR regardless of content and pass through unchanged, and so
// does everything else (numbers, ASCII, symbols).
//
// Reversing is an involution: NormalizeWord applied to an already-normalized
// RTL token returns the extracted original.
func NormalizeWord(s string) string {
	if DetectDirection(s) == model.RTL {
		return Reverse(s)
	}
	return s
}

// NormalizeLine applies NormalizeWord to each whitespace-delimited token of
// a line, preserving token order.
func NormalizeLine(line string) string {
	fields := strings.Fields(line)
	for i, f := range fields {
		fields[i] = NormalizeWord(f)
	}
	return strings.Join(fields, " ")
}

// NormalizeText applies NormalizeLine to every line of a page text blob.
// Call once, before any header pattern matching runs.
func NormalizeText(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = NormalizeLine(l)
	}
	return strings.Join(lines, "\n")
}

// DayNames maps a single Hebrew day letter to the full day name.
var DayNames = map[string]string{
	"א": "ראשון",
	"ב": "שני",
	"ג": "שלישי",
	"ד": "רביעי",
	"ה": "חמישי",
	"ו": "שישי",
	"ש": "שבת",
}

// IsDayLetter reports whether s is one of the known single-letter day codes.
func IsDayLetter(s string) bool {
	_, ok := DayNames[s]
	return ok
}

// DayName returns the full day name for a day letter, or the input unchanged
// when it is not a known day code.
func DayName(letter string) string {
	if name, ok := DayNames[letter]; ok {
		return name
	}
	return letter
}

// SplitMergedTime handles tokens where the extraction boundary merged two
// adjacent time cells into one token, e.g. "08:0008:00". A merged token is
// recognized by a length of at least 10 with a valid time pattern in its
// first 5 characters; the value is that prefix, and the remainder is a
// redundant duplicate that is discarded. Any other token passes through
// unchanged.
func SplitMergedTime(tok string) string {
	if len(tok) >= 10 && timeRE.MatchString(tok[:5]) {
		return tok[:5]
	}
	return tok
}
