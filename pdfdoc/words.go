package pdfdoc

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/ymizrahi/timecard/model"
)

const (
	// lineTolerance is the vertical slack for characters on one visual line.
	lineTolerance = 2.0
	// wordGapTolerance is the widest horizontal gap between adjacent
	// characters that still belongs to one word.
	wordGapTolerance = 3.0
)

// assembleWords merges per-character fragments into word tokens. PDF Y
// grows upward; token Top is the distance from the page's top edge, so
// rows sort naturally in reading order.
func assembleWords(chars []pdf.Text, pageHeight float64) []model.WordToken {
	kept := make([]pdf.Text, 0, len(chars))
	for _, c := range chars {
		if strings.TrimSpace(c.S) == "" {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return nil
	}

	// Top of page first, then left to right within a line.
	sort.SliceStable(kept, func(i, j int) bool {
		if diff := kept[i].Y - kept[j].Y; diff > lineTolerance || diff < -lineTolerance {
			return kept[i].Y > kept[j].Y
		}
		return kept[i].X < kept[j].X
	})

	var words []model.WordToken
	var b strings.Builder
	start := kept[0]
	prev := kept[0]
	b.WriteString(start.S)

	flush := func(last pdf.Text) {
		words = append(words, model.WordToken{
			Text: b.String(),
			X0:   start.X,
			X1:   last.X + last.W,
			Top:  pageHeight - start.Y,
		})
		b.Reset()
	}

	for _, c := range kept[1:] {
		sameLine := c.Y-prev.Y <= lineTolerance && prev.Y-c.Y <= lineTolerance
		gap := c.X - (prev.X + prev.W)
		if !sameLine || gap > wordGapTolerance || gap < -wordGapTolerance {
			flush(prev)
			start = c
		}
		b.WriteString(c.S)
		prev = c
	}
	flush(prev)
	return words
}

// linesText renders assembled words as newline-separated lines, words
// separated by single spaces in left-to-right order.
func linesText(words []model.WordToken) string {
	if len(words) == 0 {
		return ""
	}

	type line struct {
		top   float64
		words []model.WordToken
	}
	var lines []line
	for _, w := range words {
		placed := false
		for i := range lines {
			if diff := lines[i].top - w.Top; diff <= lineTolerance && diff >= -lineTolerance {
				lines[i].words = append(lines[i].words, w)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, line{top: w.Top, words: []model.WordToken{w}})
		}
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].top < lines[j].top })

	var sb strings.Builder
	for i, ln := range lines {
		sort.SliceStable(ln.words, func(a, b int) bool { return ln.words[a].X0 < ln.words[b].X0 })
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, w := range ln.words {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(w.Text)
		}
	}
	return sb.String()
}
