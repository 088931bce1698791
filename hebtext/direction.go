package hebtext

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/ymizrahi/timecard/model"
)

// DetectDirection classifies a token's dominant writing direction from the
// Unicode bidi classes of its runes. Strong right-to-left characters (Hebrew,
// Arabic) count toward RTL, strong left-to-right characters toward LTR;
// digits, punctuation, and symbols are neutral. A token with no strong
// characters is Neutral.
//
// Time and date tokens are classified LTR regardless of content, matching
// the fixed-format guard in NormalizeWord.
func DetectDirection(text string) model.Direction {
	if text == "" {
		return model.Neutral
	}
	if IsTime(text) || IsDate(text) {
		return model.LTR
	}

	ltr, rtl := 0, 0
	for b := []byte(text); len(b) > 0; {
		p, n := bidi.Lookup(b)
		if n == 0 {
			break
		}
		switch p.Class() {
		case bidi.R, bidi.AL:
			rtl++
		case bidi.L:
			ltr++
		}
		b = b[n:]
	}

	if ltr == 0 && rtl == 0 {
		return model.Neutral
	}
	if rtl > ltr {
		return model.RTL
	}
	return model.LTR
}

// NormalizeTokens returns a normalized copy of tokens: each token is
// classified once and RTL tokens have their character order corrected, the
// same decision NormalizeWord makes per word. The input slice is not
// modified.
func NormalizeTokens(tokens []model.WordToken) []model.WordToken {
	out := make([]model.WordToken, len(tokens))
	for i, t := range tokens {
		d := DetectDirection(t.Text)
		if d == model.RTL {
			t.Text = Reverse(t.Text)
		}
		t.Direction = d
		out[i] = t
	}
	return out
}
