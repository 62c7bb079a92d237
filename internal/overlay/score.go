package overlay

import (
	"strconv"
	"strings"
)

// scorePrecision is the number of decimal places scores are rounded to
// before they are compared or printed.
const scorePrecision = 2

// RoundScore rounds a score to two decimal places.
//
// Rounding is performed on the exact binary value of the float with ties
// going to the even digit, so the result is the float nearest to the
// correctly rounded decimal:
//
//	RoundScore(0.005) == 0.01  // 0.005 is stored slightly above the tie
//	RoundScore(0.125) == 0.12  // exact tie, rounds to even
//	RoundScore(2.675) == 2.67  // stored slightly below the tie
func RoundScore(score float64) float64 {
	s := strconv.FormatFloat(score, 'f', scorePrecision, 64)
	rounded, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// FormatFloat output always parses; NaN and Inf come back unchanged.
		return score
	}
	return rounded
}

// FormatScore renders a rounded score in its shortest decimal form. Whole
// numbers keep a trailing ".0" so 1 prints as "1.0" and 0 as "0.0".
func FormatScore(score float64) string {
	s := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}
