package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

// Raw dataset fields arrive as display strings ("4.1/5", "1,200", "NEW").
// These cleaners pull the numbers out; the engine never sees raw strings.

var (
	ratingRe = regexp.MustCompile(`(\d+\.?\d*)`)
	costRe   = regexp.MustCompile(`(\d+)`)
)

const defaultRating = 3.0

// extractRating parses strings like "4.1/5" or "8,6". Values above 5 are
// assumed to be on a 10-point scale and halved. Missing or unparseable input
// gets the neutral default; the result is clamped to [0,5].
func extractRating(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return defaultRating
	}
	m := ratingRe.FindString(strings.ReplaceAll(s, ",", "."))
	if m == "" {
		return defaultRating
	}
	r, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return defaultRating
	}
	if r > 5 {
		r /= 2
	}
	return clamp(r, 0, 5)
}

// extractCost parses strings like "Rs 1,200" into 1200. Returns 0 when no
// digits are present; callers drop zero-cost rows.
func extractCost(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	m := costRe.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// extractInt is for plain counts (votes, stars). Zero on anything unparseable.
func extractInt(s string) int {
	m := costRe.FindString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if m == "" {
		return 0
	}
	n, _ := strconv.Atoi(m)
	return n
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
