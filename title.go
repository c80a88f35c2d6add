package eda

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-gota/gota/series"
)

// EmptyCloud is the text of a word cloud over a column without rows.
const EmptyCloud = "EMPTY"

func cased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// titleCase upper-cases the first cased letter of every run of cased
// letters and lower-cases the rest: "2nd_HALF x" becomes "2Nd_Half X".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		if cased(r) {
			if inWord {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToTitle(r)
			}
			inWord = true
		} else {
			inWord = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PrepareTitle turns a column name into a label: underscores become
// spaces and each word is title cased, "body_mass_index" gives
// "Body Mass Index".
func PrepareTitle(name string) string {
	return titleCase(strings.ReplaceAll(name, "_", " "))
}

// CleanText joins the present values of s into the input text of a word
// cloud. Each value is lower-cased, stripped of every "none" substring
// and title cased. A column without rows yields EmptyCloud.
func CleanText(s series.Series) string {
	if s.Len() == 0 {
		return EmptyCloud
	}
	parts := make([]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		v := e.String()
		if s.Type() == series.Float {
			v = formatFloat(e.Float())
		}
		v = strings.ReplaceAll(strings.ToLower(v), "none", "")
		parts = append(parts, titleCase(v))
	}
	return strings.Join(parts, " ")
}

// formatFloat writes v in shortest form with at least one decimal,
// switching to exponent notation for very small and large magnitudes:
// 1 is "1.0", 0.00001 is "1e-05".
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
