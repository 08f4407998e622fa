package extract

import (
	"regexp"
	"strings"
)

var refMarkerRe = regexp.MustCompile(`\[\d+\]`)

var parentheticalRe = regexp.MustCompile(`\([^)]*\)`)

// MaskParentheticalCommas replaces commas inside parenthetical groups with
// semicolons so a later comma-split does not fragment asides like
// "(born Jane Smith, 1961)". Unbalanced parentheses pass through unchanged
// past the point where the nesting breaks down.
func MaskParentheticalCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	depth := 0
	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case r == ',' && depth > 0:
			r = ';'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripRefMarkers removes bracketed numeric reference markers like "[3]".
func StripRefMarkers(s string) string {
	return refMarkerRe.ReplaceAllString(s, "")
}

// StripTrailingPeriod removes a single trailing period.
func StripTrailingPeriod(s string) string {
	return strings.TrimSuffix(s, ".")
}

// StripParentheticals removes parenthetical asides, including the parentheses.
func StripParentheticals(s string) string {
	return parentheticalRe.ReplaceAllString(s, "")
}

// CollapseWhitespace collapses runs of whitespace to single spaces and trims.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
