package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/obitwatch/obitwatch/internal/model"
)

var commaSplitRe = regexp.MustCompile(`\s*,\s*`)

// ExtractEntry turns the full text of one list item into an Entry.
//
// The item text is expected in one of the two dominant source formats:
//
//	Jane Doe, 54, Example Corp CEO, cancer.
//	John Roe, Example Corp CEO, heart attack.
//
// A non-numeric second token means the age was omitted and the fields
// shift left by one. Items that still lack a name or background after
// shifting are discarded; no error is surfaced, best-effort extraction
// accepts incomplete coverage over failing the whole page.
func ExtractEntry(text string, date *time.Time) (model.Entry, bool) {
	s := MaskParentheticalCommas(text)
	s = StripRefMarkers(s)
	s = strings.TrimSpace(s)
	s = StripTrailingPeriod(s)

	tokens := commaSplitRe.Split(s, -1)
	if len(tokens) < 2 {
		return model.Entry{}, false
	}

	name := tokens[0]
	ageToken := tokens[1]

	info := ""
	if len(tokens) > 2 {
		info = tokens[2]
	}

	// The last token is the cause candidate. When the item carries no
	// distinguishing trailing clause the candidate coincides with the
	// background (or a parenthetical fragment) and is cleared below.
	cause := tokens[len(tokens)-1]

	var age *int
	if isDigits(ageToken) {
		v, _ := strconv.Atoi(ageToken)
		age = &v
	} else {
		// Age omitted: the second token is really the background.
		info = ageToken
	}

	// Drop causes that are dangling parenthetical fragments, duplicate the
	// background, or are empty.
	if strings.HasSuffix(cause, ")") || cause == info || strings.TrimSpace(cause) == "" {
		cause = ""
	}

	name = CollapseWhitespace(StripParentheticals(name))
	info = CollapseWhitespace(StripParentheticals(info))
	if name == "" || info == "" {
		return model.Entry{}, false
	}

	return model.Entry{
		Name:  name,
		Age:   age,
		Date:  date,
		Cause: cause,
		Info:  info,
	}, true
}

// isDigits reports whether s is a non-empty string of decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
