package extract

import (
	"strconv"
	"strings"
	"time"
)

// NodeClass classifies the parent element of an anchor node encountered
// during page traversal.
type NodeClass int

const (
	NodeOther          NodeClass = iota // Not a heading or list-item signal
	NodeDayHeading                      // span nested in an h3: "March 5"
	NodeSectionHeading                  // span nested in an h2: "Deaths in March 2015"
	NodeListItem                        // li: a record candidate
)

// DateContext carries the date state threaded through a page traversal.
// It is a value type: Observe returns the updated context instead of
// mutating shared state, which keeps the state machine testable and the
// traversal deterministic.
type DateContext struct {
	Year    int        // Current year, seeded from the page selector
	Current *time.Time // Most recent day-level heading date, nil before the first one
}

// NewDateContext seeds a context from a year hint. A zero hint falls back
// to the current calendar year.
func NewDateContext(yearHint int) DateContext {
	if yearHint == 0 {
		yearHint = time.Now().UTC().Year()
	}
	return DateContext{Year: yearHint}
}

// Observe interprets one anchor's parent classification and title text and
// returns the updated context.
//
// Day headings ("March 5" under an h3) set Current. Section headings
// ("Deaths in March 2015" under an h2, found on year-aggregate pages)
// update Year from the title's last two tokens. Unrecognized month names
// and non-numeric tokens contribute nothing; traversal continues.
func (c DateContext) Observe(class NodeClass, title string) DateContext {
	switch class {
	case NodeDayHeading:
		fields := strings.Fields(title)
		if len(fields) < 2 {
			return c
		}
		day, err := strconv.Atoi(fields[1])
		if err != nil {
			return c
		}
		month, ok := monthIndex(fields[0])
		if !ok {
			return c
		}
		d := time.Date(c.Year, month, day, 0, 0, 0, 0, time.UTC)
		c.Current = &d

	case NodeSectionHeading:
		fields := strings.Fields(title)
		if len(fields) < 2 {
			return c
		}
		year, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			return c
		}
		c.Year = year
	}

	return c
}

var months = map[string]time.Month{
	"January":   time.January,
	"February":  time.February,
	"March":     time.March,
	"April":     time.April,
	"May":       time.May,
	"June":      time.June,
	"July":      time.July,
	"August":    time.August,
	"September": time.September,
	"October":   time.October,
	"November":  time.November,
	"December":  time.December,
}

// monthIndex resolves a full English month name to its calendar month.
func monthIndex(name string) (time.Month, bool) {
	m, ok := months[name]
	return m, ok
}
