package source

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const wikiBase = "https://en.wikipedia.org/wiki/"

// Page identifies one Wikipedia deaths list page to fetch
type Page struct {
	Title    string // e.g. "Deaths in March 2015"
	URL      string // Resolved page URL
	YearHint int    // Year embedded in the title; seeds the date context
}

// ParseSelector resolves a user-supplied selector into a Page.
//
// Accepted forms:
//
//	2015        year-aggregate page "Deaths in 2015"
//	2015-03     monthly page "Deaths in March 2015"
//	March 2015  monthly page, month by name
//	March       monthly page in the current calendar year
func ParseSelector(selector string) (Page, error) {
	s := strings.TrimSpace(selector)
	if s == "" {
		return Page{}, fmt.Errorf("empty selector")
	}

	// 2015-03 form
	if year, month, ok := splitNumeric(s); ok {
		return monthPage(month, year), nil
	}

	// Bare year
	if year, err := strconv.Atoi(s); err == nil {
		if year < 1000 || year > 9999 {
			return Page{}, fmt.Errorf("implausible year %q", s)
		}
		return Page{
			Title:    fmt.Sprintf("Deaths in %d", year),
			URL:      pageURL(fmt.Sprintf("Deaths in %d", year)),
			YearHint: year,
		}, nil
	}

	// "March 2015" or bare "March"
	fields := strings.Fields(s)
	month, ok := parseMonthName(fields[0])
	if !ok {
		return Page{}, fmt.Errorf("unrecognized selector %q", selector)
	}

	year := time.Now().UTC().Year()
	if len(fields) > 1 {
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return Page{}, fmt.Errorf("unrecognized year in selector %q", selector)
		}
		year = y
	}

	return monthPage(month, year), nil
}

// ParseSelectors resolves a list of selectors, preserving order.
func ParseSelectors(selectors []string) ([]Page, error) {
	pages := make([]Page, 0, len(selectors))
	for _, s := range selectors {
		page, err := ParseSelector(s)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func monthPage(month time.Month, year int) Page {
	title := fmt.Sprintf("Deaths in %s %d", month, year)
	return Page{
		Title:    title,
		URL:      pageURL(title),
		YearHint: year,
	}
}

// pageURL builds the canonical article URL for a page title.
func pageURL(title string) string {
	return wikiBase + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

// splitNumeric matches the YYYY-MM selector form.
func splitNumeric(s string) (int, time.Month, bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1000 || year > 9999 {
		return 0, 0, false
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}

	return year, time.Month(month), true
}

// parseMonthName resolves a full English month name, case-insensitively.
func parseMonthName(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(name, m.String()) {
			return m, true
		}
	}
	return 0, false
}
