package extract

import (
	"strings"

	"github.com/obitwatch/obitwatch/internal/model"
	"golang.org/x/net/html"
)

// PageExtractor extracts death records from one Wikipedia list page.
type PageExtractor struct{}

// NewPageExtractor creates a new page extractor
func NewPageExtractor() *PageExtractor {
	return &PageExtractor{}
}

// Extract parses the page HTML and returns the candidate records in
// document order. yearHint seeds the date context; pass 0 to default to
// the current calendar year.
func (e *PageExtractor) Extract(htmlContent string, yearHint int) ([]model.Entry, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}
	return e.ExtractDoc(doc, yearHint), nil
}

// ExtractDoc runs the traversal state machine over an already parsed tree.
//
// Every titled anchor is first offered to the date context: headings move
// the current date forward, everything else leaves it alone. An anchor
// that leads a list item is then a record candidate stamped with whatever
// date the context currently holds. A node is never both a heading signal
// and a record anchor, the classification is mutually exclusive.
func (e *PageExtractor) ExtractDoc(doc *html.Node, yearHint int) []model.Entry {
	ctx := NewDateContext(yearHint)

	var entries []model.Entry
	for _, a := range titledAnchors(doc) {
		class := classifyParent(a)
		ctx = ctx.Observe(class, attrValue(a, "title"))

		if class != NodeListItem || !isFirstChild(a) {
			continue
		}

		if entry, ok := ExtractEntry(textContent(a.Parent), ctx.Current); ok {
			entries = append(entries, entry)
		}
	}

	return entries
}
