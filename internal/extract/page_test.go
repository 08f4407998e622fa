package extract

import (
	"testing"
	"time"
)

const monthlyPage = `
<html>
<body>
<div class="mw-parser-output">
	<h3><span class="mw-headline"><a href="/wiki/March_5" title="March 5">March 5</a></span></h3>
	<ul>
		<li><a href="/wiki/Jane_Doe" title="Jane Doe">Jane Doe</a>, 54, Example Corp CEO, cancer.<sup>[1]</sup></li>
		<li><a href="/wiki/John_Roe" title="John Roe">John Roe</a>, Example Corp CEO, heart attack.</li>
	</ul>
	<h3><span class="mw-headline"><a href="/wiki/March_7" title="March 7">March 7</a></span></h3>
	<ul>
		<li><a href="/wiki/Ann_Quin" title="Ann Quin">Ann Quin</a>, 88, British novelist.</li>
	</ul>
</div>
</body>
</html>
`

func TestPageExtractor_MonthlyPage(t *testing.T) {
	extractor := NewPageExtractor()

	entries, err := extractor.Extract(monthlyPage, 2015)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	march5 := time.Date(2015, time.March, 5, 0, 0, 0, 0, time.UTC)
	march7 := time.Date(2015, time.March, 7, 0, 0, 0, 0, time.UTC)

	if entries[0].Name != "Jane Doe" || entries[0].Date == nil || !entries[0].Date.Equal(march5) {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}

	// The second item inherits the March 5 heading
	if entries[1].Name != "John Roe" || entries[1].Date == nil || !entries[1].Date.Equal(march5) {
		t.Errorf("expected John Roe to inherit March 5, got %+v", entries[1])
	}
	if entries[1].Age != nil {
		t.Errorf("expected absent age for John Roe, got %d", *entries[1].Age)
	}

	if entries[2].Name != "Ann Quin" || entries[2].Date == nil || !entries[2].Date.Equal(march7) {
		t.Errorf("expected Ann Quin under March 7, got %+v", entries[2])
	}
}

func TestPageExtractor_YearAggregatePage(t *testing.T) {
	page := `
<html>
<body>
	<h2><span class="mw-headline"><a href="/wiki/Deaths_in_March_2015" title="Deaths in March 2015">March</a></span></h2>
	<h3><span class="mw-headline"><a href="/wiki/March_5" title="March 5">5</a></span></h3>
	<ul>
		<li><a href="/wiki/Jane_Doe" title="Jane Doe">Jane Doe</a>, 54, Example Corp CEO, cancer.</li>
	</ul>
</body>
</html>
`
	extractor := NewPageExtractor()

	// Seed year is wrong on purpose; the h2 section heading corrects it
	entries, err := extractor.Extract(page, 1999)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Date == nil || entries[0].Date.Year() != 2015 {
		t.Errorf("expected year from section heading, got %v", entries[0].Date)
	}
}

func TestPageExtractor_ItemBeforeAnyHeading(t *testing.T) {
	page := `
<html>
<body>
	<ul>
		<li><a href="/wiki/Jane_Doe" title="Jane Doe">Jane Doe</a>, 54, Example Corp CEO, cancer.</li>
	</ul>
</body>
</html>
`
	extractor := NewPageExtractor()

	entries, err := extractor.Extract(page, 2015)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Date != nil {
		t.Errorf("expected absent date before any heading, got %v", *entries[0].Date)
	}
}

func TestPageExtractor_LaterAnchorsIgnored(t *testing.T) {
	// Only the leading anchor of a list item is a candidate; inline links
	// deeper in the prose must not produce records.
	page := `
<html>
<body>
	<ul>
		<li><a href="/wiki/Jane_Doe" title="Jane Doe">Jane Doe</a>, 54, CEO of <a href="/wiki/Example_Corp" title="Example Corp">Example Corp</a>, cancer.</li>
		<li>Preamble text <a href="/wiki/John_Roe" title="John Roe">John Roe</a>, 60, Writer.</li>
	</ul>
</body>
</html>
`
	extractor := NewPageExtractor()

	entries, err := extractor.Extract(page, 2015)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "Jane Doe" {
		t.Errorf("expected only the leading anchor to extract, got %q", entries[0].Name)
	}
}

func TestPageExtractor_MalformedItemsSkipped(t *testing.T) {
	page := `
<html>
<body>
	<h3><span class="mw-headline"><a href="/wiki/March_5" title="March 5">March 5</a></span></h3>
	<ul>
		<li><a href="/wiki/Solo" title="Solo">Solo</a></li>
		<li><a href="/wiki/Jane_Doe" title="Jane Doe">Jane Doe</a>, 54, Example Corp CEO.</li>
	</ul>
</body>
</html>
`
	extractor := NewPageExtractor()

	entries, err := extractor.Extract(page, 2015)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected the malformed item to be skipped, got %d entries", len(entries))
	}
	if entries[0].Name != "Jane Doe" {
		t.Errorf("expected Jane Doe, got %q", entries[0].Name)
	}
}

func TestPageExtractor_EmptyPage(t *testing.T) {
	extractor := NewPageExtractor()

	entries, err := extractor.Extract("<html><body><p>Nothing here.</p></body></html>", 2015)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
