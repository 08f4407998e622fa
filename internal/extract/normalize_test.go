package extract

import "testing"

func TestMaskParentheticalCommas(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Jane Doe (born Smith, 1961), 54, CEO", "Jane Doe (born Smith; 1961), 54, CEO"},
		{"no parens, at all", "no parens, at all"},
		{"nested (a (b, c), d), e", "nested (a (b; c); d), e"},
		{"unbalanced ) then, comma", "unbalanced ) then, comma"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := MaskParentheticalCommas(tt.input); got != tt.expected {
			t.Errorf("MaskParentheticalCommas(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestStripRefMarkers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Jane Doe, 54, CEO, cancer.[3]", "Jane Doe, 54, CEO, cancer."},
		{"multiple[1] markers[12] here", "multiple markers here"},
		{"[not numeric]", "[not numeric]"},
		{"untouched", "untouched"},
	}

	for _, tt := range tests {
		if got := StripRefMarkers(tt.input); got != tt.expected {
			t.Errorf("StripRefMarkers(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestStripTrailingPeriod(t *testing.T) {
	if got := StripTrailingPeriod("cancer."); got != "cancer" {
		t.Errorf("expected %q, got %q", "cancer", got)
	}
	// Only a single trailing period is removed
	if got := StripTrailingPeriod("etc.."); got != "etc." {
		t.Errorf("expected %q, got %q", "etc.", got)
	}
	if got := StripTrailingPeriod("no period"); got != "no period" {
		t.Errorf("expected input unchanged, got %q", got)
	}
}

func TestStripParentheticals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Writer (pen name Y)", "Writer "},
		{"(leading) text", " text"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := StripParentheticals(tt.input); got != tt.expected {
			t.Errorf("StripParentheticals(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Jane   Doe ", "Jane Doe"},
		{"one\ttwo\nthree", "one two three"},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := CollapseWhitespace(tt.input); got != tt.expected {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
