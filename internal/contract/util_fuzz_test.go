package contract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/huangsam/scorecard/schema"
)

// FuzzTruncateText fuzzes TruncateText with random text and widths.
func FuzzTruncateText(f *testing.F) {
	seeds := []struct {
		text  string
		width int
	}{
		{"Objectives defined and signed off", 10},
		{"short", 40},
		{"", 5},
		{"日本語のテキスト", 4},
		{"abc", 0},
	}
	for _, seed := range seeds {
		f.Add(seed.text, seed.width)
	}

	f.Fuzz(func(t *testing.T, text string, width int) {
		if !utf8.ValidString(text) {
			return
		}
		got := TruncateText(text, width)
		if width > 3 && utf8.RuneCountInString(got) > width {
			t.Errorf("TruncateText(%q, %d) = %q is wider than %d", text, width, got, width)
		}
		if got != text && !strings.HasSuffix(got, "...") {
			t.Errorf("TruncateText(%q, %d) = %q lost its ellipsis", text, width, got)
		}
	})
}

// FuzzSplitList fuzzes the comma-separated list parsing used for categories and origins.
func FuzzSplitList(f *testing.F) {
	for _, seed := range []string{"Brief, Reporting", "", ",,,", " a ,b", "Placement & Inventory"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		for _, item := range SplitList(s) {
			if item == "" || item != strings.TrimSpace(item) {
				t.Errorf("SplitList(%q) returned untrimmed item %q", s, item)
			}
		}
		for _, city := range schema.SplitCities(s) {
			if strings.Contains(city, ",") {
				t.Errorf("SplitCities(%q) returned %q", s, city)
			}
		}
	})
}
