package bloglist

import (
	"strings"
	"testing"
)

func TestExcerptUsesDescriptionVerbatim(t *testing.T) {
	long := strings.Repeat("d", ExcerptLimit*3)
	p := PostSummary{
		Description: long,
		Content:     strings.Repeat("c", ExcerptLimit*2),
	}
	if got := Excerpt(p); got != long {
		t.Errorf("Excerpt = %q, want the description verbatim", got)
	}
}

func TestExcerptTruncationLaw(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"short content untouched", "hello world", "hello world"},
		{"exactly at limit untouched", strings.Repeat("a", ExcerptLimit), strings.Repeat("a", ExcerptLimit)},
		{"one over limit truncated", strings.Repeat("a", ExcerptLimit+1), strings.Repeat("a", ExcerptLimit) + "..."},
		{"empty content", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Excerpt(PostSummary{Content: tt.content})
			if got != tt.want {
				t.Errorf("Excerpt = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExcerptTruncatesRunesNotBytes(t *testing.T) {
	content := strings.Repeat("日", ExcerptLimit+10)
	got := Excerpt(PostSummary{Content: content})
	want := strings.Repeat("日", ExcerptLimit) + "..."
	if got != want {
		t.Errorf("Excerpt truncated %d runes, want %d", len([]rune(got))-3, ExcerptLimit)
	}
}

func TestExcerptExampleScenario(t *testing.T) {
	content := "Large Concept Models represent" + strings.Repeat("x", 170)
	if len(content) != 200 {
		t.Fatalf("scenario content length = %d, want 200", len(content))
	}
	got := Excerpt(PostSummary{Content: content})
	want := content[:150] + "..."
	if got != want {
		t.Errorf("Excerpt = %q, want first 150 chars + ellipsis", got)
	}
}

func TestFormatPublishDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2024-01-05", "January 5, 2024"},
		{"2023-12-31", "December 31, 2023"},
		{"2024-01-05T09:30:00Z", "January 5, 2024"},
		{"not-a-date", "not-a-date"}, // malformed values render raw
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatPublishDate(tt.input); got != tt.want {
			t.Errorf("FormatPublishDate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
