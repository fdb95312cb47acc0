package bloglist

import (
	"strings"
	"time"
)

// ExcerptLimit is the character budget for excerpts derived from post
// content. Author-supplied descriptions are never truncated.
const ExcerptLimit = 150

// Excerpt resolves the preview text for a listing card. A non-empty
// Description wins and is used verbatim. Otherwise the post's content is
// truncated to ExcerptLimit characters, with "..." appended only when
// truncation actually occurred.
func Excerpt(p PostSummary) string {
	if p.Description != "" {
		return p.Description
	}
	return truncate(p.Content, ExcerptLimit)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

var publishDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.DateTime,
	"2006-01-02 15:04",
}

// FormatPublishDate renders a stored date as "January 5, 2024". The date
// is used verbatim with no timezone conversion. A value that matches none
// of the accepted layouts is returned raw and unformatted.
func FormatPublishDate(date string) string {
	s := strings.TrimSpace(date)
	for _, layout := range publishDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return date
}
