package views

import (
	"encoding/json"
	"html"

	"github.com/harlowe/bloglist"
)

// esc escapes a string for use in HTML text or attribute values.
func esc(s string) string {
	return html.EscapeString(s)
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg bloglist.SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      bloglist.BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(cfg bloglist.SiteConfig, post bloglist.PostSummary) string {
	postURL := bloglist.BuildURL(cfg.URL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   bloglist.Excerpt(post),
		"datePublished": post.Date,
		"url":           postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if len(post.Authors) > 0 {
		authors := make([]map[string]string, 0, len(post.Authors))
		for _, a := range post.Authors {
			authors = append(authors, map[string]string{
				"@type": "Person",
				"name":  a.Name,
			})
		}
		data["author"] = authors
	}
	if len(post.Tags) > 0 {
		labels := make([]string, 0, len(post.Tags))
		for _, t := range post.Tags {
			labels = append(labels, t.Label)
		}
		data["keywords"] = labels
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
