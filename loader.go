package bloglist

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// wordsPerMinute is the reading speed used when a post document does not
// carry a precomputed reading time.
const wordsPerMinute = 200

// postDoc is the on-disk YAML shape of one post's metadata. This is the
// boundary where loosely-shaped content becomes a typed PostSummary.
type postDoc struct {
	Title          string   `yaml:"title"`
	Slug           string   `yaml:"slug"`
	Date           string   `yaml:"date"`
	Authors        []Author `yaml:"authors"`
	Tags           []string `yaml:"tags"`
	Description    string   `yaml:"description"`
	ReadingMinutes int      `yaml:"reading_minutes"`
	Draft          bool     `yaml:"draft"`
	Content        string   `yaml:"content"`
}

// LoadDir reads every *.yaml/*.yml post document under dir, normalizes and
// validates each one, and returns the summaries sorted by date descending.
func LoadDir(dir string) ([]PostSummary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("bloglist: read content dir: %w", err)
	}

	var posts []PostSummary
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		p, err := loadPostFile(path)
		if err != nil {
			return nil, fmt.Errorf("bloglist: load %s: %w", path, err)
		}
		posts = append(posts, p)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return posts[i].Slug < posts[j].Slug
	})
	return posts, nil
}

func loadPostFile(path string) (PostSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PostSummary{}, err
	}
	var doc postDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return PostSummary{}, err
	}
	return buildSummary(doc, path)
}

// buildSummary turns a parsed document into a validated PostSummary.
func buildSummary(doc postDoc, path string) (PostSummary, error) {
	slug := strings.TrimSpace(doc.Slug)
	if slug == "" {
		slug = Slugify(doc.Title)
	}
	if slug == "" {
		base := filepath.Base(path)
		slug = Slugify(strings.TrimSuffix(base, filepath.Ext(base)))
	}

	title := strings.TrimSpace(doc.Title)
	if title == "" {
		return PostSummary{}, &MissingFieldError{Slug: slug, Field: "title"}
	}
	if slug == "" {
		return PostSummary{}, &MissingFieldError{Field: "slug"}
	}

	date := strings.TrimSpace(doc.Date)
	if date == "" {
		return PostSummary{}, &MissingFieldError{Slug: slug, Field: "date"}
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		if _, err := time.Parse(time.RFC3339, date); err != nil {
			return PostSummary{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
		}
	}

	p := PostSummary{
		Slug:           slug,
		Title:          title,
		Permalink:      "/blog/" + slug + "/",
		Date:           date,
		Authors:        normalizeAuthors(doc.Authors),
		Tags:           normalizeTags(doc.Tags),
		Description:    strings.TrimSpace(doc.Description),
		Content:        strings.TrimSpace(doc.Content),
		ReadingMinutes: doc.ReadingMinutes,
		Published:      !doc.Draft,
	}
	if p.ReadingMinutes <= 0 {
		p.ReadingMinutes = estimateReadingMinutes(p.Content)
	}
	return p, nil
}

func normalizeAuthors(authors []Author) []Author {
	var out []Author
	for _, a := range authors {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			continue
		}
		out = append(out, Author{Name: name, ImageURL: strings.TrimSpace(a.ImageURL)})
	}
	return out
}

// normalizeTags trims, drops empties, and dedupes case-insensitively while
// preserving first-seen order and casing.
func normalizeTags(labels []string) []Tag {
	seen := make(map[string]struct{}, len(labels))
	var out []Tag
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		key := strings.ToLower(label)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Tag{Label: label, Permalink: TagPermalink(label)})
	}
	return out
}

func estimateReadingMinutes(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// SeedStore loads the content directory and upserts every post into the
// store. Existing rows with matching slugs are replaced.
func SeedStore(s *Store, dir string) (int, error) {
	posts, err := LoadDir(dir)
	if err != nil {
		return 0, err
	}
	for _, p := range posts {
		if err := s.SavePost(p); err != nil {
			return 0, fmt.Errorf("bloglist: save %q: %w", p.Slug, err)
		}
	}
	return len(posts), nil
}
