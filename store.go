package bloglist

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database and provides CRUD operations for post summaries.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write access, busy timeout so writers wait
	// instead of failing with SQLITE_BUSY, synchronous=NORMAL is safe with
	// WAL, larger cache and mmap reduce disk I/O.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
		PRAGMA mmap_size=268435456;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    authors TEXT NOT NULL DEFAULT '[]',
    tags TEXT NOT NULL DEFAULT '[]',
    description TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',
    reading_minutes INTEGER NOT NULL DEFAULT 0,
    published INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS page_views (
    path TEXT NOT NULL,
    day TEXT NOT NULL,
    views INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (path, day)
);
`)
	return err
}

const postColumns = `slug, title, date, authors, tags, description, content, reading_minutes, published`

func scanPost(scan func(dest ...any) error) (PostSummary, error) {
	var slug, title, date, authorsJSON, tagsJSON, description, content string
	var readingMinutes, published int
	if err := scan(&slug, &title, &date, &authorsJSON, &tagsJSON, &description, &content, &readingMinutes, &published); err != nil {
		return PostSummary{}, err
	}
	var authors []Author
	if err := json.Unmarshal([]byte(authorsJSON), &authors); err != nil {
		return PostSummary{}, fmt.Errorf("bloglist: decode authors for %q: %w", slug, err)
	}
	var tags []Tag
	if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
		return PostSummary{}, fmt.Errorf("bloglist: decode tags for %q: %w", slug, err)
	}
	return PostSummary{
		Slug:           slug,
		Title:          title,
		Permalink:      "/blog/" + slug + "/",
		Date:           date,
		Authors:        authors,
		Tags:           tags,
		Description:    description,
		Content:        content,
		ReadingMinutes: readingMinutes,
		Published:      published == 1,
	}, nil
}

// ListPosts returns all published posts ordered by date descending, then
// slug, so the listing order is stable across identical dates.
func (s *Store) ListPosts() ([]PostSummary, error) {
	rows, err := s.db.Query(`SELECT ` + postColumns + ` FROM posts WHERE published = 1 ORDER BY date DESC, slug ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []PostSummary
	for rows.Next() {
		p, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListTags returns all tags from published posts, deduplicated by label
// and sorted alphabetically.
func (s *Store) ListTags() ([]Tag, error) {
	rows, err := s.db.Query(`SELECT tags FROM posts WHERE published = 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]Tag)
	for rows.Next() {
		var tagsJSON string
		if err := rows.Scan(&tagsJSON); err != nil {
			return nil, err
		}
		var tags []Tag
		if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
			return nil, err
		}
		for _, t := range tags {
			key := strings.ToLower(strings.TrimSpace(t.Label))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; !ok {
				seen[key] = t
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	result := make([]Tag, 0, len(seen))
	for _, t := range seen {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Label) < strings.ToLower(result[j].Label)
	})
	return result, nil
}

// GetPost returns a single published post by slug.
func (s *Store) GetPost(slug string) (PostSummary, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE slug = ? AND published = 1`, slug)
	return scanPost(row.Scan)
}

// GetPostAny returns a post by slug regardless of published status (for admin).
func (s *Store) GetPostAny(slug string) (PostSummary, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE slug = ?`, slug)
	return scanPost(row.Scan)
}

// ListAllPosts returns every post (published and drafts) ordered by date descending.
func (s *Store) ListAllPosts() ([]PostSummary, error) {
	rows, err := s.db.Query(`SELECT ` + postColumns + ` FROM posts ORDER BY date DESC, slug ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []PostSummary
	for rows.Next() {
		p, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// SavePost upserts a post summary. Title and permalink slug are required.
func (s *Store) SavePost(p PostSummary) error {
	if p.Slug == "" {
		return &MissingFieldError{Field: "slug"}
	}
	if p.Title == "" {
		return &MissingFieldError{Slug: p.Slug, Field: "title"}
	}
	authorsJSON, err := json.Marshal(p.Authors)
	if err != nil {
		return fmt.Errorf("bloglist: encode authors: %w", err)
	}
	tagsJSON, err := json.Marshal(p.Tags)
	if err != nil {
		return fmt.Errorf("bloglist: encode tags: %w", err)
	}
	published := 0
	if p.Published {
		published = 1
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO posts (slug, title, date, authors, tags, description, content, reading_minutes, published) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Slug, p.Title, p.Date, string(authorsJSON), string(tagsJSON), p.Description, p.Content, p.ReadingMinutes, published)
	return err
}

// DeletePost removes a post by slug.
func (s *Store) DeletePost(slug string) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE slug = ?`, slug)
	return err
}

// FilterByTag returns the posts carrying the given tag, preserving the
// input order. The argument may be a tag label or its slug form.
func FilterByTag(posts []PostSummary, tag string) []PostSummary {
	normalized := Slugify(tag)
	var filtered []PostSummary
	for _, p := range posts {
		for _, t := range p.Tags {
			if Slugify(t.Label) == normalized {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}
