package bloglist

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_blog.db")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	cleanup := func() {
		s.Close()
	}
	return s, cleanup
}

func TestNewStore(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if s == nil {
		t.Fatal("store should not be nil")
	}
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestSaveAndGetPost(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	post := PostSummary{
		Slug:  "test-post",
		Title: "Test Post",
		Date:  "2024-01-15",
		Authors: []Author{
			{Name: "Jane Doe", ImageURL: "/public/avatars/jane-doe.jpg"},
		},
		Tags: []Tag{
			{Label: "go", Permalink: "/blog/tags/go/"},
			{Label: "testing", Permalink: "/blog/tags/testing/"},
		},
		Description:    "A test post summary",
		Content:        "This is test content.",
		ReadingMinutes: 4,
		Published:      true,
	}

	if err := s.SavePost(post); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}

	got, err := s.GetPost("test-post")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}

	if got.Slug != post.Slug {
		t.Errorf("Slug = %q, want %q", got.Slug, post.Slug)
	}
	if got.Title != post.Title {
		t.Errorf("Title = %q, want %q", got.Title, post.Title)
	}
	if got.Date != post.Date {
		t.Errorf("Date = %q, want %q", got.Date, post.Date)
	}
	if got.Description != post.Description {
		t.Errorf("Description = %q, want %q", got.Description, post.Description)
	}
	if got.Content != post.Content {
		t.Errorf("Content = %q, want %q", got.Content, post.Content)
	}
	if got.Permalink != "/blog/test-post/" {
		t.Errorf("Permalink = %q, want %q", got.Permalink, "/blog/test-post/")
	}
	if got.ReadingMinutes != 4 {
		t.Errorf("ReadingMinutes = %d, want 4", got.ReadingMinutes)
	}
	if !got.Published {
		t.Error("Published should be true")
	}
	if len(got.Authors) != 1 || got.Authors[0].Name != "Jane Doe" {
		t.Errorf("Authors = %v", got.Authors)
	}
	if len(got.Tags) != 2 || got.Tags[0].Label != "go" || got.Tags[1].Label != "testing" {
		t.Errorf("Tags = %v, want [go testing]", got.Tags)
	}
}

func TestSavePostRequiresFields(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if err := s.SavePost(PostSummary{Title: "No Slug"}); err == nil {
		t.Error("SavePost without slug should fail")
	}
	err := s.SavePost(PostSummary{Slug: "no-title"})
	if err == nil {
		t.Fatal("SavePost without title should fail")
	}
	var missing *MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "title" {
		t.Errorf("expected MissingFieldError for title, got %v", err)
	}
}

func TestSavePostUpdate(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	post := PostSummary{
		Slug:      "update-test",
		Title:     "Original Title",
		Date:      "2024-01-01",
		Tags:      []Tag{{Label: "original", Permalink: "/blog/tags/original/"}},
		Published: true,
	}

	if err := s.SavePost(post); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}

	post.Title = "Updated Title"
	post.Tags = []Tag{
		{Label: "updated", Permalink: "/blog/tags/updated/"},
		{Label: "modified", Permalink: "/blog/tags/modified/"},
	}
	if err := s.SavePost(post); err != nil {
		t.Fatalf("SavePost update failed: %v", err)
	}

	got, err := s.GetPost("update-test")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}

	if got.Title != "Updated Title" {
		t.Errorf("Title = %q, want %q", got.Title, "Updated Title")
	}
	if len(got.Tags) != 2 {
		t.Errorf("Tags count = %d, want 2", len(got.Tags))
	}
}

func TestGetPostNotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := s.GetPost("nonexistent")
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestGetPostUnpublished(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	post := PostSummary{
		Slug:      "unpublished-post",
		Title:     "Unpublished Post",
		Date:      "2024-01-01",
		Published: false,
	}

	if err := s.SavePost(post); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}

	// GetPost should not find unpublished posts
	if _, err := s.GetPost("unpublished-post"); err != sql.ErrNoRows {
		t.Errorf("GetPost should return ErrNoRows for unpublished, got %v", err)
	}

	// GetPostAny should find unpublished posts
	got, err := s.GetPostAny("unpublished-post")
	if err != nil {
		t.Fatalf("GetPostAny failed: %v", err)
	}
	if got.Published {
		t.Error("Published should be false")
	}
}

func TestListPostsOrderAndVisibility(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	posts := []PostSummary{
		{Slug: "post-1", Title: "Post 1", Date: "2024-01-01", Published: true},
		{Slug: "post-2", Title: "Post 2", Date: "2024-01-02", Published: true},
		{Slug: "post-3", Title: "Post 3", Date: "2024-01-03", Published: true},
		{Slug: "post-4", Title: "Post 4", Date: "2024-01-04", Published: false},
	}
	for _, p := range posts {
		if err := s.SavePost(p); err != nil {
			t.Fatalf("SavePost failed: %v", err)
		}
	}

	got, err := s.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("ListPosts count = %d, want 3 (excluding unpublished)", len(got))
	}
	if got[0].Slug != "post-3" {
		t.Errorf("first post should be post-3 (latest), got %s", got[0].Slug)
	}
}

func TestListPostsStableForSameDate(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	for _, slug := range []string{"charlie", "alpha", "bravo"} {
		p := PostSummary{Slug: slug, Title: slug, Date: "2024-06-01", Published: true}
		if err := s.SavePost(p); err != nil {
			t.Fatalf("SavePost failed: %v", err)
		}
	}

	got, err := s.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	want := []string{"alpha", "bravo", "charlie"}
	for i, slug := range want {
		if got[i].Slug != slug {
			t.Errorf("ListPosts[%d] = %q, want %q", i, got[i].Slug, slug)
		}
	}
}

func TestListAllPosts(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	posts := []PostSummary{
		{Slug: "published", Title: "Published", Date: "2024-01-01", Published: true},
		{Slug: "unpublished", Title: "Unpublished", Date: "2024-01-02", Published: false},
	}
	for _, p := range posts {
		if err := s.SavePost(p); err != nil {
			t.Fatalf("SavePost failed: %v", err)
		}
	}

	got, err := s.ListAllPosts()
	if err != nil {
		t.Fatalf("ListAllPosts failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("ListAllPosts count = %d, want 2 (including unpublished)", len(got))
	}
}

func TestListTags(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	posts := []PostSummary{
		{Slug: "p1", Title: "P1", Date: "2024-01-01", Published: true,
			Tags: []Tag{{Label: "Go", Permalink: "/blog/tags/go/"}, {Label: "Web", Permalink: "/blog/tags/web/"}}},
		{Slug: "p2", Title: "P2", Date: "2024-01-02", Published: true,
			Tags: []Tag{{Label: "go", Permalink: "/blog/tags/go/"}, {Label: "api", Permalink: "/blog/tags/api/"}}},
		{Slug: "p3", Title: "P3", Date: "2024-01-03", Published: false,
			Tags: []Tag{{Label: "rust", Permalink: "/blog/tags/rust/"}}},
	}
	for _, p := range posts {
		if err := s.SavePost(p); err != nil {
			t.Fatalf("SavePost failed: %v", err)
		}
	}

	got, err := s.ListTags()
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}

	// Published tags only, deduplicated case-insensitively, sorted by label.
	expected := []string{"api", "Go", "Web"}
	if len(got) != len(expected) {
		t.Fatalf("ListTags count = %d, want %d, got %v", len(got), len(expected), got)
	}
	for i, label := range expected {
		if got[i].Label != label {
			t.Errorf("ListTags[%d] = %q, want %q", i, got[i].Label, label)
		}
	}
}

func TestFilterByTag(t *testing.T) {
	posts := []PostSummary{
		{Slug: "go-post-2", Tags: []Tag{{Label: "Go"}, {Label: "Web"}}},
		{Slug: "go-post-1", Tags: []Tag{{Label: "go"}, {Label: "tutorial"}}},
		{Slug: "rust-post", Tags: []Tag{{Label: "rust"}}},
	}

	got := FilterByTag(posts, "go")
	if len(got) != 2 {
		t.Fatalf("FilterByTag(go) count = %d, want 2", len(got))
	}
	// Input order must be preserved.
	if got[0].Slug != "go-post-2" || got[1].Slug != "go-post-1" {
		t.Errorf("FilterByTag reordered posts: %q, %q", got[0].Slug, got[1].Slug)
	}

	// Slug-form argument matches a multi-word label.
	multi := []PostSummary{{Slug: "ml", Tags: []Tag{{Label: "Machine Learning"}}}}
	if len(FilterByTag(multi, "machine-learning")) != 1 {
		t.Error("FilterByTag should match slug form of multi-word label")
	}

	if len(FilterByTag(posts, "nonexistent")) != 0 {
		t.Error("FilterByTag(nonexistent) should be empty")
	}
}

func TestDeletePost(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	post := PostSummary{Slug: "to-delete", Title: "To Delete", Date: "2024-01-01", Published: true}
	if err := s.SavePost(post); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}

	if _, err := s.GetPost("to-delete"); err != nil {
		t.Fatalf("post should exist before delete: %v", err)
	}
	if err := s.DeletePost("to-delete"); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}
	if _, err := s.GetPost("to-delete"); err != sql.ErrNoRows {
		t.Errorf("post should not exist after delete, got err: %v", err)
	}

	// Deleting again is a no-op, not an error.
	if err := s.DeletePost("to-delete"); err != nil {
		t.Errorf("DeletePost on nonexistent should not error, got: %v", err)
	}
}

func TestRecordPageView(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	now := time.Now()
	for i := 0; i < 3; i++ {
		if err := s.RecordPageView("/blog/intro/", now); err != nil {
			t.Fatalf("RecordPageView failed: %v", err)
		}
	}
	if err := s.RecordPageView("/blog/", now); err != nil {
		t.Fatalf("RecordPageView failed: %v", err)
	}

	stats, err := s.TopPages(7, 10)
	if err != nil {
		t.Fatalf("TopPages failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("TopPages count = %d, want 2", len(stats))
	}
	if stats[0].Path != "/blog/intro/" || stats[0].Views != 3 {
		t.Errorf("top page = %+v, want /blog/intro/ with 3 views", stats[0])
	}
	if stats[1].Views != 1 {
		t.Errorf("second page views = %d, want 1", stats[1].Views)
	}
}

func TestPrunePageViews(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	old := time.Now().AddDate(0, 0, -400)
	if err := s.RecordPageView("/blog/stale/", old); err != nil {
		t.Fatalf("RecordPageView failed: %v", err)
	}
	if err := s.RecordPageView("/blog/fresh/", time.Now()); err != nil {
		t.Fatalf("RecordPageView failed: %v", err)
	}

	if err := s.PrunePageViews(365); err != nil {
		t.Fatalf("PrunePageViews failed: %v", err)
	}

	stats, err := s.TopPages(500, 10)
	if err != nil {
		t.Fatalf("TopPages failed: %v", err)
	}
	if len(stats) != 1 || stats[0].Path != "/blog/fresh/" {
		t.Errorf("expected only the fresh counter to survive, got %v", stats)
	}
}
