package bloglist

import (
	"errors"
	"fmt"
	"testing"
)

func makePosts(n int) []PostSummary {
	posts := make([]PostSummary, n)
	for i := range posts {
		posts[i] = PostSummary{
			Slug:      fmt.Sprintf("post-%02d", i),
			Title:     fmt.Sprintf("Post %02d", i),
			Permalink: fmt.Sprintf("/blog/post-%02d/", i),
			Date:      "2024-01-05",
		}
	}
	return posts
}

func TestPaginateWindows(t *testing.T) {
	posts := makePosts(25)

	window, meta, err := Paginate(posts, 1, 10, "/blog/")
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(window) != 10 || window[0].Slug != "post-00" || window[9].Slug != "post-09" {
		t.Errorf("page 1 window wrong: %d items, first %q", len(window), window[0].Slug)
	}
	if meta.Page != 1 || meta.TotalPages != 3 {
		t.Errorf("page 1 meta = %d/%d, want 1/3", meta.Page, meta.TotalPages)
	}
	if meta.PrevLink != "" {
		t.Errorf("page 1 should have no prev link, got %q", meta.PrevLink)
	}
	if meta.NextLink != "/blog/page/2/" {
		t.Errorf("page 1 next link = %q", meta.NextLink)
	}

	window, meta, err = Paginate(posts, 3, 10, "/blog/")
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	if len(window) != 5 || window[0].Slug != "post-20" {
		t.Errorf("page 3 window wrong: %d items", len(window))
	}
	if meta.PrevLink != "/blog/page/2/" {
		t.Errorf("page 3 prev link = %q", meta.PrevLink)
	}
	if meta.NextLink != "" {
		t.Errorf("page 3 should have no next link, got %q", meta.NextLink)
	}
}

func TestPaginatePreservesOrder(t *testing.T) {
	posts := makePosts(7)
	window, _, err := Paginate(posts, 1, 10, "/blog/")
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range window {
		if p.Slug != posts[i].Slug {
			t.Fatalf("order changed at %d: %q != %q", i, p.Slug, posts[i].Slug)
		}
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	window, meta, err := Paginate(nil, 1, 10, "/blog/")
	if err != nil {
		t.Fatalf("empty input should still have a valid page 1: %v", err)
	}
	if len(window) != 0 {
		t.Errorf("empty input window = %d items", len(window))
	}
	if meta.Page != 1 || meta.TotalPages != 1 {
		t.Errorf("empty input meta = %d/%d, want 1/1", meta.Page, meta.TotalPages)
	}
	if meta.PrevLink != "" || meta.NextLink != "" {
		t.Errorf("empty input should have no cursors")
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	posts := makePosts(5)
	for _, page := range []int{0, -1, 2, 99} {
		if _, _, err := Paginate(posts, page, 10, "/blog/"); !errors.Is(err, ErrNotFound) {
			t.Errorf("page %d: err = %v, want ErrNotFound", page, err)
		}
	}
}

func TestPageLink(t *testing.T) {
	if got := pageLink("/blog/", 1); got != "/blog/" {
		t.Errorf("page 1 link = %q", got)
	}
	if got := pageLink("/blog/tags/llm/", 4); got != "/blog/tags/llm/page/4/" {
		t.Errorf("page 4 link = %q", got)
	}
}
