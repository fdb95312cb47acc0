package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/harlowe/bloglist"
)

// BlogList renders one page of the blog listing: a header block, one card
// per post in the order supplied, and pagination controls. It performs no
// data transformation beyond formatting; in particular it never re-sorts
// items and never truncates an author-supplied description. The sidebar
// component is handed through to the layout without being interpreted.
func BlogList(cfg bloglist.SiteConfig, meta bloglist.ListMeta, items []bloglist.PostSummary, sidebar templ.Component) templ.Component {
	pageMeta := bloglist.PageMeta{
		Title:       meta.Title,
		Description: meta.Description,
		URL:         bloglist.BuildURL(cfg.URL, meta.Permalink),
		OGType:      "website",
	}
	main := func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		writeListHeader(&b, meta)
		b.WriteString(`<div class="post-grid">`)
		for _, p := range items {
			writePostCard(&b, p)
		}
		b.WriteString(`</div>`)
		writePaginator(&b, meta)
		_, err := w.Write(b.Bytes())
		return err
	}
	return page(cfg, pageMeta, WebsiteJsonLD(cfg), main, sidebar)
}

func writeListHeader(b *bytes.Buffer, meta bloglist.ListMeta) {
	b.WriteString(`<header class="list-header"><h1>` + esc(meta.Title) + `</h1>`)
	if meta.Description != "" {
		b.WriteString(`<p class="list-description">` + esc(meta.Description) + `</p>`)
	}
	b.WriteString(`</header>`)
}

// writePostCard emits a single listing card. Optional fields degrade by
// omission; an empty tag list produces no tag row at all.
func writePostCard(b *bytes.Buffer, p bloglist.PostSummary) {
	b.WriteString(`<article class="post-card">`)
	b.WriteString(`<header class="post-card-header">`)
	b.WriteString(`<h2 class="post-card-title"><a href="` + esc(p.Permalink) + `">` + esc(p.Title) + `</a></h2>`)
	writeAuthors(b, p.Authors)
	b.WriteString(`<time class="post-card-date" datetime="` + esc(p.Date) + `">` + esc(bloglist.FormatPublishDate(p.Date)) + `</time>`)
	b.WriteString(`</header>`)
	writeTagRow(b, p.Tags)
	if excerpt := bloglist.Excerpt(p); excerpt != "" {
		b.WriteString(`<p class="post-card-excerpt">` + esc(excerpt) + `</p>`)
	}
	b.WriteString(`<footer class="post-card-footer">`)
	b.WriteString(`<a class="read-more" href="` + esc(p.Permalink) + `">Read More</a>`)
	b.WriteString(`<span class="reading-time">` + fmt.Sprintf("%d min read", p.ReadingMinutes) + `</span>`)
	b.WriteString(`</footer></article>`)
}

func writeAuthors(b *bytes.Buffer, authors []bloglist.Author) {
	if len(authors) == 0 {
		return
	}
	b.WriteString(`<div class="post-card-authors">`)
	for _, a := range authors {
		b.WriteString(`<span class="author">`)
		if a.ImageURL != "" {
			b.WriteString(`<img class="author-avatar" src="` + esc(a.ImageURL) + `" alt="` + esc(a.Name) + `" loading="lazy"/>`)
		}
		b.WriteString(`<span class="author-name">` + esc(a.Name) + `</span></span>`)
	}
	b.WriteString(`</div>`)
}

func writeTagRow(b *bytes.Buffer, tags []bloglist.Tag) {
	if len(tags) == 0 {
		return
	}
	b.WriteString(`<ul class="post-card-tags">`)
	for _, t := range tags {
		b.WriteString(`<li><a href="` + esc(t.Permalink) + `">` + esc(t.Label) + `</a></li>`)
	}
	b.WriteString(`</ul>`)
}

// writePaginator always renders the navigation region so an empty listing
// is still visibly a valid page; the prev/next links appear only when a
// page exists on that side.
func writePaginator(b *bytes.Buffer, meta bloglist.ListMeta) {
	b.WriteString(`<nav class="paginator" aria-label="Blog list navigation">`)
	if meta.PrevLink != "" {
		b.WriteString(`<a class="paginator-prev" href="` + esc(meta.PrevLink) + `">Newer posts</a>`)
	}
	b.WriteString(fmt.Sprintf(`<span class="paginator-state">Page %d of %d</span>`, meta.Page, meta.TotalPages))
	if meta.NextLink != "" {
		b.WriteString(`<a class="paginator-next" href="` + esc(meta.NextLink) + `">Older posts</a>`)
	}
	b.WriteString(`</nav>`)
}

// Sidebar renders the navigation column shown next to listing pages:
// recent posts and the tag index.
func Sidebar(recent []bloglist.PostSummary, tags []bloglist.Tag) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		b.WriteString(`<nav class="sidebar-nav">`)
		if len(recent) > 0 {
			b.WriteString(`<h3>Recent posts</h3><ul class="sidebar-recent">`)
			for _, p := range recent {
				b.WriteString(`<li><a href="` + esc(p.Permalink) + `">` + esc(p.Title) + `</a></li>`)
			}
			b.WriteString(`</ul>`)
		}
		if len(tags) > 0 {
			b.WriteString(`<h3>Tags</h3><ul class="sidebar-tags">`)
			for _, t := range tags {
				b.WriteString(`<li><a href="` + esc(t.Permalink) + `">` + esc(t.Label) + `</a></li>`)
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</nav>`)
		_, err := w.Write(b.Bytes())
		return err
	})
}
