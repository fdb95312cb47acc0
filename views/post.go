package views

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/harlowe/bloglist"
)

// Post renders a single post page. The body is plain text split into
// paragraphs on blank lines; every paragraph is escaped.
func Post(cfg bloglist.SiteConfig, post bloglist.PostSummary) templ.Component {
	pageMeta := bloglist.PageMeta{
		Title:       post.Title + " | " + cfg.Name,
		Description: bloglist.Excerpt(post),
		URL:         bloglist.BuildURL(cfg.URL, "blog", post.Slug),
		OGType:      "article",
	}
	main := func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		b.WriteString(`<article class="post">`)
		b.WriteString(`<header class="post-header"><h1>` + esc(post.Title) + `</h1>`)
		writeAuthors(&b, post.Authors)
		b.WriteString(`<time class="post-date" datetime="` + esc(post.Date) + `">` + esc(bloglist.FormatPublishDate(post.Date)) + `</time>`)
		b.WriteString(`<span class="reading-time">` + fmt.Sprintf("%d min read", post.ReadingMinutes) + `</span>`)
		b.WriteString(`</header>`)
		writeTagRow(&b, post.Tags)
		b.WriteString(`<div class="post-body">`)
		for _, para := range strings.Split(post.Content, "\n\n") {
			para = strings.TrimSpace(para)
			if para == "" {
				continue
			}
			b.WriteString(`<p>` + esc(para) + `</p>`)
		}
		b.WriteString(`</div></article>`)
		_, err := w.Write(b.Bytes())
		return err
	}
	return page(cfg, pageMeta, BlogPostingJsonLD(cfg, post), main, nil)
}
