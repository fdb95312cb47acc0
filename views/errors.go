package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/harlowe/bloglist"
)

// NotFound renders the 404 page.
func NotFound(cfg bloglist.SiteConfig) templ.Component {
	return errorPage(cfg, "Page not found", "The page you were looking for does not exist.")
}

// ServerError renders the 500 page. It is also what a reader sees when a
// post summary reached the renderer without a usable title or permalink.
func ServerError(cfg bloglist.SiteConfig) templ.Component {
	return errorPage(cfg, "Something went wrong", "The server hit an error rendering this page. Try again shortly.")
}

func errorPage(cfg bloglist.SiteConfig, heading, detail string) templ.Component {
	meta := bloglist.PageMeta{Title: heading + " | " + cfg.Name}
	main := func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		b.WriteString(`<section class="error-page"><h1>` + esc(heading) + `</h1>`)
		b.WriteString(`<p>` + esc(detail) + `</p>`)
		b.WriteString(`<p><a href="/blog/">Back to the blog</a></p></section>`)
		_, err := w.Write(b.Bytes())
		return err
	}
	return page(cfg, meta, "", main, nil)
}
