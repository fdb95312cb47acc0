package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/harlowe/bloglist"
)

// renderFn writes a page region. Regions that embed other components need
// the context, so the signature mirrors templ.Component.Render.
type renderFn func(ctx context.Context, w io.Writer) error

// page wraps a main region and an optional aside in the site chrome:
// doctype, head with SEO metadata and JSON-LD, site header, and footer.
// The aside component is rendered into its slot untouched.
func page(cfg bloglist.SiteConfig, meta bloglist.PageMeta, jsonLD string, main renderFn, aside templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		writeHead(&b, cfg, meta, jsonLD)
		b.WriteString(`<body><header class="site-header"><a class="site-title" href="/blog/">` + esc(cfg.Name) + `</a></header>`)
		b.WriteString(`<div class="page"><main class="page-main">`)
		if _, err := w.Write(b.Bytes()); err != nil {
			return err
		}
		if err := main(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</main>`); err != nil {
			return err
		}
		if aside != nil {
			if _, err := io.WriteString(w, `<aside class="page-sidebar">`); err != nil {
				return err
			}
			if err := aside.Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</aside>`); err != nil {
				return err
			}
		}
		var f bytes.Buffer
		f.WriteString(`</div><footer class="site-footer"><p>` + esc(cfg.Name))
		if cfg.Author != "" {
			f.WriteString(` &middot; ` + esc(cfg.Author))
		}
		f.WriteString(`</p></footer></body></html>`)
		_, err := w.Write(f.Bytes())
		return err
	})
}

func writeHead(b *bytes.Buffer, cfg bloglist.SiteConfig, meta bloglist.PageMeta, jsonLD string) {
	title := meta.Title
	if title == "" {
		title = cfg.Name
	}
	description := meta.Description
	if description == "" {
		description = cfg.Description
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	b.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	b.WriteString(`<meta charset="utf-8"/>`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	b.WriteString(`<title>` + esc(title) + `</title>`)
	if description != "" {
		b.WriteString(`<meta name="description" content="` + esc(description) + `"/>`)
	}
	b.WriteString(`<meta property="og:title" content="` + esc(title) + `"/>`)
	if description != "" {
		b.WriteString(`<meta property="og:description" content="` + esc(description) + `"/>`)
	}
	b.WriteString(`<meta property="og:type" content="` + esc(ogType) + `"/>`)
	if meta.URL != "" {
		b.WriteString(`<meta property="og:url" content="` + esc(meta.URL) + `"/>`)
		b.WriteString(`<link rel="canonical" href="` + esc(meta.URL) + `"/>`)
	}
	b.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + esc(cfg.Name) + `" href="/feed.xml"/>`)
	b.WriteString(`<link rel="stylesheet" href="/public/site.css"/>`)
	if jsonLD != "" {
		b.WriteString(`<script type="application/ld+json">` + jsonLD + `</script>`)
	}
	b.WriteString(`</head>`)
}
