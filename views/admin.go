package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/harlowe/bloglist"
)

// AdminLogin renders the password form, with an error banner after a
// failed attempt.
func AdminLogin(cfg bloglist.SiteConfig, showError bool, csrfToken string) templ.Component {
	meta := bloglist.PageMeta{Title: "Admin | " + cfg.Name}
	main := func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		b.WriteString(`<section class="admin-login"><h1>Admin</h1>`)
		if showError {
			b.WriteString(`<p class="admin-error">Wrong password.</p>`)
		}
		b.WriteString(`<form method="post" action="/admin/login/">`)
		b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		b.WriteString(`<label>Password <input type="password" name="password" autofocus/></label>`)
		b.WriteString(`<button type="submit">Log in</button></form></section>`)
		_, err := w.Write(b.Bytes())
		return err
	}
	return page(cfg, meta, "", main, nil)
}

// AdminDashboard renders the post table, the edit form, the avatar upload
// form, and the page-view summary.
func AdminDashboard(cfg bloglist.SiteConfig, posts []bloglist.PostSummary, top []bloglist.PageViewStat, message, csrfToken string) templ.Component {
	meta := bloglist.PageMeta{Title: "Dashboard | " + cfg.Name}
	main := func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		b.WriteString(`<section class="admin-dashboard"><h1>Dashboard</h1>`)
		if message != "" {
			b.WriteString(`<p class="admin-message">` + esc(message) + `</p>`)
		}
		writeAdminPostTable(&b, posts)
		writeAdminForm(&b, csrfToken)
		writeAvatarForm(&b, csrfToken)
		writeTopPages(&b, top)
		b.WriteString(`</section>`)
		_, err := w.Write(b.Bytes())
		return err
	}
	return page(cfg, meta, "", main, nil)
}

func writeAdminPostTable(b *bytes.Buffer, posts []bloglist.PostSummary) {
	b.WriteString(`<h2>Posts</h2><table class="admin-posts"><thead><tr><th>Title</th><th>Date</th><th>Status</th><th></th></tr></thead><tbody>`)
	for _, p := range posts {
		status := "draft"
		if p.Published {
			status = "published"
		}
		b.WriteString(`<tr><td><a href="` + esc(p.Permalink) + `">` + esc(p.Title) + `</a></td>`)
		b.WriteString(`<td>` + esc(p.Date) + `</td><td>` + status + `</td>`)
		b.WriteString(`<td><button class="post-delete" data-slug="` + esc(p.Slug) + `">Delete</button></td></tr>`)
	}
	b.WriteString(`</tbody></table>`)
}

func writeAdminForm(b *bytes.Buffer, csrfToken string) {
	b.WriteString(`<h2>Edit post</h2><form method="post" action="/admin/save/" class="admin-form">`)
	b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
	b.WriteString(`<label>Title <input name="title"/></label>`)
	b.WriteString(`<label>Slug <input name="slug" placeholder="derived from title when empty"/></label>`)
	b.WriteString(`<label>Date <input name="date" placeholder="YYYY-MM-DD"/></label>`)
	b.WriteString(`<label>Authors <textarea name="authors" placeholder="Jane Doe | /public/avatars/jane.jpg"></textarea></label>`)
	b.WriteString(`<label>Tags <input name="tags" placeholder="comma, separated"/></label>`)
	b.WriteString(`<label>Description <textarea name="description"></textarea></label>`)
	b.WriteString(`<label>Reading minutes <input name="reading_minutes" placeholder="estimated when empty"/></label>`)
	b.WriteString(`<label>Content <textarea name="content"></textarea></label>`)
	b.WriteString(`<label><input type="checkbox" name="published" value="1"/> Published</label>`)
	b.WriteString(`<button type="submit">Save</button></form>`)
}

func writeAvatarForm(b *bytes.Buffer, csrfToken string) {
	b.WriteString(`<h2>Author avatars</h2><form method="post" action="/admin/avatars/upload/" enctype="multipart/form-data" class="avatar-form">`)
	b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
	b.WriteString(`<input type="file" name="image" accept="image/*"/>`)
	b.WriteString(`<button type="submit">Upload</button></form>`)
}

func writeTopPages(b *bytes.Buffer, top []bloglist.PageViewStat) {
	if len(top) == 0 {
		return
	}
	b.WriteString(`<h2>Top pages (30 days)</h2><table class="admin-views"><thead><tr><th>Path</th><th>Views</th></tr></thead><tbody>`)
	for _, st := range top {
		b.WriteString(`<tr><td>` + esc(st.Path) + `</td><td>` + fmt.Sprintf("%d", st.Views) + `</td></tr>`)
	}
	b.WriteString(`</tbody></table>`)
}
