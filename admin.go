package bloglist

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(a.Config, false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminPost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	slug := c.Param("slug")
	post, err := a.Store.GetPostAny(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(c.RealIP())
	return Render(c, a.Views.AdminLogin(a.Config, true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	title := strings.TrimSpace(c.FormValue("title"))
	slug := strings.TrimSpace(c.FormValue("slug"))
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=Slug+is+required.+Add+a+title+or+slug.")
	}
	date := strings.TrimSpace(c.FormValue("date"))
	if date == "" {
		date = time.Now().Format(time.DateOnly)
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=Invalid+date+format.+Use+YYYY-MM-DD.")
	}
	readingMinutes, _ := strconv.Atoi(strings.TrimSpace(c.FormValue("reading_minutes")))
	content := c.FormValue("content")
	if readingMinutes <= 0 {
		readingMinutes = estimateReadingMinutes(content)
	}
	post := PostSummary{
		Slug:           slug,
		Title:          title,
		Permalink:      "/blog/" + slug + "/",
		Date:           date,
		Authors:        parseAuthorLines(c.FormValue("authors")),
		Tags:           normalizeTags(strings.Split(c.FormValue("tags"), ",")),
		Description:    strings.TrimSpace(c.FormValue("description")),
		Content:        content,
		ReadingMinutes: readingMinutes,
		Published:      c.FormValue("published") != "",
	}
	if err := a.Store.SavePost(post); err != nil {
		var mf *MissingFieldError
		if errors.As(err, &mf) {
			return c.Redirect(http.StatusSeeOther, "/admin/?msg=Missing+required+field:+"+mf.Field)
		}
		return err
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "saved")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	slug := c.Param("slug")
	if err := a.Store.DeletePost(slug); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "deleted")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	posts, err := a.Store.ListAllPosts()
	if err != nil {
		return err
	}
	top, err := a.Store.TopPages(30, 10)
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminDashboard(a.Config, posts, top, msg, CsrfToken(c)))
}

// parseAuthorLines parses the admin form's author field: one author per
// line, "Name | /path/to/avatar.jpg", with the avatar part optional.
func parseAuthorLines(raw string) []Author {
	var authors []Author
	for _, line := range strings.Split(raw, "\n") {
		parts := strings.SplitN(line, "|", 2)
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}
		author := Author{Name: name}
		if len(parts) == 2 {
			author.ImageURL = strings.TrimSpace(parts[1])
		}
		authors = append(authors, author)
	}
	return authors
}
