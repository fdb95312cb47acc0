package bloglist

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// sidebarRecent is how many recent posts the sidebar navigation shows.
const sidebarRecent = 5

func handleHomeRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/blog/")
}

// handleBlogList serves a page of the blog listing. Items arrive in store
// order and are passed to the renderer unsorted; a summary missing its
// title or permalink aborts the render and surfaces through the error
// handler instead of producing a broken card.
func (a *App) handleBlogList(c echo.Context) error {
	page, ok := pageParam(c)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	if err := ValidatePosts(posts); err != nil {
		return err
	}
	window, meta, err := Paginate(posts, page, a.Config.PageSize, "/blog/")
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	meta.Title = a.Config.Name
	meta.Description = a.Config.Description
	return Render(c, a.Views.BlogList(a.Config, meta, window, a.sidebar(posts)))
}

// handleTagList serves a page of the listing filtered to one tag.
func (a *App) handleTagList(c echo.Context) error {
	page, ok := pageParam(c)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	tag := c.Param("tag")
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	filtered := FilterByTag(posts, tag)
	if len(filtered) == 0 {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err := ValidatePosts(filtered); err != nil {
		return err
	}
	label := tag
	for _, t := range filtered[0].Tags {
		if Slugify(t.Label) == Slugify(tag) {
			label = t.Label
			break
		}
	}
	window, meta, err := Paginate(filtered, page, a.Config.PageSize, TagPermalink(label))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	meta.Title = fmt.Sprintf("Posts tagged \"%s\" | %s", label, a.Config.Name)
	meta.Description = a.Config.Description
	return Render(c, a.Views.BlogList(a.Config, meta, window, a.sidebar(posts)))
}

// handlePost serves a single post page.
func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config))
		}
		return err
	}
	if err := ValidatePost(post); err != nil {
		return err
	}
	return Render(c, a.Views.Post(a.Config, post))
}

// sidebar builds the opaque navigation component handed through to the
// layout. The listing renderer never looks inside it.
func (a *App) sidebar(posts []PostSummary) templ.Component {
	recent := posts
	if len(recent) > sidebarRecent {
		recent = recent[:sidebarRecent]
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		tags = nil
	}
	return a.Views.Sidebar(recent, tags)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts, tags)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

// pageParam reads the optional :page route parameter. Page 1 routes have
// no parameter at all.
func pageParam(c echo.Context) (int, bool) {
	raw := c.Param("page")
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.Config))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
