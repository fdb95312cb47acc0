// Package bloglist is a blog listing engine built with Go, Echo, and templ.
// It turns externally supplied post metadata into rendered listing pages:
// a header, one card per post, and pagination controls, plus the
// surrounding plumbing a blog site needs (post store, tag pages, RSS,
// sitemap, admin dashboard).
//
// Users provide their own templ components via the ViewFuncs struct and
// bloglist handles handler logic, middleware, and database operations.
package bloglist

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ViewFuncs holds user-provided templ components that the engine calls
// when rendering pages. This is the inversion-of-control mechanism that
// lets users own and customize all templates, including the layout chrome
// the renderer itself never interprets.
type ViewFuncs struct {
	BlogList       func(cfg SiteConfig, meta ListMeta, items []PostSummary, sidebar templ.Component) templ.Component
	Sidebar        func(recent []PostSummary, tags []Tag) templ.Component
	Post           func(cfg SiteConfig, post PostSummary) templ.Component
	AdminLogin     func(cfg SiteConfig, showError bool, csrfToken string) templ.Component
	AdminDashboard func(cfg SiteConfig, posts []PostSummary, top []PageViewStat, message string, csrfToken string) templ.Component
	NotFound       func(cfg SiteConfig) templ.Component
	ServerError    func(cfg SiteConfig) templ.Component
}

// App is the central bloglist application. It wires together the store,
// cache, handlers, middleware, and user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *PostCache
	Views  ViewFuncs

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
	stopPrune    func()
}

// New creates a new bloglist App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.SetDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, seeds it from the content directory,
// sets up middleware and routes, and starts the server.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("bloglist: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("bloglist: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("bloglist: init store: %w", err)
	}
	a.Store = store

	// Seed from the content directory when one exists. The loader is the
	// boundary where post metadata documents become typed summaries.
	if info, err := os.Stat(a.Config.ContentDir); err == nil && info.IsDir() {
		n, err := SeedStore(store, a.Config.ContentDir)
		if err != nil {
			return fmt.Errorf("bloglist: seed content: %w", err)
		}
		a.Echo.Logger.Infof("loaded %d posts from %s", n, a.Config.ContentDir)
	}

	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	a.stopPrune = a.startPruneScheduler(365, 24*time.Hour)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", handleHomeRedirect)
	e.GET("/blog/", a.handleBlogList)
	e.GET("/blog/page/:page/", a.handleBlogList)
	e.GET("/blog/tags/:tag/", a.handleTagList)
	e.GET("/blog/tags/:tag/page/:page/", a.handleTagList)
	e.GET("/blog/:slug/", a.handlePost)

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/post/:slug/", a.handleAdminPost)
	e.POST("/admin/save/", a.handleAdminSave)
	e.DELETE("/admin/post/:slug/", a.handleAdminDelete)
	e.POST("/admin/avatars/upload/", a.handleAvatarUpload)
}

// startPruneScheduler drops page-view counters older than retainDays on
// the given interval. The returned func stops the scheduler.
func (a *App) startPruneScheduler(retainDays int, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				if err := a.Store.PrunePageViews(retainDays); err != nil {
					a.Echo.Logger.Warnf("prune page views: %v", err)
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	return func() { close(done) }
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.stopPrune != nil {
		a.stopPrune()
	}
	if a.Store != nil {
		a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("bloglist: required environment variable %s is not set", key)
	}
	return v
}
