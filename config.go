package bloglist

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SiteConfig holds all configuration for a bloglist site.
type SiteConfig struct {
	Name        string `yaml:"name"`        // Site name (default "Blog")
	URL         string `yaml:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `yaml:"description"` // Site description for RSS and meta tags
	Author      string `yaml:"author"`      // Author name for JSON-LD

	Addr         string `yaml:"addr"`          // Listen address (default ":3000")
	DatabasePath string `yaml:"database_path"` // SQLite path (default "data/blog.db")
	ContentDir   string `yaml:"content_dir"`   // Post metadata directory (default "content")

	PageSize int `yaml:"page_size"` // Posts per listing page (default DefaultPageSize)

	AdminPassword string `yaml:"-"` // Required: admin login password
	SessionSecret string `yaml:"-"` // Required: session encryption secret
	CookieSecure  bool   `yaml:"cookie_secure"` // Set true for HTTPS

	PostCacheTTL time.Duration `yaml:"post_cache_ttl"` // Post cache TTL (default 5min)
}

// SetDefaults fills unset fields with their documented defaults. New calls
// this; commands that use the config without an App call it themselves.
func (c *SiteConfig) SetDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/blog.db"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
}

// LoadSiteConfig reads a YAML site file into a SiteConfig. Fields written
// in the file override zero values; secrets are never read from the file
// and must come from the environment.
func LoadSiteConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("bloglist: read site config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("bloglist: parse site config: %w", err)
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
