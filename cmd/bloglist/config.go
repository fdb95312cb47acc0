package main

import (
	"os"
	"strings"

	"github.com/harlowe/bloglist"
)

// loadConfig builds the SiteConfig from the YAML site file (when present)
// with environment variables taking precedence. Secrets come only from
// the environment.
func loadConfig() (bloglist.SiteConfig, error) {
	var cfg bloglist.SiteConfig
	if _, err := os.Stat(configPath); err == nil {
		loaded, err := bloglist.LoadSiteConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	cfg.Name = bloglist.EnvOr("SITE_NAME", cfg.Name)
	cfg.URL = strings.TrimSuffix(bloglist.EnvOr("SITE_URL", cfg.URL), "/")
	cfg.Description = bloglist.EnvOr("SITE_DESCRIPTION", cfg.Description)
	cfg.Author = bloglist.EnvOr("SITE_AUTHOR", cfg.Author)
	cfg.Addr = bloglist.EnvOr("ADDR", cfg.Addr)
	cfg.DatabasePath = bloglist.EnvOr("DATABASE_PATH", cfg.DatabasePath)
	cfg.ContentDir = bloglist.EnvOr("CONTENT_DIR", cfg.ContentDir)
	cfg.CookieSecure = cfg.CookieSecure || strings.EqualFold(os.Getenv("COOKIE_SECURE"), "true")

	return cfg, nil
}
