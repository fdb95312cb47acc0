package bloglist

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// PageViewStat is an aggregated view count for one path.
type PageViewStat struct {
	Path  string
	Views int
}

// RecordPageView increments the daily view counter for path. Counts are
// aggregated per path per UTC day; no per-visitor data is stored.
func (s *Store) RecordPageView(path string, at time.Time) error {
	day := at.UTC().Format(time.DateOnly)
	_, err := s.db.Exec(`INSERT INTO page_views (path, day, views) VALUES (?, ?, 1)
		ON CONFLICT(path, day) DO UPDATE SET views = views + 1`, path, day)
	return err
}

// TopPages returns the most viewed paths over the trailing number of days.
func (s *Store) TopPages(days, limit int) ([]PageViewStat, error) {
	since := time.Now().UTC().AddDate(0, 0, -days).Format(time.DateOnly)
	rows, err := s.db.Query(`SELECT path, SUM(views) AS total FROM page_views
		WHERE day >= ? GROUP BY path ORDER BY total DESC LIMIT ?`, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []PageViewStat
	for rows.Next() {
		var st PageViewStat
		if err := rows.Scan(&st.Path, &st.Views); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// pageViewMiddleware counts successful GET views of public blog pages.
// Counting failures are logged and never block the response.
func (a *App) pageViewMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err != nil || a.Store == nil {
			return err
		}
		req := c.Request()
		if req.Method != http.MethodGet || !strings.HasPrefix(req.URL.Path, "/blog/") {
			return nil
		}
		if c.Response().Status == http.StatusOK {
			if rerr := a.Store.RecordPageView(req.URL.Path, time.Now()); rerr != nil {
				c.Logger().Warnf("record page view: %v", rerr)
			}
		}
		return nil
	}
}

// PrunePageViews deletes counters older than the retention window.
func (s *Store) PrunePageViews(retainDays int) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -retainDays).Format(time.DateOnly)
	_, err := s.db.Exec(`DELETE FROM page_views WHERE day < ?`, cutoff)
	return err
}
