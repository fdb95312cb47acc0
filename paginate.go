package bloglist

import "fmt"

// DefaultPageSize is the number of post cards per listing page.
const DefaultPageSize = 10

// Paginate slices items into the window for the requested 1-based page
// and builds the pagination cursors for it. The input ordering is
// preserved; callers supply items already sorted. An empty input yields a
// single valid page with zero items. A page outside the valid range
// returns ErrNotFound so handlers can serve a 404.
func Paginate(items []PostSummary, page, perPage int, basePath string) ([]PostSummary, ListMeta, error) {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 || page > totalPages {
		return nil, ListMeta{}, ErrNotFound
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	meta := ListMeta{
		Permalink:  pageLink(basePath, page),
		Page:       page,
		TotalPages: totalPages,
	}
	if page > 1 {
		meta.PrevLink = pageLink(basePath, page-1)
	}
	if page < totalPages {
		meta.NextLink = pageLink(basePath, page+1)
	}
	return items[start:end], meta, nil
}

func pageLink(basePath string, page int) string {
	if page <= 1 {
		return basePath
	}
	return fmt.Sprintf("%spage/%d/", basePath, page)
}
