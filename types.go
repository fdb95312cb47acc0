package bloglist

// Author is one entry in a post's ordered author list. ImageURL may be
// empty, in which case the card renders the name without an avatar.
type Author struct {
	Name     string `json:"name" yaml:"name"`
	ImageURL string `json:"image_url,omitempty" yaml:"image_url"`
}

// Tag is a label plus the routable path of its listing page.
type Tag struct {
	Label     string `json:"label" yaml:"label"`
	Permalink string `json:"permalink" yaml:"permalink"`
}

// PostSummary is the typed record describing one blog entry for listing
// purposes. It is constructed at the content boundary (loader or admin
// form) and treated as immutable by the renderer.
type PostSummary struct {
	Title          string
	Permalink      string
	Slug           string
	Date           string // calendar date, YYYY-MM-DD
	Authors        []Author
	Tags           []Tag
	Description    string // author-supplied excerpt, used verbatim when non-empty
	Content        string // full post body, plain text; also the derived-excerpt source
	ReadingMinutes int
	Published      bool
}

// ListMeta carries a listing page's own metadata plus pagination cursors.
// PrevLink and NextLink are empty at the respective boundary.
type ListMeta struct {
	Title       string
	Description string
	Permalink   string
	Page        int
	TotalPages  int
	PrevLink    string
	NextLink    string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
