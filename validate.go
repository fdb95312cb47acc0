package bloglist

import "fmt"

// MissingFieldError reports a post summary that arrived at the render
// boundary without one of its required fields. Handlers return it
// unhandled so it reaches the Echo error handler and surfaces as a
// visible server error instead of a silently broken card.
type MissingFieldError struct {
	Slug  string // best identifier available for the offending post
	Field string
}

func (e *MissingFieldError) Error() string {
	if e.Slug == "" {
		return fmt.Sprintf("bloglist: post summary missing required field %q", e.Field)
	}
	return fmt.Sprintf("bloglist: post %q missing required field %q", e.Slug, e.Field)
}

// ValidatePost checks the two fields a card may never omit. Optional
// fields (authors, tags, description) degrade by omission and are not
// validated here.
func ValidatePost(p PostSummary) error {
	if p.Title == "" {
		return &MissingFieldError{Slug: p.Slug, Field: "title"}
	}
	if p.Permalink == "" {
		return &MissingFieldError{Slug: p.Slug, Field: "permalink"}
	}
	return nil
}

// ValidatePosts returns the first missing-field error in items, or nil.
func ValidatePosts(items []PostSummary) error {
	for _, p := range items {
		if err := ValidatePost(p); err != nil {
			return err
		}
	}
	return nil
}
