package domain

import (
	"errors"
	"time"
)

// ErrNotFound signals that a slug or taxonomy key resolved to nothing. The
// HTTP layer maps it to a 404; it is never a hard failure.
var ErrNotFound = errors.New("not found")

type Post struct {
	ID          string
	Title       string
	Slug        string
	Excerpt     *string
	PublishedAt time.Time
	Stage       Stage
	Format      Format
	CoverImage  *string
	Body        *string
	NextStep    *NextStep
	SEO         *SEOOverride
	Theme       *Theme
	Interests   []Interest
	Authors     []Author
	Personas    []PersonaID
}

// Published reports whether the post is visible at the given instant. Posts
// without a slug or dated in the future never surface in listings or lookups.
func (p Post) Published(now time.Time) bool {
	return p.Slug != "" && !p.PublishedAt.After(now)
}

// PostRef is the slim routing view of a published post, enough for sitemaps
// and link lists.
type PostRef struct {
	Slug        string
	PublishedAt time.Time
}

// NextStep is an optional call-to-action attached to a post.
type NextStep struct {
	Label string
	URL   string
}

// SEOOverride carries authored metadata that replaces the derived defaults.
type SEOOverride struct {
	Title       *string
	Description *string
}

type Theme struct {
	ID          string
	Title       string
	Slug        string
	Description *string
	Rank        *int
}

// Interest is a pain-point taxonomy entry. Structurally a Theme, but posts
// carry many interests while a theme is a single primary relation.
type Interest struct {
	ID          string
	Title       string
	Slug        string
	Description *string
}

type Author struct {
	ID       string
	Name     string
	Slug     string
	Role     *string
	Image    *string
	Bio      *string
	Website  *string
	LinkedIn *string
}

type Series struct {
	ID          string
	Title       string
	Slug        string
	Description *string
	HeroImage   *string
	Posts       []Post
}
