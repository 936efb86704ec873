package cms

import (
	"time"

	"github.com/zopudigital/content-service/internal/domain"
)

// Post is the wire shape of a post document as projected by postFields.
type Post struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt"`
	PublishedAt time.Time  `json:"publishedAt"`
	Stage       string     `json:"stage"`
	Format      string     `json:"format"`
	CoverImage  *string    `json:"coverImage"`
	Body        *string    `json:"body"`
	NextStep    *NextStep  `json:"nextStep"`
	SEO         *SEO       `json:"seo"`
	Theme       *Theme     `json:"theme"`
	Interests   []Interest `json:"interests"`
	Authors     []Author   `json:"authors"`
	Personas    []string   `json:"personas"`
}

type NextStep struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type SEO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type Theme struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Rank        *int    `json:"rank"`
}

type Interest struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

type Author struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Role     *string `json:"role"`
	Image    *string `json:"image"`
	Bio      *string `json:"bio"`
	Website  *string `json:"website"`
	LinkedIn *string `json:"linkedin"`
}

type Series struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	HeroImage   *string `json:"heroImage"`
	Posts       []Post  `json:"posts"`
}

// PostRef is the slim projection used where only routing data is needed,
// e.g. the sitemap.
type PostRef struct {
	Slug        string    `json:"slug"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Domain converts the wire post into its domain counterpart. Unknown stage or
// format values pass through as-is; the service layer's guards decide what to
// do with them.
func (p Post) Domain() domain.Post {
	out := domain.Post{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		PublishedAt: p.PublishedAt,
		Stage:       domain.Stage(p.Stage),
		Format:      domain.Format(p.Format),
		CoverImage:  p.CoverImage,
		Body:        p.Body,
	}

	if p.NextStep != nil {
		out.NextStep = &domain.NextStep{Label: p.NextStep.Label, URL: p.NextStep.URL}
	}
	if p.SEO != nil {
		out.SEO = &domain.SEOOverride{Title: p.SEO.Title, Description: p.SEO.Description}
	}
	if p.Theme != nil {
		theme := p.Theme.Domain()
		out.Theme = &theme
	}
	for _, i := range p.Interests {
		out.Interests = append(out.Interests, i.Domain())
	}
	for _, a := range p.Authors {
		out.Authors = append(out.Authors, a.Domain())
	}
	for _, id := range p.Personas {
		out.Personas = append(out.Personas, domain.PersonaID(id))
	}

	return out
}

func (t Theme) Domain() domain.Theme {
	return domain.Theme{
		ID:          t.ID,
		Title:       t.Title,
		Slug:        t.Slug,
		Description: t.Description,
		Rank:        t.Rank,
	}
}

func (i Interest) Domain() domain.Interest {
	return domain.Interest{
		ID:          i.ID,
		Title:       i.Title,
		Slug:        i.Slug,
		Description: i.Description,
	}
}

func (a Author) Domain() domain.Author {
	return domain.Author{
		ID:       a.ID,
		Name:     a.Name,
		Slug:     a.Slug,
		Role:     a.Role,
		Image:    a.Image,
		Bio:      a.Bio,
		Website:  a.Website,
		LinkedIn: a.LinkedIn,
	}
}

func (s Series) Domain() domain.Series {
	out := domain.Series{
		ID:          s.ID,
		Title:       s.Title,
		Slug:        s.Slug,
		Description: s.Description,
		HeroImage:   s.HeroImage,
	}
	for _, p := range s.Posts {
		out.Posts = append(out.Posts, p.Domain())
	}
	return out
}
