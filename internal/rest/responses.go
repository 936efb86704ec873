package rest

import (
	"time"

	"github.com/zopudigital/content-service/internal/domain"
)

// postSummary is the listing view of a post: enough to render a card.
type postSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     *string   `json:"excerpt,omitempty"`
	PublishedAt string    `json:"publishedAt"`
	Stage       string    `json:"stage"`
	StageLabel  string    `json:"stageLabel"`
	Format      string    `json:"format"`
	FormatLabel string    `json:"formatLabel"`
	CoverImage  *string   `json:"coverImage,omitempty"`
	Theme       *themeDTO `json:"theme,omitempty"`
	Href        string    `json:"href"`
}

type postDetail struct {
	postSummary
	Body      *string       `json:"body,omitempty"`
	NextStep  *nextStepDTO  `json:"nextStep,omitempty"`
	SEO       *seoDTO       `json:"seo,omitempty"`
	Interests []interestDTO `json:"interests"`
	Authors   []authorDTO   `json:"authors"`
	Personas  []string      `json:"personas"`
	Related   []postSummary `json:"related"`
}

type nextStepDTO struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type seoDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type themeDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	Href        string  `json:"href"`
}

type interestDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	Href        string  `json:"href"`
}

type authorDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Role     *string `json:"role,omitempty"`
	Image    *string `json:"image,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Website  *string `json:"website,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	Href     string  `json:"href"`
}

type seriesDTO struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Description *string       `json:"description,omitempty"`
	HeroImage   *string       `json:"heroImage,omitempty"`
	Posts       []postSummary `json:"posts"`
}

type personaDTO struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Pain    string `json:"pain"`
	Desire  string `json:"desire"`
	Promise string `json:"promise"`
	Href    string `json:"href"`
}

func toPostSummary(p domain.Post) postSummary {
	s := postSummary{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		PublishedAt: p.PublishedAt.UTC().Format(time.RFC3339),
		Stage:       string(p.Stage),
		StageLabel:  domain.StageLabels[p.Stage],
		Format:      string(p.Format),
		FormatLabel: domain.FormatLabels[p.Format],
		CoverImage:  p.CoverImage,
		Href:        "/recursos/conteudo/" + p.Slug,
	}
	if p.Theme != nil {
		t := toThemeDTO(*p.Theme)
		s.Theme = &t
	}
	return s
}

func toPostSummaries(posts []domain.Post) []postSummary {
	out := make([]postSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostSummary(p))
	}
	return out
}

func toPostDetail(p domain.Post, related []domain.Post) postDetail {
	d := postDetail{
		postSummary: toPostSummary(p),
		Body:        p.Body,
		Interests:   make([]interestDTO, 0, len(p.Interests)),
		Authors:     make([]authorDTO, 0, len(p.Authors)),
		Personas:    make([]string, 0, len(p.Personas)),
		Related:     toPostSummaries(related),
	}
	if p.NextStep != nil {
		d.NextStep = &nextStepDTO{Label: p.NextStep.Label, URL: p.NextStep.URL}
	}
	if p.SEO != nil {
		d.SEO = &seoDTO{Title: p.SEO.Title, Description: p.SEO.Description}
	}
	for _, i := range p.Interests {
		d.Interests = append(d.Interests, toInterestDTO(i))
	}
	for _, a := range p.Authors {
		d.Authors = append(d.Authors, toAuthorDTO(a))
	}
	for _, id := range p.Personas {
		d.Personas = append(d.Personas, string(id))
	}
	return d
}

func toThemeDTO(t domain.Theme) themeDTO {
	return themeDTO{
		ID:          t.ID,
		Title:       t.Title,
		Slug:        t.Slug,
		Description: t.Description,
		Href:        "/recursos/tema/" + t.Slug,
	}
}

func toInterestDTO(i domain.Interest) interestDTO {
	return interestDTO{
		ID:          i.ID,
		Title:       i.Title,
		Slug:        i.Slug,
		Description: i.Description,
		Href:        "/recursos/interesse/" + i.Slug,
	}
}

func toAuthorDTO(a domain.Author) authorDTO {
	return authorDTO{
		ID:       a.ID,
		Name:     a.Name,
		Slug:     a.Slug,
		Role:     a.Role,
		Image:    a.Image,
		Bio:      a.Bio,
		Website:  a.Website,
		LinkedIn: a.LinkedIn,
		Href:     "/recursos/autores/" + a.Slug,
	}
}

func toSeriesDTO(s domain.Series) seriesDTO {
	return seriesDTO{
		ID:          s.ID,
		Title:       s.Title,
		Slug:        s.Slug,
		Description: s.Description,
		HeroImage:   s.HeroImage,
		Posts:       toPostSummaries(s.Posts),
	}
}

func toPersonaDTO(p domain.Persona) personaDTO {
	return personaDTO{
		ID:      string(p.ID),
		Label:   p.Label,
		Pain:    p.Pain,
		Desire:  p.Desire,
		Promise: p.Promise,
		Href:    "/recursos/para/" + string(p.ID),
	}
}
