package rest

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zopudigital/content-service/internal/domain"
)

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Static listing pages always present in the sitemap.
var staticPaths = []string{
	"/recursos/biblioteca/zopucast",
	"/recursos/biblioteca/webinars-bitrix24",
	"/recursos/biblioteca/metodologia",
}

// Sitemap renders every reachable public URL: static listings, taxonomy and
// persona hubs, published posts, and resolved video library items.
func (h *Handler) Sitemap(c *gin.Context) {
	ctx := c.Request.Context()
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	add := func(path, lastMod string) {
		set.URLs = append(set.URLs, sitemapURL{Loc: h.baseURL + path, LastMod: lastMod})
	}

	for _, p := range staticPaths {
		add(p, "")
	}
	for _, stage := range domain.Stages {
		add("/recursos/estagio/"+string(stage), "")
	}
	for _, persona := range domain.Personas() {
		add("/recursos/para/"+string(persona.ID), "")
	}

	themes, err := h.content.Themes(ctx)
	if err != nil {
		h.logger.Warn("sitemap: themes unavailable", "error", err)
	}
	for _, t := range themes {
		add("/recursos/tema/"+t.Slug, "")
	}

	interests, err := h.content.Interests(ctx)
	if err != nil {
		h.logger.Warn("sitemap: interests unavailable", "error", err)
	}
	for _, i := range interests {
		add("/recursos/interesse/"+i.Slug, "")
	}

	refs, err := h.content.PublishedPostRefs(ctx)
	if err != nil {
		h.logger.Warn("sitemap: post refs unavailable", "error", err)
	}
	for _, ref := range refs {
		add("/recursos/conteudo/"+ref.Slug, ref.PublishedAt.UTC().Format(time.RFC3339))
	}

	for _, item := range h.catalog.PodcastEpisodes(ctx) {
		add(item.Href, "")
	}
	for _, item := range h.catalog.Webinars(ctx) {
		add(item.Href, "")
	}

	c.XML(http.StatusOK, set)
}
