// Package rest exposes the site content as a JSON API. The /recursos URL
// shapes are contractual: external links and the sitemap depend on them.
package rest

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/zopudigital/content-service/internal/domain"
)

// ContentResolver is the content graph port consumed by the handlers.
type ContentResolver interface {
	Post(ctx context.Context, slug string) (*domain.Post, error)
	RelatedPosts(ctx context.Context, post *domain.Post) ([]domain.Post, error)
	PostsByStage(ctx context.Context, stage string) ([]domain.Post, error)
	PersonaContent(ctx context.Context, id string) (*domain.Persona, []domain.Post, error)
	ThemeWithPosts(ctx context.Context, slug string) (*domain.Theme, []domain.Post, error)
	InterestWithPosts(ctx context.Context, slug string) (*domain.Interest, []domain.Post, error)
	AuthorWithPosts(ctx context.Context, slug string) (*domain.Author, []domain.Post, error)
	SeriesWithPosts(ctx context.Context, slug string) (*domain.Series, error)
	Themes(ctx context.Context) ([]domain.Theme, error)
	Interests(ctx context.Context) ([]domain.Interest, error)
	PublishedPostRefs(ctx context.Context) ([]domain.PostRef, error)
}

// ResourceCatalog is the video library port.
type ResourceCatalog interface {
	PodcastEpisodes(ctx context.Context) []domain.ResourceItem
	Webinars(ctx context.Context) []domain.ResourceItem
	MethodologyVideos(ctx context.Context) []domain.ResourceItem
	Episode(ctx context.Context, slug string) (*domain.ResourceItem, error)
	Webinar(ctx context.Context, slug string) (*domain.ResourceItem, error)
}

type LeadCapturer interface {
	Capture(ctx context.Context, lead *domain.Lead) (int64, error)
}

type Handler struct {
	content ContentResolver
	catalog ResourceCatalog
	leads   LeadCapturer
	baseURL string
	logger  *slog.Logger
}

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(content ContentResolver, catalog ResourceCatalog, leads LeadCapturer, baseURL string, logger *slog.Logger) *gin.Engine {
	h := &Handler{
		content: content,
		catalog: catalog,
		leads:   leads,
		baseURL: baseURL,
		logger:  logger.With("component", "rest"),
	}

	router := gin.New()
	router.Use(RequestLogger(h.logger))
	router.Use(gin.CustomRecovery(HandlePanics(h.logger)))

	recursos := router.Group("/recursos")
	{
		biblioteca := recursos.Group("/biblioteca")
		{
			biblioteca.GET("/zopucast", h.ListEpisodes)
			biblioteca.GET("/zopucast/:slug", h.GetEpisode)
			biblioteca.GET("/webinars-bitrix24", h.ListWebinars)
			biblioteca.GET("/webinars-bitrix24/:slug", h.GetWebinar)
			biblioteca.GET("/metodologia", h.ListMethodologyVideos)
		}

		recursos.GET("/tema", h.ListThemes)
		recursos.GET("/tema/:slug", h.GetTheme)
		recursos.GET("/interesse", h.ListInterests)
		recursos.GET("/interesse/:slug", h.GetInterest)
		recursos.GET("/estagio/:stage", h.GetStage)
		recursos.GET("/autores/:slug", h.GetAuthor)
		recursos.GET("/series/:slug", h.GetSeries)
		recursos.GET("/para/:personaId", h.GetPersona)
		recursos.GET("/conteudo/:slug", h.GetPost)
	}

	api := router.Group("/api")
	{
		api.POST("/leads", h.PostLead)
		api.GET("/precos/comparativo", h.GetPriceComparison)
	}

	router.GET("/sitemap.xml", h.Sitemap)
	router.GET("/healthz", h.Health)

	return router
}
