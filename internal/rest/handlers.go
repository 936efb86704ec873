package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zopudigital/content-service/internal/domain"
	"github.com/zopudigital/content-service/internal/pricing"
)

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidLead):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// GetPost resolves a single published post together with its related posts.
func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.content.Post(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	related, err := h.content.RelatedPosts(c.Request.Context(), post)
	if err != nil {
		// The post itself resolved; ship it without the rail.
		h.logger.Warn("related posts lookup failed", "slug", post.Slug, "error", err)
		related = nil
	}

	c.JSON(http.StatusOK, toPostDetail(*post, related))
}

func (h *Handler) ListThemes(c *gin.Context) {
	themes, err := h.content.Themes(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	out := make([]themeDTO, 0, len(themes))
	for _, t := range themes {
		out = append(out, toThemeDTO(t))
	}
	c.JSON(http.StatusOK, gin.H{"themes": out})
}

func (h *Handler) GetTheme(c *gin.Context) {
	theme, posts, err := h.content.ThemeWithPosts(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"theme": toThemeDTO(*theme),
		"posts": toPostSummaries(posts),
	})
}

func (h *Handler) ListInterests(c *gin.Context) {
	interests, err := h.content.Interests(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	out := make([]interestDTO, 0, len(interests))
	for _, i := range interests {
		out = append(out, toInterestDTO(i))
	}
	c.JSON(http.StatusOK, gin.H{"interests": out})
}

func (h *Handler) GetInterest(c *gin.Context) {
	interest, posts, err := h.content.InterestWithPosts(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"interest": toInterestDTO(*interest),
		"posts":    toPostSummaries(posts),
	})
}

func (h *Handler) GetStage(c *gin.Context) {
	stage := c.Param("stage")
	posts, err := h.content.PostsByStage(c.Request.Context(), stage)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stage":      stage,
		"stageLabel": domain.StageLabels[domain.Stage(stage)],
		"posts":      toPostSummaries(posts),
	})
}

func (h *Handler) GetAuthor(c *gin.Context) {
	author, posts, err := h.content.AuthorWithPosts(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"author": toAuthorDTO(*author),
		"posts":  toPostSummaries(posts),
	})
}

func (h *Handler) GetSeries(c *gin.Context) {
	series, err := h.content.SeriesWithPosts(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSeriesDTO(*series))
}

func (h *Handler) GetPersona(c *gin.Context) {
	persona, posts, err := h.content.PersonaContent(c.Request.Context(), c.Param("personaId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"persona": toPersonaDTO(*persona),
		"posts":   toPostSummaries(posts),
	})
}

func (h *Handler) ListEpisodes(c *gin.Context) {
	items := h.catalog.PodcastEpisodes(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) GetEpisode(c *gin.Context) {
	item, err := h.catalog.Episode(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) ListWebinars(c *gin.Context) {
	items := h.catalog.Webinars(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) GetWebinar(c *gin.Context) {
	item, err := h.catalog.Webinar(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) ListMethodologyVideos(c *gin.Context) {
	items := h.catalog.MethodologyVideos(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type leadRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      *string `json:"phone"`
	Company    *string `json:"company"`
	Message    *string `json:"message"`
	PersonaID  *string `json:"personaId"`
	SourcePath string  `json:"sourcePath"`
}

func (h *Handler) PostLead(c *gin.Context) {
	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead payload"})
		return
	}

	lead := &domain.Lead{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Company:    req.Company,
		Message:    req.Message,
		SourcePath: req.SourcePath,
	}
	if req.PersonaID != nil {
		id := domain.PersonaID(*req.PersonaID)
		lead.PersonaID = &id
	}

	id, err := h.leads.Capture(c.Request.Context(), lead)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetPriceComparison compares a flat-rate plan against a per-user competitor.
// Query params: users (required), perUserCents (defaults to R$79/seat).
func (h *Handler) GetPriceComparison(c *gin.Context) {
	users, err := strconv.Atoi(c.Query("users"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "users must be an integer"})
		return
	}

	perUserCents := int64(7900)
	if raw := c.Query("perUserCents"); raw != "" {
		perUserCents, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || perUserCents < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "perUserCents must be a non-negative integer"})
			return
		}
	}

	comparison, err := pricing.Compare(users, perUserCents)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no plan covers this team size"})
		return
	}

	c.JSON(http.StatusOK, comparison)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
