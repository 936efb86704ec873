// Package catalog composes feed adapter output with the slug codec into
// route-ready resource items for the video library sections.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/zopudigital/content-service/internal/domain"
	"github.com/zopudigital/content-service/internal/slug"
)

// Library section base paths. These URL shapes are contractual; external
// links and the sitemap depend on them.
const (
	BasePathZopucast = "/recursos/biblioteca/zopucast"
	BasePathWebinars = "/recursos/biblioteca/webinars-bitrix24"
)

const webinarFallbackTitle = "Webinar Bitrix24"

// FeedSource is the upstream video platform port. All methods fail soft.
type FeedSource interface {
	PlaylistEntries(ctx context.Context, playlistID string) []domain.VideoEntry
	PlaylistEntriesFull(ctx context.Context, playlistID string) []domain.VideoEntry
	VideoMetadata(ctx context.Context, videoID string) *domain.VideoMetadata
}

// Config holds the curated inputs of the catalog.
type Config struct {
	PodcastPlaylistID string
	WebinarVideoIDs   []string
}

type Catalog struct {
	source            FeedSource
	podcastPlaylistID string
	webinarVideoIDs   []string
	logger            *slog.Logger
}

func New(source FeedSource, cfg Config, logger *slog.Logger) *Catalog {
	return &Catalog{
		source:            source,
		podcastPlaylistID: cfg.PodcastPlaylistID,
		webinarVideoIDs:   cfg.WebinarVideoIDs,
		logger:            logger.With("component", "catalog"),
	}
}

// PodcastEpisodes lists the podcast playlist in upstream order (most recent
// first). Upstream unavailability yields an empty list.
func (c *Catalog) PodcastEpisodes(ctx context.Context) []domain.ResourceItem {
	entries := c.source.PlaylistEntriesFull(ctx, c.podcastPlaylistID)

	items := make([]domain.ResourceItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, episodeItem(e))
	}
	return items
}

// Webinars resolves the curated seed video ids through single-item metadata.
// Videos whose metadata cannot be fetched are skipped; a missing title gets a
// generic label.
func (c *Catalog) Webinars(ctx context.Context) []domain.ResourceItem {
	items := make([]domain.ResourceItem, 0, len(c.webinarVideoIDs))
	for _, videoID := range c.webinarVideoIDs {
		meta := c.source.VideoMetadata(ctx, videoID)
		if meta == nil {
			c.logger.Warn("webinar metadata unavailable", "video_id", videoID)
			continue
		}
		items = append(items, webinarItem(videoID, meta))
	}
	return items
}

// MethodologyVideos is curated by hand and currently empty. Returning an
// empty slice (not nil, not a stub) is deliberate: callers iterate it.
func (c *Catalog) MethodologyVideos(ctx context.Context) []domain.ResourceItem {
	return []domain.ResourceItem{}
}

// Episode resolves a podcast episode from its slug. An undecodable slug or an
// unknown video id is ErrNotFound.
func (c *Catalog) Episode(ctx context.Context, s string) (*domain.ResourceItem, error) {
	videoID, ok := slug.Decode(s)
	if !ok {
		return nil, domain.ErrNotFound
	}

	for _, e := range c.source.PlaylistEntriesFull(ctx, c.podcastPlaylistID) {
		if e.VideoID == videoID {
			item := episodeItem(e)
			return &item, nil
		}
	}

	// Not in the cached playlist window; the id may still be a real episode.
	meta := c.source.VideoMetadata(ctx, videoID)
	if meta == nil {
		return nil, domain.ErrNotFound
	}
	item := domain.ResourceItem{
		VideoID:     videoID,
		Type:        domain.ResourcePodcastEpisode,
		Title:       meta.Title,
		Href:        BasePathZopucast + "/" + slug.Encode(meta.Title, videoID),
		ExternalURL: watchURL(videoID),
		Thumbnail:   meta.Thumbnail,
	}
	return &item, nil
}

// Webinar resolves a webinar from its slug.
func (c *Catalog) Webinar(ctx context.Context, s string) (*domain.ResourceItem, error) {
	videoID, ok := slug.Decode(s)
	if !ok {
		return nil, domain.ErrNotFound
	}

	meta := c.source.VideoMetadata(ctx, videoID)
	if meta == nil {
		return nil, domain.ErrNotFound
	}
	item := webinarItem(videoID, meta)
	return &item, nil
}

// Warm pre-fetches the playlist and webinar metadata so user requests hit a
// fresh cache. Used by the background refresher; failures are already
// absorbed by the source.
func (c *Catalog) Warm(ctx context.Context) error {
	episodes := c.PodcastEpisodes(ctx)
	webinars := c.Webinars(ctx)
	c.logger.Debug("catalog warmed", "episodes", len(episodes), "webinars", len(webinars))
	return ctx.Err()
}

func episodeItem(e domain.VideoEntry) domain.ResourceItem {
	label := formatDateLabel(e.PublishedAt)
	return domain.ResourceItem{
		VideoID:     e.VideoID,
		Type:        domain.ResourcePodcastEpisode,
		Title:       e.Title,
		DateLabel:   &label,
		Href:        BasePathZopucast + "/" + slug.Encode(e.Title, e.VideoID),
		ExternalURL: e.URL,
		Thumbnail:   e.Thumbnail,
	}
}

func webinarItem(videoID string, meta *domain.VideoMetadata) domain.ResourceItem {
	title := meta.Title
	if title == "" {
		title = webinarFallbackTitle
	}
	thumbnail := meta.Thumbnail
	if thumbnail == "" {
		thumbnail = "https://i.ytimg.com/vi/" + videoID + "/hqdefault.jpg"
	}
	return domain.ResourceItem{
		VideoID:     videoID,
		Type:        domain.ResourceWebinar,
		Title:       title,
		Href:        BasePathWebinars + "/" + slug.Encode(title, videoID),
		ExternalURL: watchURL(videoID),
		Thumbnail:   thumbnail,
	}
}

var monthAbbrev = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// formatDateLabel renders a pt-BR short date, e.g. "10 jan 2024".
func formatDateLabel(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthAbbrev[t.Month()-1], t.Year())
}

func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
