package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/zopudigital/content-service/internal/domain"
	"github.com/zopudigital/content-service/internal/slug"
)

const SourceID = "youtube"

const listingPageSize = 50

// Titles the platform substitutes for entries that can no longer be watched.
var sentinelTitles = map[string]struct{}{
	"private video":  {},
	"deleted video":  {},
	"vídeo privado":  {},
	"vídeo excluído": {},
}

// Config holds YouTube source configuration.
type Config struct {
	FeedBaseURL   string
	APIBaseURL    string
	OEmbedBaseURL string
	APIKey        string
	Timeout       time.Duration
	Revalidate    time.Duration
}

// Source fetches playlist listings and single-video metadata. Every public
// method fails soft: upstream trouble produces an empty result, never an
// error, so pages render their empty state instead of breaking.
type Source struct {
	httpClient    *http.Client
	feedBaseURL   string
	apiBaseURL    string
	oembedBaseURL string
	apiKey        string
	revalidate    time.Duration
	logger        *slog.Logger

	mu        sync.Mutex
	playlists map[string]playlistCacheEntry
	metadata  map[string]metadataCacheEntry
}

type playlistCacheEntry struct {
	entries   []domain.VideoEntry
	fetchedAt time.Time
}

type metadataCacheEntry struct {
	meta      *domain.VideoMetadata
	fetchedAt time.Time
}

// New creates a new YouTube source.
func New(cfg Config, logger *slog.Logger) *Source {
	if cfg.FeedBaseURL == "" {
		cfg.FeedBaseURL = "https://www.youtube.com/feeds/videos.xml"
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "https://www.googleapis.com/youtube/v3"
	}
	if cfg.OEmbedBaseURL == "" {
		cfg.OEmbedBaseURL = "https://www.youtube.com/oembed"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Revalidate == 0 {
		cfg.Revalidate = time.Hour
	}

	return &Source{
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		feedBaseURL:   cfg.FeedBaseURL,
		apiBaseURL:    cfg.APIBaseURL,
		oembedBaseURL: cfg.OEmbedBaseURL,
		apiKey:        cfg.APIKey,
		revalidate:    cfg.Revalidate,
		logger:        logger.With("source", SourceID),
		playlists:     make(map[string]playlistCacheEntry),
		metadata:      make(map[string]metadataCacheEntry),
	}
}

// PlaylistEntries returns the recent entries of a playlist from the public
// syndication feed, newest first as provided upstream. Results are cached for
// the revalidation window; a failed refresh serves the previous snapshot.
func (s *Source) PlaylistEntries(ctx context.Context, playlistID string) []domain.VideoEntry {
	return s.cachedPlaylist("feed:"+playlistID, func() ([]domain.VideoEntry, error) {
		return s.fetchFeed(ctx, playlistID)
	})
}

// PlaylistEntriesFull returns the complete playlist via the Data API, sorted
// by publication recency descending. Without an API key, or when any page
// request fails, it degrades to the syndication feed.
func (s *Source) PlaylistEntriesFull(ctx context.Context, playlistID string) []domain.VideoEntry {
	if s.apiKey == "" {
		return s.PlaylistEntries(ctx, playlistID)
	}

	entries := s.cachedPlaylist("full:"+playlistID, func() ([]domain.VideoEntry, error) {
		return s.fetchListing(ctx, playlistID)
	})
	if entries == nil {
		return s.PlaylistEntries(ctx, playlistID)
	}
	return entries
}

// VideoMetadata fetches oEmbed metadata for one video. Returns nil on any
// failure; callers treat nil as not-found.
func (s *Source) VideoMetadata(ctx context.Context, videoID string) *domain.VideoMetadata {
	s.mu.Lock()
	cached, ok := s.metadata[videoID]
	s.mu.Unlock()
	if ok && time.Since(cached.fetchedAt) < s.revalidate {
		return cached.meta
	}

	meta, err := s.fetchOEmbed(ctx, videoID)
	if err != nil {
		s.logger.Warn("oembed fetch failed", "video_id", videoID, "error", err)
		if ok {
			return cached.meta
		}
		return nil
	}

	s.mu.Lock()
	s.metadata[videoID] = metadataCacheEntry{meta: meta, fetchedAt: time.Now()}
	s.mu.Unlock()
	return meta
}

func (s *Source) cachedPlaylist(key string, fetch func() ([]domain.VideoEntry, error)) []domain.VideoEntry {
	s.mu.Lock()
	cached, ok := s.playlists[key]
	s.mu.Unlock()
	if ok && time.Since(cached.fetchedAt) < s.revalidate {
		return cached.entries
	}

	entries, err := fetch()
	if err != nil {
		s.logger.Warn("playlist fetch failed", "key", key, "error", err)
		if ok {
			// Stale beats empty when upstream is down.
			return cached.entries
		}
		return nil
	}

	s.mu.Lock()
	s.playlists[key] = playlistCacheEntry{entries: entries, fetchedAt: time.Now()}
	s.mu.Unlock()
	return entries
}

func (s *Source) fetchFeed(ctx context.Context, playlistID string) ([]domain.VideoEntry, error) {
	u := s.feedBaseURL + "?playlist_id=" + url.QueryEscape(playlistID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var doc feedDocument
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	return s.transformFeed(doc.Entries), nil
}

func (s *Source) transformFeed(raw []feedEntry) []domain.VideoEntry {
	entries := make([]domain.VideoEntry, 0, len(raw))

	for _, e := range raw {
		videoID := e.VideoID
		if videoID == "" {
			videoID = tokenFromTag(e.ID)
		}
		if !slug.IsToken(videoID) {
			s.logger.Warn("entry without usable video id", "tag", e.ID)
			continue
		}

		if isSentinelTitle(e.Title) {
			continue
		}

		publishedAt, err := time.Parse(time.RFC3339, e.Published)
		if err != nil {
			s.logger.Warn("failed to parse published date",
				"video_id", videoID,
				"published", e.Published,
			)
			continue
		}

		entries = append(entries, domain.VideoEntry{
			VideoID:     videoID,
			Title:       e.Title,
			PublishedAt: publishedAt,
			URL:         alternateLink(e.Links, videoID),
			Thumbnail:   thumbnailURL(videoID),
		})
	}

	return entries
}

func (s *Source) fetchListing(ctx context.Context, playlistID string) ([]domain.VideoEntry, error) {
	var entries []domain.VideoEntry
	pageToken := ""

	for {
		page, err := s.fetchListingPage(ctx, playlistID, pageToken)
		if err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			entry, ok := s.transformListingItem(item)
			if !ok {
				continue
			}
			entries = append(entries, entry)
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PublishedAt.After(entries[j].PublishedAt)
	})

	return entries, nil
}

func (s *Source) fetchListingPage(ctx context.Context, playlistID, pageToken string) (*listingResponse, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("maxResults", fmt.Sprint(listingPageSize))
	q.Set("playlistId", playlistID)
	q.Set("key", s.apiKey)
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}
	u := s.apiBaseURL + "/playlistItems?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var page listingResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &page, nil
}

func (s *Source) transformListingItem(item listingItem) (domain.VideoEntry, bool) {
	videoID := item.Snippet.ResourceID.VideoID
	if !slug.IsToken(videoID) {
		return domain.VideoEntry{}, false
	}
	if isSentinelTitle(item.Snippet.Title) {
		return domain.VideoEntry{}, false
	}

	publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
	if err != nil {
		s.logger.Warn("failed to parse published date",
			"video_id", videoID,
			"published", item.Snippet.PublishedAt,
		)
		return domain.VideoEntry{}, false
	}

	thumb := thumbnailURL(videoID)
	if item.Snippet.Thumbnails.High != nil {
		thumb = item.Snippet.Thumbnails.High.URL
	} else if item.Snippet.Thumbnails.Default != nil {
		thumb = item.Snippet.Thumbnails.Default.URL
	}

	return domain.VideoEntry{
		VideoID:     videoID,
		Title:       item.Snippet.Title,
		PublishedAt: publishedAt,
		URL:         watchURL(videoID),
		Thumbnail:   thumb,
	}, true
}

func (s *Source) fetchOEmbed(ctx context.Context, videoID string) (*domain.VideoMetadata, error) {
	q := url.Values{}
	q.Set("url", watchURL(videoID))
	q.Set("format", "json")
	u := s.oembedBaseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var body oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &domain.VideoMetadata{
		Title:      body.Title,
		AuthorName: body.AuthorName,
		Thumbnail:  body.ThumbnailURL,
	}, nil
}

// tokenFromTag extracts the video token from a composite tag such as
// "yt:video:dQw4w9WgXcQ".
func tokenFromTag(tag string) string {
	parts := strings.Split(tag, ":")
	return parts[len(parts)-1]
}

func isSentinelTitle(title string) bool {
	_, ok := sentinelTitles[strings.ToLower(strings.TrimSpace(title))]
	return ok
}

func alternateLink(links []feedLink, videoID string) string {
	for _, l := range links {
		if l.Rel == "alternate" && l.Href != "" {
			return l.Href
		}
	}
	return watchURL(videoID)
}

func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

func thumbnailURL(videoID string) string {
	return "https://i.ytimg.com/vi/" + videoID + "/hqdefault.jpg"
}
