package domain

import "time"

// ResourceType distinguishes the video library sections.
type ResourceType string

const (
	ResourcePodcastEpisode   ResourceType = "podcast-episode"
	ResourceWebinar          ResourceType = "webinar"
	ResourceMethodologyVideo ResourceType = "methodology-video"
)

// ResourceItem is a route-ready view over an external video. It is built
// fresh per request from feed data and never persisted.
type ResourceItem struct {
	VideoID     string       `json:"videoId"`
	Type        ResourceType `json:"type"`
	Title       string       `json:"title"`
	DateLabel   *string      `json:"dateLabel,omitempty"`
	Href        string       `json:"href"`
	ExternalURL string       `json:"externalUrl"`
	Thumbnail   string       `json:"thumbnail"`
	Personas    []PersonaID  `json:"personas,omitempty"`
	Duration    *string      `json:"duration,omitempty"`
}

// VideoEntry is one item of an external playlist, as normalized by the feed
// adapter.
type VideoEntry struct {
	VideoID     string
	Title       string
	PublishedAt time.Time
	URL         string
	Thumbnail   string
}

// VideoMetadata is the oEmbed view of a single external video.
type VideoMetadata struct {
	Title      string
	AuthorName string
	Thumbnail  string
}
