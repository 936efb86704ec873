package catalog

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zopudigital/content-service/internal/domain"
	"github.com/zopudigital/content-service/internal/slug"
)

type fakeSource struct {
	entries  map[string][]domain.VideoEntry
	metadata map[string]*domain.VideoMetadata
}

func (f *fakeSource) PlaylistEntries(_ context.Context, playlistID string) []domain.VideoEntry {
	return f.entries[playlistID]
}

func (f *fakeSource) PlaylistEntriesFull(_ context.Context, playlistID string) []domain.VideoEntry {
	return f.entries[playlistID]
}

func (f *fakeSource) VideoMetadata(_ context.Context, videoID string) *domain.VideoMetadata {
	return f.metadata[videoID]
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestPodcastEpisodes(t *testing.T) {
	source := &fakeSource{
		entries: map[string][]domain.VideoEntry{
			"PL123": {
				{
					VideoID:     "abc12345678",
					Title:       "Como vender mais",
					PublishedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
					URL:         "https://www.youtube.com/watch?v=abc12345678",
					Thumbnail:   "https://i.ytimg.com/vi/abc12345678/hqdefault.jpg",
				},
			},
		},
	}

	c := New(source, Config{PodcastPlaylistID: "PL123"}, testLogger())

	items := c.PodcastEpisodes(context.Background())

	require.Len(t, items, 1)
	item := items[0]
	assert.Equal(t, "/recursos/biblioteca/zopucast/como-vender-mais-abc12345678", item.Href)
	assert.Equal(t, domain.ResourcePodcastEpisode, item.Type)
	require.NotNil(t, item.DateLabel)
	assert.Equal(t, "10 jan 2024", *item.DateLabel)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc12345678", item.ExternalURL)
}

func TestPodcastEpisodes_HrefRoundTripsToVideoID(t *testing.T) {
	source := &fakeSource{
		entries: map[string][]domain.VideoEntry{
			"PL123": {
				{VideoID: "abc12345678", Title: "Como vender mais", PublishedAt: time.Now()},
				{VideoID: "-_-strange_", Title: "", PublishedAt: time.Now()},
				{VideoID: "xyz_9876543", Title: "Ótimo!! Guia??", PublishedAt: time.Now()},
			},
		},
	}

	c := New(source, Config{PodcastPlaylistID: "PL123"}, testLogger())

	for _, item := range c.PodcastEpisodes(context.Background()) {
		tail := item.Href[len(BasePathZopucast+"/"):]
		got, ok := slug.Decode(tail)
		require.True(t, ok, "href %q", item.Href)
		assert.Equal(t, item.VideoID, got)
	}
}

func TestPodcastEpisodes_EmptyUpstream(t *testing.T) {
	c := New(&fakeSource{}, Config{PodcastPlaylistID: "PL123"}, testLogger())
	assert.Empty(t, c.PodcastEpisodes(context.Background()))
}

func TestWebinars(t *testing.T) {
	source := &fakeSource{
		metadata: map[string]*domain.VideoMetadata{
			"web11111111": {Title: "Implantação guiada", Thumbnail: "https://i.ytimg.com/vi/web11111111/hqdefault.jpg"},
			"web22222222": {Title: ""},
		},
	}

	c := New(source, Config{WebinarVideoIDs: []string{"web11111111", "web22222222", "gone3333333"}}, testLogger())

	items := c.Webinars(context.Background())

	require.Len(t, items, 2)
	assert.Equal(t, "/recursos/biblioteca/webinars-bitrix24/implantacao-guiada-web11111111", items[0].Href)

	// Missing title falls back to the generic label; unreachable id skipped.
	assert.Equal(t, "Webinar Bitrix24", items[1].Title)
	assert.Equal(t, "/recursos/biblioteca/webinars-bitrix24/webinar-bitrix24-web22222222", items[1].Href)
	assert.Equal(t, "https://i.ytimg.com/vi/web22222222/hqdefault.jpg", items[1].Thumbnail)
}

func TestMethodologyVideos_EmptyByDesign(t *testing.T) {
	c := New(&fakeSource{}, Config{}, testLogger())

	items := c.MethodologyVideos(context.Background())
	require.NotNil(t, items)
	assert.Len(t, items, 0)
}

func TestEpisode(t *testing.T) {
	source := &fakeSource{
		entries: map[string][]domain.VideoEntry{
			"PL123": {
				{VideoID: "abc12345678", Title: "Como vender mais", PublishedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
			},
		},
		metadata: map[string]*domain.VideoMetadata{
			"off99999999": {Title: "Fora da janela do feed"},
		},
	}

	c := New(source, Config{PodcastPlaylistID: "PL123"}, testLogger())
	ctx := context.Background()

	item, err := c.Episode(ctx, "como-vender-mais-abc12345678")
	require.NoError(t, err)
	assert.Equal(t, "abc12345678", item.VideoID)

	// Falls back to single-item metadata when the id is not in the feed.
	item, err = c.Episode(ctx, "fora-da-janela-off99999999")
	require.NoError(t, err)
	assert.Equal(t, "off99999999", item.VideoID)
	assert.Equal(t, "Fora da janela do feed", item.Title)

	_, err = c.Episode(ctx, "nao-e-um-slug-valido")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = c.Episode(ctx, "titulo-qualquer-miss4444444")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWebinar(t *testing.T) {
	source := &fakeSource{
		metadata: map[string]*domain.VideoMetadata{
			"web11111111": {Title: "Implantação guiada"},
		},
	}

	c := New(source, Config{}, testLogger())
	ctx := context.Background()

	item, err := c.Webinar(ctx, "implantacao-guiada-web11111111")
	require.NoError(t, err)
	assert.Equal(t, domain.ResourceWebinar, item.Type)

	_, err = c.Webinar(ctx, "sem-token")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
