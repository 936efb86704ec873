package youtube

// Atom syndication feed for a playlist.
type feedDocument struct {
	Entries []feedEntry `xml:"entry"`
}

type feedEntry struct {
	// yt:videoId, explicit identifier. Preferred over the composite ID tag.
	VideoID string `xml:"http://www.youtube.com/xml/schemas/2015 videoId"`
	// e.g. "yt:video:dQw4w9WgXcQ", fallback when videoId is absent.
	ID        string     `xml:"id"`
	Title     string     `xml:"title"`
	Published string     `xml:"published"`
	Links     []feedLink `xml:"link"`
}

type feedLink struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
}

// Data API playlistItems response.
type listingResponse struct {
	NextPageToken string        `json:"nextPageToken"`
	Items         []listingItem `json:"items"`
}

type listingItem struct {
	Snippet listingSnippet `json:"snippet"`
}

type listingSnippet struct {
	PublishedAt string            `json:"publishedAt"`
	Title       string            `json:"title"`
	ResourceID  listingResourceID `json:"resourceId"`
	Thumbnails  thumbnailSet      `json:"thumbnails"`
}

type listingResourceID struct {
	VideoID string `json:"videoId"`
}

type thumbnailSet struct {
	High    *thumbnail `json:"high"`
	Default *thumbnail `json:"default"`
}

type thumbnail struct {
	URL string `json:"url"`
}

// oEmbed response for a single video.
type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}
