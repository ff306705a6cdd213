// Package source defines the domain models and interfaces for content discovery and retrieval.
package source

import "time"

// ID identifies a content item as the pair of platform identifier and
// canonical content URL. Uniqueness of an item is defined by its URL string.
type ID struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Thumbnail is a single preview image.
type Thumbnail struct {
	URL     string `json:"url"`
	Quality int    `json:"quality"`
}

// VideoSummary represents a content item in a list view.
// It is cheap to produce and carries no video sources.
type VideoSummary struct {
	ID          ID          `json:"id"`
	Title       string      `json:"title"`
	Thumbnails  []Thumbnail `json:"thumbnails"`
	AuthorName  string      `json:"author_name"`
	AuthorURL   string      `json:"author_url"`
	PublishedAt time.Time   `json:"published_at"`
	URL         string      `json:"url"`
	IsLive      bool        `json:"is_live"`
}

func (v *VideoSummary) String() string {
	return v.Title
}

// VideoDetails represents a fully resolved content item.
type VideoDetails struct {
	VideoSummary

	Description string        `json:"description"`
	Sources     []VideoSource `json:"sources"`
	Rating      int           `json:"rating"`

	// Episodes is populated only for series (course) items, in lesson order.
	// Each entry is lazily resolvable to full details via its own URL.
	Episodes []*VideoSummary `json:"episodes,omitempty"`
}

// IsSeries reports whether the item is a course-like series rather than a
// directly playable video.
func (v *VideoDetails) IsSeries() bool {
	return len(v.Episodes) > 0
}

// StreamingProtocol tags the adaptive-bitrate protocol of a streaming source.
type StreamingProtocol string

const (
	ProtocolHLS  StreamingProtocol = "HLS"
	ProtocolDASH StreamingProtocol = "DASH"
)

// VideoSource is a tagged variant: exactly one of Streaming or File is set.
// Order within a source list expresses preference; the first entry is primary.
type VideoSource struct {
	Streaming *StreamingSource `json:"streaming,omitempty"`
	File      *FileSource      `json:"file,omitempty"`
}

// StreamingSource is an adaptive-bitrate manifest.
type StreamingSource struct {
	Protocol    StreamingProtocol `json:"protocol"`
	ManifestURL string            `json:"manifest_url"`
}

// FileSource is a directly downloadable media file.
type FileSource struct {
	URL       string `json:"url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Container string `json:"container"`
	Codec     string `json:"codec"`
	Bitrate   int    `json:"bitrate"`
	Label     string `json:"label"`
}

// URL returns the playable address of whichever variant is set.
func (s VideoSource) URL() string {
	if s.Streaming != nil {
		return s.Streaming.ManifestURL
	}
	if s.File != nil {
		return s.File.URL
	}
	return ""
}

// Label returns a short human-readable tag for the source.
func (s VideoSource) Label() string {
	if s.Streaming != nil {
		return string(s.Streaming.Protocol)
	}
	if s.File != nil {
		return s.File.Label
	}
	return ""
}
