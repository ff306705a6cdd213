package source

// Feed type identifiers reported through Capabilities.
const (
	FeedTypeVideos  = "VIDEOS"
	FeedTypeMixed   = "MIXED"
	FeedTypeStreams = "STREAMS"
)

// Capabilities describes the search surface a provider supports.
// A provider with no filters and no sorts accepts plain text queries only.
type Capabilities struct {
	Types   []string      `json:"types"`
	Sorts   []string      `json:"sorts"`
	Filters []FilterGroup `json:"filters"`
}

// FilterGroup is a named group of mutually combinable search filters.
type FilterGroup struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	IsMulti bool     `json:"is_multi"`
	Filters []Filter `json:"filters"`
}

// Filter is a single selectable search filter value.
type Filter struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}
