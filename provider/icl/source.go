package icl

import (
	"encoding/json"

	"github.com/liberta-cli/liberta/key"
	"github.com/liberta-cli/liberta/log"
	"github.com/liberta-cli/liberta/source"
	"github.com/spf13/viper"
)

// ICL is the member-site source. The session fields are set once by Enable
// and read-only afterwards; every content operation is otherwise stateless
// and works on freshly fetched pages.
type ICL struct {
	enabled          bool
	descriptor       *source.Descriptor
	settings         source.Settings
	baseURL          string
	preferredQuality string

	fetch Fetcher
}

// New creates a not yet enabled ICL source backed by the real HTTP fetcher.
func New() *ICL {
	return &ICL{fetch: httpFetcher{}}
}

// NewWithFetcher creates an ICL source with a custom page fetcher.
func NewWithFetcher(fetch Fetcher) *ICL {
	return &ICL{fetch: fetch}
}

func (i *ICL) Name() string {
	return PlatformName
}

func (i *ICL) ID() string {
	return PlatformID
}

// savedState is the opaque blob round-tripped through SaveState and Enable.
type savedState struct {
	PreferredQuality string `json:"preferred_quality,omitempty"`
}

// Enable initializes the session. A nil descriptor falls back to the
// built-in one; the preferred download quality comes from the user settings,
// then the saved state, then the descriptor default.
func (i *ICL) Enable(descriptor *source.Descriptor, settings source.Settings, saved string) error {
	if descriptor == nil {
		descriptor = Descriptor()
	}

	i.descriptor = descriptor
	i.settings = settings

	i.baseURL = descriptor.BaseURL
	if i.baseURL == "" {
		i.baseURL = viper.GetString(key.SourceBaseURL)
	}

	i.preferredQuality = descriptor.Setting(settings, SettingPreferredDownloadQuality)

	if saved != "" {
		var state savedState
		if err := json.Unmarshal([]byte(saved), &state); err == nil {
			if _, set := settings[SettingPreferredDownloadQuality]; !set && state.PreferredQuality != "" {
				i.preferredQuality = state.PreferredQuality
			}
		}
	}

	i.enabled = true
	log.Infof("source %s enabled, base url %s", PlatformID, i.baseURL)

	return nil
}

// Disable releases the session.
func (i *ICL) Disable() {
	i.enabled = false
	log.Infof("source %s disabled", PlatformID)
}

// SaveState serializes the session fields worth restoring.
func (i *ICL) SaveState() string {
	state, err := json.Marshal(savedState{PreferredQuality: i.preferredQuality})
	if err != nil {
		return ""
	}

	return string(state)
}

// PreferredQuality returns the download quality label chosen at enable time.
func (i *ICL) PreferredQuality() string {
	return i.preferredQuality
}

func (i *ICL) ensureEnabled() error {
	if !i.enabled {
		return source.ErrNotEnabled
	}

	return nil
}

// SearchSuggestions always returns nothing; the member site has no
// completion endpoint.
func (i *ICL) SearchSuggestions(string) []string {
	return []string{}
}

// SearchCapabilities reports plain text search: one media type,
// chronological order, no filters.
func (i *ICL) SearchCapabilities() source.Capabilities {
	return source.Capabilities{
		Types:   []string{source.FeedTypeMixed},
		Sorts:   []string{"CHRONOLOGICAL"},
		Filters: []source.FilterGroup{},
	}
}

// IsChannelURL always reports false; the member site has no channel concept.
func (i *ICL) IsChannelURL(string) bool {
	return false
}

// Channel always fails; see IsChannelURL.
func (i *ICL) Channel(string) (*source.VideoSummary, error) {
	return nil, source.ErrChannelsUnsupported
}

// ChannelContents always fails; see IsChannelURL.
func (i *ICL) ChannelContents(string) (*source.ContentPager, error) {
	return nil, source.ErrChannelsUnsupported
}

// IsContentDetailsURL reports whether the URL is a member-site content page.
func (i *ICL) IsContentDetailsURL(url string) bool {
	return Classify(url) != KindNone
}

// Comments returns an empty terminal page; member pages expose no scrapable
// comment feed.
func (i *ICL) Comments(string) (*source.CommentPager, error) {
	if err := i.ensureEnabled(); err != nil {
		return nil, err
	}

	return &source.CommentPager{Comments: []source.Comment{}}, nil
}
