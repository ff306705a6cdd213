// Package source defines the domain models and interfaces for content discovery and retrieval.
package source

// Settings holds the per-installation user settings passed to Enable,
// keyed by setting variable name.
type Settings map[string]string

// Source defines the required capabilities of a content provider.
//
// Enable must be invoked before any other operation; implementations return
// ErrNotEnabled otherwise. All other operations are stateless with respect to
// content: every call fetches and parses fresh pages.
type Source interface {
	// Name returns the display name of the provider.
	Name() string

	// ID returns the unique platform identifier of the provider.
	ID() string

	// Enable initializes the provider session from its descriptor, the user
	// settings, and an opaque saved state blob.
	Enable(descriptor *Descriptor, settings Settings, savedState string) error

	// Disable releases the provider session.
	Disable()

	// SaveState returns an opaque blob to be restored on the next Enable.
	SaveState() string

	// Home returns the single-page home feed.
	Home() (*ContentPager, error)

	// Search executes a query against the provider and returns a single page of results.
	Search(query string) (*ContentPager, error)

	// SearchSuggestions returns completion suggestions for a partial query.
	SearchSuggestions(query string) []string

	// SearchCapabilities describes the provider's supported search surface.
	SearchCapabilities() Capabilities

	// IsChannelURL reports whether the URL denotes a channel on this provider.
	IsChannelURL(url string) bool

	// Channel retrieves channel metadata. Providers without a channel concept
	// fail with ErrChannelsUnsupported.
	Channel(url string) (*VideoSummary, error)

	// ChannelContents retrieves a channel's content listing. Providers without
	// a channel concept fail with ErrChannelsUnsupported.
	ChannelContents(url string) (*ContentPager, error)

	// IsContentDetailsURL reports whether the URL denotes a content item on this provider.
	IsContentDetailsURL(url string) bool

	// ContentDetails resolves a content URL into full details: a video with
	// playable sources, or a series with an ordered episode list.
	ContentDetails(url string) (*VideoDetails, error)

	// VideoDownload resolves a content URL into downloadable file sources.
	VideoDownload(url string) ([]FileSource, error)

	// Comments returns the single-page comment listing for a content URL.
	Comments(url string) (*CommentPager, error)
}
