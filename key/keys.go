// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Source Behavior - these keys govern how the member-site source fetches and classifies content.
const (
	SourceBaseURL        = "source.base_url"
	SourceMaxLessonPages = "source.max_lesson_pages"
)

// Download Preferences - these keys configure quality selection for synthesized download variants.
const (
	DownloadPreferredQuality = "download.preferred_quality"
	DownloadInteractive      = "download.interactive"
)

// Network Transport - these keys select the HTTP transport strategy for member-site requests.
const (
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// History Tracking - these keys configure the persistence of content viewing state.
const (
	HistorySaveOnView = "history.save_on_view"
)

// Search Interaction - these keys define the UX parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern CLI behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
