// Package source defines the domain models and interfaces for content discovery and retrieval.
package source

// Descriptor is the static configuration of a provider: identity, base URLs,
// authentication requirements, and the settings surface it exposes.
type Descriptor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Author      string `json:"author"`
	AuthorURL   string `json:"author_url"`
	PlatformURL string `json:"platform_url"`
	BaseURL     string `json:"base_url"`

	Authentication *AuthenticationDescriptor `json:"authentication,omitempty"`
	Settings       []SettingDescriptor       `json:"settings,omitempty"`

	AllowURLs []string `json:"allow_urls,omitempty"`
}

// AuthenticationDescriptor describes how a user logs into the provider and
// which cookies constitute a valid session.
type AuthenticationDescriptor struct {
	LoginURL             string   `json:"login_url"`
	CompletionURL        string   `json:"completion_url,omitempty"`
	CookiesToFind        []string `json:"cookies_to_find,omitempty"`
	CookiesExclOthers    bool     `json:"cookies_excl_others,omitempty"`
	AllowedDomains       []string `json:"allowed_domains,omitempty"`
	HeadersToFind        []string `json:"headers_to_find,omitempty"`
	LoginWarning         string   `json:"login_warning,omitempty"`
	UserAgent            string   `json:"user_agent,omitempty"`
	LoginButtonSelectors []string `json:"login_button_selectors,omitempty"`
}

// SettingDescriptor describes one user-facing setting variable.
type SettingDescriptor struct {
	Variable    string   `json:"variable"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type"`
	Default     string   `json:"default,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// Setting returns the effective value for a variable: the user-provided
// value when present, otherwise the descriptor default.
func (d *Descriptor) Setting(settings Settings, variable string) string {
	if settings != nil {
		if v, ok := settings[variable]; ok && v != "" {
			return v
		}
	}

	for _, s := range d.Settings {
		if s.Variable == variable {
			return s.Default
		}
	}

	return ""
}
