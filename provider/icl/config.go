// Package icl implements the Instituto Conhecimento Liberta content source.
//
// ICL is a WordPress membership site (membro.icl.com.br) serving courses,
// series and documentaries behind a login wall. The provider scrapes its HTML
// pages: list pages are parsed with a DOM query engine, single pages with
// pattern matching over the raw markup.
package icl

import "github.com/liberta-cli/liberta/source"

const (
	// PlatformID is the unique platform identifier of this provider.
	PlatformID = "ICL"

	// PlatformName is the display name of this provider.
	PlatformName = "Instituto Conhecimento Liberta"

	// BaseURL is the member-site root. All content URLs live under it.
	BaseURL = "https://membro.icl.com.br"
)

// SettingPreferredDownloadQuality is the variable name of the download
// quality setting exposed through the descriptor.
const SettingPreferredDownloadQuality = "preferredDownloadQuality"

// Descriptor returns the static configuration of the ICL provider.
func Descriptor() *source.Descriptor {
	return &source.Descriptor{
		ID:          PlatformID,
		Name:        PlatformName,
		Description: "Plugin para acessar conteúdos educacionais do ICL",
		Author:      "ICL Community",
		AuthorURL:   "https://icl.com.br",
		PlatformURL: BaseURL,
		BaseURL:     BaseURL,
		Authentication: &source.AuthenticationDescriptor{
			LoginURL:      BaseURL + "/wp-login.php",
			CompletionURL: BaseURL,
			CookiesToFind: []string{"wordpress_logged_in"},
		},
		Settings: []source.SettingDescriptor{
			{
				Variable:    SettingPreferredDownloadQuality,
				Name:        "Qualidade de Download Preferida",
				Description: "Escolha a qualidade para downloads",
				Type:        "dropdown",
				Default:     "1080p",
				Options:     []string{"2160p", "1440p", "1080p", "720p", "480p", "360p"},
			},
		},
	}
}
