package icl

import (
	"fmt"
	"regexp"

	"github.com/liberta-cli/liberta/source"
	"github.com/liberta-cli/liberta/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// QualityVariant is one entry of the fixed CDN quality catalog. The catalog
// is not derived from any page; it mirrors the naming convention the CDN
// uses for pre-rendered files next to each playlist.m3u8.
type QualityVariant struct {
	Label   string
	Width   int
	Height  int
	Suffix  string
	Bitrate int
}

// qualityCatalog lists the known CDN renditions, best first.
var qualityCatalog = []QualityVariant{
	{Label: "2160p", Width: 3840, Height: 2160, Suffix: "play_2160p.mp4", Bitrate: 15_000_000},
	{Label: "1440p", Width: 2560, Height: 1440, Suffix: "play_1440p.mp4", Bitrate: 9_000_000},
	{Label: "1080p", Width: 1920, Height: 1080, Suffix: "play_1080p.mp4", Bitrate: 6_000_000},
	{Label: "720p", Width: 1280, Height: 720, Suffix: "play_720p.mp4", Bitrate: 3_000_000},
	{Label: "480p", Width: 854, Height: 480, Suffix: "play_480p.mp4", Bitrate: 1_500_000},
	{Label: "360p", Width: 640, Height: 360, Suffix: "play_360p.mp4", Bitrate: 800_000},
}

// QualityLabels returns the catalog labels in catalog order (best first).
func QualityLabels() []string {
	return lo.Map(qualityCatalog, func(v QualityVariant, _ int) string {
		return v.Label
	})
}

var manifestPattern = regexp.MustCompile(`^(?P<base>.*)/(?P<id>[^/]+)/playlist\.m3u8`)

// DeriveDownloadSources synthesizes the CDN download URLs for a streaming
// manifest. The manifest must match {base}/{videoId}/playlist.m3u8; each
// catalog entry becomes {base}/{videoId}/{suffix}.
//
// Construction is blind: derived URLs are never probed for existence, so a
// rendition missing on the CDN still appears in the result. Callers wanting
// stronger guarantees must verify on their side.
func DeriveDownloadSources(manifestURL string) mo.Option[[]source.FileSource] {
	groups := util.ReGroups(manifestPattern, manifestURL)
	if len(groups) == 0 {
		return mo.None[[]source.FileSource]()
	}

	base, videoID := groups["base"], groups["id"]

	sources := lo.Map(qualityCatalog, func(v QualityVariant, _ int) source.FileSource {
		return source.FileSource{
			URL:       fmt.Sprintf("%s/%s/%s", base, videoID, v.Suffix),
			Width:     v.Width,
			Height:    v.Height,
			Container: "video/mp4",
			Codec:     "h264",
			Bitrate:   v.Bitrate,
			Label:     v.Label,
		}
	})

	return mo.Some(sources)
}
