package icl

import (
	"regexp"
	"strings"

	"github.com/liberta-cli/liberta/source"
	"github.com/samber/mo"
)

// Extraction is best-effort: every function tries a primary pattern, then a
// fallback, and reports a miss through mo.Option instead of failing. Callers
// decide whether a miss degrades to a default or aborts the operation.
var (
	entryTitlePattern  = regexp.MustCompile(`(?is)<h1[^>]*class="[^"]*entry-title[^"]*"[^>]*>(.*?)</h1>`)
	docTitlePattern    = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	descriptionPattern = regexp.MustCompile(`(?is)<div[^>]*class="[^"]*description[^"]*"[^>]*>(.*?)</div>`)
	episodeBodyPattern = regexp.MustCompile(`(?is)<div[^>]*class="[^"]*episode-content[^"]*"[^>]*>(.*?)</div>`)
	posterPattern      = regexp.MustCompile(`(?i)poster="([^"]+)"`)
	uploadImgPattern   = regexp.MustCompile(`(?i)(https?://[^\s"']+/app/uploads/[^\s"']+\.(?:jpe?g|png|webp))`)
	hlsPattern         = regexp.MustCompile(`(https?://[^\s"']+\.m3u8[^\s"']*)`)
	dashPattern        = regexp.MustCompile(`(https?://[^\s"']+\.mpd[^\s"']*)`)
	mp4Pattern         = regexp.MustCompile(`(https?://[^\s"']+\.mp4[^\s"']*)`)

	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// entityReplacer decodes the fixed entity set the member site emits.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#039;", "'",
	"&#8217;", "’",
	"&#8211;", "–",
	"&amp;", "&",
)

// CleanHTML strips markup tags, decodes the known entity set, collapses
// whitespace runs to a single space and trims. Cleaning repeats until the
// string stops changing, so double-escaped entities like &amp;nbsp; fully
// decode and the function is idempotent.
func CleanHTML(s string) string {
	for {
		cleaned := cleanHTMLPass(s)
		if cleaned == s {
			return cleaned
		}
		s = cleaned
	}
}

func cleanHTMLPass(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = entityReplacer.Replace(s)
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ExtractTitle pulls the page title: the entry-title heading first, the
// document title otherwise. An en-dash-delimited site-name suffix is dropped.
func ExtractTitle(html string) mo.Option[string] {
	groups := entryTitlePattern.FindStringSubmatch(html)
	if groups == nil {
		groups = docTitlePattern.FindStringSubmatch(html)
	}

	if groups == nil {
		return mo.None[string]()
	}

	title := CleanHTML(groups[1])
	if i := strings.LastIndex(title, "–"); i >= 0 {
		title = strings.TrimSpace(title[:i])
	}

	if title == "" {
		return mo.None[string]()
	}

	return mo.Some(title)
}

// ExtractDescription pulls the description block, falling back to the
// episode content block.
func ExtractDescription(html string) mo.Option[string] {
	groups := descriptionPattern.FindStringSubmatch(html)
	if groups == nil {
		groups = episodeBodyPattern.FindStringSubmatch(html)
	}

	if groups == nil {
		return mo.None[string]()
	}

	description := CleanHTML(groups[1])
	if description == "" {
		return mo.None[string]()
	}

	return mo.Some(description)
}

// ExtractThumbnail prefers a player poster attribute and falls back to the
// first uploads-directory image on the page.
func ExtractThumbnail(html string) mo.Option[string] {
	if groups := posterPattern.FindStringSubmatch(html); groups != nil {
		return mo.Some(groups[1])
	}

	if groups := uploadImgPattern.FindStringSubmatch(html); groups != nil {
		return mo.Some(groups[1])
	}

	return mo.None[string]()
}

// ExtractVideoSources scans embedded scripts for playable media URLs.
// Returned order expresses preference: HLS manifest, DASH manifest, direct
// file. An empty slice means the page has no playable source.
func ExtractVideoSources(html string) []source.VideoSource {
	var sources []source.VideoSource

	if groups := hlsPattern.FindStringSubmatch(html); groups != nil {
		sources = append(sources, source.VideoSource{Streaming: &source.StreamingSource{
			Protocol:    source.ProtocolHLS,
			ManifestURL: groups[1],
		}})
	}

	if groups := dashPattern.FindStringSubmatch(html); groups != nil {
		sources = append(sources, source.VideoSource{Streaming: &source.StreamingSource{
			Protocol:    source.ProtocolDASH,
			ManifestURL: groups[1],
		}})
	}

	if groups := mp4Pattern.FindStringSubmatch(html); groups != nil {
		sources = append(sources, source.VideoSource{File: &source.FileSource{
			URL:       groups[1],
			Width:     1920,
			Height:    1080,
			Container: "video/mp4",
			Codec:     "h264",
			Label:     "Direct",
		}})
	}

	return sources
}

// ExtractDirectFile pulls only the direct file assignment from a page.
func ExtractDirectFile(html string) mo.Option[string] {
	if groups := mp4Pattern.FindStringSubmatch(html); groups != nil {
		return mo.Some(groups[1])
	}

	return mo.None[string]()
}
