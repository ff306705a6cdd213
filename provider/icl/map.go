package icl

import (
	"time"

	"github.com/liberta-cli/liberta/source"
)

// The member site publishes no author identity or publish dates, so every
// mapped item is stamped with the platform as its author and the current
// wall-clock time as an approximation.

func (i *ICL) toVideoSummary(url, title, thumbnail string) *source.VideoSummary {
	thumbnails := []source.Thumbnail{}
	if thumbnail != "" {
		thumbnails = append(thumbnails, source.Thumbnail{URL: thumbnail})
	}

	return &source.VideoSummary{
		ID:          source.ID{Platform: PlatformID, URL: url},
		Title:       title,
		Thumbnails:  thumbnails,
		AuthorName:  PlatformName,
		AuthorURL:   i.baseURL,
		PublishedAt: time.Now(),
		URL:         url,
		IsLive:      false,
	}
}

func (i *ICL) toVideoDetails(url, html string, sources []source.VideoSource) *source.VideoDetails {
	if sources == nil {
		sources = []source.VideoSource{}
	}

	title := ExtractTitle(html).OrElse("Untitled")
	description := ExtractDescription(html).OrElse("")
	thumbnail := ExtractThumbnail(html).OrElse("")

	return &source.VideoDetails{
		VideoSummary: *i.toVideoSummary(url, title, thumbnail),
		Description:  description,
		Sources:      sources,
	}
}

func (i *ICL) toSeriesDetails(url, html string, episodes []*source.VideoSummary) *source.VideoDetails {
	details := i.toVideoDetails(url, html, nil)
	details.Episodes = episodes
	return details
}
