package icl

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/liberta-cli/liberta/key"
	"github.com/liberta-cli/liberta/source"
	"github.com/spf13/viper"
)

// ContentDetails resolves a content URL by kind: a lesson or episode becomes
// full video details, a course becomes series details with its paginated
// lesson list, a watch page is resolved to its embedded episode first.
// Transport failures propagate; a playable page without sources fails with
// ErrNoPlayableSource.
func (i *ICL) ContentDetails(url string) (*source.VideoDetails, error) {
	if err := i.ensureEnabled(); err != nil {
		return nil, err
	}

	html, err := i.fetch.Fetch(url)
	if err != nil {
		return nil, err
	}

	kind := Classify(url)
	if kind == KindWatch {
		url, html, err = i.resolveWatch(html)
		if err != nil {
			return nil, err
		}
		kind = Classify(url)
	}

	switch {
	case kind.IsLesson():
		sources := ExtractVideoSources(html)
		if len(sources) == 0 {
			return nil, source.ErrNoPlayableSource
		}

		return i.toVideoDetails(url, html, sources), nil
	case kind == KindCourse:
		maxPages := viper.GetInt(key.SourceMaxLessonPages)
		if maxPages <= 0 {
			maxPages = defaultMaxLessonPages
		}

		return i.toSeriesDetails(url, html, i.extractLessons(html, maxPages)), nil
	default:
		return i.toVideoDetails(url, html, nil), nil
	}
}

// resolveWatch follows a watch page to the lesson it embeds, returning the
// lesson URL and its fetched page.
func (i *ICL) resolveWatch(html string) (string, string, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return "", "", err
	}

	var lessonURL string
	doc.Find(lessonSelector).EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, ok := link.Attr("href")
		if !ok {
			return true
		}

		url := i.absoluteURL(href)
		if !Classify(url).IsLesson() {
			return true
		}

		lessonURL = url
		return false
	})

	if lessonURL == "" {
		return "", "", source.ErrNoPlayableSource
	}

	lessonHTML, err := i.fetch.Fetch(lessonURL)
	if err != nil {
		return "", "", err
	}

	return lessonURL, lessonHTML, nil
}
