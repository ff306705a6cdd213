package icl

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/liberta-cli/liberta/source"
)

// lessonSelector matches anchors pointing at playable lesson pages inside a
// course body.
const lessonSelector = `a[href*="/aula/"], a[href*="/episodio/"]`

// nextPageSelector is the WordPress pagination marker for the next page.
const nextPageSelector = "a.next.page-numbers"

// defaultMaxLessonPages caps the pagination walk when no cap is configured.
const defaultMaxLessonPages = 10

// extractLessons walks a course's lesson list across its pagination. Pages
// are fetched sequentially and lessons concatenated in page order. The walk
// stops when no next-page marker is present or maxPages is reached; the cap
// guards against a malformed pagination loop.
func (i *ICL) extractLessons(html string, maxPages int) []*source.VideoSummary {
	var lessons []*source.VideoSummary
	seen := make(map[string]struct{})

	for page := 0; page < maxPages; page++ {
		pageLessons, next := i.parseLessonPage(html, seen)
		lessons = append(lessons, pageLessons...)

		if next == "" {
			break
		}

		nextHTML, err := i.fetch.Fetch(i.absoluteURL(next))
		if err != nil {
			break
		}

		html = nextHTML
	}

	return lessons
}

// parseLessonPage extracts one page worth of lessons and the next-page link,
// if any. Already seen lesson URLs are skipped so a pagination cycle cannot
// duplicate entries.
func (i *ICL) parseLessonPage(html string, seen map[string]struct{}) ([]*source.VideoSummary, string) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, ""
	}

	var lessons []*source.VideoSummary
	doc.Find(lessonSelector).Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok {
			return
		}

		url := i.absoluteURL(href)
		if !Classify(url).IsLesson() {
			return
		}
		if _, dup := seen[url]; dup {
			return
		}
		seen[url] = struct{}{}

		title := strings.TrimSpace(link.AttrOr("title", ""))
		if title == "" {
			title = strings.TrimSpace(link.Find("h2, h3, .title").First().Text())
		}
		if title == "" {
			title = strings.TrimSpace(link.Text())
		}
		if title == "" {
			title = "Untitled"
		}

		var thumbnail string
		if img := link.Find("img").First(); img.Length() > 0 {
			thumbnail = img.AttrOr("src", "")
		}

		lessons = append(lessons, i.toVideoSummary(url, CleanHTML(title), thumbnail))
	})

	next := ""
	if link := doc.Find(nextPageSelector).First(); link.Length() > 0 {
		next = link.AttrOr("href", "")
	}

	return lessons, next
}
