package icl

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/liberta-cli/liberta/source"
)

// homeSectionIDs are the home-page section anchors, in display order.
var homeSectionIDs = []string{
	"entretenimento",
	"favoritos",
	"emprogresso",
	"novos",
}

// itemSelector matches the slide and card containers the theme uses for
// content listings.
const itemSelector = ".swiper-slide, .course-item, .video-item, .content-item, article"

// parseDocument wraps goquery document construction.
func parseDocument(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// extractSections pulls the given sections out of a home page, concatenating
// their items in the given order. A missing section contributes nothing.
func (i *ICL) extractSections(html string, ids []string) []*source.VideoSummary {
	doc, err := parseDocument(html)
	if err != nil {
		return nil
	}

	var items []*source.VideoSummary
	for _, id := range ids {
		doc.Find("#" + id).Each(func(_ int, section *goquery.Selection) {
			items = append(items, i.parseItems(section)...)
		})
	}

	return items
}

// parseAllItems scans a whole document for content items. Used for search
// result pages, which have no section structure.
func (i *ICL) parseAllItems(html string) []*source.VideoSummary {
	doc, err := parseDocument(html)
	if err != nil {
		return nil
	}

	return i.parseItems(doc.Selection)
}

// parseItems extracts the content items under a selection. Items whose link
// does not classify as a known content kind are skipped.
func (i *ICL) parseItems(sel *goquery.Selection) []*source.VideoSummary {
	var items []*source.VideoSummary
	seen := make(map[string]struct{})

	sel.Find(itemSelector).Each(func(_ int, item *goquery.Selection) {
		link := item.Find("a").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}

		url := i.absoluteURL(href)
		if Classify(url) == KindNone {
			return
		}
		if _, dup := seen[url]; dup {
			return
		}
		seen[url] = struct{}{}

		title := strings.TrimSpace(link.AttrOr("title", ""))
		if title == "" {
			title = strings.TrimSpace(item.Find("h2, h3, .title").First().Text())
		}
		if title == "" {
			return
		}

		var thumbnail string
		if img := item.Find("img").First(); img.Length() > 0 {
			thumbnail = img.AttrOr("src", "")
		}

		items = append(items, i.toVideoSummary(url, CleanHTML(title), thumbnail))
	})

	return items
}

// absoluteURL resolves a page-relative href against the member-site base.
func (i *ICL) absoluteURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}

	return i.baseURL + href
}
