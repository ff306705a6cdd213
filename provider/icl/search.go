package icl

import (
	"errors"
	"net/url"

	"github.com/liberta-cli/liberta/log"
	"github.com/liberta-cli/liberta/source"
)

// Search runs the query through the WordPress search endpoint and parses the
// whole result page for content items. A transport failure degrades to an
// empty page; a missing session propagates.
func (i *ICL) Search(query string) (*source.ContentPager, error) {
	if err := i.ensureEnabled(); err != nil {
		return nil, err
	}

	searchURL := i.baseURL + "/?s=" + url.QueryEscape(query)

	html, err := i.fetch.Fetch(searchURL)
	if err != nil {
		if errors.Is(err, source.ErrNotAuthenticated) {
			return nil, err
		}

		log.Errorf("search %q fetch failed: %s", query, err)
		return source.NewContentPager(nil), nil
	}

	return source.NewContentPager(i.parseAllItems(html)), nil
}
