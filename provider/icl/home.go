package icl

import (
	"errors"

	"github.com/liberta-cli/liberta/log"
	"github.com/liberta-cli/liberta/source"
)

// Home fetches the member home page and concatenates the items of its known
// sections in declared order. A transport failure degrades to an empty page;
// a missing section simply contributes nothing. A missing session is not a
// transport failure and propagates.
func (i *ICL) Home() (*source.ContentPager, error) {
	if err := i.ensureEnabled(); err != nil {
		return nil, err
	}

	html, err := i.fetch.Fetch(i.baseURL)
	if err != nil {
		if errors.Is(err, source.ErrNotAuthenticated) {
			return nil, err
		}

		log.Errorf("home feed fetch failed: %s", err)
		return source.NewContentPager(nil), nil
	}

	return source.NewContentPager(i.extractSections(html, homeSectionIDs)), nil
}
