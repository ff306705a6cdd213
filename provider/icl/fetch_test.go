package icl

import "fmt"

// stubFetcher serves canned pages keyed by URL.
type stubFetcher struct {
	pages   map[string]string
	fetched []string
}

func (s *stubFetcher) Fetch(url string) (string, error) {
	s.fetched = append(s.fetched, url)

	html, ok := s.pages[url]
	if !ok {
		return "", fmt.Errorf("no page for %s", url)
	}

	return html, nil
}

// failingFetcher fails every fetch with a fixed error.
type failingFetcher struct {
	err error
}

func (f failingFetcher) Fetch(string) (string, error) {
	return "", f.err
}

// enabledSource returns an enabled ICL source serving the given pages.
func enabledSource(pages map[string]string) (*ICL, *stubFetcher) {
	fetch := &stubFetcher{pages: pages}
	src := NewWithFetcher(fetch)

	if err := src.Enable(nil, nil, ""); err != nil {
		panic(err)
	}

	return src, fetch
}
