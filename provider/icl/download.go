package icl

import (
	"github.com/liberta-cli/liberta/source"
)

// VideoDownload resolves a content URL into downloadable files. The full CDN
// quality catalog is synthesized from the page's streaming manifest when one
// exists; otherwise the page's direct file is returned alone. Transport
// failures propagate.
func (i *ICL) VideoDownload(url string) ([]source.FileSource, error) {
	if err := i.ensureEnabled(); err != nil {
		return nil, err
	}

	html, err := i.fetch.Fetch(url)
	if err != nil {
		return nil, err
	}

	if Classify(url) == KindWatch {
		_, html, err = i.resolveWatch(html)
		if err != nil {
			return nil, err
		}
	}

	for _, s := range ExtractVideoSources(html) {
		if s.Streaming == nil || s.Streaming.Protocol != source.ProtocolHLS {
			continue
		}

		if sources, ok := DeriveDownloadSources(s.Streaming.ManifestURL).Get(); ok {
			return sources, nil
		}
	}

	if file, ok := ExtractDirectFile(html).Get(); ok {
		return []source.FileSource{{
			URL:       file,
			Width:     1920,
			Height:    1080,
			Container: "video/mp4",
			Codec:     "h264",
			Label:     "Direct",
		}}, nil
	}

	return nil, source.ErrNoPlayableSource
}
