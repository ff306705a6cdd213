package inline

import (
	"encoding/json"

	"github.com/liberta-cli/liberta/source"
)

// Item is one resolved search result in the JSON output.
type Item struct {
	// Source is the name of the provider.
	Source string `json:"source"`
	// Summary is the list-view item as returned by the search.
	Summary *source.VideoSummary `json:"summary"`
	// Details is the fully resolved item (optional).
	Details *source.VideoDetails `json:"details,omitempty"`
	// Downloads are the synthesized download files (optional).
	Downloads []source.FileSource `json:"downloads,omitempty"`
}

type Output struct {
	Query  string  `json:"query"`
	Result []*Item `json:"result"`
}

func asJson(results []*Item, query string) ([]byte, error) {
	if results == nil {
		results = []*Item{}
	}

	return json.Marshal(&Output{
		Query:  query,
		Result: results,
	})
}
