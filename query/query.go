// Package query persists search queries and serves ranked suggestions for partial input.
package query

import (
	"strings"

	"github.com/liberta-cli/liberta/filesystem"
	"github.com/liberta-cli/liberta/key"
	"github.com/liberta-cli/liberta/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// suggestionCache memoizes suggestion lookups for the lifetime of the process.
var suggestionCache = make(map[string][]*record)

// Remember stores a search query or bumps its popularity rank by weight.
func Remember(q string, weight int) error {
	q = sanitize(q)

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*record)
	}

	if r, ok := cached[q]; ok {
		r.Rank += weight
	} else {
		cached[q] = &record{Rank: weight, Query: q}
	}

	return cacher.Set(cached)
}

// Suggest returns the best historical suggestion for a partial query.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}

	return mo.Some(suggestions[0])
}

// SuggestMany returns historical suggestions fuzzily matching the partial
// query, most popular first. Disabled through configuration it returns nothing.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	records, ok := suggestionCache[q]
	if !ok {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, r := range cached {
			if fuzzy.Match(q, r.Query) {
				records = append(records, r)
			}
		}

		slices.SortFunc(records, func(a, b *record) int {
			return b.Rank - a.Rank
		})

		suggestionCache[q] = records
	}

	return lo.Map(records, func(r *record, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
