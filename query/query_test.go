package query

import (
	"testing"

	"github.com/liberta-cli/liberta/filesystem"
	"github.com/liberta-cli/liberta/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given remembered queries with different ranks", t, func() {
		So(Remember("bolsonarismo", 1), ShouldBeNil)
		So(Remember("economia popular", 10), ShouldBeNil)

		Convey("Suggestions are sorted by rank", func() {
			suggestionCache = make(map[string][]*record)

			s := SuggestMany("eco")
			So(len(s), ShouldBeGreaterThanOrEqualTo, 1)
			So(s[0], ShouldEqual, "economia popular")
		})

		Convey("Suggest returns the top match", func() {
			suggestionCache = make(map[string][]*record)

			So(Suggest("eco").OrElse(""), ShouldEqual, "economia popular")
		})

		Convey("Input is sanitized", func() {
			So(sanitize("  ECONOMIA  "), ShouldEqual, "economia")
		})
	})

	Convey("Given suggestions are disabled", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, false)
		defer viper.Set(key.SearchShowQuerySuggestions, true)

		So(SuggestMany("eco"), ShouldBeEmpty)
	})
}
