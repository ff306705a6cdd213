package icl

import (
	"testing"

	"github.com/liberta-cli/liberta/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEnable(t *testing.T) {
	Convey("Given a fresh source", t, func() {
		src := NewWithFetcher(&stubFetcher{})

		Convey("Operations before Enable fail", func() {
			_, err := src.Home()
			So(err, ShouldEqual, source.ErrNotEnabled)

			_, err = src.Search("x")
			So(err, ShouldEqual, source.ErrNotEnabled)

			_, err = src.ContentDetails("https://membro.icl.com.br/aula/x/")
			So(err, ShouldEqual, source.ErrNotEnabled)

			_, err = src.VideoDownload("https://membro.icl.com.br/aula/x/")
			So(err, ShouldEqual, source.ErrNotEnabled)
		})

		Convey("Enable with a nil descriptor uses the built-in one", func() {
			So(src.Enable(nil, nil, ""), ShouldBeNil)
			So(src.PreferredQuality(), ShouldEqual, "1080p")
		})

		Convey("Enable honors the user quality setting", func() {
			settings := source.Settings{SettingPreferredDownloadQuality: "720p"}
			So(src.Enable(nil, settings, ""), ShouldBeNil)
			So(src.PreferredQuality(), ShouldEqual, "720p")
		})

		Convey("Saved state restores the quality when no setting is given", func() {
			So(src.Enable(nil, nil, `{"preferred_quality":"480p"}`), ShouldBeNil)
			So(src.PreferredQuality(), ShouldEqual, "480p")
		})

		Convey("SaveState round-trips through Enable", func() {
			So(src.Enable(nil, source.Settings{SettingPreferredDownloadQuality: "1440p"}, ""), ShouldBeNil)
			state := src.SaveState()

			other := NewWithFetcher(&stubFetcher{})
			So(other.Enable(nil, nil, state), ShouldBeNil)
			So(other.PreferredQuality(), ShouldEqual, "1440p")
		})
	})
}

func TestChannelFamily(t *testing.T) {
	Convey("Given an enabled source", t, func() {
		src, _ := enabledSource(nil)

		Convey("Channel URLs are never recognized", func() {
			So(src.IsChannelURL(BaseURL+"/curso/historia/"), ShouldBeFalse)
			So(src.IsChannelURL("https://example.com/channel/x"), ShouldBeFalse)
		})

		Convey("Channel lookups always fail as unsupported", func() {
			_, err := src.Channel(BaseURL + "/curso/historia/")
			So(err, ShouldEqual, source.ErrChannelsUnsupported)

			_, err = src.ChannelContents("anything")
			So(err, ShouldEqual, source.ErrChannelsUnsupported)
		})
	})
}

func TestIdentitySurface(t *testing.T) {
	Convey("Given an enabled source", t, func() {
		src, _ := enabledSource(nil)

		Convey("Identity matches the descriptor", func() {
			So(src.ID(), ShouldEqual, "ICL")
			So(src.Name(), ShouldEqual, "Instituto Conhecimento Liberta")
		})

		Convey("Content URLs are recognized by kind", func() {
			So(src.IsContentDetailsURL(BaseURL+"/curso/historia/"), ShouldBeTrue)
			So(src.IsContentDetailsURL(BaseURL+"/aula/intro/"), ShouldBeTrue)
			So(src.IsContentDetailsURL(BaseURL+"/sobre/"), ShouldBeFalse)
		})

		Convey("Search suggestions are always empty", func() {
			So(src.SearchSuggestions("hist"), ShouldBeEmpty)
		})

		Convey("Search capabilities report plain text search", func() {
			caps := src.SearchCapabilities()
			So(caps.Types, ShouldResemble, []string{source.FeedTypeMixed})
			So(caps.Filters, ShouldBeEmpty)
		})

		Convey("Comments are an empty terminal page", func() {
			comments, err := src.Comments(BaseURL + "/aula/intro/")
			So(err, ShouldBeNil)
			So(comments.Comments, ShouldBeEmpty)
			So(comments.HasMore, ShouldBeFalse)
		})
	})
}
