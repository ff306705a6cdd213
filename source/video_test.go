package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestVideoSource(t *testing.T) {
	Convey("Given a streaming source", t, func() {
		s := VideoSource{Streaming: &StreamingSource{
			Protocol:    ProtocolHLS,
			ManifestURL: "https://cdn.example.com/abc123/playlist.m3u8",
		}}

		Convey("URL returns the manifest address", func() {
			So(s.URL(), ShouldEqual, "https://cdn.example.com/abc123/playlist.m3u8")
		})

		Convey("Label returns the protocol tag", func() {
			So(s.Label(), ShouldEqual, "HLS")
		})
	})

	Convey("Given a file source", t, func() {
		s := VideoSource{File: &FileSource{
			URL:   "https://cdn.example.com/abc123/play_1080p.mp4",
			Label: "1080p",
		}}

		Convey("URL returns the file address", func() {
			So(s.URL(), ShouldEqual, "https://cdn.example.com/abc123/play_1080p.mp4")
		})

		Convey("Label returns the quality tag", func() {
			So(s.Label(), ShouldEqual, "1080p")
		})
	})

	Convey("Given an empty source", t, func() {
		var s VideoSource

		Convey("URL and Label are empty", func() {
			So(s.URL(), ShouldBeEmpty)
			So(s.Label(), ShouldBeEmpty)
		})
	})
}

func TestVideoDetails(t *testing.T) {
	Convey("Given details with episodes", t, func() {
		d := &VideoDetails{Episodes: []*VideoSummary{{Title: "Aula 1"}}}

		Convey("It is a series", func() {
			So(d.IsSeries(), ShouldBeTrue)
		})
	})

	Convey("Given details without episodes", t, func() {
		d := &VideoDetails{}

		Convey("It is not a series", func() {
			So(d.IsSeries(), ShouldBeFalse)
		})
	})
}

func TestDescriptorSetting(t *testing.T) {
	descriptor := &Descriptor{
		Settings: []SettingDescriptor{
			{Variable: "preferredDownloadQuality", Default: "1080p"},
		},
	}

	Convey("Given user settings with a value", t, func() {
		settings := Settings{"preferredDownloadQuality": "720p"}

		Convey("The user value wins", func() {
			So(descriptor.Setting(settings, "preferredDownloadQuality"), ShouldEqual, "720p")
		})
	})

	Convey("Given empty user settings", t, func() {
		Convey("The descriptor default is used", func() {
			So(descriptor.Setting(nil, "preferredDownloadQuality"), ShouldEqual, "1080p")
		})
	})

	Convey("Given an unknown variable", t, func() {
		Convey("The value is empty", func() {
			So(descriptor.Setting(nil, "nope"), ShouldBeEmpty)
		})
	})
}
