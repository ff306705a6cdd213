package icl

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDeriveDownloadSources(t *testing.T) {
	Convey("Given a well-formed streaming manifest URL", t, func() {
		sources, ok := DeriveDownloadSources("https://cdn/abc123/playlist.m3u8").Get()

		Convey("All six catalog renditions are synthesized in order", func() {
			So(ok, ShouldBeTrue)
			So(sources, ShouldHaveLength, 6)

			labels := []string{"2160p", "1440p", "1080p", "720p", "480p", "360p"}
			for n, label := range labels {
				So(sources[n].Label, ShouldEqual, label)
				So(sources[n].URL, ShouldEqual, fmt.Sprintf("https://cdn/abc123/play_%s.mp4", label))
			}
		})

		Convey("Renditions carry descending dimensions", func() {
			So(sources[0].Height, ShouldEqual, 2160)
			So(sources[5].Height, ShouldEqual, 360)
			So(sources[0].Bitrate, ShouldBeGreaterThan, sources[5].Bitrate)
		})
	})

	Convey("Given a manifest with query parameters", t, func() {
		sources, ok := DeriveDownloadSources("https://cdn.example.com/v/abc/playlist.m3u8?token=x").Get()

		So(ok, ShouldBeTrue)
		So(sources[2].URL, ShouldEqual, "https://cdn.example.com/v/abc/play_1080p.mp4")
	})

	Convey("Given a URL that is not a playlist manifest", t, func() {
		Convey("Synthesis reports a miss", func() {
			So(DeriveDownloadSources("https://cdn/abc123/video.mp4").IsAbsent(), ShouldBeTrue)
			So(DeriveDownloadSources("").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestQualityLabels(t *testing.T) {
	Convey("The catalog labels are exposed best first", t, func() {
		So(QualityLabels(), ShouldResemble, []string{"2160p", "1440p", "1080p", "720p", "480p", "360p"})
	})
}
