package util

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "lesson", "lessons"), ShouldEqual, "1 lesson")
		So(Quantify(2, "lesson", "lessons"), ShouldEqual, "2 lessons")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<base>.+)/(?P<id>[^/]+)/playlist\.m3u8`)
		groups := ReGroups(re, "https://cdn/abc123/playlist.m3u8")
		So(groups["base"], ShouldEqual, "https://cdn")
		So(groups["id"], ShouldEqual, "abc123")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/play_1080p.mp4"), ShouldEqual, "play_1080p")
		So(FileStem("file"), ShouldEqual, "file")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}
