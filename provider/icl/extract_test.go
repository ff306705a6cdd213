package icl

import (
	"testing"

	"github.com/liberta-cli/liberta/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCleanHTML(t *testing.T) {
	Convey("Given markup with tags, entities and whitespace runs", t, func() {
		raw := `<span>Hist&oacute;ria &amp; Pol&iacute;tica</span>` // unknown entities pass through

		Convey("Tags are stripped and known entities decoded", func() {
			So(CleanHTML("<b>Foo &amp; Bar</b>"), ShouldEqual, "Foo & Bar")
			So(CleanHTML("A&nbsp;&nbsp;B"), ShouldEqual, "A B")
			So(CleanHTML("  x \n\t y  "), ShouldEqual, "x y")
		})

		Convey("It is idempotent", func() {
			once := CleanHTML(raw)
			So(CleanHTML(once), ShouldEqual, once)

			other := CleanHTML("<h1>Foo &#8211; Bar &quot;Baz&quot;</h1>")
			So(CleanHTML(other), ShouldEqual, other)
		})

		Convey("Double-escaped entities decode fully", func() {
			So(CleanHTML("Foo &amp;amp; Bar"), ShouldEqual, "Foo & Bar")
			So(CleanHTML("&amp;nbsp;"), ShouldEqual, "")

			once := CleanHTML("&amp;nbsp;Foo")
			So(once, ShouldEqual, "Foo")
			So(CleanHTML(once), ShouldEqual, once)
		})
	})
}

func TestExtractTitle(t *testing.T) {
	Convey("Given a page with an entry-title heading", t, func() {
		html := `<h1 class="entry-title">Foo – Site</h1>`

		Convey("The dash-delimited site suffix is stripped", func() {
			So(ExtractTitle(html).OrElse(""), ShouldEqual, "Foo")
		})
	})

	Convey("Given a page with only a document title", t, func() {
		html := `<html><head><title>Aula 3 &#8211; ICL</title></head></html>`

		Convey("The document title is used, suffix stripped", func() {
			So(ExtractTitle(html).OrElse(""), ShouldEqual, "Aula 3")
		})
	})

	Convey("Given a title with interior dashes", t, func() {
		html := `<h1 class="entry-title">Economia – Política – ICL</h1>`

		Convey("Only the final suffix segment is stripped", func() {
			So(ExtractTitle(html).OrElse(""), ShouldEqual, "Economia – Política")
		})
	})

	Convey("Given markup inside the heading", t, func() {
		html := `<h1 class="entry-title"><span>Foo</span> <em>Bar</em></h1>`

		So(ExtractTitle(html).OrElse(""), ShouldEqual, "Foo Bar")
	})

	Convey("Given a page without any title", t, func() {
		So(ExtractTitle("<p>nothing here</p>").IsAbsent(), ShouldBeTrue)
	})
}

func TestExtractDescription(t *testing.T) {
	Convey("Given a description block", t, func() {
		html := `<div class="course-description">Sobre o <b>curso</b></div>`

		So(ExtractDescription(html).OrElse(""), ShouldEqual, "Sobre o curso")
	})

	Convey("Given only an episode content block", t, func() {
		html := `<div class="episode-content">Resumo do epis&#243;dio</div>`

		So(ExtractDescription(html).IsPresent(), ShouldBeTrue)
	})

	Convey("Given neither block", t, func() {
		So(ExtractDescription("<div>plain</div>").IsAbsent(), ShouldBeTrue)
	})
}

func TestExtractThumbnail(t *testing.T) {
	Convey("A poster attribute wins", t, func() {
		html := `<video poster="https://cdn.example.com/poster.jpg"></video>
			<img src="https://membro.icl.com.br/app/uploads/2024/01/a.jpg">`

		So(ExtractThumbnail(html).OrElse(""), ShouldEqual, "https://cdn.example.com/poster.jpg")
	})

	Convey("An uploads-directory image is the fallback", t, func() {
		html := `<img src="https://membro.icl.com.br/app/uploads/2024/01/a.jpg">`

		So(ExtractThumbnail(html).OrElse(""), ShouldEqual, "https://membro.icl.com.br/app/uploads/2024/01/a.jpg")
	})

	Convey("No recognizable image means a miss", t, func() {
		So(ExtractThumbnail(`<img src="https://example.com/logo.svg">`).IsAbsent(), ShouldBeTrue)
	})
}

func TestExtractVideoSources(t *testing.T) {
	Convey("Given a page with a manifest and a direct file", t, func() {
		html := `<script>
			var player = { src: "https://cdn.example.com/abc123/playlist.m3u8" };
			var fallback = "https://cdn.example.com/abc123/play_1080p.mp4";
		</script>`

		sources := ExtractVideoSources(html)

		Convey("Both are returned, streaming first", func() {
			So(sources, ShouldHaveLength, 2)
			So(sources[0].Streaming, ShouldNotBeNil)
			So(sources[0].Streaming.ManifestURL, ShouldEqual, "https://cdn.example.com/abc123/playlist.m3u8")
			So(sources[1].File, ShouldNotBeNil)
			So(sources[1].File.URL, ShouldEqual, "https://cdn.example.com/abc123/play_1080p.mp4")
		})
	})

	Convey("Given a page with a DASH manifest only", t, func() {
		sources := ExtractVideoSources(`<script>load("https://cdn.example.com/abc/manifest.mpd")</script>`)

		So(sources, ShouldHaveLength, 1)
		So(sources[0].Streaming.Protocol, ShouldEqual, source.ProtocolDASH)
	})

	Convey("Given a page without media URLs", t, func() {
		So(ExtractVideoSources("<p>no media</p>"), ShouldBeEmpty)
	})
}
