package icl

import (
	"testing"

	"github.com/liberta-cli/liberta/source"
	. "github.com/smartystreets/goconvey/convey"
)

const lessonPage = `
<html><head><title>Aula 1 – ICL</title></head><body>
<h1 class="entry-title">Aula 1 – ICL</h1>
<div class="course-description">Primeira aula do curso.</div>
<video poster="https://membro.icl.com.br/app/uploads/2024/01/aula1.jpg"></video>
<script>
	var player = { src: "https://cdn.example.com/abc123/playlist.m3u8" };
</script>
</body></html>`

const watchPage = `
<html><body>
<a href="/episodio/ep-01/" title="Assistir">Assistir agora</a>
</body></html>`

func TestContentDetails(t *testing.T) {
	lessonURL := BaseURL + "/aula/aula-1/"

	Convey("Given a lesson page with a streaming manifest", t, func() {
		src, _ := enabledSource(map[string]string{lessonURL: lessonPage})

		details, err := src.ContentDetails(lessonURL)
		So(err, ShouldBeNil)

		Convey("The details carry the extracted fields", func() {
			So(details.Title, ShouldEqual, "Aula 1")
			So(details.Description, ShouldEqual, "Primeira aula do curso.")
			So(details.Thumbnails, ShouldHaveLength, 1)
			So(details.URL, ShouldEqual, lessonURL)
			So(details.IsSeries(), ShouldBeFalse)
		})

		Convey("The streaming source comes first", func() {
			So(details.Sources, ShouldNotBeEmpty)
			So(details.Sources[0].Streaming, ShouldNotBeNil)
			So(details.Sources[0].Streaming.Protocol, ShouldEqual, source.ProtocolHLS)
		})
	})

	Convey("Given a lesson page without any playable source", t, func() {
		src, _ := enabledSource(map[string]string{lessonURL: "<html><body><p>em breve</p></body></html>"})

		_, err := src.ContentDetails(lessonURL)

		Convey("The call fails loudly", func() {
			So(err, ShouldEqual, source.ErrNoPlayableSource)
		})
	})

	Convey("Given a course URL", t, func() {
		courseURL := BaseURL + "/curso/historia-do-brasil/"
		src, _ := enabledSource(map[string]string{
			courseURL: coursePageOne,
			BaseURL + "/curso/historia-do-brasil/page/2/": coursePageTwo,
		})

		details, err := src.ContentDetails(courseURL)
		So(err, ShouldBeNil)

		Convey("Series details list the lessons in order with no sources", func() {
			So(details.IsSeries(), ShouldBeTrue)
			So(details.Sources, ShouldBeEmpty)
			So(details.Sources, ShouldNotBeNil)
			So(details.Episodes, ShouldHaveLength, 3)
			So(details.Episodes[0].Title, ShouldEqual, "Aula 1")
			So(details.Title, ShouldEqual, "História do Brasil")
		})
	})

	Convey("Given a watch URL", t, func() {
		watchURL := BaseURL + "/watch/1234"
		episodeURL := BaseURL + "/episodio/ep-01/"

		src, fetch := enabledSource(map[string]string{
			watchURL:   watchPage,
			episodeURL: lessonPage,
		})

		details, err := src.ContentDetails(watchURL)
		So(err, ShouldBeNil)

		Convey("The embedded episode is resolved and used as the item", func() {
			So(details.URL, ShouldEqual, episodeURL)
			So(details.Sources, ShouldNotBeEmpty)
			So(fetch.fetched, ShouldResemble, []string{watchURL, episodeURL})
		})
	})

	Convey("Given a watch page without an embedded episode", t, func() {
		watchURL := BaseURL + "/watch/9999"
		src, _ := enabledSource(map[string]string{watchURL: "<html><body></body></html>"})

		_, err := src.ContentDetails(watchURL)
		So(err, ShouldEqual, source.ErrNoPlayableSource)
	})

	Convey("Given an unclassifiable member URL", t, func() {
		pageURL := BaseURL + "/sobre/"
		src, _ := enabledSource(map[string]string{pageURL: `<h1 class="entry-title">Sobre</h1>`})

		details, err := src.ContentDetails(pageURL)

		Convey("Best-effort details are returned with no sources", func() {
			So(err, ShouldBeNil)
			So(details.Title, ShouldEqual, "Sobre")
			So(details.Sources, ShouldBeEmpty)
			So(details.Sources, ShouldNotBeNil)
		})
	})

	Convey("Given a transport failure", t, func() {
		src, _ := enabledSource(nil)

		_, err := src.ContentDetails(lessonURL)

		Convey("The failure propagates", func() {
			So(err, ShouldNotBeNil)
		})
	})
}
