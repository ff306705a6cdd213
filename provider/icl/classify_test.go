package icl

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given member-site URLs", t, func() {
		Convey("Course paths classify as course", func() {
			So(Classify("https://membro.icl.com.br/curso/historia-do-brasil/"), ShouldEqual, KindCourse)
		})

		Convey("Watch paths classify as watch", func() {
			So(Classify("https://membro.icl.com.br/watch/12345"), ShouldEqual, KindWatch)
		})

		Convey("Lesson paths classify as lesson", func() {
			So(Classify("https://membro.icl.com.br/aula/introducao/"), ShouldEqual, KindLesson)
		})

		Convey("Episode paths classify as episode", func() {
			So(Classify("https://membro.icl.com.br/episodio/ep-01/"), ShouldEqual, KindEpisode)
		})

		Convey("Anything else classifies as none", func() {
			So(Classify("https://membro.icl.com.br/sobre/"), ShouldEqual, KindNone)
			So(Classify("https://example.com/"), ShouldEqual, KindNone)
			So(Classify(""), ShouldEqual, KindNone)
		})
	})
}

func TestKindIsLesson(t *testing.T) {
	Convey("Lesson and episode are playable kinds", t, func() {
		So(KindLesson.IsLesson(), ShouldBeTrue)
		So(KindEpisode.IsLesson(), ShouldBeTrue)
		So(KindCourse.IsLesson(), ShouldBeFalse)
		So(KindWatch.IsLesson(), ShouldBeFalse)
		So(KindNone.IsLesson(), ShouldBeFalse)
	})
}
