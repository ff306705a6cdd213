package icl

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const coursePageOne = `
<html><body>
<h1 class="entry-title">História do Brasil – ICL</h1>
<ul class="lessons">
	<li><a href="/aula/aula-1/" title="Aula 1"></a></li>
	<li><a href="/aula/aula-2/"><h3>Aula 2</h3></a></li>
</ul>
<nav><a class="next page-numbers" href="/curso/historia-do-brasil/page/2/">2</a></nav>
</body></html>`

const coursePageTwo = `
<html><body>
<ul class="lessons">
	<li><a href="/aula/aula-3/" title="Aula 3"></a></li>
</ul>
</body></html>`

func TestExtractLessons(t *testing.T) {
	Convey("Given a course whose lesson list spans two pages", t, func() {
		src, fetch := enabledSource(map[string]string{
			BaseURL + "/curso/historia-do-brasil/page/2/": coursePageTwo,
		})

		lessons := src.extractLessons(coursePageOne, 10)

		Convey("Both pages contribute, in page order", func() {
			So(lessons, ShouldHaveLength, 3)
			So(lessons[0].Title, ShouldEqual, "Aula 1")
			So(lessons[1].Title, ShouldEqual, "Aula 2")
			So(lessons[2].Title, ShouldEqual, "Aula 3")
		})

		Convey("Exactly one extra page is fetched", func() {
			So(fetch.fetched, ShouldResemble, []string{BaseURL + "/curso/historia-do-brasil/page/2/"})
		})
	})

	Convey("Given a course page without a next marker", t, func() {
		src, fetch := enabledSource(nil)

		lessons := src.extractLessons(coursePageTwo, 10)

		Convey("Only the current page's lessons are returned", func() {
			So(lessons, ShouldHaveLength, 1)
			So(lessons[0].Title, ShouldEqual, "Aula 3")
			So(fetch.fetched, ShouldBeEmpty)
		})
	})

	Convey("Given a pagination cycle", t, func() {
		loop := `
		<html><body>
		<a href="/aula/aula-x/" title="Aula X"></a>
		<nav><a class="next page-numbers" href="/curso/loop/">next</a></nav>
		</body></html>`

		src, fetch := enabledSource(map[string]string{BaseURL + "/curso/loop/": loop})

		lessons := src.extractLessons(loop, 3)

		Convey("The page cap stops the walk and seen URLs are not duplicated", func() {
			So(lessons, ShouldHaveLength, 1)
			So(fetch.fetched, ShouldHaveLength, 3)
		})
	})

	Convey("Given a next page that fails to fetch", t, func() {
		src, _ := enabledSource(nil)

		lessons := src.extractLessons(coursePageOne, 10)

		Convey("The lessons gathered so far are kept", func() {
			So(lessons, ShouldHaveLength, 2)
		})
	})
}
