package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given two semantic versions", t, func() {
		Convey("A greater version compares as 1", func() {
			c, err := Compare("1.2.3", "1.2.2")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 1)
		})

		Convey("A lesser version compares as -1", func() {
			c, err := Compare("0.9.9", "1.0.0")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, -1)
		})

		Convey("Equal versions compare as 0, v prefix ignored", func() {
			c, err := Compare("v0.1.0", "0.1.0")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 0)
		})

		Convey("Malformed versions fail", func() {
			_, err := Compare("abc", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
