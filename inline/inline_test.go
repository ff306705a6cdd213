package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/liberta-cli/liberta/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAsJson(t *testing.T) {
	Convey("Given an empty result set", t, func() {
		var buf bytes.Buffer

		err := writeJson(&buf, nil, "test")
		So(err, ShouldBeNil)

		Convey("The output is valid JSON with an empty result array", func() {
			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Query, ShouldEqual, "test")
			So(output.Result, ShouldHaveLength, 0)
		})
	})
}

func TestParseItemPicker(t *testing.T) {
	items := []*source.VideoSummary{
		{Title: "Aula 1"},
		{Title: "Aula 2"},
		{Title: "Aula 3"},
	}

	Convey("Picker descriptions resolve items", t, func() {
		Convey("first", func() {
			picker, err := ParseItemPicker("first", "")
			So(err, ShouldBeNil)
			So(picker(items).Title, ShouldEqual, "Aula 1")
			So(picker(nil), ShouldBeNil)
		})

		Convey("last", func() {
			picker, err := ParseItemPicker("last", "")
			So(err, ShouldBeNil)
			So(picker(items).Title, ShouldEqual, "Aula 3")
		})

		Convey("exact", func() {
			picker, err := ParseItemPicker("exact", "Aula 2")
			So(err, ShouldBeNil)
			So(picker(items).Title, ShouldEqual, "Aula 2")
			So(picker(items[:1]), ShouldBeNil)
		})

		Convey("index clamps to the last item", func() {
			picker, err := ParseItemPicker("index", "99")
			So(err, ShouldBeNil)
			So(picker(items).Title, ShouldEqual, "Aula 3")
		})

		Convey("unknown kinds fail", func() {
			_, err := ParseItemPicker("median", "")
			So(err, ShouldNotBeNil)
		})
	})
}
