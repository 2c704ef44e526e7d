package boardview

import (
	"testing"

	"stonesgems/engine"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConvert(t *testing.T) {
	Convey("Given an engine state over a small grid", t, func() {
		s, err := engine.New("3,1,10,0\n0,1,5\n", engine.DefaultParams())
		So(err, ShouldBeNil)

		Convey("Convert yields one Cell per board position with a non-empty fill", func() {
			cells := Convert(s)
			So(len(cells), ShouldEqual, 1)
			So(len(cells[0]), ShouldEqual, 3)
			for _, row := range cells {
				for _, c := range row {
					So(c.Fill, ShouldNotBeEmpty)
				}
			}
		})
	})
}
