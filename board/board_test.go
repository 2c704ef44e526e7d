package board

import (
	"testing"

	"stonesgems/cell"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given a well-formed init string", t, func() {
		s := "3,2,100,1\n0,1,2\n3,4,5\n"

		Convey("Parse succeeds and fields match the header", func() {
			b, err := Parse(s)
			So(err, ShouldBeNil)
			So(b.Cols, ShouldEqual, 3)
			So(b.Rows, ShouldEqual, 2)
			So(b.MaxSteps, ShouldEqual, 100)
			So(b.GemsRequired, ShouldEqual, 1)
		})

		Convey("cells land at their row-major (col, row) position", func() {
			b, err := Parse(s)
			So(err, ShouldBeNil)
			So(b.Get(0, 0), ShouldEqual, cell.Agent)
			So(b.Get(1, 0), ShouldEqual, cell.Empty)
			So(b.Get(2, 1), ShouldEqual, cell.Diamond)
		})

		Convey("String round-trips back to an equivalent board", func() {
			b, err := Parse(s)
			So(err, ShouldBeNil)
			b2, err := Parse(b.String())
			So(err, ShouldBeNil)
			So(b2.Cols, ShouldEqual, b.Cols)
			for r := 0; r < b.Rows; r++ {
				for c := 0; c < b.Cols; c++ {
					So(b2.Get(c, r), ShouldEqual, b.Get(c, r))
				}
			}
		})
	})

	Convey("Given a malformed init string", t, func() {
		Convey("a short header is a ConfigError", func() {
			_, err := Parse("3,2\n0,1,2\n")
			So(err, ShouldNotBeNil)
			var ce *ConfigError
			So(AsConfigError(err, &ce), ShouldBeTrue)
		})

		Convey("a row with the wrong column count is a ConfigError", func() {
			_, err := Parse("3,1,10,0\n0,1\n")
			So(err, ShouldNotBeNil)
		})

		Convey("pipe-delimited input is accepted when no comma is present", func() {
			b, err := Parse("2|1|10|0\n0|1\n")
			So(err, ShouldBeNil)
			So(b.Cols, ShouldEqual, 2)
		})
	})
}

func TestMove(t *testing.T) {
	Convey("Given a board with one occupant", t, func() {
		b := New(2, 1, 10, 0)
		b.Set(0, 0, cell.Stone)
		id := b.ID(0, 0)

		Convey("Move relocates the occupant and empties the source", func() {
			b.Move(0, 0, 1, 0)
			So(b.Get(0, 0), ShouldEqual, cell.Empty)
			So(b.Get(1, 0), ShouldEqual, cell.Stone)
			So(b.ID(1, 0), ShouldEqual, id)
		})
	})
}

func TestPackUnpack(t *testing.T) {
	Convey("Given a board with varied occupants", t, func() {
		b := New(2, 2, 10, 0)
		b.Set(0, 0, cell.Agent)
		b.Set(1, 0, cell.Stone)
		b.Set(0, 1, cell.Diamond)
		b.Set(1, 1, cell.WallSteel)

		Convey("Pack then Unpack into a fresh board preserves kinds", func() {
			packed := b.Pack()
			b2 := New(2, 2, 10, 0)
			b2.Unpack(packed)
			So(b2.Get(0, 0), ShouldEqual, cell.Agent)
			So(b2.Get(1, 0), ShouldEqual, cell.Stone)
			So(b2.Get(0, 1), ShouldEqual, cell.Diamond)
			So(b2.Get(1, 1), ShouldEqual, cell.WallSteel)
		})
	})
}

func AsConfigError(err error, target **ConfigError) bool {
	if ce, ok := err.(*ConfigError); ok {
		*target = ce
		return true
	}
	return false
}
