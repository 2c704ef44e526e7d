package search

import (
	"testing"

	"stonesgems/cell"
	"stonesgems/engine"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSuccessorsOrderAndIndependence(t *testing.T) {
	Convey("Given a state with room to move every direction", t, func() {
		s, err := engine.New("3,3,10,0\n1,1,1\n1,0,1\n1,1,1\n", engine.DefaultParams())
		So(err, ShouldBeNil)

		Convey("Successors returns one outcome per legal action, in action order", func() {
			outcomes := Successors(s)
			So(len(outcomes), ShouldEqual, len(s.LegalActions()))
			for i, o := range outcomes {
				So(o.Action, ShouldEqual, cell.Action(i))
				So(o.State, ShouldNotBeNil)
			}
		})

		Convey("the root state is untouched by exploring its successors", func() {
			before := s.Hash()
			_ = Successors(s)
			So(s.Hash().Cmp(before), ShouldEqual, 0)
		})
	})
}

func TestBestFirstSearchFindsExit(t *testing.T) {
	Convey("Given a trivial one-row level with a zero-gem closed exit three steps away", t, func() {
		init := "4,1,10,0\n0,1,1,7\n"
		s, err := engine.New(init, engine.DefaultParams())
		So(err, ShouldBeNil)

		Convey("BestFirstSearch finds a solved path", func() {
			path := BestFirstSearch(s, 200)
			So(path.Solved, ShouldBeTrue)
			So(len(path.Outcomes), ShouldBeGreaterThan, 0)
		})
	})
}
