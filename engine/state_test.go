package engine

import (
	"testing"

	"stonesgems/cell"

	. "github.com/smartystreets/goconvey/convey"
)

func mustNew(t *testing.T, init string, p Params) *State {
	t.Helper()
	s, err := New(init, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestWalkToExit(t *testing.T) {
	Convey("Given an agent, clear path, and a closed exit needing zero gems", t, func() {
		init := "4,1,10,0\n0,1,1,7\n"
		s := mustNew(t, init, DefaultParams())

		Convey("the exit opens on the first tick and the agent solves by reaching it", func() {
			So(s.ApplyAction(cell.ActionRight), ShouldBeNil)
			So(s.Board().Get(3, 0), ShouldEqual, cell.ExitOpen)

			So(s.ApplyAction(cell.ActionRight), ShouldBeNil)
			So(s.ApplyAction(cell.ActionRight), ShouldBeNil)

			So(s.IsTerminal(), ShouldBeTrue)
			So(s.IsSolution(), ShouldBeTrue)
			So(s.GetRewardSignal()&uint8(cell.RewardWalkThroughExit), ShouldNotEqual, 0)
		})
	})
}

func TestCollectDiamondThenExit(t *testing.T) {
	Convey("Given a diamond blocking the path to a one-gem exit", t, func() {
		init := "3,1,10,1\n0,5,7\n"
		s := mustNew(t, init, DefaultParams())

		Convey("collecting it opens the exit, and walking in solves", func() {
			So(s.ApplyAction(cell.ActionRight), ShouldBeNil)
			So(s.GemsCollected(), ShouldEqual, 1)
			So(s.GetRewardSignal()&uint8(cell.RewardCollectDiamond), ShouldNotEqual, 0)
			So(s.Board().Get(2, 0), ShouldEqual, cell.ExitOpen)

			So(s.ApplyAction(cell.ActionRight), ShouldBeNil)
			So(s.IsTerminal(), ShouldBeTrue)
			So(s.IsSolution(), ShouldBeTrue)
		})
	})
}

func TestStoneFallsAndLands(t *testing.T) {
	Convey("Given a stone over empty space over solid ground", t, func() {
		init := "2,3,10,0\n3,0\n1,19\n19,19\n"
		s := mustNew(t, init, DefaultParams())

		Convey("it falls one cell per tick and settles stationary", func() {
			So(s.ApplyAction(cell.ActionNone), ShouldBeNil)
			So(s.Board().Get(0, 1), ShouldEqual, cell.StoneFalling)

			So(s.ApplyAction(cell.ActionNone), ShouldBeNil)
			So(s.Board().Get(0, 1), ShouldEqual, cell.Stone)
		})
	})
}

func TestMagicWallTransmutes(t *testing.T) {
	Convey("Given a stone falling through an active-eligible magic wall", t, func() {
		init := "2,5,20,0\n3,0\n1,19\n20,19\n1,19\n19,19\n"
		p := DefaultParams()
		p.MagicWallSteps = 5
		s := mustNew(t, init, p)

		Convey("it lands beyond the wall as a diamond, and the wall shows active mid-transit", func() {
			So(s.ApplyAction(cell.ActionNone), ShouldBeNil) // stone begins falling
			So(s.Board().Get(0, 1), ShouldEqual, cell.StoneFalling)

			So(s.ApplyAction(cell.ActionNone), ShouldBeNil) // passes through the wall
			So(s.Board().Get(0, 3), ShouldEqual, cell.DiamondFalling)
			So(s.Board().Get(0, 2), ShouldEqual, cell.WallMagicOn)

			So(s.ApplyAction(cell.ActionNone), ShouldBeNil) // settles on the floor below
			So(s.Board().Get(0, 3), ShouldEqual, cell.Diamond)
		})
	})
}

func TestKeyOpensGate(t *testing.T) {
	Convey("Given an agent, a red key, and a closed red gate in a row", t, func() {
		init := "4,1,10,0\n0,29,27,1\n"
		s := mustNew(t, init, DefaultParams())

		Convey("collecting the key opens the gate, and walking through teleports past it", func() {
			So(s.ApplyAction(cell.ActionRight), ShouldBeNil)
			So(s.GetRewardSignal()&uint8(cell.RewardCollectKey), ShouldNotEqual, 0)
			So(s.Board().Get(2, 0), ShouldEqual, cell.GateRedOpen)

			So(s.ApplyAction(cell.ActionRight), ShouldBeNil)
			So(s.GetRewardSignal()&uint8(cell.RewardWalkThroughGate), ShouldNotEqual, 0)
			So(s.Board().Get(3, 0), ShouldEqual, cell.Agent)
		})
	})
}

func TestChainExplosionKillsAgent(t *testing.T) {
	Convey("Given a firefly adjacent to both the agent and a bomb", t, func() {
		init := "3,2,10,0\n41,2,2\n10,0,2\n"
		s := mustNew(t, init, DefaultParams())

		Convey("the blast chain kills the agent", func() {
			So(s.ApplyAction(cell.ActionNone), ShouldBeNil)
			So(s.IsTerminal(), ShouldBeTrue)
			So(s.IsSolution(), ShouldBeFalse)
			So(s.GetRewardSignal()&uint8(cell.RewardAgentDies), ShouldNotEqual, 0)
			So(s.Board().Get(1, 1), ShouldNotEqual, cell.Agent)
		})
	})
}

func TestObservationIsOneHotByChannel(t *testing.T) {
	Convey("Given any board state", t, func() {
		init := "3,1,10,0\n0,1,5\n"
		s := mustNew(t, init, DefaultParams())

		Convey("each cell position is nonzero in exactly one channel", func() {
			obs := s.GetObservation()
			channels, rows, cols := s.ObservationShape()
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					nonzero := 0
					for k := 0; k < channels; k++ {
						if obs[k][r][c] != 0 {
							nonzero++
						}
					}
					So(nonzero, ShouldEqual, 1)
				}
			}
		})
	})
}

func TestDeterminism(t *testing.T) {
	Convey("Given two identically-seeded states fed the same actions", t, func() {
		init := "3,1,10,0\n0,1,5\n"
		s1 := mustNew(t, init, DefaultParams())
		s2 := mustNew(t, init, DefaultParams())
		actions := []cell.Action{cell.ActionRight, cell.ActionNone, cell.ActionLeft}

		Convey("they reach identical, equal-hashing states", func() {
			for _, a := range actions {
				So(s1.ApplyAction(a), ShouldBeNil)
				So(s2.ApplyAction(a), ShouldBeNil)
			}
			So(s1.Equal(s2), ShouldBeTrue)
			So(s1.Hash().Cmp(s2.Hash()), ShouldEqual, 0)
		})
	})
}

func TestResetRestoresBoard(t *testing.T) {
	Convey("Given a state that has advanced several ticks", t, func() {
		init := "2,3,10,0\n3,0\n1,19\n19,19\n"
		s := mustNew(t, init, DefaultParams())
		So(s.ApplyAction(cell.ActionNone), ShouldBeNil)
		So(s.Board().Get(0, 1), ShouldEqual, cell.StoneFalling)

		Convey("Reset restores the pristine layout and counters", func() {
			s.Reset()
			So(s.Board().Get(0, 0), ShouldEqual, cell.Stone)
			So(s.Board().Get(0, 1), ShouldEqual, cell.Empty)
			So(s.StepsRemaining(), ShouldEqual, 10)
			So(s.IsTerminal(), ShouldBeFalse)
		})
	})
}

func TestActionOutOfRange(t *testing.T) {
	Convey("Given a State", t, func() {
		init := "1,1,10,0\n0\n"
		s := mustNew(t, init, DefaultParams())

		Convey("an out-of-range action is an ErrActionRange", func() {
			err := s.ApplyAction(cell.Action(99))
			So(err, ShouldNotBeNil)
			_, ok := err.(*ErrActionRange)
			So(ok, ShouldBeTrue)
		})
	})
}
