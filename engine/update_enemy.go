package engine

import (
	"stonesgems/cell"
	"stonesgems/rng"
)

// updateFirefly: explodes if adjacent to the agent or a blob; otherwise
// prefers turning left and moving, then moving straight ahead, then turning
// right in place with no movement.
func (s *State) updateFirefly(c, r int) {
	s.updateChaser(c, r, cell.FireflyToDirection, cell.DirectionToFirefly, cell.RotateLeft, cell.RotateRight)
}

// updateButterfly mirrors updateFirefly with the turn preference reversed.
func (s *State) updateButterfly(c, r int) {
	s.updateChaser(c, r, cell.ButterflyToDirection, cell.DirectionToButterfly, cell.RotateRight, cell.RotateLeft)
}

func (s *State) updateChaser(
	c, r int,
	toDir map[cell.Hidden]cell.Direction,
	toKind map[cell.Direction]cell.Hidden,
	preferred, fallbackRotate map[cell.Direction]cell.Direction,
) {
	k := s.b.Get(c, r)

	if s.b.IsAdjacent(c, r, func(n cell.Hidden) bool {
		return n == cell.Agent || n == cell.Blob
	}) {
		s.explode(c, r, cell.ElementToExplosion[k])
		return
	}

	facing := toDir[k]

	turned := preferred[facing]
	if off, ok := cell.Offsets[turned]; ok {
		nc, nr := c+off.DCol, r+off.DRow
		if s.isEmpty(nc, nr) {
			id := s.b.ID(c, r)
			s.b.Move(c, r, nc, nr)
			s.b.SetWithID(nc, nr, toKind[turned], id)
			s.b.MarkUpdated(nc, nr)
			return
		}
	}

	if off, ok := cell.Offsets[facing]; ok {
		nc, nr := c+off.DCol, r+off.DRow
		if s.isEmpty(nc, nr) {
			id := s.b.ID(c, r)
			s.b.Move(c, r, nc, nr)
			s.b.SetWithID(nc, nr, toKind[facing], id)
			s.b.MarkUpdated(nc, nr)
			return
		}
	}

	rotated := fallbackRotate[facing]
	s.b.SetWithID(c, r, toKind[rotated], s.b.ID(c, r))
}

// updateOrange: moves forward if clear, explodes if adjacent to the agent,
// otherwise picks a uniformly random open direction to face (no movement
// this tick).
func (s *State) updateOrange(c, r int) {
	k := s.b.Get(c, r)
	facing := cell.OrangeToDirection[k]

	if off, ok := cell.Offsets[facing]; ok {
		nc, nr := c+off.DCol, r+off.DRow
		if s.isEmpty(nc, nr) {
			id := s.b.ID(c, r)
			s.b.Move(c, r, nc, nr)
			s.b.SetWithID(nc, nr, cell.DirectionToOrange[facing], id)
			s.b.MarkUpdated(nc, nr)
			return
		}
	}

	if s.b.IsAdjacent(c, r, func(n cell.Hidden) bool { return n == cell.Agent }) {
		s.explode(c, r, cell.ElementToExplosion[k])
		return
	}

	var open []cell.Direction
	for _, d := range []cell.Direction{cell.DirUp, cell.DirDown, cell.DirLeft, cell.DirRight} {
		off := cell.Offsets[d]
		nc, nr := c+off.DCol, r+off.DRow
		if s.isEmpty(nc, nr) {
			open = append(open, d)
		}
	}
	if len(open) == 0 {
		return
	}
	chosen := rng.Choice(s.r, open)
	s.b.SetWithID(c, r, cell.DirectionToOrange[chosen], s.b.ID(c, r))
}
