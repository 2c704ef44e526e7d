package engine

import "stonesgems/cell"

// fallBehavior captures the differences between stone and diamond landing
// logic; nut and bomb are simple enough to be handled directly.
type fallBehavior struct {
	stationary    cell.Hidden
	falling       cell.Hidden
	explodesBelowBomb bool // whether landing on a bomb/bomb_falling detonates it
}

var stoneBehavior = fallBehavior{stationary: cell.Stone, falling: cell.StoneFalling, explodesBelowBomb: true}
var diamondBehavior = fallBehavior{stationary: cell.Diamond, falling: cell.DiamondFalling, explodesBelowBomb: false}

func (s *State) updateStone(c, r int)          { s.updateRoundedStationary(c, r, stoneBehavior) }
func (s *State) updateStoneFalling(c, r int)   { s.updateRoundedFalling(c, r, stoneBehavior) }
func (s *State) updateDiamond(c, r int)        { s.updateRoundedStationary(c, r, diamondBehavior) }
func (s *State) updateDiamondFalling(c, r int) { s.updateRoundedFalling(c, r, diamondBehavior) }

// updateRoundedStationary implements a resting stone/diamond: it only falls
// if unsupported or rolls off a curved surface. A stationary rounded object
// never explodes, transmutes through a magic wall, or cracks a nut merely
// for resting above one — those only happen at the moment of landing, in
// updateRoundedFalling.
func (s *State) updateRoundedStationary(c, r int, fb fallBehavior) {
	if s.isEmpty(c, r+1) {
		id := s.b.ID(c, r)
		s.b.Move(c, r, c, r+1)
		s.b.SetWithID(c, r+1, fb.falling, id)
		s.b.MarkUpdated(c, r+1)
		return
	}
	if s.canRollLeft(c, r) {
		s.rollLeft(c, r, fb.falling)
		s.b.MarkUpdated(c-1, r)
		return
	}
	if s.canRollRight(c, r) {
		s.rollRight(c, r, fb.falling)
		s.b.MarkUpdated(c+1, r)
		return
	}
	s.b.SetWithID(c, r, fb.stationary, s.b.ID(c, r))
}

// updateRoundedFalling implements the shared stone/diamond landing rules:
// continue falling if unsupported, trigger whatever explosive thing is
// directly below, pass through an eligible magic wall, crack a nut into a
// diamond (falling stones only; a falling diamond lands on a nut like any
// other blocker), roll off a curved surface, or settle as stationary.
func (s *State) updateRoundedFalling(c, r int, fb fallBehavior) {
	if s.isEmpty(c, r+1) {
		id := s.b.ID(c, r)
		s.b.Move(c, r, c, r+1)
		s.b.SetWithID(c, r+1, fb.falling, id)
		s.b.MarkUpdated(c, r+1)
		return
	}

	if s.b.InBounds(c, r+1) {
		below := s.b.Get(c, r+1)

		if cell.Has(below, cell.PropCanExplode) {
			if below == cell.Bomb || below == cell.BombFalling {
				if fb.explodesBelowBomb {
					s.explode(c, r+1, cell.ExplosionEmpty)
					s.b.Set(c, r, cell.Empty)
					s.b.MarkUpdated(c, r)
					return
				}
				// diamond does not detonate a bomb it lands on; fall through
				// to the roll/settle checks below.
			} else {
				product := cell.ElementToExplosion[below]
				s.explode(c, r+1, product)
				s.b.Set(c, r, cell.Empty)
				s.b.MarkUpdated(c, r)
				return
			}
		}

		if cell.IsMagicWall(below) {
			if s.moveThroughMagic(c, r, c, r+1) {
				s.b.MarkUpdated(c, r+2)
				return
			}
		}

		if below == cell.Nut && fb.stationary == cell.Stone {
			id := s.b.ID(c, r+1)
			s.b.SetWithID(c, r+1, cell.Diamond, id)
			s.b.MarkUpdated(c, r+1)
			s.currentReward += cell.GemPoints[cell.Diamond]
			s.rewardSignal |= uint8(cell.RewardNutToDiamond)
			s.b.SetWithID(c, r, fb.stationary, s.b.ID(c, r))
			return
		}
	}

	if s.canRollLeft(c, r) {
		s.rollLeft(c, r, fb.falling)
		s.b.MarkUpdated(c-1, r)
		return
	}
	if s.canRollRight(c, r) {
		s.rollRight(c, r, fb.falling)
		s.b.MarkUpdated(c+1, r)
		return
	}

	s.b.SetWithID(c, r, fb.stationary, s.b.ID(c, r))
}

func (s *State) updateNut(c, r int)        { s.updateNutOrFalling(c, r) }
func (s *State) updateNutFalling(c, r int) { s.updateNutOrFalling(c, r) }

// updateNutOrFalling: a nut only falls and rolls; it never explodes,
// transmutes through a magic wall, or converts other elements.
func (s *State) updateNutOrFalling(c, r int) {
	if s.isEmpty(c, r+1) {
		id := s.b.ID(c, r)
		s.b.Move(c, r, c, r+1)
		s.b.SetWithID(c, r+1, cell.NutFalling, id)
		s.b.MarkUpdated(c, r+1)
		return
	}
	if s.canRollLeft(c, r) {
		s.rollLeft(c, r, cell.NutFalling)
		s.b.MarkUpdated(c-1, r)
		return
	}
	if s.canRollRight(c, r) {
		s.rollRight(c, r, cell.NutFalling)
		s.b.MarkUpdated(c+1, r)
		return
	}
	s.b.SetWithID(c, r, cell.Nut, s.b.ID(c, r))
}

// updateBomb: a resting bomb behaves like a nut while it has support —
// falls if unsupported, rolls off a curved surface, otherwise simply stays
// put. It never explodes merely for sitting still.
func (s *State) updateBomb(c, r int) {
	if s.isEmpty(c, r+1) {
		id := s.b.ID(c, r)
		s.b.Move(c, r, c, r+1)
		s.b.SetWithID(c, r+1, cell.BombFalling, id)
		s.b.MarkUpdated(c, r+1)
		return
	}
	if s.canRollLeft(c, r) {
		s.rollLeft(c, r, cell.BombFalling)
		s.b.MarkUpdated(c-1, r)
		return
	}
	if s.canRollRight(c, r) {
		s.rollRight(c, r, cell.BombFalling)
		s.b.MarkUpdated(c+1, r)
		return
	}
	s.b.SetWithID(c, r, cell.Bomb, s.b.ID(c, r))
}

// updateBombFalling: continues falling or rolling same as updateBomb, but
// detonates in place the instant it can do neither — the moment of impact.
func (s *State) updateBombFalling(c, r int) {
	if s.isEmpty(c, r+1) {
		id := s.b.ID(c, r)
		s.b.Move(c, r, c, r+1)
		s.b.SetWithID(c, r+1, cell.BombFalling, id)
		s.b.MarkUpdated(c, r+1)
		return
	}
	if s.canRollLeft(c, r) {
		s.rollLeft(c, r, cell.BombFalling)
		s.b.MarkUpdated(c-1, r)
		return
	}
	if s.canRollRight(c, r) {
		s.rollRight(c, r, cell.BombFalling)
		s.b.MarkUpdated(c+1, r)
		return
	}
	s.explode(c, r, cell.ExplosionEmpty)
}
