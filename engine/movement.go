package engine

import "stonesgems/cell"

func (s *State) isType(c, r int, k cell.Hidden) bool {
	return s.b.InBounds(c, r) && s.b.Get(c, r) == k
}

func (s *State) isEmpty(c, r int) bool {
	return s.isType(c, r, cell.Empty)
}

func (s *State) hasProperty(c, r int, want cell.Properties) bool {
	if !s.b.InBounds(c, r) {
		return false
	}
	return cell.Has(s.b.Get(c, r), want)
}

// canRollLeft reports whether a rounded item at (c, r) can roll left: the
// cell below must be rounded (so the item is resting on a curved surface),
// the cell to the left must be empty, and the cell diagonally down-left must
// be empty (so there is room to fall into once rolled).
func (s *State) canRollLeft(c, r int) bool {
	return s.hasProperty(c, r+1, cell.PropRounded) &&
		s.isEmpty(c-1, r) &&
		s.isEmpty(c-1, r+1)
}

// canRollRight is the mirror of canRollLeft.
func (s *State) canRollRight(c, r int) bool {
	return s.hasProperty(c, r+1, cell.PropRounded) &&
		s.isEmpty(c+1, r) &&
		s.isEmpty(c+1, r+1)
}

// rollLeft moves the occupant at (c, r) to (c-1, r), becoming its falling
// variant.
func (s *State) rollLeft(c, r int, falling cell.Hidden) {
	id := s.b.ID(c, r)
	s.b.Move(c, r, c-1, r)
	s.b.SetWithID(c-1, r, falling, id)
}

// rollRight is the mirror of rollLeft.
func (s *State) rollRight(c, r int, falling cell.Hidden) {
	id := s.b.ID(c, r)
	s.b.Move(c, r, c+1, r)
	s.b.SetWithID(c+1, r, falling, id)
}

// push moves a horizontally-adjacent item one cell further in the agent's
// push direction. The pushed item lands falling if the cell below its
// destination is empty, else stationary.
func (s *State) push(c, r, dCol int, stationary, falling cell.Hidden) bool {
	destCol := c + dCol
	if !s.isEmpty(destCol, r) {
		return false
	}
	id := s.b.ID(c, r)
	s.b.Move(c, r, destCol, r)
	if s.isEmpty(destCol, r+1) {
		s.b.SetWithID(destCol, r, falling, id)
	} else {
		s.b.SetWithID(destCol, r, stationary, id)
	}
	s.b.MarkUpdated(destCol, r)
	return true
}

// moveThroughMagic reports whether a falling item above an active-eligible
// magic wall at (wallCol, wallRow) transmutes and falls through this tick.
func (s *State) moveThroughMagic(itemCol, itemRow, wallCol, wallRow int) bool {
	if s.magicWallStepsRemaining <= 0 || s.magicExpired {
		return false
	}
	if !s.isEmpty(wallCol, wallRow+1) {
		return false
	}
	from := s.b.Get(itemCol, itemRow)
	to, ok := cell.MagicWallConversion[from]
	if !ok {
		return false
	}
	s.b.Move(itemCol, itemRow, wallCol, wallRow+1)
	s.b.Set(wallCol, wallRow+1, to)
	s.magicActive = true
	return true
}

type coord struct{ c, r int }

// explode resolves an explosion centered at (c, r): the center becomes
// product, and each of its 8 neighbors either chain-explodes with its own
// product (if it can explode) or is consumed and overwritten with product
// (if merely consumable). The visited set is scoped to this single blast —
// it only prevents two recursive chain paths from double-converting a
// shared neighbor, and is independent of the scan's has-updated bookkeeping,
// so a blast can still destroy a cell the main scan already gave its turn to
// this tick (e.g. the agent, immediately after it moved).
func (s *State) explode(c, r int, product cell.Hidden) {
	s.explodeVisited(c, r, product, map[coord]bool{})
}

func (s *State) explodeVisited(c, r int, product cell.Hidden, visited map[coord]bool) {
	if !s.b.InBounds(c, r) || visited[coord{c, r}] {
		return
	}
	visited[coord{c, r}] = true

	if s.b.Get(c, r) == cell.Agent || s.b.Get(c, r) == cell.AgentInExit {
		s.agentAlive = false
		s.rewardSignal |= uint8(cell.RewardAgentDies)
	}
	s.b.Set(c, r, product)

	for _, d := range []cell.Direction{
		cell.DirUp, cell.DirDown, cell.DirLeft, cell.DirRight,
		cell.DirUpLeft, cell.DirUpRight, cell.DirDownLeft, cell.DirDownRight,
	} {
		off := cell.Offsets[d]
		nc, nr := c+off.DCol, r+off.DRow
		if !s.b.InBounds(nc, nr) || visited[coord{nc, nr}] {
			continue
		}
		nk := s.b.Get(nc, nr)
		if cell.Has(nk, cell.PropCanExplode) {
			ownProduct, ok := cell.ElementToExplosion[nk]
			if !ok {
				ownProduct = product
			}
			s.explodeVisited(nc, nr, ownProduct, visited)
		} else if cell.Has(nk, cell.PropConsumable) {
			if nk == cell.Agent || nk == cell.AgentInExit {
				s.agentAlive = false
				s.rewardSignal |= uint8(cell.RewardAgentDies)
			}
			s.b.Set(nc, nr, product)
			visited[coord{nc, nr}] = true
		}
	}
}

// openGate opens every closed gate of the same color as closedKind.
func (s *State) openGate(closedKind cell.Hidden) {
	openKind, ok := cell.GateOpenMap[closedKind]
	if !ok {
		return
	}
	for r := 0; r < s.b.Rows; r++ {
		for c := 0; c < s.b.Cols; c++ {
			if s.b.Get(c, r) == closedKind {
				id := s.b.ID(c, r)
				s.b.SetWithID(c, r, openKind, id)
			}
		}
	}
}
