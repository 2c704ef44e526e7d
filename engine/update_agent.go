package engine

import "stonesgems/cell"

// updateAgent resolves the agent's move for this tick. It is invoked once,
// before the scan loop, from the agent's current (known) position, rather
// than being dispatched by kind like every other cell.
func (s *State) updateAgent(a cell.Action) {
	if a == cell.ActionNone {
		return
	}
	dCol, dRow := cell.CoordFromAction(a)
	nc, nr := s.agentCol+dCol, s.agentRow+dRow
	if !s.b.InBounds(nc, nr) {
		return
	}

	target := s.b.Get(nc, nr)

	switch {
	case target == cell.Empty || target == cell.Dirt:
		s.relocateAgent(nc, nr)

	case target == cell.Diamond || target == cell.DiamondFalling:
		s.collectDiamond()
		s.relocateAgent(nc, nr)

	case cell.Has(target, cell.PropRounded) && dRow == 0:
		if falling, ok := cell.ElementToFalling[target]; ok {
			if s.push(nc, nr, dCol, target, falling) {
				s.relocateAgent(nc, nr)
			}
		}

	case cell.IsKey(target):
		s.collectKey(target)
		s.relocateAgent(nc, nr)

	case cell.IsOpenGate(target):
		s.walkThroughGate(nc, nr, dCol, dRow)

	case target == cell.ExitOpen:
		s.walkThroughExit(nc, nr)
	}
}

func (s *State) collectDiamond() {
	s.gemsCollected++
	s.currentReward += cell.GemPoints[cell.Diamond]
	s.rewardSignal |= uint8(cell.RewardCollectDiamond)
}

func (s *State) collectKey(k cell.Hidden) {
	s.rewardSignal |= uint8(cell.RewardCollectKey)
	s.openGate(cell.KeyToGate[k])
}

// walkThroughGate teleports the agent past the open gate to the cell just
// beyond it, collecting whatever is waiting there, but only if that far
// cell is Traversable — otherwise the gate blocks like a wall.
func (s *State) walkThroughGate(gateCol, gateRow, dCol, dRow int) {
	farCol, farRow := gateCol+dCol, gateRow+dRow
	if !s.b.InBounds(farCol, farRow) {
		return
	}

	far := s.b.Get(farCol, farRow)
	if !cell.Has(far, cell.PropTraversable) {
		return
	}

	s.rewardSignal |= uint8(cell.RewardWalkThroughGate)

	switch {
	case far == cell.Diamond || far == cell.DiamondFalling:
		s.collectDiamond()
	case cell.IsKey(far):
		s.collectKey(far)
	}

	s.relocateAgent(farCol, farRow)
}

// walkThroughExit ends the episode successfully.
func (s *State) walkThroughExit(exitCol, exitRow int) {
	if s.b.MaxSteps > 0 {
		s.currentReward += s.stepsRemaining
	} else {
		s.currentReward += cell.GemPoints[cell.AgentInExit]
	}
	s.rewardSignal |= uint8(cell.RewardWalkThroughExit)

	id := s.b.ID(s.agentCol, s.agentRow)
	s.b.Set(s.agentCol, s.agentRow, cell.Empty)
	s.b.SetWithID(exitCol, exitRow, cell.AgentInExit, id)
	s.agentCol, s.agentRow = exitCol, exitRow
	s.exited = true
}

// relocateAgent moves the agent (by simple step or by gate teleport) to
// (col, row), which becomes the new Agent cell.
func (s *State) relocateAgent(col, row int) {
	s.b.Move(s.agentCol, s.agentRow, col, row)
	s.agentCol, s.agentRow = col, row
}
