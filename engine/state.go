// Package engine implements the rules engine: a single deterministic tick
// driver over a board.Board, exposing a reinforcement-learning-style
// surface (Reset/ApplyAction/GetObservation/IsTerminal/IsSolution/Hash).
package engine

import (
	"crypto/sha1"
	"math/big"

	"stonesgems/board"
	"stonesgems/cell"
	"stonesgems/rng"
)

// State is one live episode: a board plus all of the scan-to-scan
// bookkeeping the rules engine needs (blob growth, magic wall budget,
// reward signal, termination).
type State struct {
	params  Params
	initial *board.Board // pristine layout, restored by Reset
	b       *board.Board
	r       *rng.Source

	agentCol, agentRow int
	agentAlive         bool
	exited             bool

	gemsCollected  int
	stepsRemaining int // -1 when unbounded (MaxSteps <= 0)

	magicWallStepsRemaining int
	magicActive             bool
	magicExpired            bool

	blobSize      int
	blobEnclosed  bool
	blobSwapSet   bool
	blobSwapKind  cell.Hidden

	currentReward int
	rewardSignal  uint8
}

// New parses initStr and returns a fresh engine State ready for ApplyAction.
func New(initStr string, p Params) (*State, error) {
	b, err := board.Parse(initStr)
	if err != nil {
		return nil, err
	}
	b.TrackIDs = p.ObsShowIDs
	s := &State{params: p, initial: b.Clone()}
	s.reset()
	return s, nil
}

// Reset rebuilds the episode from the same pristine board layout this State
// was constructed with, re-deriving scan bookkeeping and RNG stream from
// Params, matching the reference engine's reset contract.
func (s *State) Reset() {
	s.reset()
}

func (s *State) reset() {
	s.b = s.initial.Clone()
	s.r = rng.New(s.params.Seed)
	s.gemsCollected = 0
	if s.b.MaxSteps > 0 {
		s.stepsRemaining = s.b.MaxSteps
	} else {
		s.stepsRemaining = -1
	}
	s.magicWallStepsRemaining = s.params.MagicWallSteps
	s.magicActive = false
	s.magicExpired = false
	s.blobSize = 0
	s.blobEnclosed = true
	s.blobSwapSet = false
	s.currentReward = 0
	s.rewardSignal = 0
	s.exited = false
	s.agentAlive = true
	s.locateAgent()
}

func (s *State) locateAgent() {
	for r := 0; r < s.b.Rows; r++ {
		for c := 0; c < s.b.Cols; c++ {
			k := s.b.Get(c, r)
			if k == cell.Agent || k == cell.AgentInExit {
				s.agentCol, s.agentRow = c, r
				return
			}
		}
	}
}

// Clone returns a deep, independent copy of s, including its RNG stream.
func (s *State) Clone() *State {
	cp := *s
	cp.b = s.b.Clone()
	cp.r = s.r.Clone()
	return &cp
}

// Board exposes the underlying grid store, mainly for callers building a
// view or a custom traversal; the rules engine itself only mutates it
// through ApplyAction.
func (s *State) Board() *board.Board { return s.b }

// ApplyAction advances the episode by one tick under the given action.
func (s *State) ApplyAction(a cell.Action) error {
	if a < 0 || a >= cell.NumActions {
		return &ErrActionRange{Action: int(a)}
	}
	if s.IsTerminal() {
		return nil
	}

	s.startScan()

	s.updateAgent(a)
	s.b.MarkUpdated(s.agentCol, s.agentRow)

	for r := 0; r < s.b.Rows; r++ {
		for c := 0; c < s.b.Cols; c++ {
			if s.b.HasUpdated(c, r) {
				continue
			}
			s.dispatch(c, r)
		}
	}

	s.endScan()
	return nil
}

func (s *State) dispatch(c, r int) {
	k := s.b.Get(c, r)
	switch {
	case k == cell.Stone:
		s.updateStone(c, r)
	case k == cell.StoneFalling:
		s.updateStoneFalling(c, r)
	case k == cell.Diamond:
		s.updateDiamond(c, r)
	case k == cell.DiamondFalling:
		s.updateDiamondFalling(c, r)
	case k == cell.Nut:
		s.updateNut(c, r)
	case k == cell.NutFalling:
		s.updateNutFalling(c, r)
	case k == cell.Bomb:
		s.updateBomb(c, r)
	case k == cell.BombFalling:
		s.updateBombFalling(c, r)
	case cell.IsFirefly(k):
		s.updateFirefly(c, r)
	case cell.IsButterfly(k):
		s.updateButterfly(c, r)
	case cell.IsOrange(k):
		s.updateOrange(c, r)
	case cell.IsMagicWall(k):
		s.updateMagicWall(c, r)
	case k == cell.Blob:
		s.updateBlob(c, r)
	case cell.IsExplosion(k):
		s.updateExplosions(c, r)
	case k == cell.ExitClosed || k == cell.ExitOpen:
		s.updateExit(c, r)
	}
	s.b.MarkUpdated(c, r)
}

func (s *State) startScan() {
	if s.stepsRemaining > 0 {
		s.stepsRemaining--
	}
	s.currentReward = 0
	s.blobSize = 0
	s.blobEnclosed = true
	s.rewardSignal = 0
	s.b.ResetScan()
}

func (s *State) endScan() {
	if s.blobEnclosed {
		s.blobSwapSet = true
		s.blobSwapKind = cell.Diamond
	} else if s.blobSize > s.maxBlobSize() {
		s.blobSwapSet = true
		s.blobSwapKind = cell.Stone
	} else {
		s.blobSwapSet = false
	}

	if s.magicActive {
		s.magicWallStepsRemaining--
		if s.magicWallStepsRemaining <= 0 {
			s.magicExpired = true
		}
	}
	s.magicActive = s.magicActive && s.magicWallStepsRemaining > 0
}

func (s *State) maxBlobSize() int {
	return int(s.params.BlobMaxPercentage * float64(s.b.Cols*s.b.Rows))
}

// LegalActions returns the actions available from s: all 5 action ids, or
// none once the episode has ended.
func (s *State) LegalActions() []cell.Action {
	if s.IsTerminal() {
		return nil
	}
	return []cell.Action{cell.ActionNone, cell.ActionUp, cell.ActionRight, cell.ActionDown, cell.ActionLeft}
}

// IsTerminal reports whether the episode has ended, by agent death, exit, or
// step-budget exhaustion.
func (s *State) IsTerminal() bool {
	if !s.agentAlive || s.exited {
		return true
	}
	return s.stepsRemaining == 0
}

// IsSolution reports whether the episode ended by the agent successfully
// exiting, as opposed to dying or timing out.
func (s *State) IsSolution() bool {
	return s.exited
}

// GetRewardSignal returns the bitflags set during the most recent
// ApplyAction call.
func (s *State) GetRewardSignal() uint8 {
	return s.rewardSignal
}

// CurrentReward returns the scalar point value accrued during the most
// recent ApplyAction call.
func (s *State) CurrentReward() int {
	return s.currentReward
}

// GemsCollected returns the running count of diamonds collected.
func (s *State) GemsCollected() int {
	return s.gemsCollected
}

// StepsRemaining returns the remaining tick budget, or -1 if unbounded.
func (s *State) StepsRemaining() int {
	return s.stepsRemaining
}

// ObservationShape returns the (channels, rows, cols) shape GetObservation
// produces.
func (s *State) ObservationShape() (channels, rows, cols int) {
	return cell.NumVisible, s.b.Rows, s.b.Cols
}

// GetObservation returns the one-hot-by-channel projection of the board:
// obs[k][r][c] is the cell's stable id (or 1, if id-tracking is disabled)
// when the cell's visible kind is k, else 0.
func (s *State) GetObservation() [][][]int {
	channels, rows, cols := s.ObservationShape()
	obs := make([][][]int, channels)
	for k := 0; k < channels; k++ {
		obs[k] = make([][]int, rows)
		for r := 0; r < rows; r++ {
			obs[k][r] = make([]int, cols)
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			vk := cell.ToVisible[s.b.Get(c, r)]
			if vk == cell.NullVisible {
				continue
			}
			val := 1
			if s.params.ObsShowIDs {
				val = s.b.ID(c, r)
			}
			obs[int(vk)][r][c] = val
		}
	}
	return obs
}

// observationBytes flattens GetObservation into a stable byte sequence for
// hashing: one byte per (channel, row, col) cell, truncated to uint8 the way
// the reference engine's uint8 view does (ids beyond 255 alias, which is
// acceptable since the hash is a dedup key, not an id oracle).
func (s *State) observationBytes() []byte {
	obs := s.GetObservation()
	channels, rows, cols := s.ObservationShape()
	out := make([]byte, 0, channels*rows*cols)
	for k := 0; k < channels; k++ {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				out = append(out, byte(obs[k][r][c]))
			}
		}
	}
	return out
}

// Hash returns a content hash of the current observation, suitable for
// search-tree deduplication.
func (s *State) Hash() *big.Int {
	sum := sha1.Sum(s.observationBytes())
	return new(big.Int).SetBytes(sum[:])
}

// Equal reports observation equality between s and o: same visible grid
// contents, ignoring step-count bookkeeping.
func (s *State) Equal(o *State) bool {
	a, b := s.observationBytes(), o.observationBytes()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualWithSteps reports observation equality AND equal remaining step
// budget, the stricter variant used when step count is part of the search
// key.
func (s *State) EqualWithSteps(o *State) bool {
	return s.Equal(o) && s.stepsRemaining == o.stepsRemaining
}
