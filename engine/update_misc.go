package engine

import "stonesgems/cell"

// updateMagicWall projects this tick's magic-wall activity flags onto the
// wall's own displayed kind.
func (s *State) updateMagicWall(c, r int) {
	id := s.b.ID(c, r)
	switch {
	case s.magicExpired:
		s.b.SetWithID(c, r, cell.WallMagicExpired, id)
	case s.magicActive:
		s.b.SetWithID(c, r, cell.WallMagicOn, id)
	default:
		s.b.SetWithID(c, r, cell.WallMagicDormant, id)
	}
}

// updateBlob: collapses to the swap kind decided at the previous tick's end
// of scan, or else, with probability BlobChance, picks one of the four
// directions at random and grows into that neighbor if it is empty/dirt,
// tracking size and enclosure for this tick's own end-of-scan decision.
func (s *State) updateBlob(c, r int) {
	if s.blobSwapSet {
		s.b.Set(c, r, s.blobSwapKind)
		return
	}

	s.blobSize++

	dirs := []cell.Direction{cell.DirUp, cell.DirDown, cell.DirLeft, cell.DirRight}
	for _, d := range dirs {
		off := cell.Offsets[d]
		nc, nr := c+off.DCol, r+off.DRow
		if !s.b.InBounds(nc, nr) {
			continue
		}
		nk := s.b.Get(nc, nr)
		if nk == cell.Empty || nk == cell.Dirt {
			s.blobEnclosed = false
			break
		}
	}

	if s.r.Float64() >= s.params.BlobChance {
		return
	}

	d := dirs[s.r.Intn(len(dirs))]
	off := cell.Offsets[d]
	nc, nr := c+off.DCol, r+off.DRow
	if !s.b.InBounds(nc, nr) {
		return
	}
	nk := s.b.Get(nc, nr)
	if nk != cell.Empty && nk != cell.Dirt {
		return
	}
	s.b.Set(nc, nr, cell.Blob)
	s.b.MarkUpdated(nc, nr)
}

// updateExplosions resolves an explosion cell into its final element.
func (s *State) updateExplosions(c, r int) {
	k := s.b.Get(c, r)
	product := cell.ExplosionToElement[k]
	if k == cell.ExplosionDiamond {
		s.rewardSignal |= uint8(cell.RewardButterflyToDiamond)
	}
	s.b.SetWithID(c, r, product, s.b.ID(c, r))
}

// updateExit opens the exit once enough gems have been collected.
func (s *State) updateExit(c, r int) {
	if s.b.Get(c, r) == cell.ExitClosed && s.gemsCollected >= s.b.GemsRequired {
		s.b.SetWithID(c, r, cell.ExitOpen, s.b.ID(c, r))
	}
}
