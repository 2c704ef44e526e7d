package search

import (
	"math/big"
	"sort"

	"stonesgems/engine"
)

// Path is one sequence of actions from the root to a terminal state.
type Path struct {
	Outcomes []Outcome
	Solved   bool
	Score    float64
}

// score ranks a frontier node: solved paths always outrank unsolved ones,
// and among unsolved paths, more gems and a better reward on the node's
// latest tick rank higher.
func score(s *engine.State) float64 {
	base := float64(s.CurrentReward()) + float64(s.GemsCollected())*100
	if s.IsSolution() {
		base += 1_000_000
	}
	return base
}

// BestFirstSearch explores up to maxExpansions frontier nodes of s, fanning
// each node's Successors out concurrently (mirroring the teacher's
// worker-goroutines-feed-one-estimator split), and returns the best path
// found to a terminal state. Frontier nodes are deduplicated by observation
// hash so the same board content reached via different action sequences is
// only expanded once.
func BestFirstSearch(root *engine.State, maxExpansions int) Path {
	type node struct {
		state *engine.State
		path  []Outcome
	}

	best := newAtomicScore(-1)
	var bestPath Path

	frontier := []node{{state: root, path: nil}}
	seen := map[string]bool{}

	expansions := 0
	for len(frontier) > 0 && expansions < maxExpansions {
		cur := frontier[0]
		frontier = frontier[1:]

		key := hashKey(cur.state)
		if seen[key] {
			continue
		}
		seen[key] = true
		expansions++

		if cur.state.IsTerminal() {
			sc := score(cur.state)
			if best.updateMax(sc) {
				bestPath = Path{Outcomes: cur.path, Solved: cur.state.IsSolution(), Score: sc}
			}
			continue
		}

		for _, o := range Successors(cur.state) {
			if o.State == nil {
				continue
			}
			childPath := append(append([]Outcome{}, cur.path...), o)
			frontier = append(frontier, node{state: o.State, path: childPath})
		}
		sort.SliceStable(frontier, func(i, j int) bool {
			return score(frontier[i].state) > score(frontier[j].state)
		})
	}

	return bestPath
}

func hashKey(s *engine.State) string {
	h := s.Hash()
	return new(big.Int).Set(h).String()
}
