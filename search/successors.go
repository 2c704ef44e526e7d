// Package search provides a deterministic successors interface over
// engine.State for tree search, and a small best-first driver used to
// sanity-check that a level is solvable.
package search

import (
	"stonesgems/cell"
	"stonesgems/engine"

	channerics "github.com/niceyeti/channerics/channels"
)

// Outcome is one action's result: the action taken and the resulting state.
type Outcome struct {
	Action cell.Action
	State  *engine.State
}

// Successors clones s once per legal action and applies each action to its
// own clone concurrently. Each clone is fully independent (its own board,
// its own rng stream), so the concurrency here is an internal speedup only
// — no shared mutation, no cross-clone nondeterminism — and the result
// slice is always returned in legal-action order regardless of which
// goroutine finishes first.
func Successors(s *engine.State) []Outcome {
	actions := s.LegalActions()
	if len(actions) == 0 {
		return nil
	}

	done := make(chan struct{})
	defer close(done)

	chans := make([]<-chan Outcome, len(actions))
	for i, a := range actions {
		i, a := i, a
		out := make(chan Outcome, 1)
		chans[i] = out
		go func() {
			clone := s.Clone()
			_ = clone.ApplyAction(a)
			out <- Outcome{Action: a, State: clone}
			close(out)
		}()
	}

	results := make([]Outcome, 0, len(actions))
	for o := range channerics.Merge(done, chans...) {
		results = append(results, o)
	}

	// channerics.Merge interleaves by completion order; re-sort into the
	// fixed action order callers expect (search trees key children by
	// action index, not by which clone happened to finish first).
	ordered := make([]Outcome, len(actions))
	for _, o := range results {
		ordered[int(o.Action)] = o
	}
	return ordered
}
