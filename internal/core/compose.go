package core

import (
	"github.com/comalice/ddsv/internal/primitives"
)

// Compose runs breadth-first exploration of the joint state space of
// processes starting from the given initial per-process locations and
// initial shared value, and returns the resulting labeled transition
// system. Exploration proceeds in process-index order, then in each
// process's declared transition order, so that two runs over the same
// model always assign the same StateIDs and discover transitions in the
// same order (spec.md's determinism invariant).
//
// If a WithMaxStates option is given and exploration would exceed it,
// Compose returns the partial LTS explored so far (Truncated() reporting
// true) together with ErrMaxStatesExceeded. Deadlock analysis still runs
// over that partial graph, so a truncated LTS may report states as
// deadlocks solely because their own outgoing transitions were never
// explored; callers that pass WithMaxStates should treat deadlock results
// as authoritative only when Truncated() is false.
func Compose[T primitives.Shared](processes []*primitives.Process[T], initialLocations []primitives.Location, initialShared T, opts ...Option) (*LTS[T], error) {
	var cfg composeConfig
	for _, o := range opts {
		o(&cfg)
	}

	initState, err := newInitialState(processes, initialLocations, initialShared)
	if err != nil {
		return nil, err
	}

	lts := newLTS[T]()
	id0, _ := lts.insert(initState.Locations, initState.Shared)

	queue := []StateID{id0}
	head := 0

exploration:
	for head < len(queue) {
		cur := queue[head]
		head++
		curState := lts.states[cur]

		for pi, p := range processes {
			loc := curState.Locations[pi]
			unit := p.Units[loc]
			for _, tr := range unit.Transs {
				if !tr.Guard(curState.Shared) {
					continue
				}

				nextShared := curState.Shared
				tr.Action(&nextShared, curState.Shared)

				nextLocs := cloneLocations(curState.Locations)
				nextLocs[pi] = tr.Dst

				if cfg.maxStates > 0 && len(lts.states) >= cfg.maxStates {
					if _, seen := lts.index[keyOf(nextLocs, nextShared)]; !seen {
						lts.truncated = true
						break exploration
					}
				}

				nextID, isNew := lts.insert(nextLocs, nextShared)
				lts.addTrans(p.Label.String()+"."+string(tr.Label), cur, nextID)

				if isNew {
					queue = append(queue, nextID)
				}
			}
		}
	}

	AnalyzeDeadlocks(lts)

	if lts.truncated {
		return lts, ErrMaxStatesExceeded
	}
	return lts, nil
}
