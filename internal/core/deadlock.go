package core

import "github.com/comalice/ddsv/internal/primitives"

// AnalyzeDeadlocks finds every deadlock state in lts (a state with no
// outgoing composite transition) and marks every transition that lies on
// some path into a deadlock state.
//
// A state is a deadlock iff it never appears as the Before endpoint of any
// transition — equivalently, the set of all discovered states minus the
// set of transition sources. This subsumes the degenerate case of a
// single-state LTS whose initial state has no enabled transition at all.
//
// Path marking is a reverse-reachability fixed point over the transition
// graph: starting from the deadlock frontier, walk transitions backwards
// and mark each one OnDeadlock at most once. This is a clean two-phase
// replacement for the index-mutating back-propagation loop flagged in
// spec.md §9 — see SPEC_FULL.md's Open Question Resolutions.
func AnalyzeDeadlocks[T primitives.Shared](lts *LTS[T]) {
	hasOutgoing := make(map[StateID]bool, len(lts.states))
	reverse := make(map[StateID][]int, len(lts.states))
	for i, t := range lts.trans {
		hasOutgoing[t.Before] = true
		reverse[t.After] = append(reverse[t.After], i)
	}

	visited := make(map[StateID]bool, len(lts.states))
	var frontier []StateID
	for i := range lts.states {
		id := StateID(i)
		if !hasOutgoing[id] {
			lts.states[id].Deadlock = true
			visited[id] = true
			frontier = append(frontier, id)
		}
	}

	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]

		for _, ti := range reverse[id] {
			if lts.trans[ti].OnDeadlock {
				continue
			}
			lts.trans[ti].OnDeadlock = true

			before := lts.trans[ti].Before
			if !visited[before] {
				visited[before] = true
				frontier = append(frontier, before)
			}
		}
	}
}
