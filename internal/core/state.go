package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/comalice/ddsv/internal/primitives"
)

// StateID is a dense, zero-based index assigned to a global state in BFS
// discovery order. It is stable across a single Compose run but is not
// meaningful across runs of different models.
type StateID int

// State is one point in the joint state space: the current location of
// every process, the current shared value, and whether this state was
// found to have no enabled transition in any process (a deadlock). The
// Deadlock flag is filled in by AnalyzeDeadlocks after exploration
// completes; it is never part of a state's dedup identity.
type State[T primitives.Shared] struct {
	ID        StateID
	Locations []primitives.Location
	Shared    T
	Deadlock  bool
}

// String renders a state as "p0 p1 ... | shared", matching the per-process
// location ordering used throughout spec.md's composite-state examples.
func (s State[T]) String() string {
	parts := make([]string, len(s.Locations))
	for i, l := range s.Locations {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ") + " | " + s.Shared.String()
}

// stateKey is the map key used to deduplicate states during composition.
// Two states are the same state iff their per-process locations and shared
// value agree; Deadlock is a derived property computed after the fact and
// must never affect identity.
type stateKey[T primitives.Shared] struct {
	locs   string
	shared T
}

func keyOf[T primitives.Shared](locations []primitives.Location, shared T) stateKey[T] {
	var b strings.Builder
	for i, l := range locations {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(l)))
	}
	return stateKey[T]{locs: b.String(), shared: shared}
}

func cloneLocations(locations []primitives.Location) []primitives.Location {
	out := make([]primitives.Location, len(locations))
	copy(out, locations)
	return out
}

// newInitialState validates that locations has exactly one entry per
// process and that every location names a valid unit in that process, then
// builds state 0.
func newInitialState[T primitives.Shared](processes []*primitives.Process[T], locations []primitives.Location, shared T) (State[T], error) {
	if len(locations) != len(processes) {
		return State[T]{}, fmt.Errorf("ddsv/core: initial state has %d locations but %d processes: %w",
			len(locations), len(processes), ErrProcessCountMismatch)
	}
	for i, p := range processes {
		if int(locations[i]) < 0 || int(locations[i]) >= len(p.Units) {
			return State[T]{}, fmt.Errorf("ddsv/core: initial location %d for process %q is out of range (process has %d units): %w",
				locations[i], p.Label, len(p.Units), ErrInitialLocationOutOfRange)
		}
	}
	return State[T]{
		ID:        0,
		Locations: cloneLocations(locations),
		Shared:    shared,
	}, nil
}
