// Package ddsv is the public facade of a dynamic concurrent-system model
// checker: build processes out of guarded transitions over a shared value,
// compose them into their reachable joint state space, detect deadlocks,
// and export GraphViz DOT renderings of both per-process control graphs
// and the composite labeled transition system.
//
// The facade re-exports the types and constructors of internal/primitives
// and internal/core as generic type aliases so callers never need to
// import either internal package directly.
package ddsv

import (
	"github.com/comalice/ddsv/internal/core"
	"github.com/comalice/ddsv/internal/primitives"
)

// Shared is the constraint every model's shared-state value type must
// satisfy: comparable for state deduplication, fmt.Stringer for display.
type Shared = primitives.Shared

// Location is a control-flow position within one process.
type Location = primitives.Location

// Label is a display tag for a transition or a process.
type Label = primitives.Label

// Guard is a pure predicate gating whether a transition may fire.
type Guard[T Shared] = primitives.Guard[T]

// Action is a pure transformer computing a transition's post-state.
type Action[T Shared] = primitives.Action[T]

// ProcessTrans is one guarded, labeled action leaving a location.
type ProcessTrans[T Shared] = primitives.ProcessTrans[T]

// ExecUnit collects every transition leaving one location of one process.
type ExecUnit[T Shared] = primitives.ExecUnit[T]

// Process is a named, ordered collection of execution units.
type Process[T Shared] = primitives.Process[T]

// StateID is a dense, zero-based index assigned to a global state in BFS
// discovery order.
type StateID = core.StateID

// State is one point in the joint state space of a composed model.
type State[T Shared] = core.State[T]

// CompTrans is one edge of the composite labeled transition system.
type CompTrans = core.CompTrans

// LTS is the composite labeled transition system produced by Compose.
type LTS[T Shared] = core.LTS[T]

// Option configures a Compose run.
type Option = core.Option

// AlwaysEnabled is a Guard that is always satisfied.
func AlwaysEnabled[T Shared](v T) bool { return primitives.AlwaysEnabled[T](v) }

// NoAction is an Action that performs no mutation.
func NoAction[T Shared](next *T, prev T) { primitives.NoAction[T](next, prev) }

// NewProcessTrans builds a ProcessTrans. A nil guard defaults to
// AlwaysEnabled; a nil action defaults to NoAction.
func NewProcessTrans[T Shared](label string, dst int, guard Guard[T], action Action[T]) ProcessTrans[T] {
	return primitives.NewProcessTrans(label, dst, guard, action)
}

// NewExecUnit builds an ExecUnit rooted at location src.
func NewExecUnit[T Shared](src int, transs []ProcessTrans[T]) ExecUnit[T] {
	return primitives.NewExecUnit(src, transs)
}

// NewProcess validates and builds a Process: units must be indexed by
// their own source location, and every transition's destination must fall
// inside the unit vector.
func NewProcess[T Shared](label string, units []ExecUnit[T]) (*Process[T], error) {
	return primitives.NewProcess(label, units)
}

// WithMaxStates bounds exploration to at most n states.
func WithMaxStates(n int) Option {
	return core.WithMaxStates(n)
}

// Compose runs breadth-first exploration of the joint state space of
// processes starting from the given initial per-process locations and
// initial shared value, and returns the resulting labeled transition
// system.
func Compose[T Shared](processes []*Process[T], initialLocations []Location, initialShared T, opts ...Option) (*LTS[T], error) {
	return core.Compose(processes, initialLocations, initialShared, opts...)
}
