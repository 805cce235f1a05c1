package primitives

import "fmt"

// Shared is the constraint every model's shared-state value type must
// satisfy. comparable gives byte-wise equality (state deduplication) and,
// because a comparable type cannot hold slices or maps, ordinary Go
// value-copy assignment serves as the "value-clone" capability spec.md asks
// for — no explicit Clone method is needed. A pointer field is comparable
// but is copied as a pointer, so the copy and the original share its
// target. fmt.Stringer gives the
// displayable requirement used when rendering states.
type Shared interface {
	comparable
	fmt.Stringer
}

// Guard is a pure predicate gating whether a transition may fire. It must
// not mutate current.
type Guard[T Shared] func(current T) bool

// Action is a pure transformer computing the post-transition shared value.
// next is a copy of the pre-transition value; prev is that same
// pre-transition value, held fixed so every read inside Action sees the
// state as it was before this transition fired.
type Action[T Shared] func(next *T, prev T)

// AlwaysEnabled is a Guard that is always satisfied.
func AlwaysEnabled[T Shared](T) bool { return true }

// NoAction is an Action that performs no mutation: a pure location change.
func NoAction[T Shared](next *T, prev T) {}

// ProcessTrans is one guarded action leaving a location: a label, a
// destination location, a guard and an action.
type ProcessTrans[T Shared] struct {
	Label  Label
	Dst    Location
	Guard  Guard[T]
	Action Action[T]
}

// NewProcessTrans builds a ProcessTrans. A nil guard defaults to
// AlwaysEnabled; a nil action defaults to NoAction.
func NewProcessTrans[T Shared](label string, dst int, guard Guard[T], action Action[T]) ProcessTrans[T] {
	if guard == nil {
		guard = AlwaysEnabled[T]
	}
	if action == nil {
		action = NoAction[T]
	}
	return ProcessTrans[T]{
		Label:  Label(label),
		Dst:    Location(dst),
		Guard:  guard,
		Action: action,
	}
}
