package core

// CompTrans is one edge of the composite labeled transition system: the
// label of the process-level transition that fired, the state it fired
// from, the state it led to, and whether this edge lies on some path into
// a deadlock state.
type CompTrans struct {
	Label      string
	Before     StateID
	After      StateID
	OnDeadlock bool
}
