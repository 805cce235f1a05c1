package core

import (
	"bufio"
	"fmt"
	"os"

	"github.com/comalice/ddsv/internal/primitives"
)

// LTS is the composite labeled transition system produced by Compose: every
// reachable global state, in discovery order, and every composite
// transition between them.
type LTS[T primitives.Shared] struct {
	states    []State[T]
	index     map[stateKey[T]]StateID
	trans     []CompTrans
	truncated bool
}

func newLTS[T primitives.Shared]() *LTS[T] {
	return &LTS[T]{
		index: make(map[stateKey[T]]StateID),
	}
}

// insert returns the StateID for the given locations/shared pair, creating
// a new state in discovery order if this is the first time it is seen.
// The second return value reports whether a new state was created.
func (l *LTS[T]) insert(locations []primitives.Location, shared T) (StateID, bool) {
	k := keyOf(locations, shared)
	if id, ok := l.index[k]; ok {
		return id, false
	}
	id := StateID(len(l.states))
	l.states = append(l.states, State[T]{
		ID:        id,
		Locations: cloneLocations(locations),
		Shared:    shared,
	})
	l.index[k] = id
	return id, true
}

func (l *LTS[T]) addTrans(label string, before, after StateID) {
	l.trans = append(l.trans, CompTrans{Label: label, Before: before, After: after})
}

// State returns the state with the given id. It panics if id is out of
// range, since StateIDs are only ever produced by this package and a valid
// id is always in range for its own LTS.
func (l *LTS[T]) State(id StateID) State[T] {
	return l.states[id]
}

// NumStates reports how many distinct global states were discovered.
func (l *LTS[T]) NumStates() int {
	return len(l.states)
}

// States returns every discovered state, in discovery order. StateID i is
// always at index i.
func (l *LTS[T]) States() []State[T] {
	return l.states
}

// Transitions returns every composite transition, in the order they were
// discovered during BFS.
func (l *LTS[T]) Transitions() []CompTrans {
	return l.trans
}

// IsDeadlock reports whether the given state has no enabled outgoing
// transition in any process.
func (l *LTS[T]) IsDeadlock(id StateID) bool {
	return l.states[id].Deadlock
}

// Deadlocks returns the StateIDs of every deadlock state, in ascending
// order (which is also discovery order).
func (l *LTS[T]) Deadlocks() []StateID {
	var out []StateID
	for _, s := range l.states {
		if s.Deadlock {
			out = append(out, s.ID)
		}
	}
	return out
}

// Truncated reports whether exploration stopped early because of a
// WithMaxStates bound, before the reachable state space fully closed.
func (l *LTS[T]) Truncated() bool {
	return l.truncated
}

// Visualize writes a DOT digraph of the composite LTS to path: one node per
// discovered state, labeled with its per-process locations and shared
// value (processes supplies the per-process labels used in that
// rendering), and one edge per composite transition. The initial state
// (StateID 0) is styled cyan unless it is itself a deadlock; deadlock states
// are styled pink; transitions
// lying on a path into a deadlock are styled red, matching spec.md §4.4.
func (l *LTS[T]) Visualize(path string, processes []*primitives.Process[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ddsv/core: visualize lts: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "digraph {")
	for _, s := range l.states {
		label := stateLabel(s, processes)
		style := ""
		switch {
		case s.Deadlock:
			style = `, color=pink, style=filled`
		case s.ID == 0:
			style = `, color=cyan, style=filled`
		}
		fmt.Fprintf(w, "%d [label=\"%s\"%s];\n", s.ID, label, style)
	}
	for _, t := range l.trans {
		style := ""
		if t.OnDeadlock {
			style = `, color=red,fontcolor=red,weight=2,penwidth=2`
		}
		fmt.Fprintf(w, "%d -> %d [label=\"%s\"%s];\n", t.Before, t.After, t.Label, style)
	}
	fmt.Fprintln(w, "}")

	if err := w.Flush(); err != nil {
		return fmt.Errorf("ddsv/core: visualize lts: %w", err)
	}
	return nil
}

// stateLabel renders a state as one "{process-label}{location}" pair per
// process, space-separated, followed by the shared value — the
// generalization of spec.md's two-process examples to N processes
// (resolved in SPEC_FULL.md's Open Question 1).
func stateLabel[T primitives.Shared](s State[T], processes []*primitives.Process[T]) string {
	out := ""
	for i, loc := range s.Locations {
		if i > 0 {
			out += " "
		}
		if i < len(processes) {
			out += processes[i].Label.String()
		}
		out += loc.String()
	}
	return out + " | " + s.Shared.String()
}
