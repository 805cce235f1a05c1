package primitives

import (
	"bufio"
	"fmt"
	"os"
)

// Process is a named, ordered collection of execution units forming one
// per-process control graph. units[i].Src must equal i: units are indexed
// by their own source location.
type Process[T Shared] struct {
	Label Label
	Units []ExecUnit[T]
}

// NewProcess validates and builds a Process. It enforces both invariants
// spec.md §3 states: units are indexed by their source location, and every
// transition's destination falls inside the unit vector. Both failures are
// model-construction errors (spec.md §7): non-recoverable, reported with
// enough detail to locate the offending process, unit and transition.
func NewProcess[T Shared](label string, units []ExecUnit[T]) (*Process[T], error) {
	for i, u := range units {
		if int(u.Src) != i {
			return nil, fmt.Errorf("ddsv/primitives: process %q: unit %d has src %d: %w", label, i, u.Src, ErrUnitIndexMismatch)
		}
		for j, t := range u.Transs {
			if int(t.Dst) < 0 || int(t.Dst) >= len(units) {
				return nil, fmt.Errorf("ddsv/primitives: process %q: unit %d transition %d (%q) targets location %d but process has %d units: %w",
					label, i, j, t.Label, t.Dst, len(units), ErrTransitionTargetOutOfRange)
			}
		}
	}
	return &Process[T]{Label: Label(label), Units: units}, nil
}

// Visualize writes a per-process DOT digraph of this process's control-flow
// graph to path: one node per execution unit, one edge per transition, in
// the exact order units and their transitions were declared. An error
// opening or writing the file is fatal to the call and is returned; the file
// is created (or truncated) before writing, so a failed write can leave it
// partially written.
func (p *Process[T]) Visualize(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ddsv/primitives: visualize process %q: %w", p.Label, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "digraph {")
	for i, u := range p.Units {
		fmt.Fprintf(w, "%d [label=\"%s%d\"];\n", i, p.Label, u.Src)
	}
	for i, u := range p.Units {
		for _, t := range u.Transs {
			fmt.Fprintf(w, "%d -> %d [label=\"%s\"];\n", i, t.Dst, t.Label)
		}
	}
	fmt.Fprintln(w, "}")

	if err := w.Flush(); err != nil {
		return fmt.Errorf("ddsv/primitives: visualize process %q: %w", p.Label, err)
	}
	return nil
}
