package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/comalice/ddsv/internal/primitives"
)

type counter int

func (c counter) String() string { return fmt.Sprintf("%d", int(c)) }

func mustProcess(t *testing.T, label string, units []primitives.ExecUnit[counter]) *primitives.Process[counter] {
	t.Helper()
	p, err := primitives.NewProcess(label, units)
	if err != nil {
		t.Fatalf("NewProcess(%q): %v", label, err)
	}
	return p
}

// twoStepProcess builds a trivial P: 0 -go-> 1 -go-> 2 (terminal), each
// transition incrementing the shared counter by one.
func twoStepProcess(t *testing.T, label string) *primitives.Process[counter] {
	t.Helper()
	inc := func(next *counter, prev counter) { *next = prev + 1 }
	units := []primitives.ExecUnit[counter]{
		primitives.NewExecUnit(0, []primitives.ProcessTrans[counter]{
			primitives.NewProcessTrans("go", 1, nil, inc),
		}),
		primitives.NewExecUnit(1, []primitives.ProcessTrans[counter]{
			primitives.NewProcessTrans("go", 2, nil, inc),
		}),
		primitives.NewExecUnit[counter](2, nil),
	}
	return mustProcess(t, label, units)
}

func TestComposeSingleProcessDeterminism(t *testing.T) {
	p := twoStepProcess(t, "P")
	lts, err := Compose([]*primitives.Process[counter]{p}, []primitives.Location{0}, counter(0))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if lts.NumStates() != 3 {
		t.Fatalf("NumStates() = %d, want 3", lts.NumStates())
	}
	if len(lts.Transitions()) != 2 {
		t.Fatalf("len(Transitions()) = %d, want 2", len(lts.Transitions()))
	}
	// Determinism: re-running from scratch must assign identical StateIDs
	// to identical states.
	lts2, err := Compose([]*primitives.Process[counter]{p}, []primitives.Location{0}, counter(0))
	if err != nil {
		t.Fatalf("Compose (2nd run): %v", err)
	}
	for i, s := range lts.States() {
		if s.Locations[0] != lts2.States()[i].Locations[0] || s.Shared != lts2.States()[i].Shared {
			t.Fatalf("state %d differs across runs: %v vs %v", i, s, lts2.States()[i])
		}
	}
}

func TestComposeDeadlockSoundness(t *testing.T) {
	p := twoStepProcess(t, "P")
	lts, err := Compose([]*primitives.Process[counter]{p}, []primitives.Location{0}, counter(0))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	deadlocks := lts.Deadlocks()
	if len(deadlocks) != 1 {
		t.Fatalf("len(Deadlocks()) = %d, want 1", len(deadlocks))
	}
	final := lts.State(deadlocks[0])
	if final.Locations[0] != 2 {
		t.Fatalf("deadlock state at location %v, want 2", final.Locations[0])
	}
	// Every transition is on some path into the single deadlock.
	for _, tr := range lts.Transitions() {
		if !tr.OnDeadlock {
			t.Fatalf("transition %+v not marked on a deadlock path", tr)
		}
	}
}

func TestComposeNoDeadlockSelfLoop(t *testing.T) {
	units := []primitives.ExecUnit[counter]{
		primitives.NewExecUnit(0, []primitives.ProcessTrans[counter]{
			primitives.NewProcessTrans[counter]("loop", 0, nil, nil),
		}),
	}
	p := mustProcess(t, "P", units)
	lts, err := Compose([]*primitives.Process[counter]{p}, []primitives.Location{0}, counter(0))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if lts.NumStates() != 1 {
		t.Fatalf("NumStates() = %d, want 1", lts.NumStates())
	}
	if len(lts.Deadlocks()) != 0 {
		t.Fatalf("expected no deadlocks for a self-looping process, got %v", lts.Deadlocks())
	}
}

func TestComposeProcessCountMismatch(t *testing.T) {
	p := twoStepProcess(t, "P")
	_, err := Compose([]*primitives.Process[counter]{p}, []primitives.Location{0, 0}, counter(0))
	if !errors.Is(err, ErrProcessCountMismatch) {
		t.Fatalf("err = %v, want ErrProcessCountMismatch", err)
	}
}

func TestComposeInitialLocationOutOfRange(t *testing.T) {
	p := twoStepProcess(t, "P")
	_, err := Compose([]*primitives.Process[counter]{p}, []primitives.Location{99}, counter(0))
	if !errors.Is(err, ErrInitialLocationOutOfRange) {
		t.Fatalf("err = %v, want ErrInitialLocationOutOfRange", err)
	}
}

func TestComposeMaxStatesTruncates(t *testing.T) {
	p := twoStepProcess(t, "P")
	lts, err := Compose([]*primitives.Process[counter]{p}, []primitives.Location{0}, counter(0), WithMaxStates(1))
	if !errors.Is(err, ErrMaxStatesExceeded) {
		t.Fatalf("err = %v, want ErrMaxStatesExceeded", err)
	}
	if !lts.Truncated() {
		t.Fatalf("expected Truncated() to be true")
	}
}

func TestComposeGuardPrunesTransition(t *testing.T) {
	guard := func(v counter) bool { return v > 0 }
	units := []primitives.ExecUnit[counter]{
		primitives.NewExecUnit(0, []primitives.ProcessTrans[counter]{
			primitives.NewProcessTrans("gated", 1, guard, nil),
		}),
		primitives.NewExecUnit[counter](1, nil),
	}
	p := mustProcess(t, "P", units)
	lts, err := Compose([]*primitives.Process[counter]{p}, []primitives.Location{0}, counter(0))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	// The guard is never satisfied (shared stays 0), so location 0 is
	// itself the only reachable state and is a deadlock.
	if lts.NumStates() != 1 {
		t.Fatalf("NumStates() = %d, want 1", lts.NumStates())
	}
	if len(lts.Deadlocks()) != 1 {
		t.Fatalf("expected the gated start state to be a deadlock")
	}
}

func TestTwoProcessInterleaving(t *testing.T) {
	inc := func(next *counter, prev counter) { *next = prev + 1 }
	unitsFor := func() []primitives.ExecUnit[counter] {
		return []primitives.ExecUnit[counter]{
			primitives.NewExecUnit(0, []primitives.ProcessTrans[counter]{
				primitives.NewProcessTrans("go", 1, nil, inc),
			}),
			primitives.NewExecUnit[counter](1, nil),
		}
	}
	p := mustProcess(t, "P", unitsFor())
	q := mustProcess(t, "Q", unitsFor())

	lts, err := Compose([]*primitives.Process[counter]{p, q}, []primitives.Location{0, 0}, counter(0))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	// Reachable joint states: (0,0)->(1,0)->(1,1) and (0,0)->(0,1)->(1,1):
	// a diamond of 4 distinct states, deduplicated on the shared join.
	if lts.NumStates() != 4 {
		t.Fatalf("NumStates() = %d, want 4", lts.NumStates())
	}
	if len(lts.Transitions()) != 4 {
		t.Fatalf("len(Transitions()) = %d, want 4", len(lts.Transitions()))
	}
	if len(lts.Deadlocks()) != 1 {
		t.Fatalf("len(Deadlocks()) = %d, want 1", len(lts.Deadlocks()))
	}
}
