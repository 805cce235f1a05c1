package production

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func sampleReport() Report {
	return Report{
		ModelName:       "cas",
		GeneratedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		StateCount:      4,
		TransitionCount: 5,
		DeadlockCount:   1,
		DeadlockStates:  []int{3},
		Truncated:       false,
	}
}

func TestJSONPersisterRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	p, err := NewJSONPersister(dir)
	if err != nil {
		t.Fatalf("NewJSONPersister: %v", err)
	}
	want := sampleReport()
	if err := p.Save("cas", want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cas.json")); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
	got, err := p.Load("cas")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ModelName != want.ModelName || got.StateCount != want.StateCount ||
		got.TransitionCount != want.TransitionCount || got.DeadlockCount != want.DeadlockCount ||
		len(got.DeadlockStates) != len(want.DeadlockStates) || got.DeadlockStates[0] != want.DeadlockStates[0] ||
		!got.GeneratedAt.Equal(want.GeneratedAt) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestJSONPersisterLoadMissing(t *testing.T) {
	p, err := NewJSONPersister(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONPersister: %v", err)
	}
	_, err = p.Load("nope")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}

func TestYAMLPersisterRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	p, err := NewYAMLPersister(dir)
	if err != nil {
		t.Fatalf("NewYAMLPersister: %v", err)
	}
	want := sampleReport()
	if err := p.Save("cas", want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := p.Load("cas")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ModelName != want.ModelName || got.StateCount != want.StateCount || !got.GeneratedAt.Equal(want.GeneratedAt) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestYAMLPersisterLoadMissing(t *testing.T) {
	p, err := NewYAMLPersister(t.TempDir())
	if err != nil {
		t.Fatalf("NewYAMLPersister: %v", err)
	}
	_, err = p.Load("nope")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}
