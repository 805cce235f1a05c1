package production

import (
	"time"

	"github.com/comalice/ddsv/internal/core"
	"github.com/comalice/ddsv/internal/primitives"
)

// Report is a persisted summary of one Compose run: enough to audit what
// was explored without re-reading the full LTS.
type Report struct {
	ModelName       string    `json:"model_name" yaml:"model_name"`
	GeneratedAt     time.Time `json:"generated_at" yaml:"generated_at"`
	StateCount      int       `json:"state_count" yaml:"state_count"`
	TransitionCount int       `json:"transition_count" yaml:"transition_count"`
	DeadlockCount   int       `json:"deadlock_count" yaml:"deadlock_count"`
	DeadlockStates  []int     `json:"deadlock_states" yaml:"deadlock_states"`
	Truncated       bool      `json:"truncated" yaml:"truncated"`
}

// NewReport summarizes an explored LTS under the given model name, stamped
// with generatedAt (callers pass the current time; this package never
// calls time.Now itself so report generation stays deterministic in tests).
func NewReport[T primitives.Shared](modelName string, lts *core.LTS[T], generatedAt time.Time) Report {
	deadlocks := lts.Deadlocks()
	ids := make([]int, len(deadlocks))
	for i, id := range deadlocks {
		ids[i] = int(id)
	}
	return Report{
		ModelName:       modelName,
		GeneratedAt:     generatedAt,
		StateCount:      lts.NumStates(),
		TransitionCount: len(lts.Transitions()),
		DeadlockCount:   len(deadlocks),
		DeadlockStates:  ids,
		Truncated:       lts.Truncated(),
	}
}
