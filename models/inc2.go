package models

import (
	"fmt"

	"github.com/comalice/ddsv"
)

// IncVars is the shared state of the read-increment-write race model
// (scenario S2): X is the shared counter, T1 and T2 are P's and Q's
// private copies of the value they read before incrementing it.
type IncVars struct {
	X, T1, T2 int
}

func (v IncVars) String() string {
	return fmt.Sprintf("x=%d t1=%d t2=%d", v.X, v.T1, v.T2)
}

// BuildInc2 returns the two-process increment-race model: P and Q each
// read the shared counter, increment their private copy, then write it
// back, with no synchronization between the read and the write. Both
// processes terminate at location 3, which has no outgoing transition —
// under the deadlock-soundness invariant this joint state is a deadlock,
// resolving the informal "no deadlock" description against the model's
// own explicit terminal locations (see SPEC_FULL.md §8).
func BuildInc2() (processes []*ddsv.Process[IncVars], initialLocations []ddsv.Location, initial IncVars) {
	p, err := ddsv.NewProcess("P", []ddsv.ExecUnit[IncVars]{
		ddsv.NewExecUnit(0, []ddsv.ProcessTrans[IncVars]{
			ddsv.NewProcessTrans("read", 1, nil, func(next *IncVars, prev IncVars) { next.T1 = prev.X }),
		}),
		ddsv.NewExecUnit(1, []ddsv.ProcessTrans[IncVars]{
			ddsv.NewProcessTrans("inc", 2, nil, func(next *IncVars, prev IncVars) { next.T1 = prev.T1 + 1 }),
		}),
		ddsv.NewExecUnit(2, []ddsv.ProcessTrans[IncVars]{
			ddsv.NewProcessTrans("write", 3, nil, func(next *IncVars, prev IncVars) { next.X = prev.T1 }),
		}),
		ddsv.NewExecUnit[IncVars](3, nil),
	})
	if err != nil {
		panic(err)
	}

	q, err := ddsv.NewProcess("Q", []ddsv.ExecUnit[IncVars]{
		ddsv.NewExecUnit(0, []ddsv.ProcessTrans[IncVars]{
			ddsv.NewProcessTrans("read", 1, nil, func(next *IncVars, prev IncVars) { next.T2 = prev.X }),
		}),
		ddsv.NewExecUnit(1, []ddsv.ProcessTrans[IncVars]{
			ddsv.NewProcessTrans("inc", 2, nil, func(next *IncVars, prev IncVars) { next.T2 = prev.T2 + 1 }),
		}),
		ddsv.NewExecUnit(2, []ddsv.ProcessTrans[IncVars]{
			ddsv.NewProcessTrans("write", 3, nil, func(next *IncVars, prev IncVars) { next.X = prev.T2 }),
		}),
		ddsv.NewExecUnit[IncVars](3, nil),
	})
	if err != nil {
		panic(err)
	}

	return []*ddsv.Process[IncVars]{p, q}, []ddsv.Location{0, 0}, IncVars{}
}
