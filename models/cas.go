package models

import (
	"fmt"

	"github.com/comalice/ddsv"
)

// CASVars is the shared state of the compare-and-swap spinlock model
// (scenario S1): X is the shared lock word, T1 and T2 are P's and Q's
// private scratch registers holding the value they last read.
type CASVars struct {
	X, T1, T2 int
}

func (v CASVars) String() string {
	return fmt.Sprintf("x=%d t1=%d t2=%d", v.X, v.T1, v.T2)
}

// BuildCAS returns the two-process CAS spinlock model: P and Q each try to
// claim the shared lock with a compare-and-swap, retry on contention, hold
// the lock across a "begin"/"end" critical section, then unlock.
func BuildCAS() (processes []*ddsv.Process[CASVars], initialLocations []ddsv.Location, initial CASVars) {
	p, err := ddsv.NewProcess("P", []ddsv.ExecUnit[CASVars]{
		ddsv.NewExecUnit(0, []ddsv.ProcessTrans[CASVars]{
			ddsv.NewProcessTrans("CAS", 1, nil, func(next *CASVars, prev CASVars) {
				next.X = 1
				next.T1 = prev.X
			}),
		}),
		ddsv.NewExecUnit(1, []ddsv.ProcessTrans[CASVars]{
			ddsv.NewProcessTrans("retry", 0,
				func(c CASVars) bool { return c.T1 == 1 },
				func(next *CASVars, prev CASVars) { next.T1 = 0 }),
			ddsv.NewProcessTrans("begin", 2,
				func(c CASVars) bool { return c.T1 == 0 }, nil),
		}),
		ddsv.NewExecUnit(2, []ddsv.ProcessTrans[CASVars]{
			ddsv.NewProcessTrans[CASVars]("end", 3, nil, nil),
		}),
		ddsv.NewExecUnit(3, []ddsv.ProcessTrans[CASVars]{
			ddsv.NewProcessTrans("unlock", 0, nil, func(next *CASVars, prev CASVars) { next.X = 0 }),
		}),
	})
	if err != nil {
		panic(err)
	}

	q, err := ddsv.NewProcess("Q", []ddsv.ExecUnit[CASVars]{
		ddsv.NewExecUnit(0, []ddsv.ProcessTrans[CASVars]{
			ddsv.NewProcessTrans("CAS", 1, nil, func(next *CASVars, prev CASVars) {
				next.X = 1
				next.T2 = prev.X
			}),
		}),
		ddsv.NewExecUnit(1, []ddsv.ProcessTrans[CASVars]{
			ddsv.NewProcessTrans("retry", 0,
				func(c CASVars) bool { return c.T2 == 1 },
				func(next *CASVars, prev CASVars) { next.T2 = 0 }),
			ddsv.NewProcessTrans("begin", 2,
				func(c CASVars) bool { return c.T2 == 0 }, nil),
		}),
		ddsv.NewExecUnit(2, []ddsv.ProcessTrans[CASVars]{
			ddsv.NewProcessTrans[CASVars]("end", 3, nil, nil),
		}),
		ddsv.NewExecUnit(3, []ddsv.ProcessTrans[CASVars]{
			ddsv.NewProcessTrans("unlock", 0, nil, func(next *CASVars, prev CASVars) { next.X = 0 }),
		}),
	})
	if err != nil {
		panic(err)
	}

	return []*ddsv.Process[CASVars]{p, q}, []ddsv.Location{0, 0}, CASVars{}
}
