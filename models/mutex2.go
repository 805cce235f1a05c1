package models

import (
	"fmt"

	"github.com/comalice/ddsv"
)

// MutexVars is the shared state of the two-lock mutex-inversion model
// (scenario S3): M0 and M1 are the two mutexes, each 0 (free) or 1 (held).
type MutexVars struct {
	M0, M1 int
}

func (v MutexVars) String() string {
	return fmt.Sprintf("m0=%d m1=%d", v.M0, v.M1)
}

// BuildMutex2 returns the classic lock-ordering-inversion deadlock: P takes
// lock0 then lock1; Q takes lock1 then lock0. Each releases in the reverse
// order it acquired. The two can each hold one lock while waiting on the
// other, producing a deadlock.
func BuildMutex2() (processes []*ddsv.Process[MutexVars], initialLocations []ddsv.Location, initial MutexVars) {
	lock0 := func(c MutexVars) bool { return c.M0 == 0 }
	lock1 := func(c MutexVars) bool { return c.M1 == 0 }
	actionLock0 := func(next *MutexVars, prev MutexVars) { next.M0 = 1 }
	actionLock1 := func(next *MutexVars, prev MutexVars) { next.M1 = 1 }
	actionUnlock0 := func(next *MutexVars, prev MutexVars) { next.M0 = 0 }
	actionUnlock1 := func(next *MutexVars, prev MutexVars) { next.M1 = 0 }

	p, err := ddsv.NewProcess("P", []ddsv.ExecUnit[MutexVars]{
		ddsv.NewExecUnit(0, []ddsv.ProcessTrans[MutexVars]{
			ddsv.NewProcessTrans("lock0", 1, lock0, actionLock0),
		}),
		ddsv.NewExecUnit(1, []ddsv.ProcessTrans[MutexVars]{
			ddsv.NewProcessTrans("lock1", 2, lock1, actionLock1),
		}),
		ddsv.NewExecUnit(2, []ddsv.ProcessTrans[MutexVars]{
			ddsv.NewProcessTrans("unlock1", 3, nil, actionUnlock1),
		}),
		ddsv.NewExecUnit(3, []ddsv.ProcessTrans[MutexVars]{
			ddsv.NewProcessTrans("unlock0", 0, nil, actionUnlock0),
		}),
	})
	if err != nil {
		panic(err)
	}

	q, err := ddsv.NewProcess("Q", []ddsv.ExecUnit[MutexVars]{
		ddsv.NewExecUnit(0, []ddsv.ProcessTrans[MutexVars]{
			ddsv.NewProcessTrans("lock1", 1, lock1, actionLock1),
		}),
		ddsv.NewExecUnit(1, []ddsv.ProcessTrans[MutexVars]{
			ddsv.NewProcessTrans("lock0", 2, lock0, actionLock0),
		}),
		ddsv.NewExecUnit(2, []ddsv.ProcessTrans[MutexVars]{
			ddsv.NewProcessTrans("unlock0", 3, nil, actionUnlock0),
		}),
		ddsv.NewExecUnit(3, []ddsv.ProcessTrans[MutexVars]{
			ddsv.NewProcessTrans("unlock1", 0, nil, actionUnlock1),
		}),
	})
	if err != nil {
		panic(err)
	}

	return []*ddsv.Process[MutexVars]{p, q}, []ddsv.Location{0, 0}, MutexVars{}
}
