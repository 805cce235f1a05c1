package models

import (
	"fmt"

	"github.com/comalice/ddsv"
)

// LoneWriterVars is the shared state of the single-process write sequence
// model (scenario S4).
type LoneWriterVars struct {
	X, Y, Z int
}

func (v LoneWriterVars) String() string {
	return fmt.Sprintf("x=%d y=%d z=%d", v.X, v.Y, v.Z)
}

// BuildLoneWriter returns a single process that deterministically sets
// x=1, y=1, z=1, then y=0, and stops. With only one process and no
// interleaving, this exercises the degenerate case of a linear LTS with
// exactly one reachable path and a single terminal deadlock.
func BuildLoneWriter() (processes []*ddsv.Process[LoneWriterVars], initialLocations []ddsv.Location, initial LoneWriterVars) {
	p, err := ddsv.NewProcess("P", []ddsv.ExecUnit[LoneWriterVars]{
		ddsv.NewExecUnit(0, []ddsv.ProcessTrans[LoneWriterVars]{
			ddsv.NewProcessTrans("x=1", 1, nil, func(next *LoneWriterVars, prev LoneWriterVars) { next.X = 1 }),
		}),
		ddsv.NewExecUnit(1, []ddsv.ProcessTrans[LoneWriterVars]{
			ddsv.NewProcessTrans("y=1", 2, nil, func(next *LoneWriterVars, prev LoneWriterVars) { next.Y = 1 }),
		}),
		ddsv.NewExecUnit(2, []ddsv.ProcessTrans[LoneWriterVars]{
			ddsv.NewProcessTrans("z=1", 3, nil, func(next *LoneWriterVars, prev LoneWriterVars) { next.Z = 1 }),
		}),
		ddsv.NewExecUnit(3, []ddsv.ProcessTrans[LoneWriterVars]{
			ddsv.NewProcessTrans("y=0", 4, nil, func(next *LoneWriterVars, prev LoneWriterVars) { next.Y = 0 }),
		}),
		ddsv.NewExecUnit[LoneWriterVars](4, nil),
	})
	if err != nil {
		panic(err)
	}

	return []*ddsv.Process[LoneWriterVars]{p}, []ddsv.Location{0}, LoneWriterVars{}
}
