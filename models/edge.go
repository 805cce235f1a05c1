package models

import "github.com/comalice/ddsv"

// EdgeVars is the shared state used by the boundary-case models: both are
// pure control-flow exercises with no data to carry, so the shared value
// is the empty struct.
type EdgeVars struct{}

func (EdgeVars) String() string { return "-" }

// BuildEmpty returns the single-process, single-unit, no-transition model
// (scenario S5): a single state, zero transitions, that sole state a
// deadlock with nothing to back-propagate onto.
func BuildEmpty() (processes []*ddsv.Process[EdgeVars], initialLocations []ddsv.Location, initial EdgeVars) {
	p, err := ddsv.NewProcess("P", []ddsv.ExecUnit[EdgeVars]{
		ddsv.NewExecUnit[EdgeVars](0, nil),
	})
	if err != nil {
		panic(err)
	}
	return []*ddsv.Process[EdgeVars]{p}, []ddsv.Location{0}, EdgeVars{}
}

// BuildSelfLoop returns the single-process self-loop model (scenario S6): a
// transition whose destination is its own source, always enabled, with no
// action. Exploration discovers no new state beyond the initial one and
// the sole composite transition has before == after == 0; state 0 is not a
// deadlock because it does have an outgoing transition.
func BuildSelfLoop() (processes []*ddsv.Process[EdgeVars], initialLocations []ddsv.Location, initial EdgeVars) {
	p, err := ddsv.NewProcess("P", []ddsv.ExecUnit[EdgeVars]{
		ddsv.NewExecUnit(0, []ddsv.ProcessTrans[EdgeVars]{
			ddsv.NewProcessTrans[EdgeVars]("loop", 0, nil, nil),
		}),
	})
	if err != nil {
		panic(err)
	}
	return []*ddsv.Process[EdgeVars]{p}, []ddsv.Location{0}, EdgeVars{}
}
