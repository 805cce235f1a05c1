package primitives

import "strconv"

// Location is a non-negative index into a process's execution-unit vector:
// the control-flow node a process is sitting at.
type Location int

func (l Location) String() string {
	return strconv.Itoa(int(l))
}
