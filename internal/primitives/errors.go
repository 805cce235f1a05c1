package primitives

import "errors"

// Sentinel errors for model-construction failures. These are programmer
// errors: a process wired together wrong. They are validated once at
// construction time and are not recoverable; callers should fix the model,
// not retry.
var (
	// ErrUnitIndexMismatch means units[i].Src != i: ExecUnits must be
	// indexed by their own source location.
	ErrUnitIndexMismatch = errors.New("ddsv/primitives: execution unit is not indexed by its source location")

	// ErrTransitionTargetOutOfRange means a ProcessTrans.Dst names a
	// location beyond the process's unit vector.
	ErrTransitionTargetOutOfRange = errors.New("ddsv/primitives: transition destination location is out of range")
)
