package core

import "errors"

// Sentinel errors surfaced by Compose when a model is wired together wrong
// or exploration would outgrow its configured bound. All are programmer- or
// operator-facing: fix the model or raise the bound, do not retry blindly.
var (
	// ErrProcessCountMismatch means the initial state's location vector
	// does not have exactly one entry per process passed to Compose.
	ErrProcessCountMismatch = errors.New("ddsv/core: initial state location count does not match process count")

	// ErrInitialLocationOutOfRange means an initial location names a unit
	// beyond its process's unit vector.
	ErrInitialLocationOutOfRange = errors.New("ddsv/core: initial location is out of range for its process")

	// ErrMaxStatesExceeded means exploration hit the configured MaxStates
	// bound before the reachable state space closed. The returned LTS is
	// the partial result explored so far, with Truncated set to true.
	ErrMaxStatesExceeded = errors.New("ddsv/core: exploration exceeded the configured maximum state count")
)
