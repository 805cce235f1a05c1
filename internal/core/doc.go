// Package core implements the composition engine: BFS exploration of the
// joint state space of a set of processes into a labeled transition system,
// plus deadlock detection and back-propagation over the resulting graph.
// Like internal/primitives, it uses only the Go standard library.
package core
