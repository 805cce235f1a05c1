// Package primitives defines the foundational data structures of a DDSV
// model: locations, labels, guarded transitions, execution units and
// processes. All implementations use only the Go standard library.
package primitives
