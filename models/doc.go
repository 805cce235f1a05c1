// Package models collects concrete DDSV models built on the public ddsv
// facade: small, well-known concurrent algorithms used to exercise the
// composition engine and its deadlock analysis.
package models
