// SPDX-License-Identifier: MIT
// Package: dcpgen/generator

package generator

import "math/rand"

// Source is the randomness the generator consumes. *rand.Rand satisfies it;
// tests may supply scripted sources.
type Source interface {
	// Float64 returns a value in [0,1).
	Float64() float64
	// Intn returns a value in [0,n); n > 0.
	Intn(n int) int
}

// globalSource draws from the process-wide math/rand functions, which are
// safe for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) Intn(n int) int   { return rand.Intn(n) }

// DefaultSource returns the source used when no seed or rand is configured.
func DefaultSource() Source { return globalSource{} }
