// SPDX-License-Identifier: MIT
// Package: dcpgen/generator

package generator

import "github.com/katalvlaran/dcpgen/catalog"

// Choose picks one candidate with probability proportional to its weight.
//
// A draw d is taken uniformly in [0, total); the first candidate whose
// cumulative weight reaches d wins. If rounding leaves d above the final
// cumulative sum, the last candidate is returned, so every candidate stays
// reachable.
//
// Errors: ErrEmptyCandidateSet for an empty list.
// Complexity: O(len(candidates)).
func Choose(src Source, candidates []*catalog.Production) (*catalog.Production, error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyCandidateSet
	}

	total := 0.0
	for _, p := range candidates {
		total += p.Weight
	}

	draw := src.Float64() * total
	cum := 0.0
	for _, p := range candidates {
		cum += p.Weight
		if cum >= draw {
			return p, nil
		}
	}

	return candidates[len(candidates)-1], nil
}
