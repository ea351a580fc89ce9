// SPDX-License-Identifier: MIT
package generator_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dcpgen/catalog"
	"github.com/katalvlaran/dcpgen/generator"
	"github.com/stretchr/testify/require"
)

func weighted(ws ...float64) []*catalog.Production {
	out := make([]*catalog.Production, len(ws))
	for i, w := range ws {
		out[i] = &catalog.Production{Name: string(rune('a' + i)), Terminal: true, Weight: w}
	}
	return out
}

func TestChoose_Boundaries(t *testing.T) {
	t.Parallel()

	cands := weighted(1, 3)

	p, err := generator.Choose(constant(0.0), cands)
	require.NoError(t, err)
	require.Same(t, cands[0], p)

	p, err = generator.Choose(constant(math.Nextafter(1, 0)), cands)
	require.NoError(t, err)
	require.Same(t, cands[1], p)

	// The draw lands exactly on the first cumulative weight.
	p, err = generator.Choose(constant(0.25), cands)
	require.NoError(t, err)
	require.Same(t, cands[0], p)

	// Out-of-contract draws still resolve to the last candidate.
	p, err = generator.Choose(constant(1.5), cands)
	require.NoError(t, err)
	require.Same(t, cands[1], p)
}

func TestChoose_Empty(t *testing.T) {
	t.Parallel()

	_, err := generator.Choose(constant(0.5), nil)
	require.ErrorIs(t, err, generator.ErrEmptyCandidateSet)
}

func TestChoose_Proportions(t *testing.T) {
	t.Parallel()

	cands := weighted(1, 3)
	rng := rand.New(rand.NewSource(7))

	const n = 20000
	hits := 0
	for i := 0; i < n; i++ {
		p, err := generator.Choose(rng, cands)
		require.NoError(t, err)
		if p == cands[1] {
			hits++
		}
	}
	require.InDelta(t, 0.75, float64(hits)/n, 0.02)
}
