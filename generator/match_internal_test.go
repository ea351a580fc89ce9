package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dcpgen/catalog"
)

func TestCollect_KeepsDuplicates(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	affine := catalog.Attribute{Convex: true, Concave: true}

	once := collect(cat, []catalog.Profile{{affine}}, true)
	require.Len(t, once, 9)

	// The same tuple twice, either inside one profile or across profiles,
	// doubles every candidate.
	require.Len(t, collect(cat, []catalog.Profile{{affine, affine}}, true), 18)
	require.Len(t, collect(cat, []catalog.Profile{{affine}, {affine}}, true), 18)
}

func TestCollect_AbsSlot(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	abs, _ := cat.Lookup("abs")

	got := collect(cat, []catalog.Profile{abs.ArgumentProfile(0)}, false)
	names := map[string]int{}
	for _, p := range got {
		names[p.Name]++
	}

	// Only positive-capable convex functions fill {positive, convex}; no
	// function declares negative, and none is both convex and concave.
	for name, n := range names {
		p, _ := cat.Lookup(name)
		require.True(t, p.Signature.Positive && p.Signature.Convex, name)
		require.Equal(t, 1, n, name)
	}
	require.Contains(t, names, "exp")
	require.NotContains(t, names, "max")
}

func TestSwapCandidates(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	abs, _ := cat.Lookup("abs")

	var names []string
	for _, p := range swapCandidates(cat, abs) {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"log", "entr", "sqrt"}, names)
}
