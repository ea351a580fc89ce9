// SPDX-License-Identifier: MIT
// Package quiz_test covers exercise assembly over the real generator and
// over scripted fakes.
package quiz_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/dcpgen/catalog"
	"github.com/katalvlaran/dcpgen/generator"
	"github.com/katalvlaran/dcpgen/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGen records requests and replays a fixed outcome.
type fakeGen struct {
	calls []call
	err   error
}

type call struct {
	profiles  []catalog.Profile
	pTerm     float64
	growth    float64
	compliant bool
}

func (f *fakeGen) Expression(profiles []catalog.Profile, pTerm, growth float64, compliant bool) (string, error) {
	f.calls = append(f.calls, call{profiles, pTerm, growth, compliant})
	if f.err != nil {
		return "", f.err
	}
	return "max(x, y)", nil
}

// pick always draws index n for Intn.
type pick int

func (pick) Float64() float64 { return 0 }
func (p pick) Intn(n int) int { return int(p) % n }

func TestKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, catalog.Profile{{Convex: true}}, quiz.Convex.Profile())
	assert.Equal(t, catalog.Profile{{Concave: true}}, quiz.Concave.Profile())
	assert.Equal(t, catalog.Profile{{}}, quiz.NonDCP.Profile())

	assert.True(t, quiz.Convex.RequireCompliant())
	assert.False(t, quiz.NonDCP.RequireCompliant())

	assert.Equal(t, "convex", quiz.Convex.String())
	assert.Equal(t, "concave", quiz.Concave.String())
	assert.Equal(t, "non-DCP", quiz.NonDCP.String())

	for _, s := range []string{"convex", " Concave", "NON-DCP", "nondcp"} {
		_, err := quiz.ParseKind(s)
		require.NoError(t, err, s)
	}
	_, err := quiz.ParseKind("affine")
	require.ErrorIs(t, err, quiz.ErrUnknownKind)
}

func TestParseDifficulty(t *testing.T) {
	t.Parallel()

	d, err := quiz.ParseDifficulty("medium")
	require.NoError(t, err)
	require.Equal(t, quiz.Medium, d)

	_, err = quiz.ParseDifficulty("expert")
	require.ErrorIs(t, err, quiz.ErrUnknownDifficulty)
}

func TestBuilder_UsesPreset(t *testing.T) {
	t.Parallel()

	g := &fakeGen{}
	b := quiz.NewBuilder(g, pick(1), nil)

	ex, err := b.New(quiz.Hard)
	require.NoError(t, err)
	require.Equal(t, quiz.Concave, ex.Kind)
	require.Equal(t, "concave", ex.Answer)
	require.Equal(t, "max(x, y)", ex.Expression)
	require.Equal(t, quiz.DefaultPresets()[quiz.Hard], ex.Params)
	_, err = uuid.Parse(ex.ID)
	require.NoError(t, err)

	require.Len(t, g.calls, 1)
	require.Equal(t, []catalog.Profile{{{Concave: true}}}, g.calls[0].profiles)
	require.Equal(t, 0.01, g.calls[0].pTerm)
	require.Equal(t, 5.0, g.calls[0].growth)
	require.True(t, g.calls[0].compliant)
}

func TestBuilder_EscalatesNonDCP(t *testing.T) {
	t.Parallel()

	g := &fakeGen{err: generator.ErrViolationUnavailable}
	b := quiz.NewBuilder(g, pick(0), nil)

	_, err := b.NewOfKind(quiz.NonDCP, quiz.Easy)
	require.ErrorIs(t, err, generator.ErrViolationUnavailable)
	require.Len(t, g.calls, 3)
	require.Equal(t, 20.0, g.calls[0].growth)
	require.Equal(t, 10.0, g.calls[1].growth)
	require.Equal(t, 5.0, g.calls[2].growth)
	for _, c := range g.calls {
		require.False(t, c.compliant)
	}

	// Compliant kinds never escalate.
	g.calls = nil
	_, err = b.NewOfKind(quiz.Convex, quiz.Easy)
	require.ErrorIs(t, err, generator.ErrViolationUnavailable)
	require.Len(t, g.calls, 1)
}

func TestBuilder_Errors(t *testing.T) {
	t.Parallel()

	b := quiz.NewBuilder(&fakeGen{}, pick(0), nil)
	_, err := b.New("Expert")
	require.ErrorIs(t, err, quiz.ErrUnknownDifficulty)

	boom := errors.New("boom")
	b = quiz.NewBuilder(&fakeGen{err: boom}, pick(0), nil)
	_, err = b.New(quiz.Easy)
	require.ErrorIs(t, err, boom)
}

func TestBuilder_RealGenerator(t *testing.T) {
	t.Parallel()

	gen := generator.New(generator.WithSeed(31))
	b := quiz.NewBuilder(gen, rand.New(rand.NewSource(31)), nil)

	for _, d := range quiz.Difficulties {
		for _, k := range quiz.Kinds {
			ex, err := b.NewOfKind(k, d)
			require.NoError(t, err, "%s/%s", k, d)
			require.NotEmpty(t, ex.Expression)
			require.Equal(t, k.Answer().String(), ex.Answer)
			require.Equal(t, d, ex.Difficulty)
		}
	}

	// Easy cannot host a violation; the builder moves on to Medium.
	ex, err := b.NewOfKind(quiz.NonDCP, quiz.Easy)
	require.NoError(t, err)
	require.NotEqual(t, quiz.DefaultPresets()[quiz.Easy], ex.Params)
	require.Equal(t, quiz.Easy, ex.Difficulty)
}
