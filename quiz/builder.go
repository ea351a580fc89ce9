// SPDX-License-Identifier: MIT
// Package: dcpgen/quiz

package quiz

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/dcpgen/catalog"
	"github.com/katalvlaran/dcpgen/generator"
)

// Generator is the part of *generator.Generator the builder needs.
type Generator interface {
	Expression(profiles []catalog.Profile, pTerm, growth float64, requireCompliant bool) (string, error)
}

// Builder creates exercises from a generator and a preset table.
type Builder struct {
	gen     Generator
	src     generator.Source
	presets map[Difficulty]Params
}

// NewBuilder returns a Builder. src draws the kind of each exercise; a nil
// presets map selects DefaultPresets.
func NewBuilder(gen Generator, src generator.Source, presets map[Difficulty]Params) *Builder {
	if presets == nil {
		presets = DefaultPresets()
	}
	return &Builder{gen: gen, src: src, presets: presets}
}

// New draws a kind uniformly from Kinds and builds an exercise of it.
func (b *Builder) New(d Difficulty) (Exercise, error) {
	return b.NewOfKind(Kinds[b.src.Intn(len(Kinds))], d)
}

// NewOfKind builds an exercise of kind k at difficulty d. For NonDCP, when
// no violation can be injected at d, harder presets are tried in order.
func (b *Builder) NewOfKind(k Kind, d Difficulty) (Exercise, error) {
	tiers, err := b.tiers(d, k)
	if err != nil {
		return Exercise{}, err
	}

	var lastErr error
	for _, tier := range tiers {
		p := b.presets[tier]
		text, err := b.gen.Expression([]catalog.Profile{k.Profile()}, p.TerminateProbability, p.GrowthFactor, k.RequireCompliant())
		if errors.Is(err, generator.ErrViolationUnavailable) {
			lastErr = err
			continue
		}
		if err != nil {
			return Exercise{}, fmt.Errorf("quiz: %s at %s: %w", k, tier, err)
		}

		return Exercise{
			ID:         uuid.NewString(),
			Kind:       k,
			Difficulty: d,
			Params:     p,
			Expression: text,
			Answer:     k.Answer().String(),
		}, nil
	}

	return Exercise{}, fmt.Errorf("quiz: %s from %s: %w", k, d, lastErr)
}

// tiers lists the presets to try: d itself, then (for NonDCP only) every
// harder preset present in the table.
func (b *Builder) tiers(d Difficulty, k Kind) ([]Difficulty, error) {
	if _, ok := b.presets[d]; !ok {
		return nil, fmt.Errorf("%q: %w", d, ErrUnknownDifficulty)
	}
	out := []Difficulty{d}
	if k.RequireCompliant() {
		return out, nil
	}

	harder := false
	for _, cand := range Difficulties {
		if cand == d {
			harder = true
			continue
		}
		if _, ok := b.presets[cand]; harder && ok {
			out = append(out, cand)
		}
	}

	return out, nil
}
