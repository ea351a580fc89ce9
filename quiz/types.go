// SPDX-License-Identifier: MIT
// Package: dcpgen/quiz

package quiz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dcpgen/catalog"
)

// ErrUnknownKind indicates an unrecognized kind name.
var ErrUnknownKind = errors.New("quiz: unknown kind")

// ErrUnknownDifficulty indicates an unrecognized difficulty name.
var ErrUnknownDifficulty = errors.New("quiz: unknown difficulty")

// Kind is the curvature class an exercise is generated to represent.
type Kind int

const (
	Convex Kind = iota
	Concave
	NonDCP
)

// Kinds lists every kind in draw order.
var Kinds = []Kind{Convex, Concave, NonDCP}

// Profile returns the request for the root of the tree.
func (k Kind) Profile() catalog.Profile {
	switch k {
	case Convex:
		return catalog.Profile{{Convex: true}}
	case Concave:
		return catalog.Profile{{Concave: true}}
	default:
		return catalog.Profile{{}}
	}
}

// RequireCompliant reports whether the tree must be left unmodified.
func (k Kind) RequireCompliant() bool { return k != NonDCP }

// Answer returns the curvature the user is expected to pick.
func (k Kind) Answer() catalog.Curvature {
	switch k {
	case Convex:
		return catalog.CurvatureConvex
	case Concave:
		return catalog.CurvatureConcave
	default:
		return catalog.CurvatureUnknown
	}
}

// String returns the answer's display name.
func (k Kind) String() string { return k.Answer().String() }

// ParseKind accepts "convex", "concave" and "non-dcp"/"nondcp" (any case).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "convex":
		return Convex, nil
	case "concave":
		return Concave, nil
	case "non-dcp", "nondcp":
		return NonDCP, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Params are the generator knobs of one difficulty.
type Params struct {
	TerminateProbability float64 `yaml:"terminate_probability" json:"terminate_probability" validate:"gt=0,lte=1"`
	GrowthFactor         float64 `yaml:"growth_factor" json:"growth_factor" validate:"gte=1"`
}

// Difficulty names a preset of Params.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists the presets from easiest to hardest.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// DefaultPresets returns a fresh copy of the built-in difficulty table.
func DefaultPresets() map[Difficulty]Params {
	return map[Difficulty]Params{
		Easy:   {TerminateProbability: 0.05, GrowthFactor: 20},
		Medium: {TerminateProbability: 0.01, GrowthFactor: 10},
		Hard:   {TerminateProbability: 0.01, GrowthFactor: 5},
	}
}

// ParseDifficulty accepts a preset name in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownDifficulty)
}

// Exercise is one generated quiz question.
type Exercise struct {
	ID         string     `json:"id"`
	Kind       Kind       `json:"-"`
	Difficulty Difficulty `json:"difficulty"`
	Params     Params     `json:"params"`
	Expression string     `json:"expression"`
	Answer     string     `json:"answer"`
}
