// SPDX-License-Identifier: MIT
// Package: dcpgen/generator
//
// generator.go: recursive constrained tree construction.
//
// Contract:
//   - profiles non-empty, each profile non-empty  (ErrNoProfiles / ErrEmptyProfile)
//   - 0 < pTerm ≤ 1                                (ErrInvalidProbability)
//   - growth ≥ 1, finite                           (ErrInvalidGrowth)
//   - child count always equals the production's arity; every leaf is a terminal.
//
// Draw order per node (stable for a fixed seed):
//  1. Float64 for the terminal decision;
//  2. Float64 for the weighted choice;
//  3. children left to right.

package generator

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/dcpgen/catalog"
	"github.com/katalvlaran/dcpgen/expr"
)

const methodTree = "Tree"

// Generator produces expression trees from a catalog.
type Generator struct {
	cfg config
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	return &Generator{cfg: newConfig(opts...)}
}

// Catalog returns the production table in use.
func (g *Generator) Catalog() *catalog.Catalog { return g.cfg.cat }

// Tree builds a random tree whose root satisfies one of profiles.
//
// At each level a terminal is wanted with probability pTerm; the children of
// a node are generated with pTerm*growth. Nodes at depth ≥ the configured
// ceiling are always terminals.
func (g *Generator) Tree(profiles []catalog.Profile, pTerm, growth float64) (*expr.Node, error) {
	if err := checkRequest(methodTree, profiles, pTerm, growth); err != nil {
		return nil, err
	}

	root, err := g.node(profiles, pTerm, growth, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodTree, err)
	}
	g.cfg.metrics.tree(expr.Depth(root))

	return root, nil
}

func checkRequest(method string, profiles []catalog.Profile, pTerm, growth float64) error {
	if len(profiles) == 0 {
		return fmt.Errorf("%s: %w", method, ErrNoProfiles)
	}
	for i, p := range profiles {
		if len(p) == 0 {
			return fmt.Errorf("%s: profile %d: %w", method, i, ErrEmptyProfile)
		}
	}
	if math.IsNaN(pTerm) || pTerm <= 0 || pTerm > 1 {
		return fmt.Errorf("%s: pTerm=%g not in (0,1]: %w", method, pTerm, ErrInvalidProbability)
	}
	if math.IsNaN(growth) || math.IsInf(growth, 0) || growth < 1 {
		return fmt.Errorf("%s: growth=%g must be ≥ 1: %w", method, growth, ErrInvalidGrowth)
	}

	return nil
}

func (g *Generator) node(profiles []catalog.Profile, pTerm, growth float64, depth int) (*expr.Node, error) {
	terminal := g.cfg.src.Float64() < pTerm
	if !terminal && depth >= g.cfg.maxDepth {
		terminal = true
		g.cfg.metrics.ceiling()
		g.cfg.log.Debug("depth ceiling reached, forcing terminal", zap.Int("depth", depth))
	}

	candidates := collect(g.cfg.cat, profiles, terminal)
	if len(candidates) == 0 {
		candidates = g.cfg.cat.Terminals()
		g.cfg.metrics.fallback()
		g.cfg.log.Debug("no production matches, using terminal set",
			zap.Int("depth", depth), zap.Bool("terminal", terminal))
	}

	p, err := Choose(g.cfg.src, candidates)
	if err != nil {
		return nil, err
	}

	n := &expr.Node{Production: p}
	if p.Arity == 0 {
		return n, nil
	}

	n.Children = make([]*expr.Node, 0, p.Arity)
	for pos := 0; pos < p.Arity; pos++ {
		prof := p.ArgumentProfile(pos)

		var child *expr.Node
		if len(prof) == 0 {
			// Unconstrained slot: no recursion, any terminal fits.
			child, err = g.anyTerminal()
		} else {
			child, err = g.node([]catalog.Profile{prof}, pTerm*growth, growth, depth+1)
		}
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}

	return n, nil
}

func (g *Generator) anyTerminal() (*expr.Node, error) {
	p, err := Choose(g.cfg.src, g.cfg.cat.Terminals())
	if err != nil {
		return nil, err
	}
	return expr.Leaf(p), nil
}
