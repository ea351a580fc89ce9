// SPDX-License-Identifier: MIT
// Package: dcpgen/generator
//
// api.go: public entry points.

package generator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/dcpgen/catalog"
	"github.com/katalvlaran/dcpgen/expr"
)

const methodExpression = "Expression"

// Result is the outcome of one generation request.
type Result struct {
	// Tree is the final (possibly mutated) tree.
	Tree *expr.Node
	// Expression is Tree rendered for display.
	Expression string
	// Violated reports whether a node was replaced by InjectViolation.
	Violated bool
	// Attempts is the number of trees generated to reach this result.
	Attempts int
}

// Generate builds a tree for profiles and, unless requireCompliant is set,
// injects a violation into it.
//
// A tree that cannot take a violation (too few internal nodes, or no swapped
// counterpart for the drawn node) is discarded and a new one generated, up to
// the configured number of attempts; then ErrViolationUnavailable is returned.
// The caller keeps the intended curvature class as the expected answer: the
// rendered text of a violated tree no longer derives it.
func (g *Generator) Generate(profiles []catalog.Profile, pTerm, growth float64, requireCompliant bool) (Result, error) {
	if err := checkRequest(methodExpression, profiles, pTerm, growth); err != nil {
		return Result{}, err
	}

	attempts := 1
	if !requireCompliant {
		attempts = g.cfg.violationAttempts
	}

	for i := 1; i <= attempts; i++ {
		tree, err := g.Tree(profiles, pTerm, growth)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", methodExpression, err)
		}
		if requireCompliant {
			return Result{Tree: tree, Expression: expr.Render(tree), Attempts: i}, nil
		}
		if g.InjectViolation(tree) {
			return Result{Tree: tree, Expression: expr.Render(tree), Violated: true, Attempts: i}, nil
		}
		g.cfg.log.Debug("tree rejected for violation, retrying",
			zap.Int("attempt", i), zap.Int("internal", expr.CountInternal(tree)))
	}

	g.cfg.metrics.violation(OutcomeUnavailable)
	return Result{}, fmt.Errorf("%s: %d attempts: %w", methodExpression, attempts, ErrViolationUnavailable)
}

// Expression is Generate reduced to the rendered string.
func (g *Generator) Expression(profiles []catalog.Profile, pTerm, growth float64, requireCompliant bool) (string, error) {
	res, err := g.Generate(profiles, pTerm, growth, requireCompliant)
	if err != nil {
		return "", err
	}
	return res.Expression, nil
}

// GenerateExpression builds a one-off Generator from opts and returns one
// rendered expression.
func GenerateExpression(profiles []catalog.Profile, pTerm, growth float64, requireCompliant bool, opts ...Option) (string, error) {
	return New(opts...).Expression(profiles, pTerm, growth, requireCompliant)
}
