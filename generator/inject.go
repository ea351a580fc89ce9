// SPDX-License-Identifier: MIT
// Package: dcpgen/generator
//
// inject.go: deliberate curvature violation.

package generator

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/dcpgen/catalog"
	"github.com/katalvlaran/dcpgen/expr"
)

// InjectViolation replaces the production of exactly one non-root internal
// node of root with a production of equal arity whose curvature flags are
// the replaced production's swapped. Children are kept as generated.
//
// The target is drawn uniformly among internal nodes 2..k in preorder (1 is
// the root). It reports whether a node was replaced; false means the tree has
// at most one internal node or the catalog holds no swapped counterpart for
// the drawn node. The tree is mutated in place.
func (g *Generator) InjectViolation(root *expr.Node) bool {
	total := expr.CountInternal(root)
	if total <= 1 {
		g.cfg.metrics.violation(OutcomeSkipped)
		return false
	}

	target := g.cfg.src.Intn(total-1) + 2

	var (
		count    int
		replaced bool
	)
	expr.Walk(root, func(n *expr.Node, depth int) bool {
		if count >= target {
			return false
		}
		if n.IsLeaf() {
			return true
		}
		count++
		if count != target {
			return true
		}

		options := swapCandidates(g.cfg.cat, n.Production)
		if len(options) == 0 {
			g.cfg.log.Debug("no swapped counterpart",
				zap.String("production", n.Production.Name), zap.Int("depth", depth))
			return false
		}
		p, err := Choose(g.cfg.src, options)
		if err != nil {
			return false
		}
		g.cfg.log.Debug("violation injected",
			zap.String("from", n.Production.Name), zap.String("to", p.Name), zap.Int("depth", depth))
		n.Production = p
		replaced = true
		return false
	})

	if replaced {
		g.cfg.metrics.violation(OutcomeInjected)
	} else {
		g.cfg.metrics.violation(OutcomeNoCandidate)
	}

	return replaced
}

// swapCandidates lists the productions with p's arity and p's curvature
// flags exchanged, in table order. A production whose convex and concave
// flags agree has no counterpart: swapping would leave its curvature as is.
func swapCandidates(cat *catalog.Catalog, p *catalog.Production) []*catalog.Production {
	if p.Signature.Convex == p.Signature.Concave {
		return nil
	}
	var out []*catalog.Production
	for _, c := range cat.WithArity(p.Arity) {
		if c.Signature.Convex == p.Signature.Concave && c.Signature.Concave == p.Signature.Convex {
			out = append(out, c)
		}
	}
	return out
}
