// SPDX-License-Identifier: MIT
// Package: dcpgen/generator
//
// match.go: the equal-or-wildcard constraint predicate.

package generator

import "github.com/katalvlaran/dcpgen/catalog"

// MatchesAttribute reports whether a production signature op can fill the
// request req. Each facet matches when op's flag equals req's flag or op's
// flag is true.
func MatchesAttribute(op, req catalog.Attribute) bool {
	return facet(op.Positive, req.Positive) &&
		facet(op.Negative, req.Negative) &&
		facet(op.Convex, req.Convex) &&
		facet(op.Concave, req.Concave)
}

func facet(op, req bool) bool { return op == req || op }

// Matches reports whether p may be used for profile: p.Terminal must equal
// requireTerminal exactly and p's signature must match at least one tuple.
func Matches(p *catalog.Production, profile catalog.Profile, requireTerminal bool) bool {
	if p.Terminal != requireTerminal {
		return false
	}
	for _, req := range profile {
		if MatchesAttribute(p.Signature, req) {
			return true
		}
	}
	return false
}

// collect appends, for every tuple of every profile, the productions of cat
// matching that tuple with the requested terminal-ness. A production that
// matches several tuples is appended once per tuple; the duplicates raise its
// selection odds.
// Complexity: O(T·P) for T tuples and P productions.
func collect(cat *catalog.Catalog, profiles []catalog.Profile, terminal bool) []*catalog.Production {
	var out []*catalog.Production
	prods := cat.Productions()
	for _, prof := range profiles {
		for _, req := range prof {
			for _, p := range prods {
				if p.Terminal == terminal && MatchesAttribute(p.Signature, req) {
					out = append(out, p)
				}
			}
		}
	}
	return out
}
