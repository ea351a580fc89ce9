// Package generator builds random expression trees that honor curvature and
// sign constraints from a catalog, and can corrupt a tree on purpose so that
// its displayed text breaks the composition rules it was built under.
//
// Pipeline for one request:
//
//	profiles ──Tree──► *expr.Node ──InjectViolation?──► *expr.Node ──expr.Render──► string
//
// Components:
//
//   - Matches / MatchesAttribute: the equal-or-wildcard predicate. A facet of
//     a production matches a requested facet when the values are equal or the
//     production's flag is true. Terminal-ness must match exactly.
//   - Choose: weighted choice over a non-empty candidate list.
//   - Generator.Tree: recursive construction. At each level a Bernoulli draw
//     with probability pTerm decides whether a terminal is wanted; children are
//     generated with pTerm*growth, so deeper levels terminate more often. A
//     hard recursion ceiling (WithMaxDepth) forces terminals beyond it.
//   - Generator.InjectViolation: replaces one non-root internal node with a
//     same-arity production whose curvature flags are swapped.
//   - Generator.Expression / GenerateExpression: the public entry point.
//   - Verify: checks that a tree respects every argument constraint.
//
// Fallback policy: when no production matches a request, the full terminal
// set of the catalog is used instead. This is the only place where attribute
// constraints are ignored; it is logged at debug level and counted, never
// reported as an error.
//
// Randomness: every draw goes through a Source. Use WithSeed for
// reproducible output. Without a seed the generator draws from the
// process-wide math/rand functions and is safe for concurrent use; with
// WithSeed/WithRand it owns a *rand.Rand and is not.
package generator
