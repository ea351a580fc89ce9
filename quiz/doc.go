// Package quiz assembles curvature-classification exercises: it picks the
// class an expression should represent, asks the generator for it at a
// difficulty preset, and records the class as the expected answer.
//
// The expected answer is always the intended class, never a re-derivation
// from the final tree: a non-DCP exercise is a convex or concave tree with one
// node deliberately swapped, and its text is meant to be classified as
// non-DCP.
//
// Difficulty presets:
//
//	Easy    pTerm 0.05  growth 20
//	Medium  pTerm 0.01  growth 10
//	Hard    pTerm 0.01  growth 5
//
// Easy trees never have a non-root internal node, so they cannot carry an
// injected violation. For a non-DCP exercise the builder escalates to the
// next harder preset until generation succeeds; Exercise.Params records the
// parameters actually used.
package quiz
