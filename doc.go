// Package dcpgen generates random convex-optimization expressions for
// practising the Disciplined Convex Programming (DCP) composition rules.
//
// 🚀 What is dcpgen?
//
//	A small, seedable generator that brings together:
//		• A catalog of atoms (exp, log, max, norm2, quad_over_lin …) with
//		  their curvature, sign and per-argument requirements
//		• Constraint matching with "declared or wildcard" attribute flags
//		• Weighted, top-down recursive tree generation
//		• Deliberate single-node violations for non-DCP exercises
//		• Quiz assembly with Easy / Medium / Hard presets
//
// Everything is organized under a handful of subpackages:
//
//	catalog/  : attributes, productions and the embedded YAML atom table
//	expr/     : expression trees, preorder walks, rendering, JSON export
//	generator/: matcher, weighted selector, tree generator, violation injector
//	quiz/     : exercise kinds, difficulty presets, answer keys
//	config/   : YAML + environment settings for the CLI
//	cmd/dcpgen: command-line front end
//
// Quick example:
//
//	s, err := generator.GenerateExpression(
//		[]catalog.Profile{{{Convex: true}}}, 0.01, 10, true,
//		generator.WithSeed(42))
//	// s == "max(exp(x), y)"-like convex expression
//
//	go get github.com/katalvlaran/dcpgen
package dcpgen
