// SPDX-License-Identifier: MIT
// Package: dcpgen/generator
//
// options.go: functional options for New.
//
// Option constructors validate their input and PANIC on meaningless values;
// generation itself never panics on user input.

package generator

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/dcpgen/catalog"
)

// Option customizes a Generator.
type Option func(*config)

// WithCatalog selects the production table. Panics on nil.
func WithCatalog(c *catalog.Catalog) Option {
	if c == nil {
		panic("generator: WithCatalog(nil)")
	}
	return func(cfg *config) {
		cfg.cat = c
	}
}

// WithSeed makes generation reproducible with a private *rand.Rand.
// The resulting Generator must not be shared between goroutines.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.src = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for every draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return WithSource(r)
}

// WithSource uses src for every draw. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("generator: WithSource(nil)")
	}
	return func(cfg *config) {
		cfg.src = src
	}
}

// WithMaxDepth sets the recursion ceiling: nodes at depth ≥ limit are always
// terminals. Panics if limit < 1.
func WithMaxDepth(limit int) Option {
	if limit < 1 {
		panic("generator: WithMaxDepth(limit<1)")
	}
	return func(cfg *config) {
		cfg.maxDepth = limit
	}
}

// WithViolationAttempts bounds the number of trees Expression generates when
// a non-compliant expression is requested. Panics if n < 1.
func WithViolationAttempts(n int) Option {
	if n < 1 {
		panic("generator: WithViolationAttempts(n<1)")
	}
	return func(cfg *config) {
		cfg.violationAttempts = n
	}
}

// WithLogger sets the logger for debug diagnostics. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(cfg *config) {
		cfg.log = l
	}
}

// WithMetrics records generation counters into m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("generator: WithMetrics(nil)")
	}
	return func(cfg *config) {
		cfg.metrics = m
	}
}
