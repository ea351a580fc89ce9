// SPDX-License-Identifier: MIT
// Package: dcpgen/generator
//
// config.go: resolved configuration and deterministic defaults.
//
// Defaults:
//   • catalog           = catalog.Default()
//   • src               = process-wide math/rand (unseeded)
//   • maxDepth          = DefaultMaxDepth
//   • violationAttempts = DefaultViolationAttempts
//   • log               = zap.NewNop()
//   • metrics           = nil (nothing recorded)

package generator

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/dcpgen/catalog"
)

const (
	// DefaultMaxDepth is the recursion ceiling beyond which only terminals
	// are chosen.
	DefaultMaxDepth = 32

	// DefaultViolationAttempts is how many trees Expression generates while
	// looking for one that accepts an injected violation.
	DefaultViolationAttempts = 8
)

type config struct {
	cat               *catalog.Catalog
	src               Source
	maxDepth          int
	violationAttempts int
	log               *zap.Logger
	metrics           *Metrics
}

// newConfig applies opts in order over the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		src:               globalSource{},
		maxDepth:          DefaultMaxDepth,
		violationAttempts: DefaultViolationAttempts,
		log:               zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cat == nil {
		cfg.cat = catalog.Default()
	}

	return cfg
}
