// SPDX-License-Identifier: MIT
// Package: dcpgen/generator
//
// errors.go: sentinel errors for the generator package.
//
// Error policy:
//   • Callers branch with errors.Is; messages are wrapped with the method
//     name ("Tree: ...: %w").
//   • Option constructors panic on meaningless values; algorithms return
//     errors and never panic on user input.

package generator

import "errors"

// ErrEmptyCandidateSet is returned by Choose for an empty candidate list.
// Through Generator it can only surface if the catalog has no terminal,
// which catalog.New already rejects.
var ErrEmptyCandidateSet = errors.New("generator: empty candidate set")

// ErrNoProfiles indicates a request with no profile at all.
var ErrNoProfiles = errors.New("generator: no requested profiles")

// ErrEmptyProfile indicates a requested profile with no attribute tuple.
var ErrEmptyProfile = errors.New("generator: empty requested profile")

// ErrInvalidProbability indicates a termination probability outside (0,1].
var ErrInvalidProbability = errors.New("generator: termination probability out of range")

// ErrInvalidGrowth indicates a growth factor below 1 or not finite.
var ErrInvalidGrowth = errors.New("generator: growth factor out of range")

// ErrViolationUnavailable indicates that a non-compliant expression was
// requested but no generated tree offered a node to corrupt within the
// configured number of attempts.
var ErrViolationUnavailable = errors.New("generator: no violation could be injected")

// ErrNotCompliant is returned by Verify for a tree whose internal node does
// not satisfy its parent's argument constraints.
var ErrNotCompliant = errors.New("generator: tree is not compliant")
