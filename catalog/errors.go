// SPDX-License-Identifier: MIT
// Package: dcpgen/catalog
//
// errors.go: sentinel errors for the catalog package.
//
// Callers MUST use errors.Is(err, ErrX); loaders wrap these sentinels with
// the offending row name or index via %w.

package catalog

import "errors"

var (
	// ErrNoTerminal indicates a table without any terminal production.
	// The generator cannot honor its terminal fallback without one, so this
	// is a fatal configuration defect.
	ErrNoTerminal = errors.New("catalog: no terminal production")

	// ErrInvalidProduction indicates a row that breaks a structural rule:
	// a terminal with arguments or non-zero arity, a function with arity 0,
	// or an argument position outside [0, arity).
	ErrInvalidProduction = errors.New("catalog: invalid production")

	// ErrDuplicateName indicates two productions with the same name.
	ErrDuplicateName = errors.New("catalog: duplicate production name")

	// ErrInvalidTable indicates a table that cannot be decoded or fails
	// field validation (weights, flag names, missing names).
	ErrInvalidTable = errors.New("catalog: invalid table")
)
