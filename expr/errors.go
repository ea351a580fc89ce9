// SPDX-License-Identifier: MIT
// Package: dcpgen/expr
//
// errors.go: sentinel errors reported by Validate.

package expr

import "errors"

var (
	// ErrNilNode indicates a nil node or a node without a production.
	ErrNilNode = errors.New("expr: nil node")

	// ErrArityMismatch indicates a node whose child count differs from its
	// production's arity.
	ErrArityMismatch = errors.New("expr: child count does not match arity")

	// ErrNonTerminalLeaf indicates a leaf whose production is not a terminal.
	ErrNonTerminalLeaf = errors.New("expr: leaf is not a terminal")
)
