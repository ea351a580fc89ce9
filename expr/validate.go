// SPDX-License-Identifier: MIT
// Package: dcpgen/expr

package expr

import "fmt"

// Validate checks the structural invariants of a generated tree:
//   - every node has a production;
//   - every node has exactly Arity children;
//   - every leaf is a terminal production.
//
// The first violation in preorder is returned, wrapped with the node's
// preorder index and production name.
func Validate(n *Node) error {
	if n == nil {
		return ErrNilNode
	}

	var (
		err   error
		index int
	)
	Walk(n, func(n *Node, _ int) bool {
		if err != nil {
			return false
		}
		index++
		switch {
		case n.Production == nil:
			err = fmt.Errorf("node %d: %w", index, ErrNilNode)
		case len(n.Children) != n.Production.Arity:
			err = fmt.Errorf("node %d (%s): %d children, arity %d: %w",
				index, n.Production.Name, len(n.Children), n.Production.Arity, ErrArityMismatch)
		case n.IsLeaf() && !n.Production.Terminal:
			err = fmt.Errorf("node %d (%s): %w", index, n.Production.Name, ErrNonTerminalLeaf)
		}
		for _, c := range n.Children {
			if c == nil && err == nil {
				err = fmt.Errorf("node %d (%s): nil child: %w", index, n.Production.Name, ErrNilNode)
			}
		}
		return err == nil
	})

	return err
}
