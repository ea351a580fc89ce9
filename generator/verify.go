// SPDX-License-Identifier: MIT
// Package: dcpgen/generator

package generator

import (
	"fmt"

	"github.com/katalvlaran/dcpgen/catalog"
	"github.com/katalvlaran/dcpgen/expr"
)

// Verify checks a tree against the constraints it was generated under:
//   - the tree is structurally valid (expr.Validate);
//   - when requested profiles are given, an internal root matches one of them;
//   - every internal child matches at least one alternative its parent
//     declares for that position.
//
// Terminal children are not checked: the fallback policy may place any
// terminal in any slot.
func Verify(root *expr.Node, requested ...catalog.Profile) error {
	if err := expr.Validate(root); err != nil {
		return err
	}

	if len(requested) > 0 && !root.IsLeaf() {
		ok := false
		for _, prof := range requested {
			if Matches(root.Production, prof, false) {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("root %s matches no requested profile: %w", root.Production.Name, ErrNotCompliant)
		}
	}

	var err error
	expr.Walk(root, func(n *expr.Node, depth int) bool {
		if err != nil {
			return false
		}
		for pos, c := range n.Children {
			if c.IsLeaf() {
				continue
			}
			if !Matches(c.Production, n.Production.ArgumentProfile(pos), false) {
				err = fmt.Errorf("%s at depth %d, slot %d of %s: %w",
					c.Production.Name, depth+1, pos, n.Production.Name, ErrNotCompliant)
				return false
			}
		}
		return true
	})

	return err
}
