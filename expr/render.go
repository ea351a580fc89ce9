// SPDX-License-Identifier: MIT
// Package: dcpgen/expr
//
// render.go: tree to display string.

package expr

import (
	"fmt"
	"strings"
)

// Separators that take part in the parenthesization rule.
const (
	AddInfix      = " + "
	SubtractInfix = " - "
)

// Render serializes the tree rooted at n. It is pure: rendering the same
// tree twice yields the same string.
// Complexity: O(N + len(output)).
func Render(n *Node) string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

// String implements fmt.Stringer via Render.
func (n *Node) String() string { return Render(n) }

func render(b *strings.Builder, n *Node) {
	if n == nil || n.Production == nil {
		panic("expr: render of nil node or production")
	}
	p := n.Production

	b.WriteString(p.Prefix)
	if len(n.Children) > 0 && p.Infix == "" {
		panic(fmt.Sprintf("expr: production %q has %d children but no infix", p.Name, len(n.Children)))
	}
	for i, c := range n.Children {
		if i > 0 {
			b.WriteString(p.Infix)
		}
		if needsParens(n, c, i) {
			b.WriteByte('(')
			render(b, c)
			b.WriteByte(')')
			continue
		}
		render(b, c)
	}
	b.WriteString(p.Suffix)
}

// needsParens keeps subtraction left-associative in display: only the right
// operand of " - " is wrapped, and only when it is itself a sum or difference.
func needsParens(parent, child *Node, pos int) bool {
	if pos != 1 || parent.Production.Infix != SubtractInfix {
		return false
	}
	in := child.Production.Infix
	return in == AddInfix || in == SubtractInfix
}
