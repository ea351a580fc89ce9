// SPDX-License-Identifier: MIT
// Package: dcpgen/expr
//
// node.go: tree node, constructors and structural queries.

package expr

import "github.com/katalvlaran/dcpgen/catalog"

// Node is one (production, children) pair of an expression tree.
type Node struct {
	Production *catalog.Production
	Children   []*Node
}

// Leaf returns a childless node for p.
func Leaf(p *catalog.Production) *Node {
	return &Node{Production: p}
}

// New returns a node for p with the given children in order.
func New(p *catalog.Production, children ...*Node) *Node {
	return &Node{Production: p, Children: children}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Walk visits the tree rooted at n in preorder. fn receives each node and its
// depth (root = 0); returning false skips that node's subtree.
// Complexity: O(N) time, O(depth) stack.
func Walk(n *Node, fn func(n *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// CountInternal returns the number of nodes with at least one child.
func CountInternal(n *Node) int {
	count := 0
	Walk(n, func(n *Node, _ int) bool {
		if !n.IsLeaf() {
			count++
		}
		return true
	})
	return count
}

// Size returns the number of nodes in the tree.
func Size(n *Node) int {
	count := 0
	Walk(n, func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Depth returns the number of edges on the longest root-to-leaf path.
// A single leaf has depth 0; a nil tree has depth -1.
func Depth(n *Node) int {
	deepest := -1
	Walk(n, func(_ *Node, d int) bool {
		if d > deepest {
			deepest = d
		}
		return true
	})
	return deepest
}

// Clone returns a deep copy of the node structure. Productions are shared;
// they belong to the catalog and are immutable.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	out := &Node{Production: n.Production}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = Clone(c)
		}
	}
	return out
}
