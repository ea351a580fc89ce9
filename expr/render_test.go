// SPDX-License-Identifier: MIT
// Package expr_test covers rendering, traversal and validation of trees.
package expr_test

import (
	"testing"

	"github.com/katalvlaran/dcpgen/catalog"
	"github.com/katalvlaran/dcpgen/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tree *expr.Node
		want string
	}{
		{"leaf", leaf(pX), "x"},
		{"sum of leaves", expr.New(pAdd, leaf(pX), leaf(pY)), "x + y"},
		{"difference with sum on the right",
			expr.New(pSub, leaf(pX), expr.New(pAdd, leaf(pY), leaf(pZ))), "x - (y + z)"},
		{"difference with difference on the right",
			expr.New(pSub, leaf(pX), expr.New(pSub, leaf(pY), leaf(pZ))), "x - (y - z)"},
		{"difference with call on the right",
			expr.New(pSub, leaf(pX), expr.New(pMax, leaf(pY), leaf(pZ))), "x - max(y, z)"},
		{"difference on the left stays bare",
			expr.New(pSub, expr.New(pSub, leaf(pX), leaf(pY)), leaf(pZ)), "x - y - z"},
		{"sum never wraps",
			expr.New(pAdd, leaf(pX), expr.New(pSub, leaf(pY), leaf(pZ))), "x + y - z"},
		{"unary call", expr.New(pExp, expr.New(pAdd, leaf(pX), leaf(pY))), "exp(x + y)"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, expr.Render(tc.tree))
			require.Equal(t, tc.want, tc.tree.String())
		})
	}
}

func TestRender_Pure(t *testing.T) {
	t.Parallel()

	tree := expr.New(pSub, leaf(pX), expr.New(pMax, expr.New(pAdd, leaf(pY), leaf(pZ)), leaf(pX)))
	first := expr.Render(tree)
	require.Equal(t, first, expr.Render(tree))
}

func TestRender_Malformed(t *testing.T) {
	t.Parallel()

	noInfix := &catalog.Production{Name: "bad", Prefix: "f(", Suffix: ")", Arity: 2, Weight: 1}
	require.Panics(t, func() { expr.Render(expr.New(noInfix, leaf(pX), leaf(pY))) })
	require.Panics(t, func() { expr.Render(nil) })

	// Without an infix a production takes no children, unary ones included.
	unary := &catalog.Production{Name: "neg", Prefix: "-(", Suffix: ")", Arity: 1, Weight: 1}
	require.Panics(t, func() { expr.Render(expr.New(unary, leaf(pX))) })
	assert.Equal(t, "exp(x)", expr.Render(expr.New(pExp, leaf(pX))))
}
