package expr_test

import (
	"github.com/katalvlaran/dcpgen/catalog"
	"github.com/katalvlaran/dcpgen/expr"
)

// Hand-built productions; tests do not depend on the default table.
var (
	pX = &catalog.Production{Name: "x", Prefix: "x", Terminal: true, Weight: 1,
		Signature: catalog.Attribute{Convex: true, Concave: true}}
	pY = &catalog.Production{Name: "y", Prefix: "y", Terminal: true, Weight: 1,
		Signature: catalog.Attribute{Convex: true, Concave: true}}
	pZ = &catalog.Production{Name: "z", Prefix: "z", Terminal: true, Weight: 1,
		Signature: catalog.Attribute{Convex: true, Concave: true}}
	pAdd = &catalog.Production{Name: "add", Infix: " + ", Arity: 2, Weight: 1,
		Signature: catalog.Attribute{Convex: true}}
	pSub = &catalog.Production{Name: "sub", Infix: " - ", Arity: 2, Weight: 1,
		Signature: catalog.Attribute{Convex: true}}
	pMax = &catalog.Production{Name: "max", Prefix: "max(", Infix: ", ", Suffix: ")", Arity: 2, Weight: 1,
		Signature: catalog.Attribute{Convex: true}}
	pExp = &catalog.Production{Name: "exp", Prefix: "exp(", Infix: ", ", Suffix: ")", Arity: 1, Weight: 1,
		Signature: catalog.Attribute{Positive: true, Convex: true}}
)

func leaf(p *catalog.Production) *expr.Node { return expr.Leaf(p) }
