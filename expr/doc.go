// Package expr defines the expression tree produced by the generator and the
// serializer that turns it into the text shown to the user.
//
// A Node pairs a catalog production with its ordered children. Trees are
// ephemeral and never share nodes: each one is built for a single request,
// optionally mutated once by the violation injector, rendered and dropped.
//
// Rendering (Render / Node.String):
//
//	leaf:      Prefix + Suffix
//	internal:  Prefix + c0 + Infix + c1 + ... + Infix + ck + Suffix
//
// A child is wrapped in parentheses only when the parent's infix is the
// subtraction separator, the child's infix is addition or subtraction and the
// child sits in the second operand slot. Nothing else is parenthesized:
// function-call templates delimit their own arguments.
//
// Render panics on a malformed tree (an internal node without a separator
// for several children); such a tree is a generator bug. Validate reports
// structural problems as errors instead.
package expr
