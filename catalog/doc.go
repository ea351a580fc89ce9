// Package catalog holds the operator grammar used to generate curvature-tagged
// expressions: attribute flags, productions and the immutable catalog that
// groups them.
//
// A Production is either a terminal (a variable or an affine constant
// expression with arity 0) or a function with one or more argument slots.
// Every production carries a Signature and, for functions, a list of
// alternative argument Constraints per slot.
//
// Flag semantics:
//
//	An Attribute flag set to true on a production means "this production can
//	supply or accept this facet whatever is requested". It is a wildcard, not
//	a statement that the production always has the property. A flag set to
//	false must equal the requested value. Matching lives in package generator.
//
// Data flow:
//
//	default.yaml ──Load──► rawCatalog ──validate──► []Production ──New──► *Catalog
//
// The default table is embedded in the binary and parsed once on first use
// (Default). Custom tables can be read with Load or LoadFile; both validate
// every row and reject a table with no terminal production, since the
// generator's fallback policy depends on that set being non-empty.
//
// Errors:
//
//   - ErrNoTerminal         the table has no terminal production.
//   - ErrInvalidProduction  a row breaks a structural rule (arity, positions).
//   - ErrDuplicateName      two rows share a name.
//   - ErrInvalidTable       the YAML cannot be decoded or fails field validation.
package catalog
