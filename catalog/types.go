// SPDX-License-Identifier: MIT
// Package: dcpgen/catalog
//
// types.go: attribute flags, constraints, profiles and productions.

package catalog

import "strings"

// Attribute is the (sign, curvature) flag quadruple shared by production
// signatures, argument constraints and requested profiles.
//
// On a production the true value of a flag is a wildcard (see package doc);
// on a request every flag is taken literally.
type Attribute struct {
	Positive bool `json:"positive"`
	Negative bool `json:"negative"`
	Convex   bool `json:"convex"`
	Concave  bool `json:"concave"`
}

// Swapped returns a copy with the curvature flags exchanged (convex<->concave).
// Sign flags are left untouched.
func (a Attribute) Swapped() Attribute {
	a.Convex, a.Concave = a.Concave, a.Convex
	return a
}

// Curvature classifies the curvature flags.
func (a Attribute) Curvature() Curvature {
	switch {
	case a.Convex && a.Concave:
		return CurvatureAffine
	case a.Convex:
		return CurvatureConvex
	case a.Concave:
		return CurvatureConcave
	default:
		return CurvatureUnknown
	}
}

// Sign classifies the sign flags.
func (a Attribute) Sign() Sign {
	switch {
	case a.Positive && a.Negative:
		return SignAny
	case a.Positive:
		return SignPositive
	case a.Negative:
		return SignNegative
	default:
		return SignUnknown
	}
}

// String renders the set flags in canonical order, e.g. "positive|convex".
// An attribute with no flag set renders as "none".
func (a Attribute) String() string {
	parts := make([]string, 0, 4)
	if a.Positive {
		parts = append(parts, FlagPositive)
	}
	if a.Negative {
		parts = append(parts, FlagNegative)
	}
	if a.Convex {
		parts = append(parts, FlagConvex)
	}
	if a.Concave {
		parts = append(parts, FlagConcave)
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Curvature is the DCP curvature class of an expression.
type Curvature int

const (
	CurvatureUnknown Curvature = iota // neither convex nor concave (non-DCP)
	CurvatureConvex
	CurvatureConcave
	CurvatureAffine // both convex and concave
)

// String returns the display name used by the quiz.
func (c Curvature) String() string {
	switch c {
	case CurvatureConvex:
		return "convex"
	case CurvatureConcave:
		return "concave"
	case CurvatureAffine:
		return "affine"
	default:
		return "non-DCP"
	}
}

// Sign is the sign class of an expression.
type Sign int

const (
	SignUnknown Sign = iota
	SignPositive
	SignNegative
	SignAny
)

// String returns a lowercase name.
func (s Sign) String() string {
	switch s {
	case SignPositive:
		return "positive"
	case SignNegative:
		return "negative"
	case SignAny:
		return "any"
	default:
		return "unknown"
	}
}

// Constraint is one alternative argument shape accepted at Position.
// A production may list several constraints for the same position.
type Constraint struct {
	Position int `json:"position"`
	Attribute
}

// Profile is a disjunction of acceptable attributes for one tree position.
// It is a multiset: duplicates are kept because each copy raises the
// selection odds of the productions it matches.
type Profile []Attribute

// Production is one immutable grammar entry of the catalog.
type Production struct {
	// Name identifies the production inside its catalog (unique).
	Name string
	// Prefix, Infix and Suffix form the display template:
	// Prefix + c0 + Infix + c1 + ... + Suffix.
	Prefix string
	Infix  string
	Suffix string
	// Terminal productions have Arity 0 and no Arguments.
	Terminal bool
	Arity    int
	// Weight is the relative selection weight (> 0).
	Weight float64
	// Signature describes what the production yields as a whole.
	Signature Attribute
	// Arguments lists alternative constraints per position, in table order.
	Arguments []Constraint
}

// ArgumentProfile gathers every alternative constraint declared for pos, in
// declaration order. An empty result means the slot is unconstrained.
// Complexity: O(len(Arguments)).
func (p *Production) ArgumentProfile(pos int) Profile {
	var out Profile
	for _, c := range p.Arguments {
		if c.Position == pos {
			out = append(out, c.Attribute)
		}
	}
	return out
}

// Template renders the display template with "_" in place of every argument,
// e.g. "max(_, _)". Terminals render their literal text.
func (p *Production) Template() string {
	if p.Arity == 0 {
		return p.Prefix + p.Suffix
	}
	slots := make([]string, p.Arity)
	for i := range slots {
		slots[i] = "_"
	}
	return p.Prefix + strings.Join(slots, p.Infix) + p.Suffix
}

// String returns the production name and its template.
func (p *Production) String() string {
	return p.Name + " " + p.Template()
}
