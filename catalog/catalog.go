// SPDX-License-Identifier: MIT
// Package: dcpgen/catalog
//
// catalog.go: the immutable, ordered production table.
//
// Contract:
//   - Order is the table order; every accessor preserves it so that seeded
//     generation is reproducible.
//   - Productions are handed out as shared *Production values and MUST NOT
//     be mutated by callers. Accessors return fresh slices.
//   - A Catalog is safe for concurrent readers; it has no writers.

package catalog

import (
	"fmt"
	"math"
)

// Catalog is a read-only set of productions with a cached terminal list.
type Catalog struct {
	productions []*Production
	terminals   []*Production
	byName      map[string]*Production
}

// New copies prods into a Catalog after structural validation.
//
// Rules (first violation wins, in row order):
//   - name non-empty and unique                       (ErrInvalidProduction / ErrDuplicateName)
//   - weight finite and > 0                           (ErrInvalidProduction)
//   - terminal ⇒ arity 0 and no arguments            (ErrInvalidProduction)
//   - non-terminal ⇒ arity ≥ 1, positions in [0,arity) (ErrInvalidProduction)
//   - non-terminal ⇒ non-empty infix                  (ErrInvalidProduction)
//   - at least one terminal in the table              (ErrNoTerminal)
//
// Complexity: O(P + A) where A is the total number of argument constraints.
func New(prods []Production) (*Catalog, error) {
	c := &Catalog{
		productions: make([]*Production, 0, len(prods)),
		byName:      make(map[string]*Production, len(prods)),
	}

	for i := range prods {
		p := prods[i] // copy; the caller keeps ownership of its slice
		p.Arguments = append([]Constraint(nil), p.Arguments...)

		if err := checkProduction(i, &p); err != nil {
			return nil, err
		}
		if _, dup := c.byName[p.Name]; dup {
			return nil, fmt.Errorf("row %d (%s): %w", i, p.Name, ErrDuplicateName)
		}

		c.productions = append(c.productions, &p)
		c.byName[p.Name] = &p
		if p.Terminal {
			c.terminals = append(c.terminals, &p)
		}
	}

	if len(c.terminals) == 0 {
		return nil, ErrNoTerminal
	}

	return c, nil
}

// checkProduction enforces the per-row structural rules documented on New.
func checkProduction(i int, p *Production) error {
	if p.Name == "" {
		return fmt.Errorf("row %d: empty name: %w", i, ErrInvalidProduction)
	}
	if math.IsNaN(p.Weight) || math.IsInf(p.Weight, 0) || p.Weight <= 0 {
		return fmt.Errorf("row %d (%s): weight=%g must be > 0: %w", i, p.Name, p.Weight, ErrInvalidProduction)
	}
	if p.Terminal {
		if p.Arity != 0 || len(p.Arguments) != 0 {
			return fmt.Errorf("row %d (%s): terminal with arity=%d and %d arguments: %w",
				i, p.Name, p.Arity, len(p.Arguments), ErrInvalidProduction)
		}
		return nil
	}
	if p.Arity < 1 {
		return fmt.Errorf("row %d (%s): non-terminal with arity=%d: %w", i, p.Name, p.Arity, ErrInvalidProduction)
	}
	if p.Infix == "" {
		return fmt.Errorf("row %d (%s): non-terminal without infix: %w", i, p.Name, ErrInvalidProduction)
	}
	for _, a := range p.Arguments {
		if a.Position < 0 || a.Position >= p.Arity {
			return fmt.Errorf("row %d (%s): argument position %d not in [0,%d): %w",
				i, p.Name, a.Position, p.Arity, ErrInvalidProduction)
		}
	}

	return nil
}

// Productions returns every production in table order.
func (c *Catalog) Productions() []*Production {
	return append([]*Production(nil), c.productions...)
}

// Terminals returns every terminal production in table order. Never empty.
func (c *Catalog) Terminals() []*Production {
	return append([]*Production(nil), c.terminals...)
}

// WithArity returns the productions whose arity equals n, in table order.
func (c *Catalog) WithArity(n int) []*Production {
	var out []*Production
	for _, p := range c.productions {
		if p.Arity == n {
			out = append(out, p)
		}
	}
	return out
}

// Lookup returns the production registered under name.
func (c *Catalog) Lookup(name string) (*Production, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Len reports the number of productions.
func (c *Catalog) Len() int { return len(c.productions) }
