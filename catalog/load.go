// SPDX-License-Identifier: MIT
// Package: dcpgen/catalog
//
// load.go: YAML table decoding, field validation and the embedded default.
//
// Table format:
//
//	base: 1000                 # optional, default DefaultBaseWeight
//	productions:
//	  - name: abs
//	    prefix: "abs("
//	    infix: ", "
//	    suffix: ")"
//	    arity: 1
//	    signature: [positive, convex]
//	    arguments:
//	      - {position: 0, flags: [positive, convex]}
//	      - {position: 0, flags: [negative, concave]}
//
// The weight of a row is base * scale / split (scale and split default to 1).

package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultBaseWeight is the base weight rows are scaled from when a table
// does not set one.
const DefaultBaseWeight = 1000.0

// Flag names accepted in signature and argument lists.
const (
	FlagPositive = "positive"
	FlagNegative = "negative"
	FlagConvex   = "convex"
	FlagConcave  = "concave"
)

//go:embed default.yaml
var defaultTable []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog

	validate = validator.New()
)

type rawCatalog struct {
	Base        *float64        `yaml:"base" validate:"omitempty,gt=0"`
	Productions []rawProduction `yaml:"productions" validate:"required,min=1,dive"`
}

type rawProduction struct {
	Name      string          `yaml:"name" validate:"required"`
	Prefix    string          `yaml:"prefix"`
	Infix     string          `yaml:"infix"`
	Suffix    string          `yaml:"suffix"`
	Terminal  bool            `yaml:"terminal"`
	Arity     int             `yaml:"arity" validate:"gte=0"`
	Scale     *float64        `yaml:"scale" validate:"omitempty,gt=0"`
	Split     *int            `yaml:"split" validate:"omitempty,gte=1"`
	Signature []string        `yaml:"signature" validate:"dive,oneof=positive negative convex concave"`
	Arguments []rawConstraint `yaml:"arguments" validate:"dive"`
}

type rawConstraint struct {
	Position int      `yaml:"position" validate:"gte=0"`
	Flags    []string `yaml:"flags" validate:"dive,oneof=positive negative convex concave"`
}

// Default returns the embedded catalog. The table is parsed once; a defective
// embedded table is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultTable)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded table: %v", err))
		}
		defaultCatalog = c
	})

	return defaultCatalog
}

// DefaultTable returns a copy of the embedded YAML source.
func DefaultTable() []byte {
	return append([]byte(nil), defaultTable...)
}

// LoadFile reads and parses a YAML table from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load reads a YAML table from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	return Parse(data)
}

// Parse decodes, validates and builds a catalog from a YAML document.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode: %v: %w", err, ErrInvalidTable)
	}
	if err := validate.Struct(&raw); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("field %s fails %q: %w", verrs[0].Namespace(), verrs[0].Tag(), ErrInvalidTable)
		}
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidTable)
	}

	base := DefaultBaseWeight
	if raw.Base != nil {
		base = *raw.Base
	}

	prods := make([]Production, 0, len(raw.Productions))
	for _, rp := range raw.Productions {
		prods = append(prods, rp.production(base))
	}

	return New(prods)
}

func (rp rawProduction) production(base float64) Production {
	scale, split := 1.0, 1
	if rp.Scale != nil {
		scale = *rp.Scale
	}
	if rp.Split != nil {
		split = *rp.Split
	}

	p := Production{
		Name:      rp.Name,
		Prefix:    rp.Prefix,
		Infix:     rp.Infix,
		Suffix:    rp.Suffix,
		Terminal:  rp.Terminal,
		Arity:     rp.Arity,
		Weight:    scale * base / float64(split),
		Signature: flagsToAttribute(rp.Signature),
	}
	for _, rc := range rp.Arguments {
		p.Arguments = append(p.Arguments, Constraint{
			Position:  rc.Position,
			Attribute: flagsToAttribute(rc.Flags),
		})
	}

	return p
}

// flagsToAttribute sets one flag per listed name; names were validated.
func flagsToAttribute(flags []string) Attribute {
	var a Attribute
	for _, f := range flags {
		switch f {
		case FlagPositive:
			a.Positive = true
		case FlagNegative:
			a.Negative = true
		case FlagConvex:
			a.Convex = true
		case FlagConcave:
			a.Concave = true
		}
	}
	return a
}
