package generator_test

import (
	"github.com/katalvlaran/dcpgen/catalog"
)

// Requested profiles of the three quiz kinds.
var (
	convexReq  = []catalog.Profile{{{Convex: true}}}
	concaveReq = []catalog.Profile{{{Concave: true}}}
	anyReq     = []catalog.Profile{{{}}}
)

// scripted replays fixed draws; it cycles when exhausted.
type scripted struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scripted) Float64() float64 {
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scripted) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)] % n
	s.ii++
	return v
}

// constant returns the same Float64 forever and Intn 0.
type constant float64

func (c constant) Float64() float64 { return float64(c) }
func (constant) Intn(int) int       { return 0 }

func mustLookup(name string) *catalog.Production {
	p, ok := catalog.Default().Lookup(name)
	if !ok {
		panic("missing production " + name)
	}
	return p
}

func mustParse(table string) *catalog.Catalog {
	c, err := catalog.Parse([]byte(table))
	if err != nil {
		panic(err)
	}
	return c
}
