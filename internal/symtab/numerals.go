package symtab

import "github.com/lc-lang/golc/internal/term"

// numeralCache builds Church numerals λf.λx. f (f (… x …)) with n
// applications of f, caching the inner application chain so that
// building numeral n+1 reuses every cell built for numeral n (spec
// §4.7: "extending the cached vector as needed, each prefix reused").
//
// chain[k] is the body under the f/x binders for numeral k, where x
// is de Bruijn index 1 and f is index 2 inside that body; chain[0] is
// just the bound x.
type numeralCache struct {
	arena *term.Arena
	chain []term.Handle
}

func newNumeralCache(a *term.Arena) *numeralCache {
	return &numeralCache{arena: a, chain: []term.Handle{term.NewVariable(1)}}
}

func (c *numeralCache) churchNumeral(n uint64) term.Handle {
	for uint64(len(c.chain)) <= n {
		prev := c.chain[len(c.chain)-1]
		c.chain = append(c.chain, c.arena.NewApplication(term.NewVariable(2), prev))
	}
	return c.arena.NewLambda("f", c.arena.NewLambda("x", c.chain[n]))
}
