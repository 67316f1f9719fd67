package gramatyka

import (
	"sort"
)

// ToGreibach converts a grammar in Chomsky normal form into an equivalent
// grammar in Greibach normal form.
//
// Nonterminals are renamed onto the top of the identifier space, keeping
// their order: for n nonterminals the first becomes 'Z'-n+1 and the last 'Z'.
// Auxiliary nonterminals introduced while removing left recursion are taken
// downward from 'Z'-n. If the identifier space runs out the returned error
// wraps ErrIdentifierSpaceExhausted.
//
// Nonterminals unreachable from the start symbol are dropped from the result.
func ToGreibach(c *Chomsky, options ...Option) (*Greibach, error) {
	conv := &converter{}
	for _, option := range options {
		if err := option(conv); err != nil {
			return nil, err
		}
	}
	return conv.convert(c.grammar)
}

type converter struct {
	trace     *tracer
	terminals []Symbol
	// Renamed nonterminals in rank order.
	ranked []Symbol
	rank   map[Symbol]int
	// Auxiliary nonterminals in creation order.
	aux   []Symbol
	rules map[Symbol][]Production
	alloc *allocator
}

func (c *converter) convert(g *Grammar) (*Greibach, error) {
	c.terminals = g.Terminals()
	if len(g.nonterminals) == 0 {
		return c.assemble()
	}
	c.assignRanks(g)
	c.trace.enter("eliminate left recursion")
	for i, nt := range c.ranked {
		if err := c.eliminateLowerRanked(i, nt); err != nil {
			return nil, err
		}
		if err := c.eliminateLeftRecursion(nt); err != nil {
			return nil, err
		}
	}
	c.trace.leave()
	c.trace.enter("substitute leading nonterminals")
	for i := len(c.ranked) - 1; i >= 0; i-- {
		if err := c.substituteLeading(c.ranked[i]); err != nil {
			return nil, err
		}
	}
	for i := len(c.aux) - 1; i >= 0; i-- {
		if err := c.substituteLeading(c.aux[i]); err != nil {
			return nil, err
		}
	}
	c.trace.leave()
	return c.assemble()
}

// assignRanks renames the nonterminals of g onto the last n identifiers and
// reserves everything below them for auxiliaries.
func (c *converter) assignRanks(g *Grammar) {
	n := len(g.nonterminals)
	first := Symbol('Z' - n + 1)
	rename := map[Symbol]Symbol{}
	c.rank = map[Symbol]int{}
	c.rules = map[Symbol][]Production{}
	c.trace.enter("assign ranks")
	for i, nt := range g.nonterminals {
		renamed := first + Symbol(i)
		rename[nt] = renamed
		c.rank[renamed] = i
		c.ranked = append(c.ranked, renamed)
		c.trace.printf("%s -> %s", nt, renamed)
	}
	c.trace.leave()
	for i, nt := range g.nonterminals {
		bodies := make([]Production, 0, len(g.productions[i]))
		for _, p := range g.productions[i] {
			out := make(Production, len(p))
			for j, s := range p {
				if r, ok := rename[s]; ok {
					s = r
				}
				out[j] = s
			}
			bodies = append(bodies, out)
		}
		c.rules[rename[nt]] = bodies
	}
	c.alloc = newAllocator(first-1, c.ranked)
}

// eliminateLowerRanked rewrites the productions of the nonterminal with rank i
// until none of them starts with a nonterminal of lower rank.
func (c *converter) eliminateLowerRanked(i int, nt Symbol) error {
	for changed := true; changed; {
		changed = false
		next := make([]Production, 0, len(c.rules[nt]))
		for _, p := range c.rules[nt] {
			if p.Empty() {
				return conversionErrorf(ErrInternalInvariant, "%s has an empty production", nt)
			}
			first := p.First()
			if r, ok := c.rank[first]; ok && r < i {
				for _, q := range c.rules[first] {
					next = append(next, q.Concat(p[1:]))
				}
				changed = true
				continue
			}
			next = append(next, p)
		}
		c.rules[nt] = dedupe(next)
	}
	c.trace.printf("%s: %s", nt, traceRules(c.rules[nt]))
	return nil
}

// eliminateLeftRecursion replaces immediately left-recursive productions of
// nt with right-recursive ones through a new auxiliary nonterminal.
//
//	nt -> nt α | β   becomes   nt -> β | β B,  B -> α | α B
func (c *converter) eliminateLeftRecursion(nt Symbol) error {
	var base, recursive []Production
	for _, p := range c.rules[nt] {
		switch {
		case p.First() != nt:
			base = append(base, p)
		case len(p) > 1:
			recursive = append(recursive, p[1:])
		}
	}
	if len(recursive) == 0 {
		return nil
	}
	if len(base) == 0 {
		return conversionErrorf(ErrInternalInvariant, "%s is left recursive without a base production", nt)
	}
	aux, err := c.alloc.allocate()
	if err != nil {
		return err
	}
	c.aux = append(c.aux, aux)
	c.rules[nt] = withSuffix(base, aux)
	c.rules[aux] = withSuffix(recursive, aux)
	c.trace.printf("%s: new nonterminal %s", nt, aux)
	c.trace.printf("%s: %s", nt, traceRules(c.rules[nt]))
	c.trace.printf("%s: %s", aux, traceRules(c.rules[aux]))
	return nil
}

// substituteLeading rewrites the productions of x until each one starts with
// a terminal, by expanding the leading nonterminal with its productions.
//
// Nonterminals are visited from the highest rank down, so every nonterminal
// consulted here is already in Greibach form.
func (c *converter) substituteLeading(x Symbol) error {
	for pass := 0; ; pass++ {
		if pass > len(c.rules) {
			return conversionErrorf(ErrInternalInvariant, "substitution on %s does not terminate", x)
		}
		changed := false
		next := make([]Production, 0, len(c.rules[x]))
		for _, p := range c.rules[x] {
			if p.Empty() {
				return conversionErrorf(ErrInternalInvariant, "%s has an empty production", x)
			}
			first := p.First()
			if !first.Nonterminal() {
				next = append(next, p)
				continue
			}
			if first == x {
				return conversionErrorf(ErrInternalInvariant, "%s is still left recursive", x)
			}
			for _, q := range c.rules[first] {
				next = append(next, q.Concat(p[1:]))
			}
			changed = true
		}
		c.rules[x] = dedupe(next)
		if !changed {
			break
		}
	}
	c.trace.printf("%s: %s", x, traceRules(c.rules[x]))
	return nil
}

// assemble prunes unreachable nonterminals and builds the verified result.
func (c *converter) assemble() (*Greibach, error) {
	var (
		nonterminals []Symbol
		productions  [][]Production
	)
	if len(c.ranked) > 0 {
		keep := reachable(c.ranked[0], c.rules)
		for _, nt := range append(append([]Symbol{}, c.ranked...), c.aux...) {
			if !keep[nt] {
				c.trace.printf("prune %s", nt)
				continue
			}
			nonterminals = append(nonterminals, nt)
			productions = append(productions, sortProductions(dedupe(c.rules[nt])))
		}
	}
	g, err := NewFromProductions(c.terminals, nonterminals, productions)
	if err != nil {
		return nil, &ConversionError{Kind: ErrInternalInvariant, Err: err}
	}
	out, err := AsGreibach(g)
	if err != nil {
		return nil, &ConversionError{Kind: ErrInternalInvariant, Err: err}
	}
	return out, nil
}

func withSuffix(productions []Production, suffix Symbol) []Production {
	out := make([]Production, 0, 2*len(productions))
	out = append(out, productions...)
	for _, p := range productions {
		out = append(out, p.Concat(Production{suffix}))
	}
	return dedupe(out)
}

func sortProductions(productions []Production) []Production {
	sort.Slice(productions, func(i, j int) bool {
		return productions[i].String() < productions[j].String()
	})
	return productions
}
