// Package language enumerates and samples the terminal strings derivable from a grammar.
//
// Nothing here recognizes input: strings are produced from the grammar, never
// parsed against it.
package language

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/annaproch/gramatyka"
)

// Enumerate returns, sorted, every terminal string of length at most maxLen
// derivable from the start symbol of g.
func Enumerate(g *gramatyka.Grammar, maxLen int) []string {
	return EnumerateFrom(g, g.Start(), maxLen)
}

// EnumerateFrom is like Enumerate but derives from the given nonterminal.
//
// It returns nil if start is not a nonterminal of g.
func EnumerateFrom(g *gramatyka.Grammar, start gramatyka.Symbol, maxLen int) []string {
	if !g.IsNonterminal(start) || maxLen < 0 {
		return nil
	}
	nonterminals := g.Nonterminals()
	productions := g.Productions()
	// Least fixed point of the per-nonterminal string sets, truncated at
	// maxLen. The sets are finite so the iteration stops.
	sets := map[gramatyka.Symbol]map[string]bool{}
	for _, nt := range nonterminals {
		sets[nt] = map[string]bool{}
	}
	for changed := true; changed; {
		changed = false
		for i, nt := range nonterminals {
			for _, p := range productions[i] {
				for _, w := range concatenate(p, sets, maxLen) {
					if !sets[nt][w] {
						sets[nt][w] = true
						changed = true
					}
				}
			}
		}
	}
	return sortedKeys(sets[start])
}

// concatenate returns the strings of length at most maxLen derivable from p
// given the strings currently known for each nonterminal.
func concatenate(p gramatyka.Production, sets map[gramatyka.Symbol]map[string]bool, maxLen int) []string {
	partial := []string{""}
	for _, s := range p {
		var options []string
		if s.Terminal() {
			options = []string{s.String()}
		} else {
			options = sortedKeys(sets[s])
		}
		next := map[string]bool{}
		for _, prefix := range partial {
			for _, suffix := range options {
				if len(prefix)+len(suffix) <= maxLen {
					next[prefix+suffix] = true
				}
			}
		}
		if len(next) == 0 {
			return nil
		}
		partial = sortedKeys(next)
	}
	return partial
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Sample derives a random terminal string from the start symbol of g.
//
// Productions are picked uniformly until the derivation tree is maxDepth deep.
// Below that each nonterminal is expanded with the production of least
// derivation height, so sampling always terminates.
func Sample(g *gramatyka.Grammar, rnd *rand.Rand, maxDepth int) string {
	if g.Start() == 0 {
		return ""
	}
	s := &sampler{
		rnd:      rnd,
		maxDepth: maxDepth,
		rules:    map[gramatyka.Symbol][]gramatyka.Production{},
	}
	for _, nt := range g.Nonterminals() {
		s.rules[nt] = g.Rules(nt)
	}
	s.shortest = shortestProductions(s.rules)
	w := &strings.Builder{}
	s.derive(w, g.Start(), 0)
	return w.String()
}

type sampler struct {
	rnd      *rand.Rand
	maxDepth int
	rules    map[gramatyka.Symbol][]gramatyka.Production
	shortest map[gramatyka.Symbol]gramatyka.Production
}

func (s *sampler) derive(w *strings.Builder, nt gramatyka.Symbol, depth int) {
	var p gramatyka.Production
	if depth < s.maxDepth {
		options := s.rules[nt]
		p = options[s.rnd.Intn(len(options))]
	} else {
		p = s.shortest[nt]
	}
	for _, sym := range p {
		if sym.Terminal() {
			w.WriteRune(rune(sym))
			continue
		}
		s.derive(w, sym, depth+1)
	}
}

// shortestProductions picks, per nonterminal, a production of least
// derivation height.
func shortestProductions(rules map[gramatyka.Symbol][]gramatyka.Production) map[gramatyka.Symbol]gramatyka.Production {
	height := map[gramatyka.Symbol]int{}
	best := map[gramatyka.Symbol]gramatyka.Production{}
	for changed := true; changed; {
		changed = false
		for nt, productions := range rules {
			for _, p := range productions {
				h, ok := productionHeight(p, height)
				if !ok {
					continue
				}
				if current, seen := height[nt]; !seen || h < current {
					height[nt] = h
					best[nt] = p
					changed = true
				}
			}
		}
	}
	return best
}

func productionHeight(p gramatyka.Production, height map[gramatyka.Symbol]int) (int, bool) {
	h := 1
	for _, s := range p {
		if s.Terminal() {
			continue
		}
		sh, ok := height[s]
		if !ok {
			return 0, false
		}
		if sh+1 > h {
			h = sh + 1
		}
	}
	return h, true
}
