package gramatyka

import (
	"github.com/annaproch/gramatyka/internal/strutil"
)

// validate enforces the structural invariants of a context-free grammar.
//
// Checks run in a fixed order so the reported failure is deterministic.
func (g *Grammar) validate() error {
	terminals := symbolString(g.terminals)
	if !strutil.LowerOnly(terminals) || !strutil.Unique(terminals) {
		return &ValidationError{Kind: ErrInvalidTerminals}
	}
	nonterminals := symbolString(g.nonterminals)
	if !strutil.UpperOnly(nonterminals) || !strutil.Unique(nonterminals) {
		return &ValidationError{Kind: ErrInvalidNonterminals}
	}
	if len(g.productions) != len(g.nonterminals) {
		return &ValidationError{Kind: ErrProductionCountMismatch}
	}
	for i, bodies := range g.productions {
		if len(bodies) == 0 {
			return &ValidationError{Kind: ErrEmptyProductionSet, Nonterminal: g.nonterminals[i]}
		}
		for _, body := range bodies {
			for _, s := range body {
				if !g.IsTerminal(s) && !g.IsNonterminal(s) {
					return &ValidationError{Kind: ErrUnknownSymbol, Nonterminal: g.nonterminals[i], Symbol: s}
				}
			}
		}
	}
	if bad := nonGenerating(g.nonterminals, g.productions); len(bad) > 0 {
		return &ValidationError{Kind: ErrNonGeneratingNonterminal, Nonterminal: bad[0]}
	}
	return nil
}

// nonGenerating returns the nonterminals that derive no terminal string, in
// declaration order.
//
// Every nonterminal starts out suspect. A nonterminal is cleared once one of
// its productions contains no suspect nonterminal, and clearing repeats until
// nothing changes.
func nonGenerating(nonterminals []Symbol, productions [][]Production) []Symbol {
	suspect := map[rune]bool{}
	for _, nt := range nonterminals {
		suspect[rune(nt)] = true
	}
	for changed := true; changed; {
		changed = false
		for i, nt := range nonterminals {
			if !suspect[rune(nt)] {
				continue
			}
			for _, body := range productions[i] {
				if !strutil.ContainsAny(body.String(), suspect) {
					delete(suspect, rune(nt))
					changed = true
					break
				}
			}
		}
	}
	out := []Symbol{}
	for _, nt := range nonterminals {
		if suspect[rune(nt)] {
			out = append(out, nt)
		}
	}
	return out
}
