package gramatyka

import "strings"

// NonterminalCapacity is the number of identifiers available for nonterminals.
//
// Conversion to Greibach form needs room for auxiliary nonterminals, so a
// grammar with n nonterminals can gain at most NonterminalCapacity-n of them.
const NonterminalCapacity = 'Z' - 'A' + 1

// A Symbol is a single letter. Lowercase letters are terminals, uppercase
// letters are nonterminals.
type Symbol rune

// Terminal returns true if the symbol lies in the terminal range.
func (s Symbol) Terminal() bool { return s >= 'a' && s <= 'z' }

// Nonterminal returns true if the symbol lies in the nonterminal range.
func (s Symbol) Nonterminal() bool { return s >= 'A' && s <= 'Z' }

func (s Symbol) String() string { return string(rune(s)) }

// A Production is the body of a rule. An empty Production derives the empty string.
type Production []Symbol

// ParseProduction converts a string of letters into a Production.
func ParseProduction(s string) Production {
	out := make(Production, 0, len(s))
	for _, r := range s {
		out = append(out, Symbol(r))
	}
	return out
}

func (p Production) String() string {
	w := strings.Builder{}
	for _, s := range p {
		w.WriteRune(rune(s))
	}
	return w.String()
}

// Empty returns true if the production derives the empty string directly.
func (p Production) Empty() bool { return len(p) == 0 }

// First symbol of the production. Panics on an empty production.
func (p Production) First() Symbol { return p[0] }

// Concat returns a new production consisting of p followed by tail.
func (p Production) Concat(tail Production) Production {
	out := make(Production, 0, len(p)+len(tail))
	out = append(out, p...)
	return append(out, tail...)
}

func (p Production) clone() Production {
	return append(Production{}, p...)
}

func symbols(s string) []Symbol {
	return []Symbol(ParseProduction(s))
}

func symbolString(s []Symbol) string {
	return Production(s).String()
}

// dedupe collapses duplicate productions, keeping first occurrence order.
func dedupe(productions []Production) []Production {
	seen := map[string]bool{}
	out := make([]Production, 0, len(productions))
	for _, p := range productions {
		key := p.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
