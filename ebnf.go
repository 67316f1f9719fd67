package gramatyka

import (
	"fmt"
	"strings"
)

// EBNF returns the grammar in the EBNF notation of golang.org/x/exp/ebnf.
//
// Terminals are quoted, nonterminals are bare names. A nonterminal with an
// empty production has its other alternatives wrapped in an option.
//
//	S = A B .
//	C = [ "c" C ] .
func (g *Grammar) EBNF() string {
	out := make([]string, 0, len(g.nonterminals))
	for i, nt := range g.nonterminals {
		out = append(out, fmt.Sprintf("%s = %s .", nt, ebnfAlternatives(g.productions[i])))
	}
	return strings.Join(out, "\n")
}

func ebnfAlternatives(productions []Production) string {
	empty := false
	alternatives := []string{}
	for _, p := range productions {
		if p.Empty() {
			empty = true
			continue
		}
		alternatives = append(alternatives, ebnfSequence(p))
	}
	body := strings.Join(alternatives, " | ")
	switch {
	case empty && body == "":
		return `""`
	case empty:
		return "[ " + body + " ]"
	}
	return body
}

func ebnfSequence(p Production) string {
	terms := make([]string, len(p))
	for i, s := range p {
		if s.Terminal() {
			terms[i] = fmt.Sprintf("%q", s.String())
		} else {
			terms[i] = s.String()
		}
	}
	return strings.Join(terms, " ")
}
