// Package ebnf converts grammars to and from the EBNF notation of golang.org/x/exp/ebnf.
//
// The subset of EBNF understood by Parse is the one produced by
// gramatyka.Grammar.EBNF:
//
//	Production  = name "=" Expression "." .
//	Expression  = Sequence { "|" Sequence } .
//	Sequence    = Term { Term } .
//	Term        = name | token | "(" Expression ")" | "[" Expression "]" .
//
// Names must be single uppercase letters, tokens strings of lowercase letters.
// Repetitions and ranges are rejected since they have no finite expansion
// into productions.
package ebnf

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/scanner"

	"golang.org/x/exp/ebnf"

	"github.com/annaproch/gramatyka"
)

// Verify checks the EBNF rendering of g with ebnf.Verify.
//
// Every nonterminal must be reachable from the start symbol.
func Verify(g *gramatyka.Grammar) error {
	if g.Start() == 0 {
		return fmt.Errorf("grammar has no start symbol")
	}
	grammar, err := ebnf.Parse("<grammar>", strings.NewReader(g.EBNF()))
	if err != nil {
		return err
	}
	return ebnf.Verify(grammar, g.Start().String())
}

// ParseString is Parse on a string.
func ParseString(filename, s string) (*gramatyka.Grammar, error) {
	return Parse(filename, strings.NewReader(s))
}

// Parse reads a grammar written in EBNF.
//
// Nonterminals are ordered by the position of their production, so the first
// production defines the start symbol. Terminals are ordered by first use.
func Parse(filename string, r io.Reader) (*gramatyka.Grammar, error) {
	grammar, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	ordered := make([]*ebnf.Production, 0, len(grammar))
	for _, production := range grammar {
		ordered = append(ordered, production)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Pos().Offset < ordered[j].Pos().Offset
	})

	b := &builder{seen: map[gramatyka.Symbol]bool{}}
	nonterminals := make([]gramatyka.Symbol, 0, len(ordered))
	productions := make([][]gramatyka.Production, 0, len(ordered))
	for _, production := range ordered {
		nt, err := nonterminal(production.Name.Pos(), production.Name.String)
		if err != nil {
			return nil, err
		}
		bodies, err := b.expand(production.Expr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", production.Name.String, err)
		}
		nonterminals = append(nonterminals, nt)
		productions = append(productions, dedupe(bodies))
	}
	return gramatyka.NewFromProductions(b.terminals, nonterminals, productions)
}

type builder struct {
	terminals []gramatyka.Symbol
	seen      map[gramatyka.Symbol]bool
}

// expand returns the productions an expression stands for.
func (b *builder) expand(expr ebnf.Expression) ([]gramatyka.Production, error) { // nolint: gocyclo
	switch n := expr.(type) {
	case nil:
		return []gramatyka.Production{{}}, nil

	case ebnf.Alternative:
		out := []gramatyka.Production{}
		for _, e := range n {
			bodies, err := b.expand(e)
			if err != nil {
				return nil, err
			}
			out = append(out, bodies...)
		}
		return out, nil

	case ebnf.Sequence:
		out := []gramatyka.Production{{}}
		for _, e := range n {
			bodies, err := b.expand(e)
			if err != nil {
				return nil, err
			}
			next := make([]gramatyka.Production, 0, len(out)*len(bodies))
			for _, head := range out {
				for _, tail := range bodies {
					next = append(next, head.Concat(tail))
				}
			}
			out = next
		}
		return out, nil

	case *ebnf.Group:
		return b.expand(n.Body)

	case *ebnf.Option:
		bodies, err := b.expand(n.Body)
		if err != nil {
			return nil, err
		}
		return append(bodies, gramatyka.Production{}), nil

	case *ebnf.Name:
		nt, err := nonterminal(n.Pos(), n.String)
		if err != nil {
			return nil, err
		}
		return []gramatyka.Production{{nt}}, nil

	case *ebnf.Token:
		body := gramatyka.ParseProduction(n.String)
		for _, s := range body {
			if !s.Terminal() {
				return nil, fmt.Errorf("%s: token %q must consist of lowercase letters", n.Pos(), n.String)
			}
			if !b.seen[s] {
				b.seen[s] = true
				b.terminals = append(b.terminals, s)
			}
		}
		return []gramatyka.Production{body}, nil

	case *ebnf.Repetition:
		return nil, fmt.Errorf("%s: repetition is not supported", n.Pos())

	case *ebnf.Range:
		return nil, fmt.Errorf("%s: range is not supported", n.Pos())
	}
	return nil, fmt.Errorf("%s: unknown EBNF expression %T", expr.Pos(), expr)
}

func nonterminal(pos scanner.Position, name string) (gramatyka.Symbol, error) {
	s := gramatyka.ParseProduction(name)
	if len(s) != 1 || !s[0].Nonterminal() {
		return 0, fmt.Errorf("%s: production name %q must be a single uppercase letter", pos, name)
	}
	return s[0], nil
}

func dedupe(bodies []gramatyka.Production) []gramatyka.Production {
	seen := map[string]bool{}
	out := make([]gramatyka.Production, 0, len(bodies))
	for _, body := range bodies {
		if seen[body.String()] {
			continue
		}
		seen[body.String()] = true
		out = append(out, body)
	}
	return out
}
