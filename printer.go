package gramatyka

import (
	"fmt"
	"io"
	"strings"
)

// Labels used when formatting a grammar listing.
type Labels struct {
	Grammar      string
	Regular      string
	ContextFree  string
	NoForm       string
	Chomsky      string
	Greibach     string
	Terminals    string
	Nonterminals string
	Productions  string
	// Empty is printed in place of the empty production.
	Empty string
}

// DefaultLabels are the English labels used by String.
var DefaultLabels = Labels{
	Grammar:      "Grammar",
	Regular:      "regular",
	ContextFree:  "context-free",
	NoForm:       "-",
	Chomsky:      "Chomsky",
	Greibach:     "Greibach",
	Terminals:    "Terminals",
	Nonterminals: "Nonterminals",
	Productions:  "Productions",
	Empty:        "ε",
}

// Format writes a listing of the grammar to w.
//
// The header names the grammar class (regular when the grammar was built
// through AsRegular) and the normal form it was verified against, followed by
// the alphabets and one line per production.
func (g *Grammar) Format(w io.Writer, labels Labels, form Form) error {
	class := labels.ContextFree
	if g.regular {
		class = labels.Regular
	}
	normal := labels.NoForm
	switch form {
	case FormChomsky:
		normal = labels.Chomsky
	case FormGreibach:
		normal = labels.Greibach
	}
	_, err := fmt.Fprintf(w, "%s: %s/%s\n%s: %s\n%s: %s\n%s:\n",
		labels.Grammar, class, normal,
		labels.Terminals, symbolString(g.terminals),
		labels.Nonterminals, symbolString(g.nonterminals),
		labels.Productions)
	if err != nil {
		return err
	}
	for i, nt := range g.nonterminals {
		for _, p := range g.productions[i] {
			body := p.String()
			if p.Empty() {
				body = labels.Empty
			}
			if _, err := fmt.Fprintf(w, "%s -> %s\n", nt, body); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Grammar) describe(form Form) string {
	w := &strings.Builder{}
	_ = g.Format(w, DefaultLabels, form)
	return w.String()
}

func (g *Grammar) String() string { return g.describe(FormContextFree) }
