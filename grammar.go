package gramatyka

// A Grammar is an immutable, validated context-free grammar.
//
// The first nonterminal is the start symbol. Accessors return copies, so a
// Grammar can be shared freely between goroutines.
type Grammar struct {
	terminals    []Symbol
	nonterminals []Symbol
	productions  [][]Production
	regular      bool
}

// New builds a Grammar from its alphabets and productions.
//
// terminals and nonterminals are strings of single-letter symbols.
// productions[i] holds the production bodies of nonterminals[i], each written
// as a string of symbols. The empty string is the empty production.
//
// The returned error, if any, is a *ValidationError.
func New(terminals, nonterminals string, productions [][]string) (*Grammar, error) {
	rules := make([][]Production, len(productions))
	for i, bodies := range productions {
		rules[i] = make([]Production, 0, len(bodies))
		for _, body := range bodies {
			rules[i] = append(rules[i], ParseProduction(body))
		}
	}
	return NewFromProductions(symbols(terminals), symbols(nonterminals), rules)
}

// MustNew is New but panics on error.
func MustNew(terminals, nonterminals string, productions [][]string) *Grammar {
	g, err := New(terminals, nonterminals, productions)
	if err != nil {
		panic(err)
	}
	return g
}

// NewFromProductions builds a Grammar from already typed symbols and productions.
//
// The same validation as New is applied.
func NewFromProductions(terminals, nonterminals []Symbol, productions [][]Production) (*Grammar, error) {
	g := &Grammar{
		terminals:    append([]Symbol{}, terminals...),
		nonterminals: append([]Symbol{}, nonterminals...),
		productions:  cloneRules(productions),
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Terminals of the grammar, in declaration order.
func (g *Grammar) Terminals() []Symbol { return append([]Symbol{}, g.terminals...) }

// Nonterminals of the grammar, in declaration order.
func (g *Grammar) Nonterminals() []Symbol { return append([]Symbol{}, g.nonterminals...) }

// Productions of the grammar. Element i holds the productions of Nonterminals()[i].
func (g *Grammar) Productions() [][]Production { return cloneRules(g.productions) }

// Rules returns the productions of a nonterminal, or nil if it is not part of the grammar.
func (g *Grammar) Rules(nonterminal Symbol) []Production {
	i := g.index(nonterminal)
	if i < 0 {
		return nil
	}
	out := make([]Production, len(g.productions[i]))
	for j, p := range g.productions[i] {
		out[j] = p.clone()
	}
	return out
}

// Start symbol of the grammar. Zero if the grammar has no nonterminals.
func (g *Grammar) Start() Symbol {
	if len(g.nonterminals) == 0 {
		return 0
	}
	return g.nonterminals[0]
}

// Regular returns true if the grammar was constructed through AsRegular.
//
// This is the flag fixed at construction, not a re-run of IsRegular.
func (g *Grammar) Regular() bool { return g.regular }

// IsTerminal returns true if s is in the terminal alphabet.
func (g *Grammar) IsTerminal(s Symbol) bool {
	for _, t := range g.terminals {
		if t == s {
			return true
		}
	}
	return false
}

// IsNonterminal returns true if s is in the nonterminal alphabet.
func (g *Grammar) IsNonterminal(s Symbol) bool { return g.index(s) >= 0 }

func (g *Grammar) index(nonterminal Symbol) int {
	for i, nt := range g.nonterminals {
		if nt == nonterminal {
			return i
		}
	}
	return -1
}

// withRegular returns a shallow copy of g carrying the given regular flag.
func (g *Grammar) withRegular(regular bool) *Grammar {
	out := *g
	out.regular = regular
	return &out
}

func cloneRules(rules [][]Production) [][]Production {
	out := make([][]Production, len(rules))
	for i, bodies := range rules {
		out[i] = make([]Production, len(bodies))
		for j, p := range bodies {
			out[i][j] = p.clone()
		}
	}
	return out
}
