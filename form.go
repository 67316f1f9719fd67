package gramatyka

// Form is a normal form a grammar may be verified against.
type Form int

const (
	// FormContextFree is an arbitrary context-free grammar.
	FormContextFree Form = iota
	FormRegular
	FormChomsky
	FormGreibach
)

func (f Form) String() string {
	switch f {
	case FormRegular:
		return "regular"
	case FormChomsky:
		return "Chomsky"
	case FormGreibach:
		return "Greibach"
	default:
		return "context-free"
	}
}

// Linearity of the two-symbol productions of a grammar.
type Linearity int

const (
	// LinearityNone means the grammar has no terminal/nonterminal pairs.
	LinearityNone Linearity = iota
	// LinearityRight means every pair is a terminal followed by a nonterminal.
	LinearityRight
	// LinearityLeft means every pair is a nonterminal followed by a terminal.
	LinearityLeft
	// LinearityMixed means both orientations occur somewhere in the grammar.
	LinearityMixed
)

func (l Linearity) String() string {
	switch l {
	case LinearityRight:
		return "right-linear"
	case LinearityLeft:
		return "left-linear"
	case LinearityMixed:
		return "mixed"
	default:
		return "none"
	}
}

// Linearity reports the orientation of the grammar's terminal/nonterminal pairs.
//
// Linearity is a property of the whole grammar: a right-linear rule on one
// nonterminal and a left-linear rule on another make the grammar mixed.
func (g *Grammar) Linearity() Linearity {
	linearity := LinearityNone
	for _, bodies := range g.productions {
		for _, p := range bodies {
			if len(p) != 2 {
				continue
			}
			var next Linearity
			switch {
			case g.IsTerminal(p[0]) && g.IsNonterminal(p[1]):
				next = LinearityRight
			case g.IsNonterminal(p[0]) && g.IsTerminal(p[1]):
				next = LinearityLeft
			default:
				continue
			}
			if linearity != LinearityNone && linearity != next {
				return LinearityMixed
			}
			linearity = next
		}
	}
	return linearity
}

// IsRegular returns true if every production is empty, a single terminal, or
// a terminal/nonterminal pair, and all pairs share one orientation.
func (g *Grammar) IsRegular() bool {
	for _, bodies := range g.productions {
		for _, p := range bodies {
			switch len(p) {
			case 0:
			case 1:
				if !g.IsTerminal(p[0]) {
					return false
				}
			case 2:
				right := g.IsTerminal(p[0]) && g.IsNonterminal(p[1])
				left := g.IsNonterminal(p[0]) && g.IsTerminal(p[1])
				if !right && !left {
					return false
				}
			default:
				return false
			}
		}
	}
	return g.Linearity() != LinearityMixed
}

// IsChomsky returns true if every production is a single terminal or exactly
// two nonterminals.
func (g *Grammar) IsChomsky() bool {
	for _, bodies := range g.productions {
		for _, p := range bodies {
			switch len(p) {
			case 1:
				if !g.IsTerminal(p[0]) {
					return false
				}
			case 2:
				if !g.IsNonterminal(p[0]) || !g.IsNonterminal(p[1]) {
					return false
				}
			default:
				return false
			}
		}
	}
	return true
}

// IsGreibach returns true if every production is a terminal followed by zero
// or more nonterminals.
func (g *Grammar) IsGreibach() bool {
	for _, bodies := range g.productions {
		for _, p := range bodies {
			if len(p) == 0 || !g.IsTerminal(p[0]) {
				return false
			}
			for _, s := range p[1:] {
				if !g.IsNonterminal(s) {
					return false
				}
			}
		}
	}
	return true
}

// Is returns true if the grammar satisfies the given form.
func (g *Grammar) Is(form Form) bool {
	switch form {
	case FormRegular:
		return g.IsRegular()
	case FormChomsky:
		return g.IsChomsky()
	case FormGreibach:
		return g.IsGreibach()
	default:
		return true
	}
}
