package gramatyka

// AsRegular returns a copy of g flagged as regular.
//
// The regularity predicate is re-checked; a *FormError is returned if it does not hold.
func AsRegular(g *Grammar) (*Grammar, error) {
	if !g.IsRegular() {
		return nil, &FormError{Form: FormRegular}
	}
	return g.withRegular(true), nil
}

// Chomsky is a grammar verified to be in Chomsky normal form.
type Chomsky struct {
	grammar *Grammar
}

// AsChomsky verifies that g is in Chomsky normal form.
//
// The wrapped grammar is always classed as context-free, even when g was
// flagged regular.
func AsChomsky(g *Grammar) (*Chomsky, error) {
	if !g.IsChomsky() {
		return nil, &FormError{Form: FormChomsky}
	}
	return &Chomsky{grammar: g.withRegular(false)}, nil
}

// MustChomsky is AsChomsky but panics on error.
func MustChomsky(g *Grammar) *Chomsky {
	c, err := AsChomsky(g)
	if err != nil {
		panic(err)
	}
	return c
}

// Grammar underlying the verified form.
func (c *Chomsky) Grammar() *Grammar { return c.grammar }

// ToGreibach converts the grammar to Greibach normal form.
func (c *Chomsky) ToGreibach(options ...Option) (*Greibach, error) {
	return ToGreibach(c, options...)
}

func (c *Chomsky) String() string { return c.grammar.describe(FormChomsky) }

// Greibach is a grammar verified to be in Greibach normal form.
type Greibach struct {
	grammar *Grammar
}

// AsGreibach verifies that g is in Greibach normal form.
func AsGreibach(g *Grammar) (*Greibach, error) {
	if !g.IsGreibach() {
		return nil, &FormError{Form: FormGreibach}
	}
	return &Greibach{grammar: g}, nil
}

// MustGreibach is AsGreibach but panics on error.
func MustGreibach(g *Grammar) *Greibach {
	gg, err := AsGreibach(g)
	if err != nil {
		panic(err)
	}
	return gg
}

// Grammar underlying the verified form.
func (g *Greibach) Grammar() *Grammar { return g.grammar }

func (g *Greibach) String() string { return g.grammar.describe(FormGreibach) }
