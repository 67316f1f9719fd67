package main

import (
	"fmt"

	"github.com/annaproch/gramatyka"
)

type checkCmd struct {
	Input grammarArg `embed:""`

	Require string `enum:"none,regular,chomsky,greibach" default:"none" help:"Fail unless the grammar has this form (${enum})."`
}

func (c *checkCmd) Help() string {
	return `
Validates the grammar and reports which of the regular, Chomsky and Greibach
forms it satisfies, followed by a listing in the strongest normal form found.
`
}

func (c *checkCmd) Run(globals *Globals) error {
	g, err := c.Input.load(globals)
	if err != nil {
		return err
	}
	r, err := renderer(globals)
	if err != nil {
		return err
	}
	fmt.Fprintf(globals.Stdout, "%s: %v (%s)\n", gramatyka.FormRegular, g.IsRegular(), g.Linearity())
	fmt.Fprintf(globals.Stdout, "%s: %v\n", gramatyka.FormChomsky, g.IsChomsky())
	fmt.Fprintf(globals.Stdout, "%s: %v\n", gramatyka.FormGreibach, g.IsGreibach())

	listed, form := g, gramatyka.FormContextFree
	if regular, err := gramatyka.AsRegular(g); err == nil {
		listed = regular
	}
	switch {
	case g.IsGreibach():
		form = gramatyka.FormGreibach
	case g.IsChomsky():
		form = gramatyka.FormChomsky
	}
	if err := r.Grammar(globals.Stdout, listed, form); err != nil {
		return err
	}

	if required, ok := forms[c.Require]; ok && !g.Is(required) {
		return &gramatyka.FormError{Form: required}
	}
	return nil
}

var forms = map[string]gramatyka.Form{
	"regular":  gramatyka.FormRegular,
	"chomsky":  gramatyka.FormChomsky,
	"greibach": gramatyka.FormGreibach,
}
