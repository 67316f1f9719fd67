package main

import (
	"github.com/annaproch/gramatyka"
	"github.com/annaproch/gramatyka/ebnf"
)

type ebnfCmd struct {
	Input grammarArg `embed:""`

	Verify bool `help:"Fail if a nonterminal is unreachable from the start symbol."`
}

func (c *ebnfCmd) Run(globals *Globals) error {
	g, err := c.Input.load(globals)
	if err != nil {
		return err
	}
	if c.Verify {
		if err := ebnf.Verify(g); err != nil {
			return err
		}
	}
	return write(globals, g, gramatyka.FormContextFree, "ebnf")
}
