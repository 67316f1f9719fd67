package main

import (
	"fmt"
	"io"

	"github.com/annaproch/gramatyka"
	"github.com/annaproch/gramatyka/ebnf"
	"github.com/annaproch/gramatyka/notation"
)

type convertCmd struct {
	Input grammarArg `embed:""`

	Trace  bool   `help:"Trace the conversion steps to stderr."`
	Verify bool   `help:"Verify the EBNF rendering of the result."`
	Format string `short:"f" enum:"listing,native,ebnf,yaml,toml" default:"listing" help:"Output format (${enum})."`
}

func (c *convertCmd) Run(globals *Globals) error {
	g, err := c.Input.load(globals)
	if err != nil {
		return err
	}
	cnf, err := gramatyka.AsChomsky(g)
	if err != nil {
		return err
	}
	options := []gramatyka.Option{}
	if c.Trace {
		options = append(options, gramatyka.Trace(globals.Stderr))
	}
	gnf, err := cnf.ToGreibach(options...)
	if err != nil {
		return err
	}
	if c.Verify && len(gnf.Grammar().Nonterminals()) > 0 {
		if err := ebnf.Verify(gnf.Grammar()); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
	}
	return write(globals, gnf.Grammar(), gramatyka.FormGreibach, c.Format)
}

func write(globals *Globals, g *gramatyka.Grammar, form gramatyka.Form, format string) error {
	switch format {
	case "native":
		return notation.Write(globals.Stdout, g)
	case "ebnf":
		_, err := io.WriteString(globals.Stdout, g.EBNF()+"\n")
		return err
	case "yaml":
		return notation.WriteYAML(globals.Stdout, g)
	case "toml":
		return notation.WriteTOML(globals.Stdout, g)
	}
	r, err := renderer(globals)
	if err != nil {
		return err
	}
	return r.Grammar(globals.Stdout, g, form)
}
