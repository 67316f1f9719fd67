package main

import (
	"fmt"
	"math/rand"

	"github.com/annaproch/gramatyka/language"
)

type wordsCmd struct {
	Input grammarArg `embed:""`

	MaxLen int   `short:"n" default:"5" help:"Longest word to list."`
	Sample int   `help:"Print this many random words instead of listing the language."`
	Depth  int   `default:"8" help:"Derivation depth after which sampling takes the shortest productions."`
	Seed   int64 `default:"1" help:"Seed for sampling."`
}

func (c *wordsCmd) Run(globals *Globals) error {
	g, err := c.Input.load(globals)
	if err != nil {
		return err
	}
	if c.Sample > 0 {
		rnd := rand.New(rand.NewSource(c.Seed))
		for i := 0; i < c.Sample; i++ {
			fmt.Fprintf(globals.Stdout, "%q\n", language.Sample(g, rnd, c.Depth))
		}
		return nil
	}
	for _, w := range language.Enumerate(g, c.MaxLen) {
		fmt.Fprintf(globals.Stdout, "%q\n", w)
	}
	return nil
}
