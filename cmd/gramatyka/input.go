package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"

	"github.com/annaproch/gramatyka"
	"github.com/annaproch/gramatyka/notation"
	"github.com/annaproch/gramatyka/render"
)

// grammarArg is the grammar file argument shared by all commands.
type grammarArg struct {
	File string `arg:"" default:"-" help:"Grammar file, read from stdin if omitted. The notation follows the extension: .yaml, .yml, .toml, .ebnf, anything else is the native notation."`
}

func (a *grammarArg) load(globals *Globals) (*gramatyka.Grammar, error) {
	var r io.Reader = os.Stdin
	if a.File != "-" {
		f, err := os.Open(a.File)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	g, err := notation.Load(a.File, r)
	if err != nil {
		return nil, err
	}
	if globals.Dump {
		repr.New(globals.Stderr, repr.Indent("  ")).Println(notation.NewDocument(g))
	}
	return g, nil
}

func renderer(globals *Globals) (*render.Renderer, error) {
	r, err := render.New(globals.Lang)
	if err != nil {
		return nil, fmt.Errorf("--lang: %w", err)
	}
	return r, nil
}
