package main

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/annaproch/gramatyka/render"
)

var version = "dev"

// Globals are shared by every command.
type Globals struct {
	Config  kong.ConfigFlag  `help:"Load flag defaults from a JSON file." placeholder:"FILE"`
	Version kong.VersionFlag `help:"Print the version and exit."`
	Lang    string           `help:"Language of grammar listings (${languages})." default:"en-us" env:"GRAMATYKA_LANG"`
	Dump    bool             `help:"Dump the loaded grammar structure before running the command."`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Check   checkCmd   `cmd:"" help:"Validate a grammar and report its normal forms."`
	Convert convertCmd `cmd:"" help:"Convert a grammar in Chomsky normal form to Greibach normal form."`
	Words   wordsCmd   `cmd:"" help:"List or sample words of the language of a grammar."`
	EBNF    ebnfCmd    `cmd:"" name:"ebnf" help:"Print a grammar as EBNF."`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("gramatyka"),
		kong.Description(`Context-free grammars over single-letter alphabets.`),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "~/.gramatyka.json"),
		kong.Vars{
			"version":   version,
			"languages": strings.Join(render.Languages(), ", "),
		},
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	cli := &CLI{Globals: Globals{Stdout: os.Stdout, Stderr: os.Stderr}}
	parser, err := newParser(cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
