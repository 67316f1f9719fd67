package notation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/stretchr/testify/require"

	"github.com/annaproch/gramatyka"
	"github.com/annaproch/gramatyka/notation"
)

func TestParse(t *testing.T) {
	g, err := notation.ParseString("", `
# Balanced brackets with a tail of c's.
terminals: abc ;
S -> aSb | AS | ε ;
A -> c | cA ;
`)
	require.NoError(t, err)
	require.Equal(t, []gramatyka.Symbol{'a', 'b', 'c'}, g.Terminals())
	require.Equal(t, []gramatyka.Symbol{'S', 'A'}, g.Nonterminals())
	require.Equal(t, gramatyka.Symbol('S'), g.Start())
	require.Equal(t, []gramatyka.Production{
		gramatyka.ParseProduction("aSb"),
		gramatyka.ParseProduction("AS"),
		gramatyka.ParseProduction(""),
	}, g.Rules('S'))
}

func TestParseInfersTerminals(t *testing.T) {
	g, err := notation.ParseString("", `
S → bA | & ;
A → aS ;
A → c ;
`)
	require.NoError(t, err)
	require.Equal(t, []gramatyka.Symbol{'b', 'a', 'c'}, g.Terminals())
	require.Equal(t, []gramatyka.Production{
		gramatyka.ParseProduction("aS"),
		gramatyka.ParseProduction("c"),
	}, g.Rules('A'))
	require.True(t, g.IsRegular())
}

func TestParseSyntaxError(t *testing.T) {
	_, err := notation.ParseString("test.g", `S -> a | ;`)
	require.Error(t, err)
	var perr participle.Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "test.g", perr.Position().Filename)
	require.Equal(t, 1, perr.Position().Line)
}

func TestParseValidationError(t *testing.T) {
	_, err := notation.ParseString("", `
terminals: a ;
S -> ab ;
`)
	require.ErrorIs(t, err, gramatyka.ErrUnknownSymbol)
	var verr *gramatyka.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, gramatyka.Symbol('S'), verr.Nonterminal)
	require.Equal(t, gramatyka.Symbol('b'), verr.Symbol)

	_, err = notation.ParseString("", `S -> aS ;`)
	require.ErrorIs(t, err, gramatyka.ErrNonGeneratingNonterminal)

	_, err = notation.ParseString("", `Start -> a ;`)
	require.ErrorIs(t, err, gramatyka.ErrInvalidNonterminals)
}

func TestParseMultiLetterHead(t *testing.T) {
	_, err := notation.ParseString("test.g", "S -> a ;\nSA -> a ;")
	require.ErrorIs(t, err, gramatyka.ErrInvalidNonterminals)
	require.NotErrorIs(t, err, gramatyka.ErrProductionCountMismatch)
	var perr participle.Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 2, perr.Position().Line)
	require.Contains(t, err.Error(), `rule head "SA" is not a single nonterminal`)
}

func TestParseYAML(t *testing.T) {
	g, err := notation.ParseYAML(strings.NewReader(`
terminals: ab
nonterminals: SA
productions:
  S: [aA, b]
  A: ["", aA]
`))
	require.NoError(t, err)
	require.Equal(t, []gramatyka.Symbol{'S', 'A'}, g.Nonterminals())
	require.Equal(t, []gramatyka.Production{
		gramatyka.ParseProduction(""),
		gramatyka.ParseProduction("aA"),
	}, g.Rules('A'))
}

func TestParseTOML(t *testing.T) {
	g, err := notation.ParseTOML(strings.NewReader(`
terminals = "ab"
nonterminals = "ABC"

[productions]
A = ["BC"]
B = ["CA", "b"]
C = ["AB", "a"]
`))
	require.NoError(t, err)
	require.True(t, g.IsChomsky())
	require.Equal(t, gramatyka.Symbol('A'), g.Start())
}

func TestDocumentErrors(t *testing.T) {
	_, err := notation.ParseYAML(strings.NewReader(`
terminals: a
nonterminals: SA
productions:
  S: [a]
`))
	require.ErrorIs(t, err, gramatyka.ErrEmptyProductionSet)

	_, err = notation.ParseYAML(strings.NewReader(`
terminals: a
nonterminals: S
productions:
  S: [a]
  B: [a]
`))
	require.ErrorIs(t, err, gramatyka.ErrProductionCountMismatch)

	_, err = notation.ParseTOML(strings.NewReader(`terminals = [`))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		filename string
		input    string
	}{
		{"g.yaml", "terminals: a\nnonterminals: S\nproductions:\n  S: [a, aS]\n"},
		{"g.YML", "terminals: a\nnonterminals: S\nproductions:\n  S: [a, aS]\n"},
		{"g.toml", "terminals = \"a\"\nnonterminals = \"S\"\n[productions]\nS = [\"a\", \"aS\"]\n"},
		{"g.ebnf", `S = "a" [ S ] .`},
		{"g.txt", "S -> aS | a ;"},
		{"g", "S -> a | aS ;"},
	}
	for _, test := range tests {
		t.Run(test.filename, func(t *testing.T) {
			g, err := notation.Load(test.filename, strings.NewReader(test.input))
			require.NoError(t, err)
			require.Equal(t, []gramatyka.Symbol{'a'}, g.Terminals())
			require.Equal(t, []gramatyka.Symbol{'S'}, g.Nonterminals())
			require.Len(t, g.Rules('S'), 2)
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	g := gramatyka.MustNew("abc", "SAC", [][]string{
		{"aSb", "AS", ""},
		{"c", "cA"},
		{"a"},
	})
	tests := []struct {
		name  string
		write func(w *strings.Builder) error
		read  func(s string) (*gramatyka.Grammar, error)
	}{
		{"Native",
			func(w *strings.Builder) error { return notation.Write(w, g) },
			func(s string) (*gramatyka.Grammar, error) { return notation.ParseString("", s) }},
		{"YAML",
			func(w *strings.Builder) error { return notation.WriteYAML(w, g) },
			func(s string) (*gramatyka.Grammar, error) { return notation.ParseYAML(strings.NewReader(s)) }},
		{"TOML",
			func(w *strings.Builder) error { return notation.WriteTOML(w, g) },
			func(s string) (*gramatyka.Grammar, error) { return notation.ParseTOML(strings.NewReader(s)) }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := &strings.Builder{}
			require.NoError(t, test.write(w))
			parsed, err := test.read(w.String())
			require.NoError(t, err)
			require.Equal(t, g.Terminals(), parsed.Terminals())
			require.Equal(t, g.Nonterminals(), parsed.Nonterminals())
			require.Equal(t, g.Productions(), parsed.Productions())
		})
	}
}

func TestWrite(t *testing.T) {
	w := &strings.Builder{}
	require.NoError(t, notation.Write(w, gramatyka.MustNew("a", "S", [][]string{{"", "aS"}})))
	require.Equal(t, "terminals: a ;\nS -> ε | aS ;\n", w.String())
}
