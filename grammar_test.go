package gramatyka_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/annaproch/gramatyka"
)

func mustGrammar(t *testing.T, terminals, nonterminals string, productions ...[]string) *gramatyka.Grammar {
	t.Helper()
	g, err := gramatyka.New(terminals, nonterminals, productions)
	require.NoError(t, err)
	return g
}

func requireValidationError(t *testing.T, err error, kind error) *gramatyka.ValidationError {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, kind), "expected %v but got %v", kind, err)
	verr := &gramatyka.ValidationError{}
	require.True(t, errors.As(err, &verr))
	return verr
}

func TestNew(t *testing.T) {
	g := mustGrammar(t, "ab", "SPQR",
		[]string{"P", "Q", "R"},
		[]string{"a", "aP", "aPb"},
		[]string{"b", "Qb", "aQb"},
		[]string{""},
	)
	require.Equal(t, gramatyka.Symbol('S'), g.Start())
	require.Equal(t, []gramatyka.Symbol{'a', 'b'}, g.Terminals())
	require.Equal(t, []gramatyka.Symbol{'S', 'P', 'Q', 'R'}, g.Nonterminals())
	require.Equal(t, []gramatyka.Production{{}}, g.Rules('R'))
	require.Nil(t, g.Rules('X'))
	require.True(t, g.IsTerminal('a'))
	require.False(t, g.IsTerminal('S'))
	require.True(t, g.IsNonterminal('Q'))
	require.False(t, g.Regular())

	productions := g.Productions()
	require.Len(t, productions, 4)
	require.Equal(t, "aPb", productions[1][2].String())
}

func TestAccessorsReturnCopies(t *testing.T) {
	g := mustGrammar(t, "a", "S", []string{"a", "aS"})
	g.Terminals()[0] = 'z'
	g.Nonterminals()[0] = 'Z'
	g.Productions()[0][1][0] = 'z'
	g.Rules('S')[0][0] = 'z'
	require.Equal(t, []gramatyka.Symbol{'a'}, g.Terminals())
	require.Equal(t, []gramatyka.Symbol{'S'}, g.Nonterminals())
	require.Equal(t, "aS", g.Rules('S')[1].String())
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name         string
		terminals    string
		nonterminals string
		productions  [][]string
		kind         error
		nonterminal  gramatyka.Symbol
		symbol       gramatyka.Symbol
	}{
		{name: "UppercaseTerminal", terminals: "aB", nonterminals: "S",
			productions: [][]string{{"a"}}, kind: gramatyka.ErrInvalidTerminals},
		{name: "DuplicateTerminal", terminals: "aa", nonterminals: "S",
			productions: [][]string{{"a"}}, kind: gramatyka.ErrInvalidTerminals},
		{name: "LowercaseNonterminal", terminals: "a", nonterminals: "Sb",
			productions: [][]string{{"a"}, {"a"}}, kind: gramatyka.ErrInvalidNonterminals},
		{name: "DuplicateNonterminal", terminals: "a", nonterminals: "SS",
			productions: [][]string{{"a"}, {"a"}}, kind: gramatyka.ErrInvalidNonterminals},
		{name: "CountMismatch", terminals: "a", nonterminals: "SA",
			productions: [][]string{{"a"}}, kind: gramatyka.ErrProductionCountMismatch},
		{name: "EmptyProductionSet", terminals: "a", nonterminals: "SA",
			productions: [][]string{{"a"}, {}}, kind: gramatyka.ErrEmptyProductionSet, nonterminal: 'A'},
		{name: "UnknownNonterminal", terminals: "ab", nonterminals: "S",
			productions: [][]string{{"aX"}}, kind: gramatyka.ErrUnknownSymbol, nonterminal: 'S', symbol: 'X'},
		{name: "UnknownTerminal", terminals: "a", nonterminals: "SA",
			productions: [][]string{{"A"}, {"c"}}, kind: gramatyka.ErrUnknownSymbol, nonterminal: 'A', symbol: 'c'},
		{name: "NonGenerating", terminals: "a", nonterminals: "SA",
			productions: [][]string{{"A"}, {"aA"}}, kind: gramatyka.ErrNonGeneratingNonterminal, nonterminal: 'S'},
		{name: "NonGeneratingCycle", terminals: "ab", nonterminals: "SAB",
			productions: [][]string{{"a", "A"}, {"bB"}, {"aA", "AB"}}, kind: gramatyka.ErrNonGeneratingNonterminal, nonterminal: 'A'},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := gramatyka.New(test.terminals, test.nonterminals, test.productions)
			require.Nil(t, g)
			verr := requireValidationError(t, err, test.kind)
			require.Equal(t, test.nonterminal, verr.Nonterminal)
			require.Equal(t, test.symbol, verr.Symbol)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	_, err := gramatyka.New("ab", "S", [][]string{{"aX"}})
	require.EqualError(t, err, `S: production references a symbol outside the alphabet: "X"`)

	_, err = gramatyka.New("a", "SA", [][]string{{"A"}, {"aA"}})
	require.EqualError(t, err, "S: nonterminal derives no terminal string")

	_, err = gramatyka.New("a", "SA", [][]string{{"a"}})
	require.EqualError(t, err, "number of production sets does not match number of nonterminals")
}

func TestGeneratingThroughEmptyProduction(t *testing.T) {
	g := mustGrammar(t, "c", "SC", []string{"CC"}, []string{"", "cC"})
	require.Equal(t, []gramatyka.Symbol{'S', 'C'}, g.Nonterminals())
}

func TestMustNewPanics(t *testing.T) {
	require.Panics(t, func() {
		gramatyka.MustNew("a", "S", [][]string{{"b"}})
	})
}

func TestEmptyGrammar(t *testing.T) {
	g := mustGrammar(t, "ab", "")
	require.Equal(t, gramatyka.Symbol(0), g.Start())
	require.True(t, g.IsChomsky())
	require.True(t, g.IsGreibach())
	require.True(t, g.IsRegular())
}
