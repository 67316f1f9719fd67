package gramatyka_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"

	"github.com/annaproch/gramatyka"
	"github.com/annaproch/gramatyka/language"
)

func randomString(rnd *rand.Rand, pool string, maxLen int) string {
	w := strings.Builder{}
	for i := rnd.Intn(maxLen + 1); i > 0; i-- {
		w.WriteByte(pool[rnd.Intn(len(pool))])
	}
	return w.String()
}

// wellFormed checks the grammar invariants independently of the validator.
// Generating nonterminals are computed forwards, from the terminals up.
func wellFormed(terminals, nonterminals string, productions [][]string) bool {
	isUniqueIn := func(s string, lo, hi byte) bool {
		for i := 0; i < len(s); i++ {
			if s[i] < lo || s[i] > hi || strings.IndexByte(s, s[i]) != i {
				return false
			}
		}
		return true
	}
	if !isUniqueIn(terminals, 'a', 'z') || !isUniqueIn(nonterminals, 'A', 'Z') {
		return false
	}
	if len(productions) != len(nonterminals) {
		return false
	}
	for _, bodies := range productions {
		if len(bodies) == 0 {
			return false
		}
		for _, body := range bodies {
			for _, r := range body {
				if !strings.ContainsRune(terminals+nonterminals, r) {
					return false
				}
			}
		}
	}
	generating := map[rune]bool{}
	for grown := true; grown; {
		grown = false
		for i, nt := range nonterminals {
			if generating[nt] {
				continue
			}
			for _, body := range productions[i] {
				ok := true
				for _, r := range body {
					if r >= 'A' && r <= 'Z' && !generating[r] {
						ok = false
					}
				}
				if ok {
					generating[nt] = true
					grown = true
					break
				}
			}
		}
	}
	return len(generating) == len(nonterminals)
}

func TestFuzz_New(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	accepted := 0
	for i := 0; i < 3000; i++ {
		terminals := randomString(rnd, "abcA", 3)
		nonterminals := randomString(rnd, "SABb", 3)
		count := len(nonterminals)
		if rnd.Intn(10) == 0 {
			count += rnd.Intn(3) - 1
		}
		if count < 0 {
			count = 0
		}
		productions := make([][]string, count)
		for j := range productions {
			bodies := rnd.Intn(4)
			for k := 0; k < bodies; k++ {
				productions[j] = append(productions[j], randomString(rnd, "abcSABX", 3))
			}
		}
		expected := wellFormed(terminals, nonterminals, productions)
		g, err := gramatyka.New(terminals, nonterminals, productions)
		require.Equal(t, expected, err == nil, "%v\n%s", err, repr.String([]interface{}{terminals, nonterminals, productions}))
		if err != nil {
			continue
		}
		accepted++
		require.Equal(t, nonterminals, gramatyka.Production(g.Nonterminals()).String())
		require.Equal(t, terminals, gramatyka.Production(g.Terminals()).String())
	}
	require.NotZero(t, accepted)
}

func randomChomsky(rnd *rand.Rand) (*gramatyka.Grammar, error) {
	nonterminals := "SABC"[:1+rnd.Intn(4)]
	productions := make([][]string, len(nonterminals))
	for i := range productions {
		for j := 1 + rnd.Intn(3); j > 0; j-- {
			var body string
			if rnd.Intn(5) < 2 {
				body = string("ab"[rnd.Intn(2)])
			} else {
				body = string(nonterminals[rnd.Intn(len(nonterminals))]) + string(nonterminals[rnd.Intn(len(nonterminals))])
			}
			productions[i] = append(productions[i], body)
		}
	}
	return gramatyka.New("ab", nonterminals, productions)
}

func TestFuzz_ToGreibach(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	converted := 0
	for i := 0; i < 200; i++ {
		g, err := randomChomsky(rnd)
		if err != nil {
			// Non-generating nonterminals are expected from random productions.
			require.ErrorIs(t, err, gramatyka.ErrNonGeneratingNonterminal)
			continue
		}
		require.True(t, g.IsChomsky(), g.String())
		out := mustConvert(t, g)
		require.Equal(t, language.Enumerate(g, 5), language.Enumerate(out.Grammar(), 5), "%s\n%s", g, out)
		converted++
	}
	require.NotZero(t, converted)
}
