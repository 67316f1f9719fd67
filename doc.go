// Package gramatyka models context-free grammars over single-letter alphabets,
// classifies them by normal form and converts grammars in Chomsky normal form
// into Greibach normal form.
//
// Terminals are the lowercase letters a-z and nonterminals the uppercase
// letters A-Z. A grammar is built from its terminals, its nonterminals (the
// first is the start symbol) and one set of productions per nonterminal:
//
//	g, err := gramatyka.New("ab", "SABC", [][]string{
//		{"AB"},
//		{"AB", "CB", "a"},
//		{"AB", "b"},
//		{"AC", "c"},
//	})
//
// New rejects grammars whose alphabets overlap or repeat, that reference
// unknown symbols, or that contain a nonterminal deriving no terminal string.
//
// The verified forms Chomsky and Greibach can only be obtained through
// AsChomsky and AsGreibach, which re-check the form:
//
//	c, err := gramatyka.AsChomsky(g)
//	gnf, err := c.ToGreibach()
//
// Conversion renames nonterminals onto the top of the identifier space and
// introduces auxiliary nonterminals below them, so a grammar with n
// nonterminals can be converted only while 26-n identifiers remain free for
// the auxiliaries it needs.
package gramatyka
