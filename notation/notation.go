// Package notation reads grammars from text.
//
// The native notation lists one rule per nonterminal, terminated by ";":
//
//	# Comments run to the end of the line.
//	terminals: abc ;
//	S -> AB ;
//	A -> AB | CB | a ;
//	C -> ε | cC ;
//
// The "terminals" declaration is optional; without it the terminals are the
// lowercase letters used in production bodies, in order of first use. The
// first rule names the start symbol. Rules for the same nonterminal are
// merged. The empty production is written "ε" or "&".
//
// Grammars may also be given as YAML or TOML documents, see Document.
package notation

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/annaproch/gramatyka"
)

var (
	notationLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Arrow", Pattern: `->|→`},
		{Name: "Epsilon", Pattern: `ε|&`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[|:;]`},
	})
	parser = participle.MustBuild[File](
		participle.Lexer(notationLexer),
		participle.Elide("Comment", "Whitespace"),
	)
)

// File is the syntax tree of a grammar in the native notation.
type File struct {
	Pos lexer.Position

	Terminals *Terminals `parser:"@@?"`
	Rules     []*Rule    `parser:"@@*"`
}

// Terminals declares the terminal alphabet explicitly.
type Terminals struct {
	Symbols string `parser:"\"terminals\" \":\" @Ident? \";\""`
}

// Rule lists the productions of one nonterminal.
type Rule struct {
	Pos lexer.Position

	Nonterminal string  `parser:"@Ident Arrow"`
	Bodies      []*Body `parser:"@@ ( \"|\" @@ )* \";\""`
}

// Body of a single production.
type Body struct {
	Empty   bool   `parser:"  @Epsilon"`
	Symbols string `parser:"| @Ident"`
}

// ParseString is Parse on a string.
func ParseString(filename, s string) (*gramatyka.Grammar, error) {
	return Parse(filename, strings.NewReader(s))
}

// Parse reads a grammar in the native notation.
//
// Syntax errors are participle.Error values carrying a position. Validation
// failures wrap the *gramatyka.ValidationError.
func Parse(filename string, r io.Reader) (*gramatyka.Grammar, error) {
	file, err := parser.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	return file.Grammar()
}

// Grammar builds and validates the grammar described by the file.
func (f *File) Grammar() (*gramatyka.Grammar, error) {
	var (
		nonterminals string
		productions  [][]string
		index        = map[string]int{}
		inferred     = &strings.Builder{}
	)
	for _, rule := range f.Rules {
		if utf8.RuneCountInString(rule.Nonterminal) != 1 {
			return nil, participle.Wrapf(rule.Pos, &gramatyka.ValidationError{Kind: gramatyka.ErrInvalidNonterminals},
				"rule head %q is not a single nonterminal", rule.Nonterminal)
		}
		i, ok := index[rule.Nonterminal]
		if !ok {
			i = len(productions)
			index[rule.Nonterminal] = i
			nonterminals += rule.Nonterminal
			productions = append(productions, nil)
		}
		for _, body := range rule.Bodies {
			productions[i] = append(productions[i], body.Symbols)
			for _, r := range body.Symbols {
				if r >= 'a' && r <= 'z' && !strings.ContainsRune(inferred.String(), r) {
					inferred.WriteRune(r)
				}
			}
		}
	}
	terminals := inferred.String()
	if f.Terminals != nil {
		terminals = f.Terminals.Symbols
	}
	g, err := gramatyka.New(terminals, nonterminals, productions)
	if err != nil {
		return nil, participle.Wrapf(f.Pos, err, "invalid grammar")
	}
	return g, nil
}

// Write encodes g in the native notation, readable by Parse.
func Write(w io.Writer, g *gramatyka.Grammar) error {
	if _, err := fmt.Fprintf(w, "terminals: %s ;\n", join(g.Terminals())); err != nil {
		return err
	}
	for _, nt := range g.Nonterminals() {
		bodies := []string{}
		for _, p := range g.Rules(nt) {
			if p.Empty() {
				bodies = append(bodies, "ε")
			} else {
				bodies = append(bodies, p.String())
			}
		}
		if _, err := fmt.Fprintf(w, "%s -> %s ;\n", nt, strings.Join(bodies, " | ")); err != nil {
			return err
		}
	}
	return nil
}
