package notation

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v2"

	"github.com/annaproch/gramatyka"
	"github.com/annaproch/gramatyka/ebnf"
)

// Document is the structured form of a grammar, as stored in YAML or TOML.
//
//	terminals: ab
//	nonterminals: SA
//	productions:
//	  S: [aA, b]
//	  A: ["", aA]
//
// The start symbol is the first letter of Nonterminals.
type Document struct {
	Terminals    string              `yaml:"terminals" toml:"terminals"`
	Nonterminals string              `yaml:"nonterminals" toml:"nonterminals"`
	Productions  map[string][]string `yaml:"productions" toml:"productions"`
}

// Grammar builds and validates the grammar described by the document.
//
// A nonterminal without a productions entry yields
// gramatyka.ErrEmptyProductionSet, an entry for an undeclared nonterminal
// gramatyka.ErrProductionCountMismatch.
func (d *Document) Grammar() (*gramatyka.Grammar, error) {
	productions := make([][]string, 0, len(d.Nonterminals))
	for _, nt := range d.Nonterminals {
		productions = append(productions, d.Productions[string(nt)])
	}
	heads := make([]string, 0, len(d.Productions))
	for head := range d.Productions {
		heads = append(heads, head)
	}
	sort.Strings(heads)
	for _, head := range heads {
		if utf8.RuneCountInString(head) != 1 || !strings.Contains(d.Nonterminals, head) {
			return nil, fmt.Errorf("productions for undeclared nonterminal %q: %w", head, gramatyka.ErrProductionCountMismatch)
		}
	}
	return gramatyka.New(d.Terminals, d.Nonterminals, productions)
}

// ParseYAML reads a grammar Document encoded as YAML.
func ParseYAML(r io.Reader) (*gramatyka.Grammar, error) {
	doc := &Document{}
	if err := yaml.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode YAML grammar: %w", err)
	}
	return doc.Grammar()
}

// ParseTOML reads a grammar Document encoded as TOML.
func ParseTOML(r io.Reader) (*gramatyka.Grammar, error) {
	doc := &Document{}
	if err := toml.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode TOML grammar: %w", err)
	}
	return doc.Grammar()
}

// Load reads a grammar, choosing the notation from the file extension.
//
// ".yaml" and ".yml" select YAML, ".toml" TOML, ".ebnf" EBNF. Anything else is
// read as the native notation.
func Load(filename string, r io.Reader) (*gramatyka.Grammar, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return ParseYAML(r)
	case ".toml":
		return ParseTOML(r)
	case ".ebnf":
		return ebnf.Parse(filename, r)
	default:
		return Parse(filename, r)
	}
}

// NewDocument describes g as a Document.
func NewDocument(g *gramatyka.Grammar) *Document {
	doc := &Document{
		Terminals:    join(g.Terminals()),
		Nonterminals: join(g.Nonterminals()),
		Productions:  map[string][]string{},
	}
	for _, nt := range g.Nonterminals() {
		bodies := []string{}
		for _, p := range g.Rules(nt) {
			bodies = append(bodies, p.String())
		}
		doc.Productions[nt.String()] = bodies
	}
	return doc
}

// WriteYAML encodes g as a YAML Document.
func WriteYAML(w io.Writer, g *gramatyka.Grammar) error {
	data, err := yaml.Marshal(NewDocument(g))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteTOML encodes g as a TOML Document.
func WriteTOML(w io.Writer, g *gramatyka.Grammar) error {
	return toml.NewEncoder(w).Encode(NewDocument(g))
}

func join(symbols []gramatyka.Symbol) string {
	out := &strings.Builder{}
	for _, s := range symbols {
		out.WriteString(s.String())
	}
	return out.String()
}
