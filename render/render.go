// Package render prints grammar listings in the user's language.
package render

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"

	"github.com/nicksnyder/go-i18n/i18n/bundle"

	"github.com/annaproch/gramatyka"
)

//go:embed translations/*.all.json
var translations embed.FS

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = "en-us"

// Renderer formats grammars with translated labels.
type Renderer struct {
	Labels gramatyka.Labels
}

// New creates a Renderer for the given language tag, eg. "en-US" or "pl".
func New(lang string) (*Renderer, error) {
	b, err := load()
	if err != nil {
		return nil, err
	}
	if lang == "" {
		lang = DefaultLanguage
	}
	tr, err := b.Tfunc(lang)
	if err != nil {
		return nil, fmt.Errorf("unsupported language %q: %w", lang, err)
	}
	return &Renderer{Labels: gramatyka.Labels{
		Grammar:      tr("grammar"),
		Regular:      tr("regular"),
		ContextFree:  tr("context_free"),
		NoForm:       tr("no_form"),
		Chomsky:      tr("chomsky"),
		Greibach:     tr("greibach"),
		Terminals:    tr("terminals"),
		Nonterminals: tr("nonterminals"),
		Productions:  tr("productions"),
		Empty:        tr("empty"),
	}}, nil
}

// Grammar writes the listing of g, verified against form, to w.
func (r *Renderer) Grammar(w io.Writer, g *gramatyka.Grammar, form gramatyka.Form) error {
	return g.Format(w, r.Labels, form)
}

// Languages lists the tags translations are available for.
func Languages() []string {
	b, err := load()
	if err != nil {
		return nil
	}
	tags := b.LanguageTags()
	sort.Strings(tags)
	return tags
}

func load() (*bundle.Bundle, error) {
	b := bundle.New()
	files, err := fs.Glob(translations, "translations/*.all.json")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		data, err := translations.ReadFile(file)
		if err != nil {
			return nil, err
		}
		if err := b.ParseTranslationFileBytes(path.Base(file), data); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	}
	return b, nil
}
