package gramatyka

import (
	"errors"
	"fmt"
)

// Validation failures returned by New, wrapped in a *ValidationError.
var (
	ErrInvalidTerminals         = errors.New("terminals must be unique lowercase letters")
	ErrInvalidNonterminals      = errors.New("nonterminals must be unique uppercase letters")
	ErrProductionCountMismatch  = errors.New("number of production sets does not match number of nonterminals")
	ErrEmptyProductionSet       = errors.New("nonterminal has no productions")
	ErrUnknownSymbol            = errors.New("production references a symbol outside the alphabet")
	ErrNonGeneratingNonterminal = errors.New("nonterminal derives no terminal string")
)

// Form failures, wrapped in a *FormError.
var (
	ErrNotRegular  = errors.New("grammar is not regular")
	ErrNotChomsky  = errors.New("grammar is not in Chomsky normal form")
	ErrNotGreibach = errors.New("grammar is not in Greibach normal form")
)

// Conversion failures, wrapped in a *ConversionError.
var (
	ErrIdentifierSpaceExhausted = errors.New("no free nonterminal identifiers left")
	ErrInternalInvariant        = errors.New("internal invariant violated")
)

// ValidationError is returned when the parts of a grammar do not describe a
// valid context-free grammar.
//
// Kind is one of the ErrInvalid*, ErrProductionCountMismatch, ErrEmptyProductionSet,
// ErrUnknownSymbol or ErrNonGeneratingNonterminal sentinels.
type ValidationError struct {
	Kind error
	// Nonterminal the failure was detected on, or zero.
	Nonterminal Symbol
	// Symbol that caused the failure, or zero.
	Symbol Symbol
}

func (v *ValidationError) Error() string {
	switch {
	case v.Nonterminal != 0 && v.Symbol != 0:
		return fmt.Sprintf("%s: %s: %q", v.Nonterminal, v.Kind, string(rune(v.Symbol)))
	case v.Nonterminal != 0:
		return fmt.Sprintf("%s: %s", v.Nonterminal, v.Kind)
	case v.Symbol != 0:
		return fmt.Sprintf("%s: %q", v.Kind, string(rune(v.Symbol)))
	}
	return v.Kind.Error()
}

func (v *ValidationError) Unwrap() error { return v.Kind }

// FormError is returned when a grammar does not have the normal form claimed for it.
type FormError struct {
	Form Form
}

func (f *FormError) Error() string { return f.Unwrap().Error() }

func (f *FormError) Unwrap() error {
	switch f.Form {
	case FormRegular:
		return ErrNotRegular
	case FormChomsky:
		return ErrNotChomsky
	case FormGreibach:
		return ErrNotGreibach
	}
	return fmt.Errorf("grammar is not %s", f.Form)
}

// ConversionError is returned by ToGreibach.
//
// Kind is ErrIdentifierSpaceExhausted or ErrInternalInvariant. Err, if set,
// is the underlying failure.
type ConversionError struct {
	Kind    error
	Message string
	Err     error
}

func (c *ConversionError) Error() string {
	msg := "convert to Greibach form: " + c.Kind.Error()
	if c.Message != "" {
		msg += ": " + c.Message
	}
	if c.Err != nil {
		msg += ": " + c.Err.Error()
	}
	return msg
}

// Unwrap returns both the kind and the underlying error, so errors.Is
// matches either.
func (c *ConversionError) Unwrap() []error {
	if c.Err == nil {
		return []error{c.Kind}
	}
	return []error{c.Kind, c.Err}
}

func conversionErrorf(kind error, format string, args ...interface{}) error {
	return &ConversionError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
