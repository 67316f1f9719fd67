package gramatyka

import "io"

// An Option to modify the behaviour of the Greibach conversion.
type Option func(c *converter) error

// Trace the conversion to "w".
//
// One line is written per rank assignment, substitution pass, auxiliary
// nonterminal and pruned nonterminal.
func Trace(w io.Writer) Option {
	return func(c *converter) error {
		c.trace = &tracer{w: w}
		return nil
	}
}
