package gramatyka

import (
	"fmt"
	"io"
	"strings"
)

type tracer struct {
	w      io.Writer
	indent int
}

// printf is a no-op on a nil tracer.
func (t *tracer) printf(format string, args ...interface{}) {
	if t == nil {
		return
	}
	fmt.Fprintf(t.w, "%s%s\n", strings.Repeat(" ", t.indent), fmt.Sprintf(format, args...))
}

func (t *tracer) enter(format string, args ...interface{}) {
	if t == nil {
		return
	}
	t.printf(format, args...)
	t.indent += 2
}

func (t *tracer) leave() {
	if t == nil {
		return
	}
	t.indent -= 2
}

func traceRules(productions []Production) string {
	out := make([]string, len(productions))
	for i, p := range productions {
		out[i] = p.String()
	}
	return strings.Join(out, " | ")
}
