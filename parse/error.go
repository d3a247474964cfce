package parse

import (
	"strings"

	"github.com/dhamidi/pars/sourcemap"
)

const endOfInput = "end of input"

// Message is one rendered failure message together with its origin.
type Message struct {
	Text     string
	Offset   int
	Location sourcemap.Location
}

// Error is the terminal parse failure surfaced by Run: the aggregation
// of every alternative that was still pending when the last choice
// point was exhausted. Offset and Location describe the failure that
// exhausted all choices.
type Error struct {
	Messages []Message
	Offset   int
	Location sourcemap.Location
}

// Error joins the messages with " OR ", in the order the alternatives
// were attempted. Messages originating at a different position than
// the final failure carry their own location tag; the whole error is
// tagged with the final line:column.
func (e *Error) Error() string {
	var b strings.Builder
	for i, m := range e.Messages {
		if i > 0 {
			b.WriteString(" OR ")
		}
		b.WriteString(m.Text)
		if m.Offset != e.Offset {
			b.WriteString(" at ")
			b.WriteString(m.Location.String())
		}
	}
	if len(e.Messages) == 0 {
		b.WriteString("parsing failed")
	}
	b.WriteString(" at ")
	b.WriteString(e.Location.String())
	return b.String()
}

// EndOfInput reports whether any of the aggregated failures was caused
// by exhausting the input.
func (e *Error) EndOfInput() bool {
	for _, m := range e.Messages {
		if strings.Contains(m.Text, endOfInput) {
			return true
		}
	}
	return false
}
