package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/pars/stack"
	"github.com/dhamidi/pars/stream"
	"github.com/dhamidi/pars/trampoline"
)

// Many applies parser zero or more times and collects the values in
// order. The final, non-matching attempt never consumes input.
func Many(parser Parser) Parser {
	return many(parser, stack.New[any]())
}

func many(parser Parser, collected stack.Stack[any]) Parser {
	return func(s stream.Stream, st *State) trampoline.Step {
		again := Bind(Try(parser), func(value any) Parser {
			return many(parser, collected.Push(value))
		})
		var finish Parser = func(s stream.Stream, st *State) trampoline.Step {
			return st.succeed(collectedValues(collected), s)
		}
		return Choice(again, finish)(s, st)
	}
}

func collectedValues(collected stack.Stack[any]) []any {
	values := collected.Slice()
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
	return values
}

// Many1 is Many requiring at least one match.
func Many1(parser Parser) Parser {
	return Bind(parser, func(first any) Parser {
		return many(parser, stack.New[any]().Push(first))
	})
}

// Chain runs parsers in order and yields the value of the last one.
func Chain(first Parser, rest ...Parser) Parser {
	combined := first
	for _, parser := range rest {
		next := parser
		combined = Bind(combined, func(any) Parser { return next })
	}
	return combined
}

// SepBy parses zero or more occurrences of parser separated by sep,
// collecting the parser values.
func SepBy(parser, sep Parser) Parser {
	tail := func(first any) Parser {
		return Fmap(func(rest any) any {
			return append([]any{first}, rest.([]any)...)
		}, Many(Chain(sep, parser)))
	}
	return Choice(Bind(Try(parser), tail), Unit([]any{}))
}

// Optional parses parser, or succeeds with nil without consuming
// input.
func Optional(parser Parser) Parser {
	return Choice(Try(parser), Unit(nil))
}

// Enclosed parses body between open and closing, yielding body's
// value.
func Enclosed(open, body, closing Parser) Parser {
	return Bind(open, func(any) Parser {
		return Bind(body, func(value any) Parser {
			return Fmap(func(any) any { return value }, closing)
		})
	})
}

// Whitespace consumes zero or more blanks, tabs and line breaks,
// yielding them as a string.
func Whitespace() Parser {
	return Fmap(joined, Many(OneOf(" \t\r\n")))
}

// Digits consumes one or more decimal digits as a string.
func Digits() Parser {
	return Fmap(joined, Many1(OneOf("0123456789")))
}

// Integer parses a decimal integer with an optional leading minus.
func Integer() Parser {
	return Bind(Optional(OneOf("-")), func(sign any) Parser {
		return Bind(Digits(), func(digits any) Parser {
			text := digits.(string)
			if sign != nil {
				text = "-" + text
			}
			n, err := strconv.Atoi(text)
			if err != nil {
				return Fail(fmt.Sprintf("integer out of range: %s", text))
			}
			return Unit(n)
		})
	})
}

// End succeeds only when the input is exhausted, consuming nothing.
func End() Parser {
	return func(s stream.Stream, st *State) trampoline.Step {
		if ch := s.Next(); ch != stream.EOF {
			return st.fail(s, func() string {
				return fmt.Sprintf("expected end of input but found `%c`", ch)
			})
		}
		return st.succeed(nil, s)
	}
}

// joined concatenates a []any of strings.
func joined(value any) any {
	var b strings.Builder
	for _, part := range value.([]any) {
		b.WriteString(part.(string))
	}
	return b.String()
}
