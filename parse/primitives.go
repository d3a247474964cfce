package parse

import (
	"fmt"
	"strings"

	"github.com/dhamidi/pars/stream"
	"github.com/dhamidi/pars/trampoline"
)

// Character consumes exactly n elements and succeeds with them
// concatenated. It fails with an end-of-input message at the position
// where the input ran out.
func Character(n int) Parser {
	return func(s stream.Stream, st *State) trampoline.Step {
		result := make([]rune, 0, n)
		for i := 0; i < n; i++ {
			ch, rest := s.Read()
			if ch == stream.EOF {
				return st.fail(s, func() string {
					return "expected character but found end of input"
				})
			}
			result = append(result, ch)
			s = rest
		}
		return st.succeed(string(result), s)
	}
}

// Literal consumes exactly the elements of expected, one by one. On a
// mismatch it fails at the first mismatching element, naming the
// matched prefix plus the offending element; on premature end it fails
// at the point of exhaustion.
func Literal(expected string) Parser {
	want := []rune(expected)
	return func(s stream.Stream, st *State) trampoline.Step {
		matched := make([]rune, 0, len(want))
		for _, expectedChar := range want {
			before := s
			ch, rest := s.Read()
			if ch == stream.EOF {
				return st.fail(before, func() string {
					return fmt.Sprintf("expected `%s` but found end of input", expected)
				})
			}
			if ch != expectedChar {
				actual := string(matched) + string(ch)
				return st.fail(before, func() string {
					return fmt.Sprintf("expected `%s` but found `%s`", expected, actual)
				})
			}
			matched = append(matched, ch)
			s = rest
		}
		return st.succeed(expected, s)
	}
}

// OneOf consumes a single element contained in allowed.
func OneOf(allowed string) Parser {
	return func(s stream.Stream, st *State) trampoline.Step {
		ch := s.Next()
		if ch == stream.EOF {
			return st.fail(s, func() string {
				return fmt.Sprintf("expected one of `%s` but found end of input", allowed)
			})
		}
		if !strings.ContainsRune(allowed, ch) {
			return st.fail(s, func() string {
				return fmt.Sprintf("expected one of `%s` but found `%c`", allowed, ch)
			})
		}
		_, rest := s.Read()
		return st.succeed(string(ch), rest)
	}
}

// NoneOf consumes a single element not contained in forbidden.
func NoneOf(forbidden string) Parser {
	return func(s stream.Stream, st *State) trampoline.Step {
		ch := s.Next()
		if ch == stream.EOF {
			return st.fail(s, func() string {
				return fmt.Sprintf(
					"expected any character except one of `%s` but found end of input",
					forbidden)
			})
		}
		if strings.ContainsRune(forbidden, ch) {
			return st.fail(s, func() string {
				return fmt.Sprintf(
					"expected any character except one of `%s` but found `%c`",
					forbidden, ch)
			})
		}
		_, rest := s.Read()
		return st.succeed(string(ch), rest)
	}
}
