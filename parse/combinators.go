package parse

import (
	"github.com/dhamidi/pars/stream"
	"github.com/dhamidi/pars/trampoline"
)

// Unit always succeeds with value and consumes nothing.
func Unit(value any) Parser {
	return func(s stream.Stream, st *State) trampoline.Step {
		return st.succeed(value, s)
	}
}

// Fail always fails with message at the current position and consumes
// nothing.
func Fail(message string) Parser {
	return func(s stream.Stream, st *State) trampoline.Step {
		return st.fail(s, func() string { return message })
	}
}

// Bind sequences two parsers: parser runs first, then f is applied to
// its value to obtain the parser that continues from the resulting
// position. The continuation is pushed onto the control state rather
// than captured as a native closure chain, so Bind chains of arbitrary
// length use constant native stack.
func Bind(parser Parser, f func(value any) Parser) Parser {
	return func(s stream.Stream, st *State) trampoline.Step {
		next := st.addBinding(f)
		return trampoline.Call(func() trampoline.Step {
			return parser(s, next)
		})
	}
}

// Fmap applies transform to parser's value. Failures pass through
// unmodified.
func Fmap(transform func(value any) any, parser Parser) Parser {
	return Bind(parser, func(value any) Parser {
		return Unit(transform(value))
	})
}

// Choice tries first; if it fails, second is run from the exact stream
// position first started at, no matter how much input first consumed
// before failing. The failed branch's message is kept so a later total
// failure reports every alternative that was tried.
func Choice(first, second Parser) Parser {
	return func(s stream.Stream, st *State) trampoline.Step {
		next := st.addChoice(second, s)
		return trampoline.Call(func() trampoline.Step {
			return first(s, next)
		})
	}
}

// Choices folds Choice over parsers, left to right.
func Choices(parsers ...Parser) Parser {
	if len(parsers) == 0 {
		return Fail("no alternatives")
	}
	combined := parsers[0]
	for _, parser := range parsers[1:] {
		combined = Choice(combined, parser)
	}
	return combined
}

// LookAhead runs parser and, on success, rewinds the stream to the
// position before it ran while keeping the value. Failures propagate
// with their original position.
func LookAhead(parser Parser) Parser {
	return func(s stream.Stream, st *State) trampoline.Step {
		restore := func(value any) Parser {
			return func(_ stream.Stream, inner *State) trampoline.Step {
				return inner.succeed(value, s)
			}
		}
		next := st.addBinding(restore)
		return trampoline.Call(func() trampoline.Step {
			return parser(s, next)
		})
	}
}

// Try runs parser; on failure the stream is rewound to the position
// before it ran, erasing any partial consumption, and the failure is
// re-raised from there. The failing branch's message is preserved.
func Try(parser Parser) Parser {
	return func(s stream.Stream, st *State) trampoline.Step {
		next := st.addChoice(rethrow, s)
		return trampoline.Call(func() trampoline.Step {
			return parser(s, next)
		})
	}
}

// rethrow is the alternative installed by Try. By the time it runs the
// guarded parser has already recorded its message, so it only
// propagates the failure from the rewound position.
func rethrow(s stream.Stream, st *State) trampoline.Step {
	return st.refail(s)
}
