package parse

import (
	"github.com/dhamidi/pars/sourcemap"
	"github.com/dhamidi/pars/stream"
	"github.com/dhamidi/pars/trampoline"
)

// Parser consumes input from a stream under a control state and
// produces a trampoline step. A Parser is a pure value: it owns no
// mutable state and may be reused across runs and shared between
// alternation branches without synchronization.
//
// Custom parsers must follow the trampoline protocol: tail calls into
// other parsers are returned as trampoline.Call steps, success and
// failure are signaled through the control state's succeed and fail
// operations, never by calling another parser recursively.
type Parser func(s stream.Stream, st *State) trampoline.Step

// outcome is the terminal value a parse run leaves on the trampoline.
type outcome struct {
	value     any
	remaining stream.Stream
	err       *Error
}

// Option configures a parse run.
type Option func(*runConfig)

type runConfig struct {
	makeStream func(input string) stream.Stream
}

// WithStream selects the stream implementation backing the run. The
// default is the indexed text stream:
//
//	Run(p, input, WithStream(func(in string) stream.Stream {
//		return stream.NewCons(in)
//	}))
func WithStream(impl func(input string) stream.Stream) Option {
	return func(cfg *runConfig) {
		cfg.makeStream = impl
	}
}

// Run applies parser to input and returns the parsed value. Any
// unconsumed remainder is discarded; use RunStream to inspect it. On
// failure the returned error is a *Error aggregating every alternative
// that was tried, tagged with line/column locations.
func Run(parser Parser, input string, opts ...Option) (any, error) {
	cfg := runConfig{
		makeStream: func(input string) stream.Stream {
			return stream.NewText(input)
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	value, _, err := drive(parser, cfg.makeStream(input), sourcemap.NewIndex(input))
	return value, err
}

// RunStream applies parser to a stream positioned at the start of its
// document and additionally returns the unconsumed remainder.
func RunStream(parser Parser, s stream.Stream) (any, stream.Stream, error) {
	return drive(parser, s, sourcemap.NewIndex(s.String()))
}

// drive wraps the parser's entry as the first deferred call and runs
// the trampoline to completion.
func drive(parser Parser, s stream.Stream, index *sourcemap.Index) (any, stream.Stream, error) {
	st := newState(index)
	result := trampoline.Run(trampoline.Call(func() trampoline.Step {
		return parser(s, st)
	}))
	out := result.(outcome)
	if out.err != nil {
		return nil, s, out.err
	}
	return out.value, out.remaining, nil
}
