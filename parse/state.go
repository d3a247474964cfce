package parse

import (
	"github.com/dhamidi/pars/sourcemap"
	"github.com/dhamidi/pars/stack"
	"github.com/dhamidi/pars/stream"
	"github.com/dhamidi/pars/trampoline"
)

// binding is a pending continuation: given the value produced by the
// parser that just succeeded, it yields the parser to run next.
type binding func(value any) Parser

// choicePoint is a saved alternative: the parser to try, the stream
// position to resume from, and the control state as of the moment the
// point was registered.
type choicePoint struct {
	alternative Parser
	stream      stream.Stream
	state       *State
}

// errorEntry is a deferred diagnostic. The message is rendered only
// when a failure finally surfaces to the caller, so the successful
// path never pays for message formatting.
type errorEntry struct {
	render func() string
	offset int
}

// State is the control state threaded through a parse run. It holds
// the pending continuations (the success path), the pending choice
// points (the failure path) and the deferred error messages, plus the
// current document offset for location reporting.
//
// State values are immutable: every operation returns a new value that
// shares structure with its parent. Two branches created by the same
// choice point therefore never observe each other's pushes.
type State struct {
	index    *sourcemap.Index
	offset   int
	bindings stack.Stack[binding]
	choices  stack.Stack[choicePoint]
	errors   stack.Stack[errorEntry]
}

func newState(index *sourcemap.Index) *State {
	return &State{index: index}
}

func (st *State) clone() *State {
	next := *st
	return &next
}

// addBinding pushes a continuation onto the success path.
func (st *State) addBinding(b binding) *State {
	next := st.clone()
	next.bindings = st.bindings.Push(b)
	return next
}

// addChoice registers alternative as the fallback for the position
// held by s. The snapshot stored in the choice point is the state
// before the push; a "discard this choice point" binding is pushed
// alongside it, so a guarded branch that succeeds drops the point
// without any call-site cleanup.
func (st *State) addChoice(alternative Parser, s stream.Stream) *State {
	next := st.clone()
	next.choices = st.choices.Push(choicePoint{
		alternative: alternative,
		stream:      s,
		state:       st,
	})
	return next.addBinding(discardChoice)
}

func discardChoice(value any) Parser {
	return func(s stream.Stream, st *State) trampoline.Step {
		next := st.clone()
		_, next.choices, _ = st.choices.Pop()
		return next.succeed(value, s)
	}
}

// succeed continues the success path: the most recent binding is
// popped and applied to value, or the run finishes when none remain.
func (st *State) succeed(value any, s stream.Stream) trampoline.Step {
	b, rest, ok := st.bindings.Pop()
	if !ok {
		return trampoline.Result(outcome{value: value, remaining: s})
	}
	next := b(value)
	nextState := st.clone()
	nextState.bindings = rest
	nextState.offset = s.Position()
	return trampoline.Call(func() trampoline.Step {
		return next(s, nextState)
	})
}

// fail records a lazily rendered message originating at s and resumes
// the most recent choice point, or finishes the run with the
// aggregated error when no alternative remains.
func (st *State) fail(s stream.Stream, render func() string) trampoline.Step {
	failed := st.clone()
	failed.errors = st.errors.Push(errorEntry{render: render, offset: s.Position()})
	failed.offset = s.Position()
	return failed.resume()
}

// refail propagates an already recorded failure from the position held
// by s. No new message is pushed; control just moves on.
func (st *State) refail(s stream.Stream) trampoline.Step {
	failed := st.clone()
	failed.offset = s.Position()
	return failed.resume()
}

// resume transfers control to the most recent choice point. The
// resumed branch inherits the failing branch's error entries, so a
// later total failure can report every alternative that was tried.
func (st *State) resume() trampoline.Step {
	cp, ok := st.choices.Top()
	if !ok {
		return trampoline.Result(outcome{err: st.terminalError()})
	}
	resumed := cp.state.clone()
	resumed.errors = st.errors
	resumed.offset = cp.stream.Position()
	return trampoline.Call(func() trampoline.Step {
		return cp.alternative(cp.stream, resumed)
	})
}

// Succeed continues the parse with value and the remaining stream.
// Custom leaf parsers call this exactly once on their success path.
func (st *State) Succeed(value any, s stream.Stream) trampoline.Step {
	return st.succeed(value, s)
}

// Fail records a lazily rendered failure message originating at s and
// backtracks to the nearest pending alternative. The message is only
// rendered if the failure ultimately surfaces to the caller.
func (st *State) Fail(s stream.Stream, render func() string) trampoline.Step {
	return st.fail(s, render)
}

// Location resolves the current document offset to line/column.
func (st *State) Location() sourcemap.Location {
	return st.index.Locate(st.offset)
}

// terminalError renders every pending error entry, oldest first (the
// order the alternatives were attempted), and tags the result with the
// location of the failure that exhausted all choices.
func (st *State) terminalError() *Error {
	err := &Error{
		Offset:   st.offset,
		Location: st.index.Locate(st.offset),
	}
	entries := st.errors.Slice()
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		err.Messages = append(err.Messages, Message{
			Text:     entry.render(),
			Offset:   entry.offset,
			Location: st.index.Locate(entry.offset),
		})
	}
	return err
}
