// Package trampoline provides an iterative interpreter for suspended
// computations. A computation either finishes with a value or defers a
// tail call; Run applies deferred calls in a loop, so a chain of calls
// of unbounded depth consumes a single native stack frame.
package trampoline

// Step is one unit of a suspended computation: either a final value or
// a deferred call to be invoked next. The zero Step is a final nil
// value.
type Step struct {
	next  func() Step
	value any
}

// Call defers the invocation of fn. Arguments to the eventual callee
// are captured by the closure.
func Call(fn func() Step) Step {
	return Step{next: fn}
}

// Result marks the computation as finished with value.
func Result(value any) Step {
	return Step{value: value}
}

// Done reports whether the step carries a final value.
func (s Step) Done() bool {
	return s.next == nil
}

// Run drives a step to completion and returns the final value. The
// loop is the only recursion: Run never inspects intermediate values
// and never grows the call stack per step.
func Run(s Step) any {
	for s.next != nil {
		s = s.next()
	}
	return s.value
}
