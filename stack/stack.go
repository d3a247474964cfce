// Package stack implements a persistent LIFO stack. Push and Pop
// return new stack values and never modify the receiver, so any number
// of derived stacks can share structure safely.
package stack

type node[T any] struct {
	value T
	next  *node[T]
}

// Stack is a persistent stack of T. The zero value is an empty stack.
// Stack values are cheap to copy and safe to share.
type Stack[T any] struct {
	head *node[T]
	size int
}

// New returns an empty stack.
func New[T any]() Stack[T] {
	return Stack[T]{}
}

// Push returns a new stack with value on top.
func (s Stack[T]) Push(value T) Stack[T] {
	return Stack[T]{
		head: &node[T]{value: value, next: s.head},
		size: s.size + 1,
	}
}

// Top returns the most recently pushed value. The second return is
// false when the stack is empty.
func (s Stack[T]) Top() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.value, true
}

// Pop returns the top value and the stack without it. The third return
// is false when the stack is empty, in which case the receiver is
// returned unchanged.
func (s Stack[T]) Pop() (T, Stack[T], bool) {
	if s.head == nil {
		var zero T
		return zero, s, false
	}
	return s.head.value, Stack[T]{head: s.head.next, size: s.size - 1}, true
}

// Len returns the number of values on the stack.
func (s Stack[T]) Len() int {
	return s.size
}

// Empty reports whether the stack holds no values.
func (s Stack[T]) Empty() bool {
	return s.head == nil
}

// Slice returns the stack's values, most recently pushed first.
func (s Stack[T]) Slice() []T {
	out := make([]T, 0, s.size)
	for n := s.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
