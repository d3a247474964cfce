package stream

import "github.com/dhamidi/pars/stack"

// ConsStream is a Stream backed by a persistent singly-linked
// structure. Every derived stream shares the tail of its parent, which
// makes it a good fit when the underlying medium is not a flat buffer
// and streams are held concurrently by many choice points.
type ConsStream struct {
	content  stack.Stack[rune]
	position int
}

// NewCons returns a ConsStream over content, positioned at the start.
func NewCons(content string) ConsStream {
	runes := []rune(content)
	elements := stack.New[rune]()
	for i := len(runes) - 1; i >= 0; i-- {
		elements = elements.Push(runes[i])
	}
	return ConsStream{content: elements}
}

func (s ConsStream) Read() (rune, Stream) {
	top, rest, ok := s.content.Pop()
	if !ok {
		return EOF, s
	}
	return top, ConsStream{content: rest, position: s.position + 1}
}

func (s ConsStream) Next() rune {
	top, ok := s.content.Top()
	if !ok {
		return EOF
	}
	return top
}

func (s ConsStream) Len() int {
	return s.content.Len()
}

func (s ConsStream) Position() int {
	return s.position
}

func (s ConsStream) String() string {
	return string(s.content.Slice())
}
