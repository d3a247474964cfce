// Package stream provides immutable input streams for the parser
// engine. Reading never mutates a stream value: Read returns the
// current element together with a new stream advanced by one, so older
// stream values stay valid and can be resumed at any time. That is
// what makes backtracking cheap — a choice point just holds on to the
// stream value it started from.
//
// Two interchangeable implementations are provided: TextStream indexes
// into a flat rune buffer, ConsStream walks a persistent singly-linked
// structure. They behave identically.
package stream

// EOF is the distinguished end marker. Reading an exhausted stream
// yields EOF forever; it is never an error.
const EOF rune = -1

// Stream is an immutable read cursor over an input document. Positions
// are rune offsets from the start of the document.
type Stream interface {
	// Read returns the current element and a new stream advanced by
	// one. On an exhausted stream it returns EOF and the receiver.
	Read() (rune, Stream)

	// Next returns the current element without consuming it, or EOF.
	Next() rune

	// Len returns the number of unread elements.
	Len() int

	// Position returns the rune offset of the next element.
	Position() int

	// String returns the unread remainder, for diagnostics.
	String() string
}

// TextStream is a Stream backed by an index into a flat rune buffer.
// This is the cheaper representation when the whole document is a
// contiguous in-memory string.
type TextStream struct {
	content  []rune
	position int
}

// NewText returns a TextStream over content, positioned at the start.
func NewText(content string) TextStream {
	return TextStream{content: []rune(content)}
}

func (s TextStream) Read() (rune, Stream) {
	if s.position >= len(s.content) {
		return EOF, s
	}
	next := TextStream{content: s.content, position: s.position + 1}
	return s.content[s.position], next
}

func (s TextStream) Next() rune {
	if s.position >= len(s.content) {
		return EOF
	}
	return s.content[s.position]
}

func (s TextStream) Len() int {
	return len(s.content) - s.position
}

func (s TextStream) Position() int {
	return s.position
}

func (s TextStream) String() string {
	return string(s.content[s.position:])
}
