// Package sourcemap maps rune offsets in a document to human-readable
// line/column locations. The line-break index is a pure function of
// the document: built once, queried many times while rendering parse
// errors.
package sourcemap

import (
	"sort"
	"strconv"
)

// FindLinebreaks returns the rune offsets of every line break in
// document, in strictly increasing order. A document without line
// breaks yields an empty index.
func FindLinebreaks(document string) []int {
	var offsets []int
	for i, ch := range []rune(document) {
		if ch == '\n' {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

// FindLine returns the 1-based line number of the given rune offset.
// An offset at or before the first line break is on line 1; an offset
// strictly greater than a line-break offset is on the following line.
func FindLine(offset int, linebreaks []int) int {
	return sort.SearchInts(linebreaks, offset) + 1
}

// FindColumn returns the column of the given rune offset, measured
// from the nearest preceding line break, or the raw offset when no
// line break precedes it.
func FindColumn(offset int, linebreaks []int) int {
	i := sort.SearchInts(linebreaks, offset)
	if i == 0 {
		return offset
	}
	return offset - linebreaks[i-1]
}

// Location is a resolved line/column pair. Line is 1-based.
type Location struct {
	Line   int
	Column int
}

// String renders the location as "line:column".
func (l Location) String() string {
	return strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}

// Index is a prebuilt line-break table for one document.
type Index struct {
	linebreaks []int
}

// NewIndex builds the line-break index for document.
func NewIndex(document string) *Index {
	return &Index{linebreaks: FindLinebreaks(document)}
}

// Locate resolves a rune offset to its Location.
func (ix *Index) Locate(offset int) Location {
	return Location{
		Line:   FindLine(offset, ix.linebreaks),
		Column: FindColumn(offset, ix.linebreaks),
	}
}
