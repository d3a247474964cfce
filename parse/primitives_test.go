package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/pars/stream"
)

func TestLiteralParsesItself(t *testing.T) {
	inputs := []string{"a", "ab", "hello world", "äöü", "multi\nline"}
	for _, input := range inputs {
		value, err := Run(Literal(input), input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, input, value)
	}
}

func TestLiteralLeavesRemainder(t *testing.T) {
	value, rest, err := RunStream(Literal("ab"), stream.NewText("abcd"))
	require.NoError(t, err)
	assert.Equal(t, "ab", value)
	assert.Equal(t, "cd", rest.String())
}

func TestLiteralOnProperPrefixFailsWithEndOfInput(t *testing.T) {
	input := "abc"
	for cut := 0; cut < len(input); cut++ {
		prefix := input[:cut]
		_, err := Run(Literal(input), prefix)
		require.Error(t, err, "prefix %q", prefix)

		var parseErr *Error
		require.ErrorAs(t, err, &parseErr)
		assert.True(t, parseErr.EndOfInput(), "prefix %q", prefix)
		assert.Equal(t, len(prefix), parseErr.Offset, "prefix %q", prefix)
	}
}

func TestLiteralMismatchReportsExpectedAndActual(t *testing.T) {
	_, err := Run(Literal("abc"), "abx")
	require.Error(t, err)

	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	assert.False(t, parseErr.EndOfInput())
	// Position of the first mismatching element.
	assert.Equal(t, 2, parseErr.Offset)
	assert.Contains(t, err.Error(), "expected `abc` but found `abx`")
}

func TestCharacterConsumesExactly(t *testing.T) {
	tests := []struct {
		n         int
		input     string
		value     string
		remainder string
	}{
		{0, "abc", "", "abc"},
		{1, "abc", "a", "bc"},
		{3, "abc", "abc", ""},
		{2, "äöü", "äö", "ü"},
	}
	for _, tt := range tests {
		value, rest, err := RunStream(Character(tt.n), stream.NewText(tt.input))
		require.NoError(t, err, "Character(%d) on %q", tt.n, tt.input)
		assert.Equal(t, tt.value, value)
		assert.Equal(t, tt.remainder, rest.String())
	}
}

func TestCharacterFailsAtExhaustionPoint(t *testing.T) {
	_, err := Run(Character(5), "abc")
	require.Error(t, err)

	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	assert.True(t, parseErr.EndOfInput())
	assert.Equal(t, 3, parseErr.Offset)
}

func TestOneOf(t *testing.T) {
	value, err := Run(OneOf("abc"), "b")
	require.NoError(t, err)
	assert.Equal(t, "b", value)

	_, err = Run(OneOf("abc"), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected one of `abc` but found `x`")

	_, err = Run(OneOf("abc"), "")
	require.Error(t, err)
	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	assert.True(t, parseErr.EndOfInput())
}

func TestNoneOf(t *testing.T) {
	value, err := Run(NoneOf("abc"), "x")
	require.NoError(t, err)
	assert.Equal(t, "x", value)

	_, err = Run(NoneOf("abc"), "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(),
		"expected any character except one of `abc` but found `a`")
}

func TestUnitConsumesNothing(t *testing.T) {
	value, rest, err := RunStream(Unit(42), stream.NewText("abc"))
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.Equal(t, "abc", rest.String())
}

func TestFailAlwaysFails(t *testing.T) {
	_, err := Run(Fail("boom"), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	var parseErr *Error
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 0, parseErr.Offset)
}

func TestPrimitivesBehaveTheSameOnConsStream(t *testing.T) {
	withCons := WithStream(func(input string) stream.Stream {
		return stream.NewCons(input)
	})

	value, err := Run(Literal("hello"), "hello", withCons)
	require.NoError(t, err)
	assert.Equal(t, "hello", value)

	_, err = Run(Literal("hello"), "hel", withCons)
	require.Error(t, err)
	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	assert.True(t, parseErr.EndOfInput())
	assert.Equal(t, 3, parseErr.Offset)

	value, err = Run(Choice(Literal("ab"), Literal("ac")), "ac", withCons)
	require.NoError(t, err)
	assert.Equal(t, "ac", value)
}

func TestLiteralErrorMentionsLocation(t *testing.T) {
	_, err := Run(Literal("ab\ncd"), "ab\ncx")
	require.Error(t, err)
	// Mismatch at offset 4: line 2, one element past the linebreak at
	// offset 2.
	assert.True(t, strings.HasSuffix(err.Error(), "at 2:2"), err.Error())
}
