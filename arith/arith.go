// Package arith implements a small arithmetic-expression grammar on
// top of the parse engine: integers, the four binary operators with
// the usual precedence, parentheses and insignificant whitespace. It
// exercises the engine end to end and is the demonstration grammar
// used by the pars CLI and language server.
package arith

import (
	"errors"
	"fmt"

	"github.com/dhamidi/pars/parse"
	"github.com/dhamidi/pars/stream"
	"github.com/dhamidi/pars/trampoline"
)

// Eval parses input as a complete arithmetic expression and evaluates
// it. Trailing input other than whitespace is an error.
func Eval(input string) (int, error) {
	complete := parse.Do().
		Then(Expression()).
		Then(parse.Whitespace()).
		Then(parse.End()).
		Return(func(values []any) any { return values[0] })

	value, err := parse.Run(complete, input)
	if err != nil {
		return 0, err
	}
	return value.(int), nil
}

// Check parses input and returns the parse error, if any.
func Check(input string) error {
	_, err := Eval(input)
	var parseErr *parse.Error
	if errors.As(err, &parseErr) {
		return parseErr
	}
	return err
}

// Expression returns the parser for additive expressions.
func Expression() parse.Parser {
	return lazy(func() parse.Parser {
		return binary(term(), "+-")
	})
}

func term() parse.Parser {
	return lazy(func() parse.Parser {
		return binary(factor(), "*/")
	})
}

func factor() parse.Parser {
	return lazy(func() parse.Parser {
		number := parse.Chain(parse.Whitespace(), parse.Integer())
		grouped := parse.Chain(parse.Whitespace(), parse.Enclosed(
			parse.Literal("("),
			Expression(),
			parse.Chain(parse.Whitespace(), parse.Literal(")")),
		))
		return parse.Choice(parse.Try(number), grouped)
	})
}

// binary parses operand (op operand)* left-associatively for the
// single-character operators in operators.
func binary(operand parse.Parser, operators string) parse.Parser {
	return parse.Bind(operand, func(first any) parse.Parser {
		return more(first.(int), operand, operators)
	})
}

func more(acc int, operand parse.Parser, operators string) parse.Parser {
	op := parse.Try(parse.Chain(parse.Whitespace(), parse.OneOf(operators)))
	step := parse.Bind(op, func(operator any) parse.Parser {
		return parse.Bind(operand, func(value any) parse.Parser {
			result, err := apply(acc, operator.(string), value.(int))
			if err != nil {
				return parse.Fail(err.Error())
			}
			return more(result, operand, operators)
		})
	})
	return parse.Choice(step, parse.Unit(acc))
}

func apply(left int, operator string, right int) (int, error) {
	switch operator {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, errors.New("division by zero")
		}
		return left / right, nil
	}
	return 0, fmt.Errorf("unknown operator %q", operator)
}

// lazy defers parser construction to parse time, breaking the
// construction cycle between factor and Expression.
func lazy(build func() parse.Parser) parse.Parser {
	return func(s stream.Stream, st *parse.State) trampoline.Step {
		return build()(s, st)
	}
}
