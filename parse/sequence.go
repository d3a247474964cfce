package parse

// Sequence builds a parser from consecutive steps, the flat-block
// convenience usually written with nested Bind calls. It is a thin
// driver over Bind — each step is appended as a continuation, so a
// block of any length keeps the engine's constant-stack guarantee.
//
//	sum := parse.Do().
//		Then(parse.Integer()).
//		Then(parse.Literal("+")).
//		Then(parse.Integer()).
//		Return(func(values []any) any {
//			return values[0].(int) + values[2].(int)
//		})
type Sequence struct {
	steps []func(values []any) Parser
}

// Do starts an empty sequence.
func Do() *Sequence {
	return &Sequence{}
}

// Then appends a fixed parser step.
func (q *Sequence) Then(parser Parser) *Sequence {
	return q.ThenWith(func([]any) Parser { return parser })
}

// ThenWith appends a step computed from the values produced by the
// preceding steps, in order.
func (q *Sequence) ThenWith(step func(values []any) Parser) *Sequence {
	q.steps = append(q.steps, step)
	return q
}

// Return finishes the block: build receives every step's value, in
// order, and produces the block's result.
func (q *Sequence) Return(build func(values []any) any) Parser {
	steps := make([]func(values []any) Parser, len(q.steps))
	copy(steps, q.steps)

	var from func(i int, values []any) Parser
	from = func(i int, values []any) Parser {
		if i == len(steps) {
			return Unit(build(values))
		}
		return Bind(steps[i](values), func(value any) Parser {
			grown := append(values[:len(values):len(values)], value)
			return from(i+1, grown)
		})
	}
	return from(0, nil)
}
