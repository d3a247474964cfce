// Package parse implements a stack-safe parser-combinator engine.
//
// # Overview
//
// Parsers are built by composing small primitive parsers (Literal,
// OneOf, Character, ...) with sequencing (Bind), alternation (Choice)
// and look-ahead. The resulting parser never overflows the native call
// stack, regardless of how deeply combinators are nested or how long
// the input is.
//
// # Architecture
//
//	┌────────────┐    ┌─────────────┐    ┌──────────────┐
//	│   Stream   │───▶│   Parser    │───▶│  Trampoline  │
//	│ (immutable │    │ (combinator │    │ (iterative   │
//	│  cursor)   │    │   graph)    │    │  evaluator)  │
//	└────────────┘    └─────────────┘    └──────────────┘
//	                        │
//	                        ▼
//	                 ┌─────────────┐
//	                 │    State    │ continuations · choice points
//	                 │ (persistent │ deferred error messages
//	                 │   stacks)   │
//	                 └─────────────┘
//
// Instead of chaining native closures, pending continuations live in
// an explicit persistent stack inside the control State, and execution
// is driven by the trampoline loop: only one native frame is ever
// active, however long the Bind chain.
//
// # Backtracking
//
// Choice performs full backtracking. Each choice point snapshots the
// stream position and control state; when the guarded branch fails,
// the alternative starts exactly where the branch started, regardless
// of how much input the branch consumed:
//
//	value, err := parse.Run(
//		parse.Choice(parse.Literal("ab"), parse.Literal("ac")),
//		"ac")
//	// value == "ac"
//
// Unbounded ambiguity and left recursion are the grammar author's
// responsibility; the engine makes no linear-time promise for
// pathological grammars.
//
// # Errors
//
// Failure messages are stored as deferred generators and rendered only
// when a failure finally surfaces, joined with " OR " and tagged with
// 1-based line:column locations:
//
//	_, err := parse.Run(parse.Choices(
//		parse.Literal("let"),
//		parse.Literal("const"),
//	), "var")
//	// err: expected `let` but found `v` OR expected `const` but found `v` at 1:0
//
// A run that succeeds never renders any message.
package parse
