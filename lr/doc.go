// Package lr implements the runtime core of a table-driven LR(1) parser:
// the shift/reduce main loop, the parse stack, and panic-mode error
// recovery with parse-ahead validation. A parser generator is expected to
// supply a Tables value and an ActionExecutor; this package drives them
// against a Scanner's token stream.
package lr
