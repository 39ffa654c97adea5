// Package calc implements an interactive arithmetic-expression engine.
//
// Expressions are lexed and reordered into postfix (reverse Polish) form
// with the shunting-yard algorithm, then executed on an operand stack
// against a Context holding the variables, the last result, and the
// angle mode. On top of the evaluator sit numeric methods driven by
// repeated evaluation: a central-difference derivative, a Newton root
// solver, a composite Simpson integrator, and a sampler that places a
// curve in a character grid for plotting.
//
// Every operation runs to completion on the calling goroutine; a Context
// is not safe for concurrent use.
package calc
