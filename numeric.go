package calc

import "math"

// The numeric methods bind one variable to successive values and rerun
// the whole lex→parse→eval pipeline for each; nothing is cached between
// evaluations. They never record ans.

// evalAt evaluates the expression with name transiently bound to x. The
// binding is restored on every path, so the store is left exactly as the
// caller found it whether evaluation succeeds or fails.
func (ctx *Context) evalAt(expr, name string, x float64) (float64, error) {
	old, existed := ctx.Lookup(name)
	ctx.Set(name, x)
	defer func() {
		if existed {
			ctx.Set(name, old)
		} else {
			ctx.Delete(name)
		}
	}()
	return ctx.eval(expr)
}

// Diff estimates the derivative of the expression with respect to the
// named variable at x, using the central difference with step h. The
// result may be non-finite; callers that care must check.
func (ctx *Context) Diff(expr, name string, x, h float64) (float64, error) {
	f1, err := ctx.evalAt(expr, name, x+h)
	if err != nil {
		return 0, err
	}
	f2, err := ctx.evalAt(expr, name, x-h)
	if err != nil {
		return 0, err
	}
	return (f1 - f2) / (2 * h), nil
}

// solveStep is the derivative step used by Solve.
const solveStep = 1e-6

// Solve finds a root of the expression near x0 by Newton iteration,
// using Diff for the derivative. A maxit below one defaults to 30, a tol
// at or below zero to 1e-10.
func (ctx *Context) Solve(expr, name string, x0 float64, maxit int, tol float64) (float64, error) {
	if maxit <= 0 {
		maxit = 30
	}
	if tol <= 0 {
		tol = 1e-10
	}
	x := x0
	for k := 0; k < maxit; k++ {
		fx, err := ctx.evalAt(expr, name, x)
		if err != nil {
			return 0, err
		}
		dfx, err := ctx.Diff(expr, name, x, solveStep)
		if err != nil {
			return 0, err
		}
		if dfx == 0 || math.IsNaN(dfx) || math.IsInf(dfx, 0) {
			return 0, &DerivativeError{X: x}
		}
		x -= fx / dfx
		if math.Abs(fx) < tol {
			return x, nil
		}
	}
	return 0, &ConvergenceError{MaxIter: maxit}
}

// Integrate computes the definite integral of the expression over [a, b]
// by the composite Simpson rule with n segments. An n below one defaults
// to 200; an odd n is raised to the next even number. The first failed
// evaluation aborts the integration.
func (ctx *Context) Integrate(expr, name string, a, b float64, n int) (float64, error) {
	if n <= 0 {
		n = 200
	}
	if n%2 != 0 {
		n++
	}
	h := (b - a) / float64(n)
	s, err := ctx.evalAt(expr, name, a)
	if err != nil {
		return 0, err
	}
	for i := 1; i < n; i++ {
		fx, err := ctx.evalAt(expr, name, a+float64(i)*h)
		if err != nil {
			return 0, err
		}
		if i%2 == 1 {
			s += 4 * fx
		} else {
			s += 2 * fx
		}
	}
	fb, err := ctx.evalAt(expr, name, b)
	if err != nil {
		return 0, err
	}
	s += fb
	return s * h / 3, nil
}
