package calc

import "math"

// funcKind identifies a function from the fixed registry. Names resolve
// to kinds once, during lexing; evaluation dispatches on the kind alone.
type funcKind int8

const (
	funcNone funcKind = iota
	funcSin
	funcCos
	funcTan
	funcAsin
	funcAcos
	funcAtan
	funcSqrt
	funcLn
	funcLog
	funcAbs
	funcExp
	funcPow
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=funcKind -trimprefix=func
//go:generate go mod tidy

// funcs is the function registry. It is never modified after init.
var funcs = map[string]funcKind{
	"sin":  funcSin,
	"cos":  funcCos,
	"tan":  funcTan,
	"asin": funcAsin,
	"acos": funcAcos,
	"atan": funcAtan,
	"sqrt": funcSqrt,
	"ln":   funcLn,
	"log":  funcLog,
	"abs":  funcAbs,
	"exp":  funcExp,
	"pow":  funcPow,
}

// arity returns the number of operands the function consumes.
func (f funcKind) arity() int {
	if f == funcPow {
		return 2
	}
	return 1
}

// call applies a unary function. The direct trig functions read their
// argument in the given angle mode; the inverse trig functions produce
// their result in it.
func (f funcKind) call(x float64, mode AngleMode) (float64, error) {
	switch f {
	case funcSin:
		return math.Sin(mode.toRadians(x)), nil
	case funcCos:
		return math.Cos(mode.toRadians(x)), nil
	case funcTan:
		return math.Tan(mode.toRadians(x)), nil
	case funcAsin:
		return mode.fromRadians(math.Asin(x)), nil
	case funcAcos:
		return mode.fromRadians(math.Acos(x)), nil
	case funcAtan:
		return mode.fromRadians(math.Atan(x)), nil
	case funcSqrt:
		if x < 0 {
			return 0, &DomainError{X: x, Func: "sqrt"}
		}
		return math.Sqrt(x), nil
	case funcLn:
		if x <= 0 {
			return 0, &DomainError{X: x, Func: "ln"}
		}
		return math.Log(x), nil
	case funcLog:
		if x <= 0 {
			return 0, &DomainError{X: x, Func: "log"}
		}
		return math.Log10(x), nil
	case funcAbs:
		return math.Abs(x), nil
	case funcExp:
		return math.Exp(x), nil
	}
	panic("calc: invalid unary function " + f.String())
}

// power computes a^b, classifying the invalid cases the way pow sets
// errno: a NaN from non-NaN operands is a domain error, an infinity from
// finite operands is a range error.
func power(a, b float64) (float64, error) {
	v := math.Pow(a, b)
	if math.IsNaN(v) && !math.IsNaN(a) && !math.IsNaN(b) {
		return 0, &DomainError{X: a, Func: "pow"}
	}
	if math.IsInf(v, 0) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
		return 0, &RangeError{X: a, Func: "pow"}
	}
	return v, nil
}

// factorial computes x! as Γ(round(x)+1). The argument must be within
// 1e-9 of an integer in [0, 170]; 171! overflows float64.
func factorial(x float64) (float64, error) {
	n := math.Round(x)
	if !(math.Abs(x-n) < 1e-9) || x < 0 || x > 170 {
		return 0, &FactorialError{X: x}
	}
	return math.Gamma(n + 1), nil
}
