package calc

import (
	"errors"
	"strconv"
)

// InputError is an error with position information. Every error caused by
// a byte of the input text implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based position of the token that caused the
	// error.
	Pos() int
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

func fmtfloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// NumberError indicates a numeric literal that does not scan or does not
// fit in a float64. It implements InputError.
type NumberError struct {
	// Col is the position of the literal.
	Col int
	// Text is the scanned literal.
	Text string
	// Range is whether the literal scanned but overflows the double
	// range.
	Range bool
}

func (err *NumberError) Error() string {
	if err.Range {
		return errpos(err.Col, "number out of range: "+err.Text)
	}
	return errpos(err.Col, "invalid number: "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int { return err.Col }

// CharError indicates a byte the lexer does not recognize. It implements
// InputError.
type CharError struct {
	// Col is the position of the byte.
	Col int
	// Char is the offending byte.
	Char byte
}

func (err *CharError) Error() string {
	return errpos(err.Col, "unrecognized character "+strconv.QuoteRune(rune(err.Char)))
}

func (err *CharError) Pos() int { return err.Col }

// LongNameError indicates an identifier longer than the engine accepts.
// It implements InputError.
type LongNameError struct {
	// Col is the position of the identifier.
	Col int
	// Name is the folded identifier.
	Name string
}

func (err *LongNameError) Error() string {
	return errpos(err.Col, "name longer than "+strconv.Itoa(maxNameLen)+" characters: "+strconv.Quote(err.Name))
}

func (err *LongNameError) Pos() int { return err.Col }

// BracketError indicates mismatched brackets in the input. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "mismatched bracket")
}

func (err *BracketError) Pos() int { return err.Col }

// SeparatorError indicates a comma outside a function argument list. It
// implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, `separator "," outside a function call`)
}

func (err *SeparatorError) Pos() int { return err.Col }

// NameError is an error from a lookup for a variable that is missing from
// the evaluation context.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// OperandError indicates an operator or function with too few operands on
// the evaluation stack.
type OperandError struct {
	// Op is the source form of the operator or function.
	Op string
}

func (err *OperandError) Error() string {
	return "missing operand for " + strconv.Quote(err.Op)
}

// DomainError is an error from calling a function on an argument outside
// its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is the name of the function.
	Func string
}

func (err *DomainError) Error() string {
	return fmtfloat(err.X) + " outside domain of " + err.Func
}

// RangeError is an error from a computation whose result overflows the
// double range.
type RangeError struct {
	// X is the left operand of the overflowing computation.
	X float64
	// Func is the name of the function.
	Func string
}

func (err *RangeError) Error() string {
	return "result of " + err.Func + " out of range"
}

// FactorialError is an error from a factorial of anything but an integer
// in [0, 170].
type FactorialError struct {
	// X is the argument.
	X float64
}

func (err *FactorialError) Error() string {
	return "factorial needs an integer in [0, 170], got " + fmtfloat(err.X)
}

// SyntaxError indicates a token sequence that does not reduce to exactly
// one value, e.g. two adjacent operands or an empty expression.
type SyntaxError struct {
	// Rest is the number of values left on the stack.
	Rest int
}

func (err *SyntaxError) Error() string {
	if err.Rest == 0 {
		return "empty expression"
	}
	return "malformed expression: " + strconv.Itoa(err.Rest) + " values remain"
}

// DerivativeError indicates a zero or non-finite derivative during root
// finding.
type DerivativeError struct {
	// X is the point with the unusable derivative.
	X float64
}

func (err *DerivativeError) Error() string {
	return "zero or non-finite derivative at x=" + fmtfloat(err.X)
}

// ConvergenceError indicates that root finding exhausted its iteration
// budget.
type ConvergenceError struct {
	// MaxIter is the exhausted iteration budget.
	MaxIter int
}

func (err *ConvergenceError) Error() string {
	return "did not converge after " + strconv.Itoa(err.MaxIter) + " iterations"
}

// Sentinel errors for the field-less failure kinds.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrStackOverflow  = errors.New("operand stack overflow")
)

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*CharError)(nil)
	_ InputError = (*LongNameError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
)
