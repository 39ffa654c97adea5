package calc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/mflett/calc"
)

// approx compares with a relative tolerance wide enough for the float
// noise the engine accumulates.
func approx(a, b float64) bool {
	if a == b {
		return true
	}
	d := math.Abs(a - b)
	return d < 1e-9 || d < 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"literal", "42", 42},
		{"precedence", "1+2*3", 7},
		{"brackets", "(2+3)*4", 20},
		{"sub-chain", "10-4-3", 3},
		{"div-chain", "8/4/2", 1},
		{"pow-right", "2^3^2", 512},
		{"neg-pow", "-3^2", -9},
		{"bracket-neg-pow", "(-3)^2", 9},
		{"pow-neg-exp", "2^-3", 0.125},
		{"double-neg", "--5", 5},
		{"factorial", "5!", 120},
		{"factorial-zero", "0!", 1},
		{"percent", "50%", 0.5},
		{"percent-expr", "200%+1", 3},
		{"neg-factorial", "-3!", -6},
		{"sqrt", "sqrt(9)", 3},
		{"sqrt-pow", "sqrt(2)^2", 2},
		{"ln-exp", "ln(exp(1))", 1},
		{"log", "log(1000)", 3},
		{"abs", "abs(-7)", 7},
		{"pow-func", "pow(2,10)", 1024},
		{"pow-func-args", "pow(1+1,3*2)", 64},
		{"nested-funcs", "sqrt(abs(-16))", 4},
		{"pi", "pi", math.Pi},
		{"e", "e", math.E},
		{"sin-pi", "sin(pi/2)", 1},
		{"case-folded", "PI", math.Pi},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := calc.NewContext()
			got, err := ctx.Eval(c.src)
			if err != nil {
				t.Fatalf("evaluating %q: unexpected error %v", c.src, err)
			}
			if !approx(got, c.want) {
				t.Errorf("evaluating %q: want %g, got %g", c.src, c.want, got)
			}
		})
	}
}

func TestEvalLargeFactorial(t *testing.T) {
	ctx := calc.NewContext()
	got, err := ctx.Eval("170!")
	if err != nil {
		t.Fatalf("170!: unexpected error %v", err)
	}
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("170! should be finite, got %g", got)
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		as   func(error) bool
	}{
		{"div-zero", "1/0", func(err error) bool { return errors.Is(err, calc.ErrDivisionByZero) }},
		{"zero-div-zero", "0/0", func(err error) bool { return errors.Is(err, calc.ErrDivisionByZero) }},
		{"sqrt-neg", "sqrt(-1)", func(err error) bool { return errors.As(err, new(*calc.DomainError)) }},
		{"ln-zero", "ln(0)", func(err error) bool { return errors.As(err, new(*calc.DomainError)) }},
		{"log-neg", "log(-10)", func(err error) bool { return errors.As(err, new(*calc.DomainError)) }},
		{"pow-domain", "(-1)^0.5", func(err error) bool { return errors.As(err, new(*calc.DomainError)) }},
		{"pow-range", "10^1000", func(err error) bool { return errors.As(err, new(*calc.RangeError)) }},
		{"factorial-big", "171!", func(err error) bool { return errors.As(err, new(*calc.FactorialError)) }},
		{"factorial-frac", "3.5!", func(err error) bool { return errors.As(err, new(*calc.FactorialError)) }},
		{"factorial-neg", "(-1)!", func(err error) bool { return errors.As(err, new(*calc.FactorialError)) }},
		{"unknown-name", "nope+1", func(err error) bool {
			ne := new(calc.NameError)
			return errors.As(err, &ne) && ne.Name == "nope"
		}},
		{"adjacent-operands", "1 2", func(err error) bool {
			se := new(calc.SyntaxError)
			return errors.As(err, &se) && se.Rest == 2
		}},
		{"empty", "", func(err error) bool {
			se := new(calc.SyntaxError)
			return errors.As(err, &se) && se.Rest == 0
		}},
		{"blank", "   ", func(err error) bool { return errors.As(err, new(*calc.SyntaxError)) }},
		{"trailing-op", "1+", func(err error) bool { return errors.As(err, new(*calc.OperandError)) }},
		{"lone-minus", "-", func(err error) bool { return errors.As(err, new(*calc.OperandError)) }},
		{"func-no-args", "sin()", func(err error) bool { return errors.As(err, new(*calc.OperandError)) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := calc.NewContext()
			_, err := ctx.Eval(c.src)
			if err == nil {
				t.Fatalf("evaluating %q gave no error", c.src)
			}
			if !c.as(err) {
				t.Errorf("evaluating %q: wrong error %#v", c.src, err)
			}
		})
	}
}

func TestAngleModes(t *testing.T) {
	ctx := calc.NewContext()
	if ctx.Mode() != calc.Radian {
		t.Fatalf("new context in %v, want rad", ctx.Mode())
	}
	ctx.SetMode(calc.Degree)
	got, err := ctx.Eval("sin(90)")
	if err != nil {
		t.Fatalf("sin(90) in deg: %v", err)
	}
	if !approx(got, 1) {
		t.Errorf("sin(90) in deg: want 1, got %g", got)
	}
	got, err = ctx.Eval("asin(1)")
	if err != nil {
		t.Fatalf("asin(1) in deg: %v", err)
	}
	if !approx(got, 90) {
		t.Errorf("asin(1) in deg: want 90, got %g", got)
	}
	ctx.SetMode(calc.Radian)
	got, err = ctx.Eval("cos(pi)")
	if err != nil {
		t.Fatalf("cos(pi) in rad: %v", err)
	}
	if !approx(got, -1) {
		t.Errorf("cos(pi) in rad: want -1, got %g", got)
	}
}

func TestAns(t *testing.T) {
	ctx := calc.NewContext()
	if got, err := ctx.Eval("ans"); err != nil || got != 0 {
		t.Fatalf("fresh ans: got %g, %v", got, err)
	}
	if _, err := ctx.Eval("2+3"); err != nil {
		t.Fatal(err)
	}
	if ctx.Ans() != 5 {
		t.Fatalf("ans after 2+3: %g", ctx.Ans())
	}
	got, err := ctx.Eval("ans*2")
	if err != nil || got != 10 {
		t.Fatalf("ans*2: got %g, %v", got, err)
	}
	// A failed evaluation leaves the register alone.
	if _, err := ctx.Eval("1/0"); err == nil {
		t.Fatal("1/0 gave no error")
	}
	if ctx.Ans() != 10 {
		t.Errorf("ans after failed evaluation: %g, want 10", ctx.Ans())
	}
}

func TestVariables(t *testing.T) {
	ctx := calc.NewContext(calc.SetVar("x", 2), calc.SetVars(map[string]float64{"y": 3}))
	got, err := ctx.Eval("x*y")
	if err != nil || got != 6 {
		t.Fatalf("x*y: got %g, %v", got, err)
	}
	// Identifiers in expressions fold to lowercase.
	got, err = ctx.Eval("X+1")
	if err != nil || got != 3 {
		t.Fatalf("X+1: got %g, %v", got, err)
	}
	if !ctx.Delete("x") {
		t.Error("deleting x failed")
	}
	if _, err := ctx.Eval("x"); err == nil {
		t.Error("x resolved after deletion")
	}
	if ctx.Delete("x") {
		t.Error("deleting x twice succeeded")
	}
	if ctx.Delete("ans") {
		t.Error("ans was deletable")
	}
}

func TestCapacity(t *testing.T) {
	// pi and e occupy two of the three slots.
	ctx := calc.NewContext(calc.Capacity(3))
	if !ctx.Set("a", 1) {
		t.Fatal("third variable rejected")
	}
	if ctx.Set("b", 2) {
		t.Fatal("fourth variable accepted")
	}
	// Updates and the ans register are exempt from the limit.
	if !ctx.Set("a", 5) {
		t.Error("update of existing variable rejected")
	}
	if !ctx.Set("ans", 9) {
		t.Error("setting ans rejected")
	}
	if ctx.Ans() != 9 {
		t.Errorf("ans after Set: %g", ctx.Ans())
	}
}

func TestNames(t *testing.T) {
	ctx := calc.NewContext(calc.SetVar("zz", 1), calc.SetVar("aa", 2))
	want := []string{"aa", "e", "pi", "zz"}
	got := ctx.Names()
	if len(got) != len(want) {
		t.Fatalf("Names: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names: got %v, want %v", got, want)
		}
	}
}

func TestInputErrorPositions(t *testing.T) {
	ctx := calc.NewContext()
	_, err := ctx.Eval("1+$")
	var ie calc.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("error %#v is not an InputError", err)
	}
	if ie.Pos() != 3 {
		t.Errorf("error at %d, want 3", ie.Pos())
	}
}
