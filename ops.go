package calc

// opKind identifies an operator. The table below fixes precedence,
// associativity, and fixity for each kind; higher precedence binds
// tighter.
//
//	opFact, opPercent  5  postfix
//	opNeg              4  prefix, right
//	opPow              3  binary, right
//	opMul, opDiv       2  binary, left
//	opAdd, opSub       1  binary, left
type opKind int8

const (
	opNone opKind = iota
	opAdd
	opSub
	opMul
	opDiv
	opPow
	opNeg
	opFact
	opPercent
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=opKind -trimprefix=op
//go:generate go mod tidy

func (op opKind) precedence() int8 {
	switch op {
	case opFact, opPercent:
		return 5
	case opNeg:
		return 4
	case opPow:
		return 3
	case opMul, opDiv:
		return 2
	case opAdd, opSub:
		return 1
	}
	return 0
}

// rightAssoc reports right-associativity. Postfix operators never reach
// an associativity decision.
func (op opKind) rightAssoc() bool { return op == opPow || op == opNeg }

// postfix reports whether the operator follows its single operand.
func (op opKind) postfix() bool { return op == opFact || op == opPercent }

// symbol returns the source form of the operator.
func (op opKind) symbol() string {
	switch op {
	case opAdd:
		return "+"
	case opSub, opNeg:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opPow:
		return "^"
	case opFact:
		return "!"
	case opPercent:
		return "%"
	}
	return "?"
}
