package calc

// maxStack bounds the operand stack. The stack grows as needed below the
// bound; exceeding it is a resource-limit error, not undefined behavior.
const maxStack = 1024

// Eval lexes, parses, and evaluates one expression against the context.
// On success the result also becomes the context's ans value.
func (ctx *Context) Eval(src string) (float64, error) {
	v, err := ctx.eval(src)
	if err != nil {
		return 0, err
	}
	ctx.ans = v
	return v, nil
}

// eval runs the full pipeline without recording ans. The numeric methods
// use this entry point so that their transient evaluations stay invisible.
func (ctx *Context) eval(src string) (float64, error) {
	toks, err := lexString(src)
	if err != nil {
		return 0, err
	}
	post, err := toPostfix(toks)
	if err != nil {
		return 0, err
	}
	return evalPostfix(post, ctx)
}

// evalPostfix executes a postfix token sequence on an operand stack.
// Exactly one value must remain when the tokens are exhausted.
func evalPostfix(toks []token, ctx *Context) (float64, error) {
	stack := make([]float64, 0, 16)
	for _, tk := range toks {
		switch tk.kind {
		case tokenNum:
			if len(stack) >= maxStack {
				return 0, ErrStackOverflow
			}
			stack = append(stack, tk.val)
		case tokenIdent:
			v, ok := ctx.Lookup(tk.name)
			if !ok {
				return 0, &NameError{Name: tk.name}
			}
			if len(stack) >= maxStack {
				return 0, ErrStackOverflow
			}
			stack = append(stack, v)
		case tokenOp:
			switch {
			case tk.op.postfix():
				if len(stack) < 1 {
					return 0, &OperandError{Op: tk.op.symbol()}
				}
				a := stack[len(stack)-1]
				switch tk.op {
				case opFact:
					v, err := factorial(a)
					if err != nil {
						return 0, err
					}
					stack[len(stack)-1] = v
				case opPercent:
					stack[len(stack)-1] = a * 0.01
				}
			case tk.op == opNeg:
				if len(stack) < 1 {
					return 0, &OperandError{Op: tk.op.symbol()}
				}
				stack[len(stack)-1] = -stack[len(stack)-1]
			default:
				if len(stack) < 2 {
					return 0, &OperandError{Op: tk.op.symbol()}
				}
				// The first pop is the right operand.
				b := stack[len(stack)-1]
				a := stack[len(stack)-2]
				stack = stack[:len(stack)-1]
				var v float64
				switch tk.op {
				case opAdd:
					v = a + b
				case opSub:
					v = a - b
				case opMul:
					v = a * b
				case opDiv:
					if b == 0 {
						return 0, ErrDivisionByZero
					}
					v = a / b
				case opPow:
					var err error
					v, err = power(a, b)
					if err != nil {
						return 0, err
					}
				default:
					panic("calc: invalid binary operator " + tk.op.String())
				}
				stack[len(stack)-1] = v
			}
		case tokenFunc:
			switch tk.fn.arity() {
			case 1:
				if len(stack) < 1 {
					return 0, &OperandError{Op: tk.name}
				}
				v, err := tk.fn.call(stack[len(stack)-1], ctx.mode)
				if err != nil {
					return 0, err
				}
				stack[len(stack)-1] = v
			case 2:
				if len(stack) < 2 {
					return 0, &OperandError{Op: tk.name}
				}
				b := stack[len(stack)-1]
				a := stack[len(stack)-2]
				stack = stack[:len(stack)-1]
				v, err := power(a, b)
				if err != nil {
					return 0, err
				}
				stack[len(stack)-1] = v
			}
		default:
			panic("calc: invalid postfix token: " + tk.String())
		}
	}
	if len(stack) != 1 {
		return 0, &SyntaxError{Rest: len(stack)}
	}
	return stack[0], nil
}
