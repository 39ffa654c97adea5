package calc

// toPostfix reorders an infix token sequence into postfix (RPN) order
// with the shunting-yard algorithm. Operands precede the operator or
// function that consumes them; a function follows all of its
// comma-delimited argument subexpressions.
func toPostfix(toks []token) ([]token, error) {
	out := make([]token, 0, len(toks))
	var stack []token
	for _, tk := range toks {
		switch tk.kind {
		case tokenNum, tokenIdent:
			out = append(out, tk)
		case tokenFunc:
			stack = append(stack, tk)
		case tokenOp:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != tokenOp || !pops(tk.op, top.op) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tk)
		case tokenOpen:
			stack = append(stack, tk)
		case tokenSep:
			// Pop to the enclosing ( without removing it. A comma with no
			// open bracket below it is outside any argument list.
			found := false
			for len(stack) > 0 {
				if stack[len(stack)-1].kind == tokenOpen {
					found = true
					break
				}
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if !found {
				return nil, &SeparatorError{Col: tk.pos}
			}
		case tokenClose:
			for len(stack) > 0 && stack[len(stack)-1].kind != tokenOpen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &BracketError{Col: tk.pos}
			}
			stack = stack[:len(stack)-1]
			// A function beneath the discarded ( owns the bracketed
			// arguments; emit it now.
			if len(stack) > 0 && stack[len(stack)-1].kind == tokenFunc {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		default:
			panic("calc: unknown token: " + tk.String())
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.kind == tokenOpen {
			return nil, &BracketError{Col: top.pos}
		}
		out = append(out, top)
		stack = stack[:len(stack)-1]
	}
	return out, nil
}

// pops reports whether the stacked operator binds ahead of the incoming
// one and must be emitted first.
func pops(cur, top opKind) bool {
	// A prefix minus never captures an exponent: -3^2 is -(3^2), while
	// (-3)^2 needs the brackets.
	if cur == opPow && top == opNeg {
		return false
	}
	p1, p2 := cur.precedence(), top.precedence()
	if cur.rightAssoc() {
		return p1 < p2
	}
	return p1 <= p2
}
