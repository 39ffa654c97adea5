package calc

import (
	"errors"
	"strconv"
	"strings"
)

// token is one lexical element of an expression. A token sequence is owned
// by the stage that produced it; tokens are never mutated after lexing.
type token struct {
	kind tokenKind
	val  float64  // tokenNum
	op   opKind   // tokenOp
	fn   funcKind // tokenFunc
	name string   // tokenIdent and tokenFunc
	pos  int      // 1-based position of the first byte of the token
}

func (t token) String() string {
	switch t.kind {
	case tokenNum:
		return strconv.FormatFloat(t.val, 'g', -1, 64) + "@" + strconv.Itoa(t.pos)
	case tokenIdent, tokenFunc:
		return t.kind.String() + ":" + t.name + "@" + strconv.Itoa(t.pos)
	case tokenOp:
		return t.op.String() + "@" + strconv.Itoa(t.pos)
	default:
		return t.kind.String() + "@" + strconv.Itoa(t.pos)
	}
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal.
	tokenNum
	// tokenIdent is a variable or constant name.
	tokenIdent
	// tokenFunc is a name from the function registry.
	tokenFunc
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
	// tokenSep is the function argument separator ,.
	tokenSep
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

const (
	// maxTokens caps the number of tokens in one expression. The operand
	// and operator stacks can never outgrow the token count, so this is
	// also the resource limit for parsing and evaluation.
	maxTokens = 1024
	// maxNameLen is the longest accepted identifier.
	maxNameLen = 15
)

// ErrTooManyTokens reports an expression longer than the engine accepts.
var ErrTooManyTokens = errors.New("expression too long")

// lexString scans an expression into its token sequence. Identifiers are
// folded to lowercase; a - is a unary minus when it starts the expression
// or follows an operator, open bracket, or separator. The first invalid
// byte aborts the whole scan.
func lexString(src string) ([]token, error) {
	var toks []token
	prev := tokenNone
	i := 0
	for i < len(src) {
		c := src[i]
		if c <= ' ' {
			i++
			continue
		}
		tok := token{pos: i + 1}
		switch {
		case '0' <= c && c <= '9', c == '.':
			j := scanNum(src, i)
			v, err := strconv.ParseFloat(src[i:j], 64)
			if err != nil {
				ne := new(strconv.NumError)
				if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
					return nil, &NumberError{Col: tok.pos, Text: src[i:j], Range: true}
				}
				return nil, &NumberError{Col: tok.pos, Text: src[i:j]}
			}
			tok.kind = tokenNum
			tok.val = v
			i = j
		case c == '_', isLetter(c):
			j := i + 1
			for j < len(src) && (src[j] == '_' || isLetter(src[j])) {
				j++
			}
			name := strings.ToLower(src[i:j])
			if len(name) > maxNameLen {
				return nil, &LongNameError{Col: tok.pos, Name: name}
			}
			if fn, ok := funcs[name]; ok {
				tok.kind = tokenFunc
				tok.fn = fn
			} else {
				tok.kind = tokenIdent
			}
			tok.name = name
			i = j
		case c == '(':
			tok.kind = tokenOpen
			i++
		case c == ')':
			tok.kind = tokenClose
			i++
		case c == ',':
			tok.kind = tokenSep
			i++
		default:
			op := opNone
			switch c {
			case '+':
				op = opAdd
			case '-':
				// The lookback uses only the previous token's category.
				if prev == tokenNone || prev == tokenOp || prev == tokenOpen || prev == tokenSep {
					op = opNeg
				} else {
					op = opSub
				}
			case '*':
				op = opMul
			case '/':
				op = opDiv
			case '^':
				op = opPow
			case '!':
				op = opFact
			case '%':
				op = opPercent
			default:
				return nil, &CharError{Col: tok.pos, Char: c}
			}
			tok.kind = tokenOp
			tok.op = op
			i++
		}
		if len(toks) >= maxTokens {
			return nil, ErrTooManyTokens
		}
		toks = append(toks, tok)
		prev = tok.kind
	}
	return toks, nil
}

// scanNum finds the end of the longest float literal starting at i. The
// result may select no digits at all, e.g. on a bare dot; the caller
// reports that through ParseFloat failing.
func scanNum(src string, i int) int {
	j := i
	for j < len(src) && isDigit(src[j]) {
		j++
	}
	if j < len(src) && src[j] == '.' {
		j++
		for j < len(src) && isDigit(src[j]) {
			j++
		}
	}
	// An exponent marker counts only when digits follow it; otherwise it
	// starts the next token, as in strtod.
	if j < len(src) && (src[j] == 'e' || src[j] == 'E') {
		k := j + 1
		if k < len(src) && (src[k] == '+' || src[k] == '-') {
			k++
		}
		if k < len(src) && isDigit(src[k]) {
			for k < len(src) && isDigit(src[k]) {
				k++
			}
			j = k
		}
	}
	return j
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
