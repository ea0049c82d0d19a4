package calc

// stack is a last-in-first-out sequence owned by a single evaluation.
type stack[T any] []T

func (s *stack[T]) push(v T) {
	*s = append(*s, v)
}

// pop removes and returns the top. Panics if the stack is empty.
func (s *stack[T]) pop() T {
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r
}

func (s stack[T]) top() T {
	return s[len(s)-1]
}

func (s stack[T]) depth() int {
	return len(s)
}

// reducer gives meaning to the operands of the shift/reduce machine. The
// basic evaluator reduces to numbers; the parser reduces to trees.
type reducer[T any] interface {
	// num makes an operand from a literal.
	num(text string, v float64) T
	// call makes an operand from a function call. at is the position of the
	// name, and base is the offset of arg within the whole input.
	call(name string, at int, arg string, base int) (T, error)
	binary(op Operator, l, r T, at int) (T, error)
	unary(op Operator, x T, at int) (T, error)
	// neg negates a call operand written with a leading sign, binding as
	// tightly as the sign of a literal.
	neg(x T) T
}

// run drives the operator-precedence machine over src. base is the offset of
// src within the whole input, for error positions.
//
// The operator stack starts with End. Each scanned operator is compared with
// the stack top by the priority table: Lower shifts it, Equal discards the
// matched top, Higher reduces the top and compares again, and Invalid fails.
// At the end of input the stack is reduced down to End, and exactly one
// operand must remain.
func run[T any](src string, base int, r reducer[T]) (T, error) {
	var zero T
	var vals stack[T]
	ops := stack[Operator]{End}
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case isSpace(c):
			i++
			continue
		case isIdent(c), signedCall(src, i):
			sign := c == '-'
			if sign {
				i++
			}
			n := scanIdent(src, i)
			if n >= len(src) || src[n] != '(' {
				return zero, &SyntaxError{Col: base + i + 1, Text: src[i:n], Msg: "unexpected name", Err: ErrMalformedExpression}
			}
			end := matchParen(src, n)
			if end < 0 {
				return zero, &SyntaxError{Col: base + n + 1, Text: src[i : n+1], Msg: "unclosed call", Err: ErrMalformedExpression}
			}
			v, err := r.call(src[i:n], base+i+1, src[n+1:end], base+n+1)
			if err != nil {
				return zero, err
			}
			if sign {
				v = r.neg(v)
			}
			vals.push(v)
			i = end + 1
			continue
		case startsNumber(src, i):
			v, n, err := scanNumber(src, i, base)
			if err != nil {
				return zero, err
			}
			vals.push(r.num(src[i:n], v))
			i = n
			continue
		}
		op := Classify(c)
		if op == End {
			return zero, &SyntaxError{Col: base + i + 1, Text: src[i : i+1], Msg: "unexpected character", Err: ErrMalformedExpression}
		}
		switch Priority(ops.top(), op) {
		case Lower:
			ops.push(op)
			i++
		case Equal:
			ops.pop()
			i++
		case Higher:
			if err := reduce(r, &vals, &ops, base+i+1); err != nil {
				return zero, err
			}
		default:
			return zero, &SyntaxError{Col: base + i + 1, Text: op.String(), Msg: "unexpected operator after " + ops.top().String(), Err: ErrMalformedExpression}
		}
	}
	at := base + len(src) + 1
	for ops.top() != End {
		if Priority(ops.top(), End) == Invalid {
			return zero, &SyntaxError{Col: at, Text: ops.top().String(), Msg: "unclosed", Err: ErrMalformedExpression}
		}
		if err := reduce(r, &vals, &ops, at); err != nil {
			return zero, err
		}
	}
	if vals.depth() != 1 {
		msg := "missing operator"
		if vals.depth() == 0 {
			msg = "no expression"
		}
		return zero, &SyntaxError{Col: at, Msg: msg, Err: ErrMalformedExpression}
	}
	return vals.pop(), nil
}

// reduce pops the top operator, applies it to the operands it takes, and
// pushes the result.
func reduce[T any](r reducer[T], vals *stack[T], ops *stack[Operator], at int) error {
	op := ops.pop()
	if op.unary() {
		if vals.depth() < 1 {
			return &SyntaxError{Col: at, Text: op.String(), Msg: "missing operand for", Err: ErrMalformedExpression}
		}
		v, err := r.unary(op, vals.pop(), at)
		if err != nil {
			return err
		}
		vals.push(v)
		return nil
	}
	if vals.depth() < 2 {
		return &SyntaxError{Col: at, Text: op.String(), Msg: "missing operand for", Err: ErrMalformedExpression}
	}
	// The right operand is on top.
	b := vals.pop()
	a := vals.pop()
	v, err := r.binary(op, a, b, at)
	if err != nil {
		return err
	}
	vals.push(v)
	return nil
}
