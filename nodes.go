package calc

import (
	"strconv"
	"strings"
)

// node is a node in the syntax tree of an expression.
type node struct {
	kind nodeKind

	name string
	num  float64
	fn   Func

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // push num; name is the literal text
	nodeCall // eval left, apply fn; name is the function name
	nodeNeg  // eval left, negate

	nodeAdd  // evaluate left, add right
	nodeSub  // evaluate left, sub right
	nodeMul  // evaluate left, mul right
	nodeDiv  // evaluate left, div by right
	nodePow  // evaluate left, exp by right
	nodeFact // evaluate left, factorial
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeCall:
		return "Call"
	case nodeNeg:
		return "Neg"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodePow:
		return "Pow"
	case nodeFact:
		return "Fact"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNum:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		n.left.fmt(b, !square)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeAdd:
		n.binfmt(b, " + ", square)
	case nodeSub:
		n.binfmt(b, " - ", square)
	case nodeMul:
		n.binfmt(b, " * ", square)
	case nodeDiv:
		n.binfmt(b, " / ", square)
	case nodePow:
		n.binfmt(b, " ^ ", square)
	case nodeFact:
		n.left.fmt(b, !square)
		b.WriteByte('!')
	default:
		panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) binfmt(b *strings.Builder, op string, square bool) {
	n.left.fmt(b, !square)
	b.WriteString(op)
	n.right.fmt(b, !square)
}

// evalctx holds the operand stack for evaluating a tree.
type evalctx struct {
	stack stack[float64]
}

func (ctx *evalctx) result() float64 {
	if ctx.stack.depth() != 1 {
		panic("calc: inconsistent stack: " + strconv.Itoa(ctx.stack.depth()) + " items (bad tree?)")
	}
	return ctx.stack.top()
}

// eval pushes the node's value to the context's stack.
func (n *node) eval(ctx *evalctx) error {
	switch n.kind {
	case nodeNum:
		ctx.stack.push(n.num)
	case nodeCall:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		v, err := n.fn.Call(ctx.stack.pop())
		if err != nil {
			return err
		}
		ctx.stack.push(v)
	case nodeNeg:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		ctx.stack.push(-ctx.stack.pop())
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		if err := n.right.eval(ctx); err != nil {
			return err
		}
		r := ctx.stack.pop()
		l := ctx.stack.pop()
		v, err := binary(n.kind.operator(), l, r)
		if err != nil {
			return err
		}
		ctx.stack.push(v)
	case nodeFact:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		v, err := factorial(ctx.stack.pop())
		if err != nil {
			return err
		}
		ctx.stack.push(v)
	default:
		panic("calc: invalid tree node " + n.kind.String())
	}
	return nil
}

// operator gets the operator for a binary node kind.
func (k nodeKind) operator() Operator {
	switch k {
	case nodeAdd:
		return Add
	case nodeSub:
		return Sub
	case nodeMul:
		return Mul
	case nodeDiv:
		return Div
	case nodePow:
		return Pow
	default:
		panic("calc: no operator for " + k.String())
	}
}
