package calc

import (
	"strings"
)

// Expr is a parsed expression. Function calls are resolved while parsing, so
// an Expr can be evaluated any number of times without its Evaluator.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression with an Evaluator created with the given
// options.
func Parse(src string, opts ...Option) (*Expr, error) {
	if len(opts) == 0 {
		return defaultEvaluator.Parse(src)
	}
	return New(opts...).Parse(src)
}

// Parse parses an expression into a tree. Parsing uses the same priority
// table as the basic machine; a call shifts a node holding its parsed
// argument. Errors from the values of operations, such as division by zero,
// are reported by Eval instead.
func (e *Evaluator) Parse(src string) (*Expr, error) {
	return e.parse(src, 0, 0)
}

// parse parses src, which begins at offset base in the whole input and is
// nested within depth calls.
func (e *Evaluator) parse(src string, base, depth int) (*Expr, error) {
	n, err := run[*node](src, base, &tree{e: e, depth: depth})
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// tree reduces operands to nodes.
type tree struct {
	e     *Evaluator
	depth int
}

func (*tree) num(text string, v float64) *node {
	return &node{kind: nodeNum, name: text, num: v}
}

func (t *tree) call(name string, at int, arg string, base int) (*node, error) {
	fn, err := t.e.lookup(name, at, t.depth)
	if err != nil {
		return nil, err
	}
	x, err := t.e.parse(arg, base, t.depth+1)
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeCall, name: name, fn: fn, left: x.n}, nil
}

func (*tree) neg(x *node) *node {
	return &node{kind: nodeNeg, left: x}
}

func (*tree) binary(op Operator, l, r *node, at int) (*node, error) {
	var k nodeKind
	switch op {
	case Add:
		k = nodeAdd
	case Sub:
		k = nodeSub
	case Mul:
		k = nodeMul
	case Div:
		k = nodeDiv
	case Pow:
		k = nodePow
	default:
		panic("calc: invalid binary operator " + op.String())
	}
	return &node{kind: k, left: l, right: r}, nil
}

func (*tree) unary(op Operator, x *node, at int) (*node, error) {
	if op != Fact {
		panic("calc: invalid unary operator " + op.String())
	}
	return &node{kind: nodeFact, left: x}, nil
}

// Eval evaluates the expression.
func (x *Expr) Eval() (float64, error) {
	var ctx evalctx
	if err := x.n.eval(&ctx); err != nil {
		return 0, err
	}
	return ctx.result(), nil
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (x *Expr) String() string {
	var b strings.Builder
	x.n.fmt(&b, false)
	return b.String()
}
