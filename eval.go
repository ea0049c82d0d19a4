package calc

import (
	"math"
	"strconv"
)

// Evaluator evaluates expressions with a fixed set of functions. An Evaluator
// holds no state between evaluations, so it is safe to use concurrently.
type Evaluator struct {
	// funcs maps names to functions. It never contains nil values.
	funcs map[string]Func
	// names is the sorted list of keys of funcs, in the order the rewrite
	// engine scans for them.
	names  []string
	engine Engine
	depth  int
}

// New creates an Evaluator. The given options are applied in order.
func New(opts ...Option) *Evaluator {
	s := settings{
		funcs: make(map[string]Func, len(globalfuncs)),
		depth: DefaultMaxDepth,
	}
	for k, v := range globalfuncs {
		s.funcs[k] = v
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		s = opt.option(s)
	}
	for k, v := range s.funcs {
		if v == nil {
			delete(s.funcs, k)
		}
	}
	return &Evaluator{
		funcs:  s.funcs,
		names:  sortedNames(s.funcs),
		engine: s.engine,
		depth:  s.depth,
	}
}

// Engine returns the engine the evaluator uses.
func (e *Evaluator) Engine() Engine {
	return e.engine
}

// Funcs returns the names of the evaluator's functions in sorted order.
func (e *Evaluator) Funcs() []string {
	return append([]string(nil), e.names...)
}

// Eval evaluates an expression. Errors unwrap to one of the Err values of
// this package.
func (e *Evaluator) Eval(src string) (float64, error) {
	if e.engine == EngineRewrite {
		return e.evalRewrite(src, 0)
	}
	x, err := e.parse(src, 0, 0)
	if err != nil {
		return 0, err
	}
	return x.Eval()
}

// lookup gets the function for a call at the given position and depth. depth
// is the nesting depth of the expression containing the call.
func (e *Evaluator) lookup(name string, at, depth int) (Func, error) {
	fn := e.funcs[name]
	if fn == nil {
		return nil, &SyntaxError{Col: at, Text: name, Msg: "unknown function", Err: ErrUnknownFunction}
	}
	if depth >= e.depth {
		return nil, &SyntaxError{Col: at, Text: name, Msg: "call nested deeper than " + strconv.Itoa(e.depth), Err: ErrNestingTooDeep}
	}
	return fn, nil
}

var defaultEvaluator = New()

// Eval is a shortcut to evaluate an expression with an Evaluator created with
// the given options.
func Eval(src string, opts ...Option) (float64, error) {
	if len(opts) == 0 {
		return defaultEvaluator.Eval(src)
	}
	return New(opts...).Eval(src)
}

// EvalBasic evaluates an expression without function calls using the dual
// stack machine directly.
func EvalBasic(src string) (float64, error) {
	return run[float64](src, 0, basic{globalfuncs})
}

// basic reduces operands to their values. It cannot evaluate calls; the
// rewrite engine removes the calls it can before basic sees the text.
type basic struct {
	funcs map[string]Func
}

func (basic) num(text string, v float64) float64 {
	return v
}

func (b basic) call(name string, at int, arg string, base int) (float64, error) {
	if b.funcs[name] == nil {
		return 0, &SyntaxError{Col: at, Text: name, Msg: "unknown function", Err: ErrUnknownFunction}
	}
	return 0, &SyntaxError{Col: at, Text: name, Msg: "unevaluated call to", Err: ErrMalformedExpression}
}

func (basic) neg(x float64) float64 {
	return -x
}

func (basic) binary(op Operator, l, r float64, at int) (float64, error) {
	return binary(op, l, r)
}

func (basic) unary(op Operator, x float64, at int) (float64, error) {
	return unary(op, x)
}

// binary applies a binary operator. l is the left operand.
func binary(op Operator, l, r float64) (float64, error) {
	switch op {
	case Add:
		return l + r, nil
	case Sub:
		return l - r, nil
	case Mul:
		return l * r, nil
	case Div:
		if r == 0 {
			return 0, &DomainError{X: r, Func: "/", Err: ErrDivisionByZero}
		}
		return l / r, nil
	case Pow:
		return math.Pow(l, r), nil
	default:
		panic("calc: invalid binary operator " + op.String())
	}
}

func unary(op Operator, x float64) (float64, error) {
	if op != Fact {
		panic("calc: invalid unary operator " + op.String())
	}
	return factorial(x)
}

// factorial computes n! by iterative product. It is defined only for
// non-negative integers.
func factorial(n float64) (float64, error) {
	if n < 0 || n != math.Trunc(n) {
		return 0, &DomainError{X: n, Func: "!", Err: ErrInvalidFactorialOperand}
	}
	r := 1.0
	// Past 170, the product is infinite.
	for i := 2.0; i <= n && !math.IsInf(r, 1); i++ {
		r *= i
	}
	return r, nil
}
