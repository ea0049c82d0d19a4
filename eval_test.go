package calc_test

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/zephyrtronium/calc"
)

var engines = []calc.Engine{calc.EngineTree, calc.EngineRewrite}

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"frac", "1.25", 1.25},
		{"leading-dot", ".5", 0.5},
		{"add", "2+3", 5},
		{"mixed", "2*3+5", 11},
		{"parens", "(2+3)*5", 25},
		{"pow", "2^3", 8},
		{"fact", "5!", 120},
		{"fact-zero", "0!", 1},
		{"prec", "2+3*4", 14},
		{"complex", "(2+3)*4-5", 15},
		{"nested", "((2+3)*4-5)/2", 7.5},
		{"neg-operand", "2+-3", -1},
		{"neg-first", "-5+3", -2},
		{"double-neg", "2--3", 5},
		{"neg-in-parens", "(-3)*2", -6},
		{"neg-pow", "-2^2", 4},
		{"pow-neg", "2^-1", 0.5},
		{"sub-left", "10-4-3", 3},
		{"div-left", "8/4/2", 1},
		{"pow-left", "2^3^2", 64},
		{"pow-fact", "2^3!", 64},
		{"fact-pow", "3!^2", 36},
		{"mul-fact", "2*3!", 12},
		{"fact-fact", "3!!", 720},
		{"parens-fact", "(1+2)!", 6},
		{"sub-group", "4-(2-1)", 3},
		{"spaces", " 2 + 3 * 4 ", 14},
		{"spaced-neg", "2 - -3", 5},
		{"sqrt-mul", "sqrt(16)*2", 8},
		{"add-sin", "2+sin(30)", 2.5},
		{"cos", "cos(0)", 1},
		{"tan", "tan(0)", 0},
		{"log", "log(1000)", math.Log10(1000)},
		{"ln", "ln(1)", 0},
		{"abs", "abs(-3.5)", 3.5},
		{"abs-expr", "abs(2-5)*2", 6},
		{"call-fact", "sqrt(9)!", 6},
		{"call-pow", "2^sqrt(4)", 4},
		{"nested-call", "sqrt(abs(-16))", 4},
		{"call-in-parens", "(sqrt(4)+1)*2", 6},
	}
	for _, e := range engines {
		ev := calc.New(calc.WithEngine(e))
		for _, c := range cases {
			t.Run(e.String()+"/"+c.name, func(t *testing.T) {
				r, err := ev.Eval(c.src)
				if err != nil {
					t.Fatalf("%q failed: %v", c.src, err)
				}
				if r != c.r {
					t.Errorf("%q: want %g, got %g", c.src, c.r, r)
				}
			})
		}
	}
}

func TestEvalApprox(t *testing.T) {
	cases := []struct {
		src string
		r   float64
	}{
		{"sin(30)", 0.5},
		{"cos(60)", 0.5},
		{"tan(45)", 1},
		{"log(100)", 2},
		{"ln(2.718281828459045)", 1},
		{"sqrt(sin(30)+0.75)", math.Sqrt(1.25)},
		{"sqrt(sin(30)+cos(60)+3)", 2},
		{"abs(sin(-30))*4", 2},
	}
	for _, e := range engines {
		for _, c := range cases {
			r, err := calc.Eval(c.src, calc.WithEngine(e))
			if err != nil {
				t.Errorf("%v: %q failed: %v", e, c.src, err)
				continue
			}
			if math.Abs(r-c.r) > 1e-6 {
				t.Errorf("%v: %q: want %g, got %g", e, c.src, c.r, r)
			}
		}
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"empty", "", calc.ErrMalformedExpression},
		{"blank", "   ", calc.ErrMalformedExpression},
		{"empty-parens", "()", calc.ErrMalformedExpression},
		{"div-zero", "5/0", calc.ErrDivisionByZero},
		{"div-zero-expr", "1/(2-2)", calc.ErrDivisionByZero},
		{"fact-frac", "3.5!", calc.ErrInvalidFactorialOperand},
		{"fact-neg", "-1!", calc.ErrInvalidFactorialOperand},
		{"unclosed", "(2+3", calc.ErrMalformedExpression},
		{"unopened", "2)", calc.ErrMalformedExpression},
		{"double-op", "2++3", calc.ErrMalformedExpression},
		{"trailing-op", "2+", calc.ErrMalformedExpression},
		{"leading-op", "*2", calc.ErrMalformedExpression},
		{"juxtaposed", "2(3)", calc.ErrMalformedExpression},
		{"juxtaposed-nums", "2 3", calc.ErrMalformedExpression},
		{"fact-paren", "3!(2)", calc.ErrMalformedExpression},
		{"bad-char", "2#3", calc.ErrMalformedExpression},
		{"name", "2+x", calc.ErrMalformedExpression},
		{"dot", ".", calc.ErrInvalidNumber},
		{"dots", "1.2.3", calc.ErrInvalidNumber},
		{"neg-group", "-(2)", calc.ErrInvalidNumber},
		{"huge", strings.Repeat("9", 400), calc.ErrInvalidNumber},
		{"unknown", "foo(2)", calc.ErrUnknownFunction},
		{"log-neg", "log(-1)", calc.ErrInvalidLogArgument},
		{"log-zero", "log(0)", calc.ErrInvalidLogArgument},
		{"ln-neg", "ln(-2)", calc.ErrInvalidLogArgument},
		{"sqrt-neg", "sqrt(-4)", calc.ErrInvalidSqrtArgument},
		{"sqrt-neg-in-expr", "1+sqrt(-4)*2", calc.ErrInvalidSqrtArgument},
		{"nested-domain", "abs(sqrt(0-1))", calc.ErrInvalidSqrtArgument},
		{"bad-arg", "sin(2++3)", calc.ErrMalformedExpression},
		{"div-zero-arg", "sin(1/0)", calc.ErrDivisionByZero},
		{"unclosed-call", "sin(30", calc.ErrMalformedExpression},
		{"spaced-call", "sin (30)", calc.ErrMalformedExpression},
	}
	for _, e := range engines {
		ev := calc.New(calc.WithEngine(e))
		for _, c := range cases {
			t.Run(e.String()+"/"+c.name, func(t *testing.T) {
				r, err := ev.Eval(c.src)
				if err == nil {
					t.Fatalf("%q gave %g with no error", c.src, r)
				}
				if !errors.Is(err, c.err) {
					t.Errorf("%q: want %v, got %v", c.src, c.err, err)
				}
				if err.Error() == "" {
					t.Errorf("%q: empty error message", c.src)
				}
			})
		}
	}
}

func TestEvalBasic(t *testing.T) {
	cases := []struct {
		src string
		r   float64
	}{
		{"2+3", 5},
		{"(2+3)*5", 25},
		{"2^3", 8},
		{"5!", 120},
		{"2+-3", -1},
		{"-5+3", -2},
		{"((2+3)*4-5)/2", 7.5},
	}
	for _, c := range cases {
		r, err := calc.EvalBasic(c.src)
		if err != nil {
			t.Errorf("%q failed: %v", c.src, err)
			continue
		}
		if r != c.r {
			t.Errorf("%q: want %g, got %g", c.src, c.r, r)
		}
	}
	// The basic machine never evaluates calls.
	if _, err := calc.EvalBasic("sin(30)"); !errors.Is(err, calc.ErrMalformedExpression) {
		t.Errorf("sin(30): want malformed expression, got %v", err)
	}
	if _, err := calc.EvalBasic("foo(30)"); !errors.Is(err, calc.ErrUnknownFunction) {
		t.Errorf("foo(30): want unknown function, got %v", err)
	}
}

func TestEvalErrorPos(t *testing.T) {
	cases := []struct {
		src string
		pos int
	}{
		{"2++3", 3},
		{"2)", 2},
		{"2#3", 2},
		{"1+.", 3},
		{"(2+3", 5},
		{"1+foo(2)", 3},
		{"sqrt(1+.)", 8},
	}
	for _, c := range cases {
		_, err := calc.Eval(c.src)
		var ie calc.InputError
		if !errors.As(err, &ie) {
			t.Errorf("%q: want InputError, got %#v", c.src, err)
			continue
		}
		if ie.Pos() != c.pos {
			t.Errorf("%q: want position %d, got %d (%v)", c.src, c.pos, ie.Pos(), err)
		}
	}
}

func TestEvalDomainError(t *testing.T) {
	_, err := calc.Eval("2*sqrt(-9)")
	var de *calc.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("want *DomainError, got %#v", err)
	}
	if de.X != -9 || de.Func != "sqrt" {
		t.Errorf("wrong domain error: %+v", de)
	}
	if !strings.Contains(err.Error(), "sqrt") {
		t.Errorf("%q doesn't mention sqrt", err.Error())
	}
}

func TestEnginesAgree(t *testing.T) {
	srcs := []string{
		"1+2*3-4/5",
		"2^0.5*3",
		"(1+2)*(3+4)/(5-6)",
		"10!/8!",
		"-1.5*-2",
		"sin(45)^2+cos(45)^2",
		"log(2)+log(5)",
		"ln(10)/ln(2)",
		"sqrt(2)*sqrt(2)",
		"abs(-1-2-3)!",
		"tan(30)*3",
		"sqrt(abs(sin(-30))*8)",
		"1/3+1/3+1/3",
		"4-(2-(1-(0.5-0.25)))",
		"-sin(30)",
		"2*-sqrt(4)",
		"-abs(3)+1",
		"-sin(30)^2",
		"2--cos(60)",
		"(-ln(2))*-log(100)",
		"-sqrt(abs(-16))*2",
	}
	tr := calc.New(calc.WithEngine(calc.EngineTree))
	rw := calc.New(calc.WithEngine(calc.EngineRewrite))
	for _, src := range srcs {
		a, aerr := tr.Eval(src)
		b, berr := rw.Eval(src)
		if aerr != nil || berr != nil {
			t.Errorf("%q: tree error %v, rewrite error %v", src, aerr, berr)
			continue
		}
		if a != b {
			t.Errorf("%q: tree gave %g, rewrite gave %g", src, a, b)
		}
	}
}

func TestEvalIdempotent(t *testing.T) {
	srcs := []string{"sqrt(sin(30)+0.75)", "2+3*4", "5/0", "(2+3"}
	for _, e := range engines {
		ev := calc.New(calc.WithEngine(e))
		for _, src := range srcs {
			r0, err0 := ev.Eval(src)
			for i := 0; i < 3; i++ {
				r, err := ev.Eval(src)
				if r != r0 || (err == nil) != (err0 == nil) {
					t.Errorf("%v: %q changed between evaluations: %g, %v then %g, %v", e, src, r0, err0, r, err)
				}
			}
		}
	}
}

func TestEvalConcurrent(t *testing.T) {
	ev := calc.New()
	srcs := map[string]float64{
		"2+3*4":      14,
		"sqrt(16)*2": 8,
		"5!":         120,
		"(2+3)*5":    25,
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for src, want := range srcs {
					r, err := ev.Eval(src)
					if err != nil || r != want {
						t.Errorf("%q: want %g, got %g, %v", src, want, r, err)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestMaxDepth(t *testing.T) {
	nest := func(n int) string {
		return strings.Repeat("abs(", n) + "-1" + strings.Repeat(")", n)
	}
	for _, e := range engines {
		ev := calc.New(calc.WithEngine(e), calc.MaxDepth(8))
		if r, err := ev.Eval(nest(8)); err != nil || r != 1 {
			t.Errorf("%v: depth 8: want 1, got %g, %v", e, r, err)
		}
		if _, err := ev.Eval(nest(9)); !errors.Is(err, calc.ErrNestingTooDeep) {
			t.Errorf("%v: depth 9: want nesting error, got %v", e, err)
		}
		// Parens are not calls.
		src := strings.Repeat("(", 100) + "1" + strings.Repeat(")", 100)
		if r, err := ev.Eval(src); err != nil || r != 1 {
			t.Errorf("%v: deep parens: want 1, got %g, %v", e, r, err)
		}
	}
	if _, err := calc.Eval(nest(calc.DefaultMaxDepth + 1)); !errors.Is(err, calc.ErrNestingTooDeep) {
		t.Errorf("default depth: want nesting error, got %v", err)
	}
}

func TestMaxDepthMixedNames(t *testing.T) {
	cases := []struct {
		src   string
		depth int
	}{
		{"abs(sin(30))", 2},
		{"sqrt(abs(16))", 2},
		{"tan(sqrt(abs(ln(1)+2025)))", 4},
		{"2*sin(abs(-30))+cos(sqrt(0))", 2},
	}
	for _, c := range cases {
		for _, e := range engines {
			ev := calc.New(calc.WithEngine(e), calc.MaxDepth(c.depth))
			if _, err := ev.Eval(c.src); err != nil {
				t.Errorf("%v: %q at depth %d: %v", e, c.src, c.depth, err)
			}
			ev = calc.New(calc.WithEngine(e), calc.MaxDepth(c.depth-1))
			if r, err := ev.Eval(c.src); !errors.Is(err, calc.ErrNestingTooDeep) {
				t.Errorf("%v: %q at depth %d: want nesting error, got %g, %v", e, c.src, c.depth-1, r, err)
			}
		}
	}
}

func TestNestedFailureTime(t *testing.T) {
	// Every level of a failing nest must be evaluated once, not once per
	// function name.
	src := strings.Repeat("abs(sin(", 20) + "sqrt(-1)" + strings.Repeat("))", 20)
	for _, e := range engines {
		start := time.Now()
		_, err := calc.Eval(src, calc.WithEngine(e))
		if !errors.Is(err, calc.ErrInvalidSqrtArgument) {
			t.Errorf("%v: want sqrt error, got %v", e, err)
		}
		if d := time.Since(start); d > time.Second {
			t.Errorf("%v: evaluating 41 nested calls took %v", e, d)
		}
	}
}

func TestMaxDepthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MaxDepth(0) didn't panic")
		}
	}()
	calc.MaxDepth(0)
}

func TestParseEngine(t *testing.T) {
	for _, e := range engines {
		got, err := calc.ParseEngine(e.String())
		if err != nil || got != e {
			t.Errorf("ParseEngine(%q): want %v, got %v, %v", e.String(), e, got, err)
		}
	}
	if _, err := calc.ParseEngine("stack"); err == nil {
		t.Error("ParseEngine accepted an unknown engine")
	}
}
