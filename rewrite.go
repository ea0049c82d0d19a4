package calc

import (
	"math"
	"strconv"
	"strings"
)

// Rewrite replaces every function call in src with the decimal text of its
// value. Arguments may contain arithmetic and further calls, which are
// evaluated one level deeper than the call containing them. Substituted text
// is a plain number, so the result contains no call that could be replaced.
//
// A call that cannot be evaluated is left in place as written and the rest of
// the text is still rewritten. In that case the result is the partially
// rewritten text along with the first error encountered.
func (e *Evaluator) Rewrite(src string) (string, error) {
	return e.rewrite(src, 0)
}

// Rewrite is a shortcut to rewrite an expression with an Evaluator created
// with the given options.
func Rewrite(src string, opts ...Option) (string, error) {
	if len(opts) == 0 {
		return defaultEvaluator.Rewrite(src)
	}
	return New(opts...).Rewrite(src)
}

// rewrite substitutes the calls in src from left to right. depth is the
// nesting depth of src within other calls. Calls inside an argument are only
// reached through rewriteCall, so each is evaluated once at its own depth.
func (e *Evaluator) rewrite(src string, depth int) (string, error) {
	var b strings.Builder
	var cause error
	i := 0
	for i < len(src) {
		if !isIdent(src[i]) {
			b.WriteByte(src[i])
			i++
			continue
		}
		n := scanIdent(src, i)
		name := src[i:n]
		end := -1
		if e.funcs[name] != nil && n < len(src) && src[n] == '(' {
			end = matchParen(src, n)
		}
		if end < 0 {
			// Not a call we know. Its argument, if any, is scanned as text.
			b.WriteString(name)
			i = n
			continue
		}
		v, err := e.rewriteCall(name, i+1, src[n+1:end], depth)
		if err != nil {
			if cause == nil {
				cause = err
			}
			b.WriteString(src[i : end+1])
		} else {
			b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		i = end + 1
	}
	return b.String(), cause
}

// rewriteCall evaluates a single call found by rewrite.
func (e *Evaluator) rewriteCall(name string, at int, arg string, depth int) (float64, error) {
	fn, err := e.lookup(name, at, depth)
	if err != nil {
		return 0, err
	}
	x, err := e.evalRewrite(arg, depth+1)
	if err != nil {
		return 0, err
	}
	v, err := fn.Call(x)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		// The text of a non-finite value would not scan as a number.
		return 0, &DomainError{X: x, Func: name, Err: ErrInvalidNumber}
	}
	return v, nil
}

// evalRewrite evaluates src by rewriting its calls and then running the basic
// machine on the result. A call that could not be rewritten is still in the
// text, so the machine could only fail on it; the reason the call failed is
// the more useful error.
func (e *Evaluator) evalRewrite(src string, depth int) (float64, error) {
	s, cause := e.rewrite(src, depth)
	if cause != nil {
		return 0, cause
	}
	return run[float64](s, 0, basic{e.funcs})
}
