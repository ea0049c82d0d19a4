package calc

import (
	"math"
	"sort"
)

// Func is a function from reals to reals. Function calls take exactly one
// argument.
type Func interface {
	// Call evaluates the function. If x is outside the function's domain,
	// the error should be a *DomainError.
	Call(x float64) (float64, error)
}

type monadic func(float64) (float64, error)

func (m monadic) Call(x float64) (float64, error) {
	return m(x)
}

// Monadic wraps a function of one variable into a Func.
func Monadic(f func(x float64) (float64, error)) Func {
	return monadic(f)
}

// total wraps a function defined on all reals.
func total(f func(float64) float64) Func {
	return monadic(func(x float64) (float64, error) {
		return f(x), nil
	})
}

// degrees wraps a trigonometric function to take its argument in degrees.
func degrees(f func(float64) float64) Func {
	return total(func(x float64) float64 {
		return f(x * math.Pi / 180)
	})
}

// positive wraps a logarithm, which is defined only for positive arguments.
func positive(name string, f func(float64) float64) Func {
	return monadic(func(x float64) (float64, error) {
		if x <= 0 || math.IsNaN(x) {
			return 0, &DomainError{X: x, Func: name, Err: ErrInvalidLogArgument}
		}
		return f(x), nil
	})
}

var globalfuncs = map[string]Func{
	"sin": degrees(math.Sin),
	"cos": degrees(math.Cos),
	"tan": degrees(math.Tan),
	"log": positive("log", math.Log10),
	"ln":  positive("ln", math.Log),
	"sqrt": Monadic(func(x float64) (float64, error) {
		if x < 0 || math.IsNaN(x) {
			return 0, &DomainError{X: x, Func: "sqrt", Err: ErrInvalidSqrtArgument}
		}
		return math.Sqrt(x), nil
	}),
	"abs": total(math.Abs),
}

// DefaultFuncs returns the names of the functions every evaluator knows unless
// they are disabled, in sorted order.
func DefaultFuncs() []string {
	return sortedNames(globalfuncs)
}

func sortedNames(m map[string]Func) []string {
	names := make([]string, 0, len(m))
	for k, v := range m {
		if v != nil {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}
