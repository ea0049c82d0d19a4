package calc

import (
	"fmt"
	"strconv"
)

// Engine selects how an Evaluator handles function calls.
type Engine int8

const (
	// EngineTree builds an expression tree with calls as nodes, then
	// evaluates the tree.
	EngineTree Engine = iota
	// EngineRewrite replaces each call in the text with the decimal value of
	// the call until none remain, then evaluates the text.
	EngineRewrite
)

func (e Engine) String() string {
	switch e {
	case EngineTree:
		return "tree"
	case EngineRewrite:
		return "rewrite"
	default:
		return "Engine(" + strconv.Itoa(int(e)) + ")"
	}
}

// ParseEngine returns the engine with the given name.
func ParseEngine(name string) (Engine, error) {
	switch name {
	case "tree", "":
		return EngineTree, nil
	case "rewrite":
		return EngineRewrite, nil
	default:
		return 0, fmt.Errorf("unknown engine %q (want tree or rewrite)", name)
	}
}

// DefaultMaxDepth is the default limit on nested function calls.
const DefaultMaxDepth = 64

// Option is an option for creating an Evaluator.
type Option interface {
	option(settings) settings
}

type settings struct {
	funcs  map[string]Func
	engine Engine
	depth  int
}

type (
	engineopt Engine
	depthopt  int
	funcopt   struct {
		name string
		fn   Func
	}
	funcsopt map[string]Func
)

// WithEngine selects the engine. The default is EngineTree.
func WithEngine(e Engine) Option {
	if e != EngineTree && e != EngineRewrite {
		panic("calc: invalid engine " + e.String())
	}
	return engineopt(e)
}

func (o engineopt) option(s settings) settings {
	s.engine = Engine(o)
	return s
}

// MaxDepth limits how deeply function calls may nest. A call inside the
// argument of n other calls is at depth n+1. Panics if n is not positive.
func MaxDepth(n int) Option {
	if n <= 0 {
		panic("calc: max depth must be positive, not " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) option(s settings) settings {
	s.depth = int(o)
	return s
}

// WithFunc sets a function. To disable a function, pass nil for fn. Panics
// if name is not a valid function name, which is a sequence of ASCII letters
// and underscores.
func WithFunc(name string, fn Func) Option {
	checkname(name)
	return &funcopt{name, fn}
}

func (o *funcopt) option(s settings) settings {
	s.funcs[o.name] = o.fn
	return s
}

// WithFuncs sets a group of functions. To disable any function, set it to nil.
func WithFuncs(fns map[string]Func) Option {
	o := make(funcsopt, len(fns))
	for k, v := range fns {
		checkname(k)
		o[k] = v
	}
	return o
}

func (o funcsopt) option(s settings) settings {
	for k, v := range o {
		s.funcs[k] = v
	}
	return s
}

// DisableDefaultFuncs disables all default functions. Later options may add
// functions back.
func DisableDefaultFuncs() Option {
	o := make(funcsopt, len(globalfuncs))
	for k := range globalfuncs {
		o[k] = nil
	}
	return o
}

func checkname(name string) {
	if name == "" {
		panic("calc: empty function name")
	}
	for i := 0; i < len(name); i++ {
		if !isIdent(name[i]) {
			panic("calc: invalid function name " + strconv.Quote(name))
		}
	}
}
