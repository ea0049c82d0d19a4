package calc

import (
	"strconv"
	"strings"
)

// Operator is an operator symbol of the expression grammar. Its value indexes
// the priority table and has no numeric meaning otherwise.
type Operator int8

const (
	Add Operator = iota
	Sub
	Mul
	Div
	Pow
	// Fact is the postfix factorial operator.
	Fact
	LParen
	RParen
	// End marks the end of the expression. It is also the bottom of the
	// operator stack during evaluation.
	End

	numOperators = int(End) + 1
)

// opChars maps each operator except End to its glyph.
const opChars = "+-*/^!()"

// Classify returns the operator for a byte. Bytes that are not operator
// glyphs, including the end of input, classify as End; callers decide by
// position whether End means termination or an unexpected character.
func Classify(c byte) Operator {
	if k := strings.IndexByte(opChars, c); k >= 0 {
		return Operator(k)
	}
	return End
}

// unary reports whether op takes one operand.
func (op Operator) unary() bool {
	return op == Fact
}

func (op Operator) String() string {
	switch {
	case op == End:
		return "end"
	case 0 <= op && int(op) < len(opChars):
		return opChars[op : op+1]
	default:
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
}

// Relation is the result of comparing the operator atop the operator stack
// with the operator just scanned.
type Relation int8

const (
	// Invalid means the two operators can never legally meet.
	Invalid Relation = iota
	// Lower means the incoming operator is shifted onto the stack.
	Lower
	// Equal means the pair matches, e.g. ( met by ), and the stacked one is
	// discarded.
	Equal
	// Higher means the stacked operator is reduced before the incoming one is
	// considered again.
	Higher
)

func (r Relation) String() string {
	switch r {
	case Invalid:
		return " "
	case Lower:
		return "<"
	case Equal:
		return "="
	case Higher:
		return ">"
	default:
		return "Relation(" + strconv.Itoa(int(r)) + ")"
	}
}

const (
	lo = Lower
	eq = Equal
	hi = Higher
	no = Invalid
)

// priorities is indexed by [stack top][incoming].
var priorities = [numOperators][numOperators]Relation{
	//        +   -   *   /   ^   !   (   )   end
	Add:    {hi, hi, lo, lo, lo, lo, lo, hi, hi},
	Sub:    {hi, hi, lo, lo, lo, lo, lo, hi, hi},
	Mul:    {hi, hi, hi, hi, lo, lo, lo, hi, hi},
	Div:    {hi, hi, hi, hi, lo, lo, lo, hi, hi},
	Pow:    {hi, hi, hi, hi, hi, lo, lo, hi, hi},
	Fact:   {hi, hi, hi, hi, hi, hi, no, hi, hi},
	LParen: {lo, lo, lo, lo, lo, lo, lo, eq, no},
	RParen: {no, no, no, no, no, no, no, no, no},
	End:    {lo, lo, lo, lo, lo, lo, lo, no, eq},
}

// Priority compares the operator on top of the operator stack with the
// incoming operator.
func Priority(top, incoming Operator) Relation {
	return priorities[top][incoming]
}

// Operators returns all operators in table order.
func Operators() []Operator {
	ops := make([]Operator, numOperators)
	for i := range ops {
		ops[i] = Operator(i)
	}
	return ops
}
