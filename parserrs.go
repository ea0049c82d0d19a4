package calc

import (
	"errors"
	"strconv"
)

// Kinds of evaluation failure. Every error returned by this package unwraps to
// exactly one of these, so callers can test with errors.Is.
var (
	// ErrInvalidNumber is a malformed or empty numeric literal.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrMalformedExpression is a misplaced operator, an unmatched paren, or
	// a mismatch between operators and operands.
	ErrMalformedExpression = errors.New("malformed expression")
	ErrDivisionByZero      = errors.New("division by zero")
	// ErrInvalidFactorialOperand is a factorial of a negative or non-integral
	// value.
	ErrInvalidFactorialOperand = errors.New("factorial of negative or non-integer")
	ErrInvalidLogArgument      = errors.New("logarithm of non-positive value")
	ErrInvalidSqrtArgument     = errors.New("square root of negative value")
	// ErrUnknownFunction is a call to a name with no function.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrNestingTooDeep is a function call nested deeper than the
	// evaluator's maximum depth.
	ErrNestingTooDeep = errors.New("function calls nested too deeply")
)

// SyntaxError is an error at a position in the input. It implements
// InputError.
type SyntaxError struct {
	// Col is the 1-based byte position of the offending token. For the
	// rewrite engine, it is a position in the rewritten text.
	Col int
	// Text is the offending token, if any.
	Text string
	// Msg describes the problem.
	Msg string
	// Err is the kind of failure.
	Err error
}

func (err *SyntaxError) Error() string {
	msg := err.Msg
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	return errpos(err.Col, msg)
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// DomainError is an error returned when an operator or function is applied to
// a value outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the operator or function.
	Func string
	// Err is the kind of failure.
	Err error
}

func (err *DomainError) Error() string {
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Func + ": " + err.Err.Error()
}

func (err *DomainError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid syntax implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based byte position of the token that caused the
	// error.
	Pos() int
}

var _ InputError = (*SyntaxError)(nil)
