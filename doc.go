// Package calc implements a table-driven calculator for infix arithmetic.
//
// Expressions are numbers combined with + - * / ^, postfix ! for factorial,
// and parentheses. A - directly after the start of the expression, an open
// paren, or another operator is the sign of the number that follows it, so
// "2+-3" is -1 but "-(3)" is not a valid expression. ^ is left-associative and
// binds tighter than * and /, and ! binds tightest of all: "2^3^2" is 64 and
// "2^3!" is 64 too.
//
// Calls to sin, cos, tan (taking degrees), log (base 10), ln, sqrt, and abs
// take one argument, which may be any expression, including further calls.
//
// Precedence is decided entirely by a fixed table of relations between the
// operator on top of an operator stack and the operator just scanned; see
// Priority. Evaluators can handle calls either by parsing them into a tree
// (the default) or by rewriting each call in the text to its value
// before running the table-driven machine on the result.
package calc
