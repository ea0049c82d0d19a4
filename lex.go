package calc

import (
	"math"
	"strconv"
)

// isSpace reports whether c is skipped between tokens.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9' || c == '.'
}

// isIdent reports whether c can appear in a function name.
func isIdent(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// unaryContext reports whether a - at src[i] is the sign of a literal rather
// than a subtraction. That is the case at the start of the expression and after
// an open paren or a binary operator. Whitespace is skipped looking back.
func unaryContext(src string, i int) bool {
	for i--; i >= 0; i-- {
		if !isSpace(src[i]) {
			break
		}
	}
	if i < 0 {
		return true
	}
	switch src[i] {
	case '(', '+', '-', '*', '/', '^':
		return true
	}
	return false
}

// startsNumber reports whether a literal begins at src[i].
func startsNumber(src string, i int) bool {
	c := src[i]
	return isDigit(c) || c == '-' && unaryContext(src, i)
}

// signedCall reports whether src[i] is a sign directly before a function name,
// as in -sin(30). The call is then an operand carrying the sign, the same as
// the literal its value would be written as.
func signedCall(src string, i int) bool {
	return src[i] == '-' && i+1 < len(src) && isIdent(src[i+1]) && unaryContext(src, i)
}

// scanNumber scans the literal starting at src[i] and returns its value and
// the index just past it. base is added to positions in errors.
func scanNumber(src string, i, base int) (float64, int, error) {
	j := i
	if j < len(src) && src[j] == '-' && unaryContext(src, j) {
		j++
	}
	k := j
	for k < len(src) && isDigit(src[k]) {
		k++
	}
	text := src[i:k]
	if k == j {
		return 0, k, &SyntaxError{Col: base + i + 1, Text: text, Msg: "expected number", Err: ErrInvalidNumber}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, k, &SyntaxError{Col: base + i + 1, Text: text, Msg: "invalid number", Err: ErrInvalidNumber}
	}
	return v, k, nil
}

// scanIdent returns the index just past the name starting at src[i].
func scanIdent(src string, i int) int {
	for i < len(src) && isIdent(src[i]) {
		i++
	}
	return i
}

// matchParen finds the paren closing the one at src[open]. The closing paren
// is the first ) met at depth zero. The result is -1 if there is none.
func matchParen(src string, open int) int {
	depth := 0
	for i := open + 1; i < len(src); i++ {
		switch src[i] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}
