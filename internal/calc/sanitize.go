package calc

import (
	"fmt"
	"strings"
	"unicode"
)

var canonicalGlyphs = strings.NewReplacer("×", "*", "÷", "/", "−", "-")

// Sanitize rewrites a raw buffer into the canonical form accepted by Eval.
//
// Two rewrites are deliberately literal rather than sign algebra: "--" always
// becomes "+", and a trailing operator is completed with a 0 operand.
func Sanitize(raw string) (string, error) {
	s := canonicalGlyphs.Replace(raw)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = insertImplicitMultiply(s)
	s = strings.ReplaceAll(s, "--", "+")

	if err := checkOperatorRuns(s); err != nil {
		return "", err
	}
	if !bracketsBalanced(s) {
		return "", fmt.Errorf("%w: unbalanced parentheses in %q", ErrSyntax, s)
	}

	if n := len(s); n > 0 && isCanonicalOperator(s[n-1]) {
		s += "0"
	}
	return s, nil
}

// insertImplicitMultiply turns "2(" into "2*(" and ")2" into ")*2".
func insertImplicitMultiply(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if i > 0 {
			prev, cur := s[i-1], s[i]
			if (isDigit(prev) && cur == '(') || (prev == ')' && isDigit(cur)) {
				sb.WriteByte('*')
			}
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// checkOperatorRuns rejects any adjacent operator pair other than "*-" and "/-".
func checkOperatorRuns(s string) error {
	for i := 1; i < len(s); i++ {
		prev, cur := s[i-1], s[i]
		if !isCanonicalOperator(prev) || !isCanonicalOperator(cur) {
			continue
		}
		if cur == '-' && (prev == '*' || prev == '/') {
			continue
		}
		return fmt.Errorf("%w: unexpected operator sequence %q", ErrSyntax, s[i-1:i+1])
	}
	return nil
}

// bracketsBalanced is the strict form of BracketsOpen: the depth must never go
// negative and must end at zero.
func bracketsBalanced(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

func isCanonicalOperator(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
