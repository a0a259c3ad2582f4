package calc

import (
	"fmt"
	"strings"
)

// Token is one keypad input. Glyph tokens are stored in the buffer as the
// rune itself; control tokens never reach the buffer.
type Token rune

const (
	TokenAdd      Token = '+'
	TokenSubtract Token = '-'
	TokenMultiply Token = '×'
	TokenDivide   Token = '÷'
	TokenDecimal  Token = '.'
	TokenOpen     Token = '('
	TokenClose    Token = ')'

	// Control tokens live in the Unicode private use area so they can never
	// collide with a glyph.
	TokenClear     Token = 0xE000
	TokenBackspace Token = 0xE001
	TokenEvaluate  Token = 0xE002
)

// IsDigit reports whether t is one of 0-9.
func (t Token) IsDigit() bool { return t >= '0' && t <= '9' }

// IsOperator reports whether t is one of the four binary operators.
func (t Token) IsOperator() bool { return isOperatorRune(rune(t)) }

// IsEdit reports whether t is stored in the expression buffer.
func (t Token) IsEdit() bool {
	return t.IsDigit() || t.IsOperator() || t == TokenDecimal || t == TokenOpen || t == TokenClose
}

func (t Token) String() string {
	switch t {
	case TokenClear:
		return "clear"
	case TokenBackspace:
		return "backspace"
	case TokenEvaluate:
		return "evaluate"
	case TokenSubtract:
		return "−"
	}
	return string(rune(t))
}

func isOperatorRune(r rune) bool {
	switch r {
	case '+', '-', '×', '÷':
		return true
	}
	return false
}

// ParseToken maps an external key name onto the token vocabulary. Keyboard
// spellings of the operators are accepted ("*", "x" and "/").
func ParseToken(s string) (Token, error) {
	switch strings.ToLower(s) {
	case "c", "clear", "esc", "delete":
		return TokenClear, nil
	case "<", "backspace", "del":
		return TokenBackspace, nil
	case "=", "enter", "evaluate":
		return TokenEvaluate, nil
	case "*", "x", "×":
		return TokenMultiply, nil
	case "/", "÷":
		return TokenDivide, nil
	case "−", "-":
		return TokenSubtract, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		if t := Token(runes[0]); t.IsEdit() {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownToken, s)
}
