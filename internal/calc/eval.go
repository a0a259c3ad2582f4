package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrSyntax covers unbalanced brackets, doubled operators and anything the
	// parser cannot read.
	ErrSyntax = errors.New("syntax error")
	// ErrDivisionByZero is returned for x/0, including 0/0.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNonFinite is returned when a literal or an intermediate result is not
	// a finite float64.
	ErrNonFinite = errors.New("result is not a finite number")
	// ErrUnknownToken is returned by ParseToken for input outside the keypad vocabulary.
	ErrUnknownToken = errors.New("unknown token")
)

// Evaluate runs a raw buffer through Sanitize, Eval and Format. On failure
// the returned string is ErrorSentinel and err carries the reason. Empty
// input yields NeutralValue without touching the parser.
func Evaluate(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return NeutralValue, nil
	}

	canonical, err := Sanitize(raw)
	if err != nil {
		return ErrorSentinel, err
	}
	value, err := Eval(canonical)
	return FormatResult(value, err), err
}

// Eval parses and evaluates a canonical expression:
//
//	expression = term { ("+" | "-") term }
//	term       = factor { ("*" | "/") factor }
//	factor     = ("+" | "-") factor | "(" expression ")" | number
//	number     = digits [ "." digits ] | "." digits
func Eval(expr string) (float64, error) {
	p := &parser{input: expr}
	if p.isEnd() {
		return 0, fmt.Errorf("%w: empty expression", ErrSyntax)
	}

	value, err := p.parseExpression()
	if err != nil {
		return 0, err
	}
	if !p.isEnd() {
		return 0, fmt.Errorf("%w: unexpected character %q at %d", ErrSyntax, p.peek(), p.pos)
	}
	return value, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseExpression() (float64, error) {
	value, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		var op byte
		switch {
		case p.match('+'):
			op = '+'
		case p.match('-'):
			op = '-'
		default:
			return value, nil
		}

		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			value += rhs
		} else {
			value -= rhs
		}
		if err := checkFinite(value); err != nil {
			return 0, err
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	value, err := p.parseFactor()
	if err != nil {
		return 0, err
	}

	for {
		switch {
		case p.match('*'):
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			value *= rhs
		case p.match('/'):
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, ErrDivisionByZero
			}
			value /= rhs
		default:
			return value, nil
		}
		if err := checkFinite(value); err != nil {
			return 0, err
		}
	}
}

func (p *parser) parseFactor() (float64, error) {
	if p.match('+') {
		return p.parseFactor()
	}
	if p.match('-') {
		value, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -value, nil
	}

	if p.match('(') {
		value, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		if !p.match(')') {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		return value, nil
	}

	return p.parseNumber()
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	dotSeen := false
	for !p.isEnd() {
		ch := p.peek()
		if ch >= '0' && ch <= '9' {
			p.pos++
			continue
		}
		if ch == '.' && !dotSeen {
			dotSeen = true
			p.pos++
			continue
		}
		break
	}

	if start == p.pos {
		if p.isEnd() {
			return 0, fmt.Errorf("%w: expected number at end of input", ErrSyntax)
		}
		return 0, fmt.Errorf("%w: expected number, found %q", ErrSyntax, p.peek())
	}

	literal := p.input[start:p.pos]
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: literal %s", ErrNonFinite, literal)
		}
		return 0, fmt.Errorf("%w: invalid number %q", ErrSyntax, literal)
	}
	return value, nil
}

func (p *parser) match(target byte) bool {
	if p.isEnd() || p.peek() != target {
		return false
	}
	p.pos++
	return true
}

func (p *parser) peek() byte {
	return p.input[p.pos]
}

func (p *parser) isEnd() bool {
	return p.pos >= len(p.input)
}

func checkFinite(v float64) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return ErrNonFinite
	}
	return nil
}
