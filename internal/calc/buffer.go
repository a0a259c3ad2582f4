package calc

import (
	"strings"
	"unicode/utf8"

	"github.com/2112121/accounting-book-sub002/internal/consts"
)

// Buffer holds the raw expression as typed, using the display glyphs for
// multiply and divide. The zero value is an empty buffer.
//
// Invariant: no two consecutive binary operators, except a minus directly
// after × or ÷.
type Buffer struct {
	text string
}

var seedGlyphs = strings.NewReplacer("−", "-", "*", "×", "/", "÷")

// NewBuffer seeds a buffer from host-provided text. Keyboard operator
// spellings are mapped to the buffer glyphs; the edit rules are not applied.
func NewBuffer(s string) Buffer {
	return Buffer{text: seedGlyphs.Replace(strings.TrimSpace(s))}
}

func (b Buffer) String() string { return b.text }

func (b Buffer) Empty() bool { return b.text == "" }

// Append applies the per-keystroke edit rules for an edit token and reports
// whether the buffer changed.
func (b *Buffer) Append(t Token) bool {
	if !t.IsEdit() {
		return false
	}
	if utf8.RuneCountInString(b.text) >= consts.MaxExpressionLength {
		return false
	}

	before := b.text
	switch {
	case t.IsOperator():
		b.appendOperator(t)
	case t == TokenDecimal:
		if !strings.ContainsRune(b.numericRun(), '.') {
			b.text += string(rune(t))
		}
	case t.IsDigit():
		b.appendDigit(t)
	default:
		b.text += string(rune(t))
	}
	return b.text != before
}

func (b *Buffer) appendOperator(t Token) {
	last, ok := b.last()
	if !ok || !isOperatorRune(last) {
		b.text += string(rune(t))
		return
	}

	if t == TokenSubtract && (last == '×' || last == '÷') {
		b.text += string(rune(t))
		return
	}

	trimmed := b.text[:len(b.text)-utf8.RuneLen(last)]
	if last == '-' {
		// Tail is "×-" or "÷-": a further minus changes nothing, any other
		// operator replaces both characters.
		if prev, _ := utf8.DecodeLastRuneInString(trimmed); prev == '×' || prev == '÷' {
			if t == TokenSubtract {
				return
			}
			trimmed = trimmed[:len(trimmed)-utf8.RuneLen(prev)]
		}
	}
	b.text = trimmed + string(rune(t))
}

func (b *Buffer) appendDigit(t Token) {
	if b.numericRun() != "0" {
		b.text += string(rune(t))
		return
	}
	if t == '0' {
		return
	}
	b.text = b.text[:len(b.text)-1] + string(rune(t))
}

// Backspace removes the last character and reports whether anything was removed.
func (b *Buffer) Backspace() bool {
	last, ok := b.last()
	if !ok {
		return false
	}
	b.text = b.text[:len(b.text)-utf8.RuneLen(last)]
	return true
}

func (b *Buffer) Clear() { b.text = "" }

func (b Buffer) last() (rune, bool) {
	if b.text == "" {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(b.text)
	return r, true
}

// numericRun returns the trailing run of digits and decimal points, i.e.
// everything after the most recent operator or parenthesis.
func (b Buffer) numericRun() string {
	i := strings.LastIndexFunc(b.text, func(r rune) bool {
		return !(r >= '0' && r <= '9') && r != '.'
	})
	if i < 0 {
		return b.text
	}
	_, size := utf8.DecodeRuneInString(b.text[i:])
	return b.text[i+size:]
}
