package calc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBracketsOpen(t *testing.T) {
	tests := []struct {
		expr string
		want bool
	}{
		{"", true},
		{"(1+2", true},
		{"((", true},
		{"(1+2)", true},
		{")(", false},
		{"1+2)", false},
		{"(1))+(", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BracketsOpen(tt.expr), "BracketsOpen(%q)", tt.expr)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2+3×4", "2+3*4"},
		{"8÷2", "8/2"},
		{"1 + 2", "1+2"},
		{"1(2+3)", "1*(2+3)"},
		{"(2+3)4", "(2+3)*4"},
		{"(1)(2)", "(1)(2)"},
		{"5--3", "5+3"},
		{"5×-3", "5*-3"},
		{"6÷-2", "6/-2"},
		{"7+", "7+0"},
		{"7×", "7*0"},
		{"7×-", "7*-0"},
		{"−4", "-4"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Sanitize(tt.raw)
			assert.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Sanitize(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestSanitizeRejects(t *testing.T) {
	for _, raw := range []string{
		"1+×2",
		"1×÷2",
		"1-+2",
		"1++2",
		"2×--3",
		")(",
		"(1+2",
		"1+2)",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := Sanitize(raw)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}
