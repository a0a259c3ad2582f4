package calc

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalRespectsPrecedence(t *testing.T) {
	cases := []struct {
		expr     string
		expected float64
	}{
		{"10+5*2", 20},
		{"8-2*3", 2},
		{"2+3*4", 14},
		{"18/3+2", 8},
		{"10-4-3", 3},
		{"64/4/2", 8},
		{"-3*-2", 6},
		{"-(2+3)", -5},
		{"+4", 4},
		{".5+1.", 1.5},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.expr, func(t *testing.T) {
			t.Parallel()
			got, err := Eval(tc.expr)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestEvalHandlesParentheses(t *testing.T) {
	cases := []struct {
		expr     string
		expected float64
	}{
		{"(2+3)*4", 20},
		{"(8-2)*(5-3)", 12},
		{"(10+5)/(3+2)", 3},
		{"((1))", 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.expr, func(t *testing.T) {
			t.Parallel()
			got, err := Eval(tc.expr)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		expr string
		want error
	}{
		{"", ErrSyntax},
		{"()", ErrSyntax},
		{"(1)(2)", ErrSyntax},
		{"*5", ErrSyntax},
		{".", ErrSyntax},
		{"1.2.3", ErrSyntax},
		{"5/0", ErrDivisionByZero},
		{"0/0", ErrDivisionByZero},
		{"5/(2-2)", ErrDivisionByZero},
		{"1" + strings.Repeat("0", 400), ErrNonFinite},
		{"1" + strings.Repeat("0", 300) + "*1" + strings.Repeat("0", 300), ErrNonFinite},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.expr, func(t *testing.T) {
			_, err := Eval(tc.expr)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEvaluatePipeline(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", NeutralValue},
		{"   ", NeutralValue},
		{"2+3×4", "14"},
		{"1(2+3)", "5"},
		{"(2+3)2", "10"},
		{"7+", "7"},
		{"7×-", "0"},
		{"5--3", "8"},
		{"10÷4", "2.5"},
		{"1÷3", "0.333333"},
		{"2÷3", "0.666667"},
		{"0.1+0.2", "0.3"},
		{"42", "42"},
		{"-0", "0"},
		{"5×-2", "-10"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			got, err := Evaluate(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluateFailsWithSentinel(t *testing.T) {
	for _, raw := range []string{")(", "(1+2", "5÷0", "1+×2", "()", "0÷0"} {
		t.Run(raw, func(t *testing.T) {
			got, err := Evaluate(raw)
			assert.Error(t, err)
			assert.Equal(t, ErrorSentinel, got)
		})
	}
}

func TestEvalNeverReturnsNonFinite(t *testing.T) {
	big := "1" + strings.Repeat("0", 200)
	for _, expr := range []string{big + "*" + big, "-" + big + "*" + big, big + "*" + big + "-" + big + "*" + big} {
		v, err := Eval(expr)
		if err == nil {
			assert.False(t, math.IsInf(v, 0) || math.IsNaN(v), "Eval(%.20s...) = %v", expr, v)
		}
	}
}
