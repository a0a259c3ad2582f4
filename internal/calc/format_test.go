package calc

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{3.14, "3.14"},
		{-2.5, "-2.5"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{-0.0000001, "0"},
		{1.0000004, "1"},
		{1.0000005000001, "1.000001"},
		{1234567.125, "1234567.125"},
		{1e21, "1000000000000000000000"},
		{0.1 + 0.2, "0.3"},
	}
	for _, tt := range tests {
		t.Run(strconv.FormatFloat(tt.in, 'g', -1, 64), func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestFormatResultPassesSentinelThrough(t *testing.T) {
	assert.Equal(t, ErrorSentinel, FormatResult(42, errors.New("boom")))
	assert.Equal(t, "42", FormatResult(42, nil))
}

func TestFormatIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		x := (rng.Float64() - 0.5) * math.Pow(10, float64(rng.Intn(8)))

		once := Format(x)
		reparsed, err := strconv.ParseFloat(once, 64)
		require.NoError(t, err)

		assert.Equal(t, once, Format(reparsed), "x=%v", x)
		assert.NotContains(t, once, "e", "x=%v", x)
	}
}
