package calc

import (
	"strconv"
	"strings"

	"github.com/2112121/accounting-book-sub002/internal/consts"
)

const (
	// ErrorSentinel is the display value for any failed evaluation.
	ErrorSentinel = "Error"
	// NeutralValue is the display value when nothing has been computed.
	NeutralValue = "0"
)

// Format rounds x to ResultPrecision decimals and trims trailing zeros and a
// dangling decimal point. The output is always plain decimal notation.
func Format(x float64) string {
	s := strconv.FormatFloat(x, 'f', consts.ResultPrecision, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatResult formats an evaluation outcome, passing the error sentinel
// through when err is set.
func FormatResult(x float64, err error) string {
	if err != nil {
		return ErrorSentinel
	}
	return Format(x)
}
