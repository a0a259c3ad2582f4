package consts

import "time"

// Keypad timings
const (
	// SettleDelay is the pause between entering Pending and showing the result
	SettleDelay = 150 * time.Millisecond
	// ShakeDuration is how long the error shake stays visible
	ShakeDuration = 500 * time.Millisecond
	// CopyConfirmDuration is how long the "copied" confirmation stays visible
	CopyConfirmDuration = 2 * time.Second
)

// Result formatting
const (
	// ResultPrecision is the number of decimal digits kept in a result
	ResultPrecision = 6
)

// Input limits
const (
	// MaxExpressionLength bounds the expression buffer; further input is ignored
	MaxExpressionLength = 256
	// MaxBatchLineLength bounds a single stdin line in batch evaluation
	MaxBatchLineLength = 64 * 1024
)
