package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2112121/accounting-book-sub002/internal/calc"
	"github.com/2112121/accounting-book-sub002/internal/consts"
	"github.com/2112121/accounting-book-sub002/internal/logger"
)

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions and print one result per line",
		Long: "Each argument is evaluated as one expression. Without arguments, expressions\n" +
			"are read from stdin, one per line. Failed expressions print \"" + calc.ErrorSentinel + "\".",
		Example: "  calcpad eval '2+3*4' '1(2+3)'\n  printf '7+\\n5/0\\n' | calcpad eval",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return evaluateAll(args, cmd.OutOrStdout())
			}
			if stdinIsTerminal(cmd) {
				return errors.New("no expression given and stdin is a terminal")
			}
			return evaluateStream(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func evaluateStream(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), consts.MaxBatchLineLength)

	var exprs []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		exprs = append(exprs, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read expressions: %w", err)
	}
	return evaluateAll(exprs, out)
}

func evaluateAll(exprs []string, out io.Writer) error {
	failed := 0
	for _, expr := range exprs {
		result, err := calc.Evaluate(expr)
		if err != nil {
			failed++
			logger.Debug("eval %q: %v", expr, err)
		}
		fmt.Fprintln(out, result)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
	}
	return nil
}
