package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/2112121/accounting-book-sub002/internal/calc"
	"github.com/2112121/accounting-book-sub002/internal/logger"
)

func keysCmd() *cobra.Command {
	var seed string

	cmd := &cobra.Command{
		Use:   "keys SEQUENCE...",
		Short: "Replay keypad input and print the resulting state",
		Long: "Every character of SEQUENCE is pressed on the keypad in order. Besides digits,\n" +
			"'.', brackets and + - * / (x and × or ÷ work too), '=' evaluates, 'C' clears\n" +
			"and '<' deletes the last character. Evaluations settle immediately.",
		Example: "  calcpad keys '1(2+3)='\n  calcpad keys --seed 42 '+8='",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := calc.New(calc.Options{Seed: seed, Logger: logger.Global()})
			if err := replay(c, strings.Join(args, "")); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "expression: %s\n", c.Expression())
			fmt.Fprintf(out, "display: %s\n", c.Display())
			fmt.Fprintf(out, "state: %s\n", c.State())
			return nil
		},
	}
	cmd.Flags().StringVarP(&seed, "seed", "s", "", "pre-filled expression")
	return cmd
}

func replay(c *calc.Calculator, sequence string) error {
	for i, r := range sequence {
		if unicode.IsSpace(r) {
			continue
		}
		tok, err := calc.ParseToken(string(r))
		if err != nil {
			return fmt.Errorf("position %d: %w", i, err)
		}
		if id := c.Press(tok); id != 0 {
			c.Settle(id)
		}
	}
	return nil
}
