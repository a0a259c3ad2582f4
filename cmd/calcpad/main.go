package main

import (
	"fmt"
	"os"

	"github.com/2112121/accounting-book-sub002/cmd/calcpad/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
