package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/oasproto/cmd/oasproto/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps usage mistakes to 2 and everything else to 1.
func exitCode(err error) int {
	if errors.Is(err, commands.ErrUsage) {
		return 2
	}
	return 1
}
