package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	err := cmd.Execute()
	if err == nil {
		return
	}

	var usageErr *usageError
	switch {
	case errors.Is(err, errVerificationFailed):
		// Per-entry verdicts were already written; the exit status
		// carries the outcome.
		os.Exit(1)
	case errors.As(err, &usageErr):
		fmt.Fprintln(os.Stderr, usageErr)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
