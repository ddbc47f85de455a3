package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/cfglink/internal/cli"
	"github.com/arthur-debert/cfglink/pkg/errors"
	"github.com/arthur-debert/cfglink/pkg/output"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.IsErrorCode(err, errors.ErrPartialFailure):
			// Each failure and the summary were already reported.
		case errors.IsErrorCode(err, errors.ErrInvalidInput):
			fmt.Fprintln(os.Stderr, output.StyleError.Render(fmt.Sprintf("Error: %v", err)))
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Usage()
		default:
			fmt.Fprintln(os.Stderr, output.StyleError.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
