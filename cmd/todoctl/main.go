// Command todoctl is a command-line companion to the todo gateway. The
// parse, validate and query commands run the gateway's rules locally; add
// and list talk to a running gateway.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "todoctl",
	Short:         "Work with todos through the todo gateway",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a process exit code without printing anything more.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// ExitCode returns the process exit code.
func (e exitError) ExitCode() int {
	return e.code
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, "todoctl:", err)
		os.Exit(1)
	}
}
