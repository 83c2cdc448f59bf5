package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCommand := newRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "studypulse: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand runs the server when no subcommand is given.
func newRootCommand() *cobra.Command {
	serve := newServeCommand()
	rootCommand := &cobra.Command{
		Use:           "studypulse",
		Short:         "Study log ingestion and dashboard API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          serve.RunE,
	}
	rootCommand.AddCommand(
		serve,
		newMigrateCommand(),
		newTokenCommand(),
	)
	return rootCommand
}
