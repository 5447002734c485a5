package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagelate/pagelate/internal/cli"
	"github.com/pagelate/pagelate/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	// Flag validation is done by now; runtime errors should not dump
	// the usage text on top of the message.
	cmd.SilenceUsage = true

	// Credential checks happen before any network work; a missing
	// credential opens the relevant signup page.
	proc, err := processor.NewFromEnv(flags)
	if err != nil {
		return err
	}

	return proc.Run(context.Background())
}
