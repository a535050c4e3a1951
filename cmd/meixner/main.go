package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/meixner/internal/cli"
	"codeberg.org/snonux/meixner/internal/processor"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	// Pick up values from the config file and MEIXNER_* environment
	cli.ApplyConfig(flags)

	logger := cli.NewLogger(os.Stderr, flags.Verbose, flags.LogFormat)
	logger.Debug("starting", "level", flags.Level, "count", flags.Count, "dictionary", flags.Dictionary)

	return processor.NewProcessor(flags, cmd.OutOrStdout(), logger).Run(cmd.Context())
}
