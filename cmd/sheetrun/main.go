package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sheetrun/internal/cli"
	"sheetrun/internal/cli/commands"
	"sheetrun/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "sheetrun",
		Short:         "Spreadsheet driven UI test runner",
		Long:          `Run UI test cases described in a spreadsheet against a web page. Each case types its input into the page, reads the output and records a verdict.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()
	log := cli.NewLogger()

	// Create flags struct (will be populated by command flags)
	flags := cli.Flags{Retries: -1}

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, log, commands.OpenBrowser)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
