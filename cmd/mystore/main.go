// Mystore is a terminal product-inventory dashboard.
//
// It signs the user in, then shows an in-memory product list with search,
// category filter and price sort, plus add, edit and delete dialogs.
// Products are seeded from the config file and are never written back.
//
// Usage:
//
//	mystore [command] [flags]
//
// Running without arguments launches the dashboard.
// See 'mystore --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/mystore/internal/version"
)

// errReported means the command already printed its own error box.
var errReported = errors.New("error already reported")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mystore",
	Short: "MyStore Product Inventory Dashboard",
	Long: `A terminal dashboard for a small product inventory.

Sign in with any credentials, then browse products as cards, search by
title, filter by category and sort by price. Products can be added,
edited and deleted; changes live in memory for the session.

If no command is specified, the dashboard will launch automatically.`,
	Example: `  # Launch at the login screen
  mystore

  # Skip straight to the dashboard
  mystore --route /dashboard

  # Use another config file and log to a file
  mystore --config ./demo.yaml --log-level debug --log-file ./mystore.log`,
	Version:       version.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runDashboard,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mystore %s\n", version.Full())
	},
}
