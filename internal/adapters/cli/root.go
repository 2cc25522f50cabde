package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tradeworks",
		Short: "Tradeworks - explore reachable inventories of a resource-trading puzzle",
		Long: `Tradeworks enumerates every inventory reachable from a starting basket
by applying trade rules repeatedly, bounded by a total-resource cap, and finds
a trade route to an inventory that covers a requested target basket.

Examples:
  tradeworks explore --start 3,0,0,0,0 --max 20
  tradeworks explore --start 6,0,0,0,0 --max 5 --rule eee:w
  tradeworks route --start 3,0,0,0,0 --target 0,1,0,0,0
  tradeworks play`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in ., ./configs, /etc/tradeworks)")

	rootCmd.AddCommand(NewExploreCommand())
	rootCmd.AddCommand(NewRouteCommand())
	rootCmd.AddCommand(NewPlayCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
