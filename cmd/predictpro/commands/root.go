package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "predictpro",
	Short: "PredictPro - football fixture signal evaluation engine",
	Long: `PredictPro backend CLI

Evaluates a catalogue of predictive signals for football fixtures and
serves the results over a REST API.

Usage:
  go run ./cmd/predictpro [command]

Examples:
  go run ./cmd/predictpro api
  go run ./cmd/predictpro worker
  go run ./cmd/predictpro scheduler
  go run ./cmd/predictpro compute 12345`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
