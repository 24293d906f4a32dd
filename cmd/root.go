// =============================================================================
// Property CSV Mapper - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that the 'process', 'mapping', and 'version' commands are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (propmap)
//   ├── processCmd (propmap process)
//   ├── mappingCmd (propmap mapping)
//   └── versionCmd (propmap version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "propmap",
	Short: "Property CSV Mapper - Standardize property-owner exports for DirectSkip import",
	Long: `Property CSV Mapper transforms property-search CSV exports into the
standardized DirectSkip import format.

For each run the tool:
  - Maps the fixed set of owner and property columns to the standard schema
  - Tags every record with your property reference code (Custom Field 1)
  - Removes duplicate owner/mailing-address records (first occurrence wins)
  - Writes a date-stamped output CSV ready for import

Example Usage:
  propmap process --file leads.csv --ref-code PROJ-2025-001
  propmap process --file leads.csv --ref-code PROJ-2025-001 --no-dedup
  propmap mapping                      # Show the active column mapping`,

	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand: print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
