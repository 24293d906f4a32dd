// =============================================================================
// Property CSV Mapper - Mapping Command
// =============================================================================
//
// This file defines the 'mapping' command, which prints the column mapping
// that the process command would apply: source header, target header, and
// the reference-code column. Useful for checking an XLSX workbook or inline
// config override before running a transform.
//
// COMMAND USAGE:
//   propmap mapping
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/skiptracer88/property-csv-mapper/internal/config"
	"github.com/skiptracer88/property-csv-mapper/internal/mapping"
	"github.com/spf13/cobra"
)

// mappingCmd represents the 'mapping' command.
var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Show the active column mapping",
	Long: `Show the column mapping the process command would apply, in output
column order. The mapping comes from the XLSX workbook or inline pairs in
the configuration file when present, otherwise the built-in property-owner
mapping is used.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		colMapping, err := resolveMapping(cfg)
		if err != nil {
			return fmt.Errorf("failed to resolve column mapping: %w", err)
		}

		fmt.Println("Source Column    ->  Target Column")
		fmt.Println("-----------------------------------")
		for _, pair := range colMapping {
			fmt.Printf("%-16s ->  %s\n", pair.Source, pair.Target)
		}
		fmt.Printf("%-16s ->  %s\n", "(reference code)", mapping.ReferenceCodeField)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(mappingCmd)
}
