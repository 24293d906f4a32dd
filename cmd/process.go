// =============================================================================
// Property CSV Mapper - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs the full transform for
// a single property-search CSV export.
//
// COMMAND USAGE:
//   propmap process --file <csv> --ref-code <code> [flags]
//
// FLAGS:
//   --file        : Path to the property-search CSV to process (required)
//   --ref-code    : Property reference code written to Custom Field 1 (required)
//   --no-dedup    : Skip the duplicate-removal pass
//   --strict      : Abort when expected source columns are missing
//   --dry-run     : Run the transform without writing an output file
//   --output-dir  : Override the configured output directory
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Resolve the column mapping (XLSX workbook, inline config, or built-in)
//   3. Parse, validate, map, deduplicate
//   4. Write the date-stamped output CSV
//   5. Print a summary report
//
// Each invocation processes exactly one file; there is no batch mode.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/skiptracer88/property-csv-mapper/internal/config"
	"github.com/skiptracer88/property-csv-mapper/internal/mapping"
	"github.com/skiptracer88/property-csv-mapper/internal/pipeline"
	"github.com/skiptracer88/property-csv-mapper/pkg/utils"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputFile is the path to the CSV file to process.
var inputFile string

// refCode is the property reference code written to every output record.
var refCode string

// noDedup skips the duplicate-removal pass.
var noDedup bool

// strict aborts the run when expected source columns are missing.
var strict bool

// dryRun runs the transform without writing output files.
var dryRun bool

// outputDir overrides the configured output directory.
var outputDir string

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Map, tag, and deduplicate a property-search CSV",
	Long: `The process command transforms one property-search CSV export into the
standardized DirectSkip import format.

The input columns are mapped to the standard schema (missing columns are
substituted with empty columns and reported as warnings), every record is
tagged with the reference code, duplicate owner/mailing-address records are
removed keeping the first occurrence, and the result is written to a
date-stamped CSV:

  20250115_PROJ-2025-001_DirectSkip_Import.csv

Both --file and --ref-code are required: without them there is nothing to
process and no code to tag the records with.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&inputFile,
		"file",
		"",
		"Path to the property-search CSV to process",
	)

	processCmd.Flags().StringVar(
		&refCode,
		"ref-code",
		"",
		"Property reference code written to Custom Field 1 (e.g. PROJ-2025-001)",
	)

	processCmd.Flags().BoolVar(
		&noDedup,
		"no-dedup",
		false,
		"Skip the duplicate owner/mailing-address removal pass",
	)

	processCmd.Flags().BoolVar(
		&strict,
		"strict",
		false,
		"Abort when expected source columns are missing instead of substituting empty columns",
	)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the transform without writing an output file",
	)

	processCmd.Flags().StringVar(
		&outputDir,
		"output-dir",
		"",
		"Override the configured output directory",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess loads the configuration, enforces the run preconditions, and
// executes the pipeline for the single input file.
func runProcess() error {
	// =========================================================================
	// STEP 1: ENFORCE PRECONDITIONS
	// =========================================================================
	// An absent input file or reference code is not an error in the data;
	// the run simply isn't ready. Guide the user instead of transforming.

	if inputFile == "" && refCode == "" {
		return fmt.Errorf("nothing to process: supply --file with the CSV to process and --ref-code with the property reference code")
	}
	if inputFile == "" {
		return fmt.Errorf("no input file: supply --file with the CSV to process")
	}
	if refCode == "" {
		return fmt.Errorf("no reference code: supply --ref-code so every record can be tagged in Custom Field 1")
	}

	// =========================================================================
	// STEP 2: LOAD CONFIGURATION
	// =========================================================================

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	// =========================================================================
	// STEP 3: RESOLVE THE COLUMN MAPPING
	// =========================================================================

	colMapping, err := resolveMapping(cfg)
	if err != nil {
		return fmt.Errorf("failed to resolve column mapping: %w", err)
	}

	// =========================================================================
	// STEP 4: RUN THE PIPELINE
	// =========================================================================

	p := pipeline.New(cfg, colMapping, pipeline.Options{
		ReferenceCode: refCode,
		DisableDedup:  noDedup,
		Strict:        strict,
		DryRun:        dryRun,
		OutputDir:     outputDir,
	})

	result := p.Run(inputFile)

	// =========================================================================
	// STEP 5: REPORT
	// =========================================================================

	printSummary(result)

	if result.Error != nil {
		fm := utils.NewFileManager(cfg.OutputDir, cfg.ArchiveDir)
		if logPath, logErr := fm.WriteErrorLog(result.RunID, issueLines(result)); logErr == nil {
			fmt.Printf("Issues logged to %s\n", logPath)
		}
		return fmt.Errorf("processing %s failed: %w", filepath.Base(inputFile), result.Error)
	}

	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// resolveMapping selects the column mapping for the run: an XLSX mapping
// workbook wins over inline config pairs, which win over the built-in
// property-owner mapping.
func resolveMapping(cfg *config.Config) (mapping.Mapping, error) {
	if cfg.Mapping.XLSXFile != "" {
		return mapping.LoadXLSX(cfg.Mapping.XLSXFile)
	}

	if len(cfg.Mapping.Pairs) > 0 {
		m := make(mapping.Mapping, len(cfg.Mapping.Pairs))
		for i, pair := range cfg.Mapping.Pairs {
			m[i] = mapping.FieldPair{Source: pair.Source, Target: pair.Target}
		}
		return m, nil
	}

	return mapping.Default(), nil
}

// printSummary renders the run report: warnings, record counts, duplicate
// count, and the chosen output file name.
func printSummary(result pipeline.Result) {
	fmt.Println("\n=== Processing Complete ===")

	for _, warning := range result.Warnings {
		fmt.Printf("  ! %s\n", warning.Message)
	}

	fmt.Printf("Rows read:          %d\n", result.Stats.RowsRead)
	fmt.Printf("Duplicates removed: %d\n", result.Stats.DuplicatesRemoved)
	fmt.Printf("Rows written:       %d\n", result.Stats.RowsWritten)
	fmt.Printf("Time elapsed:       %s\n", result.Stats.ProcessingTime)

	if result.OutputFile != "" {
		if result.Success && !dryRun {
			fmt.Printf("Output file:        %s\n", result.OutputFile)
		} else {
			fmt.Printf("Output file (not written): %s\n", result.OutputFile)
		}
	}
}

// issueLines flattens a failed result into printable error-log lines.
func issueLines(result pipeline.Result) []string {
	var lines []string

	if result.Error != nil {
		lines = append(lines, fmt.Sprintf("error: %v", result.Error))
	}
	for _, field := range result.Validation.MissingFields {
		lines = append(lines, fmt.Sprintf("missing column: %s", field))
	}
	for _, warning := range result.Warnings {
		lines = append(lines, warning.String())
	}

	return lines
}
