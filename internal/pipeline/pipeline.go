// =============================================================================
// Property CSV Mapper - Processing Pipeline
// =============================================================================
//
// This module orchestrates the full transform for a single uploaded file:
//
//   1. Parse the input CSV
//   2. Validate the field set against the column mapping
//   3. Map columns to the standardized schema + append the reference code
//   4. Remove duplicate owner/mailing records (unless disabled)
//   5. Derive the date-stamped output file name
//   6. Write the output CSV (skipped on --dry-run)
//   7. Archive the input file (optional)
//
// CONCURRENCY:
//   One run processes one file start to finish, synchronously. The pipeline
//   owns its dataset instances exclusively and keeps no state across runs,
//   so independent runs never share anything.
//
// =============================================================================

package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skiptracer88/property-csv-mapper/internal/config"
	"github.com/skiptracer88/property-csv-mapper/internal/csvfile"
	"github.com/skiptracer88/property-csv-mapper/internal/dedup"
	"github.com/skiptracer88/property-csv-mapper/internal/mapping"
	"github.com/skiptracer88/property-csv-mapper/internal/naming"
	"github.com/skiptracer88/property-csv-mapper/pkg/utils"
)

// =============================================================================
// OPTIONS AND RESULT STRUCTURES
// =============================================================================

// Options are the per-run settings supplied by the calling workflow.
type Options struct {
	// ReferenceCode is written to the Custom Field 1 column of every
	// output record. The process command refuses to run without one.
	ReferenceCode string

	// DisableDedup skips the duplicate-removal pass.
	DisableDedup bool

	// Strict aborts the run when expected source columns are missing,
	// instead of substituting empty columns and warning.
	Strict bool

	// DryRun runs the transform but writes no output file.
	DryRun bool

	// OutputDir overrides the configured output directory when non-empty.
	OutputDir string

	// Now supplies the run date for the output file name. Defaults to
	// time.Now when nil.
	Now func() time.Time
}

// Result represents the outcome of processing a single file.
type Result struct {
	// InputFile is the path to the processed input file.
	InputFile string

	// OutputFile is the path to the generated CSV. Empty if processing
	// failed, or the intended path on a dry run.
	OutputFile string

	// RunID uniquely identifies this run in logs and error-log names.
	RunID string

	// Success indicates whether processing completed.
	Success bool

	// Error contains the failure if Success is false.
	Error error

	// Validation reports which expected source columns were missing.
	Validation mapping.ValidationResult

	// Warnings contains the non-fatal diagnostics surfaced by the Mapper.
	Warnings []mapping.Diagnostic

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about a processing run.
type Stats struct {
	// RowsRead is the number of data rows parsed from the input.
	RowsRead int

	// RowsWritten is the number of rows in the output dataset.
	RowsWritten int

	// DuplicatesRemoved is the number of rows dropped by deduplication.
	DuplicatesRemoved int

	// MissingFields is the number of expected source columns that were
	// absent and substituted with empty columns.
	MissingFields int

	// ProcessingTime is the time taken for the run.
	ProcessingTime time.Duration
}

// =============================================================================
// PIPELINE STRUCTURE
// =============================================================================

// Pipeline processes one uploaded property-search CSV.
type Pipeline struct {
	cfg     *config.Config
	mapping mapping.Mapping
	opts    Options
	logger  Logger
}

// Logger is the minimal logging interface the pipeline reports through.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// New creates a Pipeline for the given configuration, column mapping, and
// per-run options.
func New(cfg *config.Config, m mapping.Mapping, opts Options) *Pipeline {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Pipeline{
		cfg:     cfg,
		mapping: m,
		opts:    opts,
		logger:  NewStdLogger(cfg.LogLevel),
	}
}

// SetLogger replaces the pipeline's logger.
func (p *Pipeline) SetLogger(l Logger) {
	if l != nil {
		p.logger = l
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline for a single input file.
func (p *Pipeline) Run(inputPath string) Result {
	startTime := time.Now()
	result := Result{
		InputFile: inputPath,
		RunID:     uuid.New().String(),
	}

	// =========================================================================
	// STEP 1: PARSE INPUT CSV
	// =========================================================================

	p.logger.Info("Processing file: %s", inputPath)

	ds, err := csvfile.Parse(inputPath, p.cfg.CSV)
	if err != nil {
		result.Error = fmt.Errorf("failed to parse CSV: %w", err)
		result.Stats.ProcessingTime = time.Since(startTime)
		return result
	}

	result.Stats.RowsRead = ds.RowCount()
	p.logger.Debug("Parsed %d rows and %d columns", ds.RowCount(), len(ds.Headers))

	// =========================================================================
	// STEP 2: VALIDATE FIELD SET
	// =========================================================================
	// Missing source columns are non-fatal by default: the Mapper
	// substitutes empty columns and reports each one. --strict turns a
	// failed validation into a hard abort before any transform runs.

	result.Validation = mapping.Validate(ds, p.mapping)
	if !result.Validation.Valid {
		if p.opts.Strict {
			result.Error = fmt.Errorf("input is missing expected columns: %v", result.Validation.MissingFields)
			result.Stats.ProcessingTime = time.Since(startTime)
			return result
		}
		p.logger.Warn("Input is missing expected columns: %v", result.Validation.MissingFields)
	}

	// =========================================================================
	// STEP 3: MAP COLUMNS
	// =========================================================================

	mapped, diagnostics := mapping.Apply(ds, p.mapping, p.opts.ReferenceCode)
	result.Warnings = diagnostics
	result.Stats.MissingFields = len(diagnostics)

	p.logger.Debug("Mapped %d rows into %d columns", mapped.RowCount(), len(mapped.Headers))

	// =========================================================================
	// STEP 4: REMOVE DUPLICATES
	// =========================================================================

	output := mapped
	if !p.opts.DisableDedup && !p.cfg.Dedup.Disabled {
		deduped, removed := dedup.Deduplicate(mapped, dedup.DefaultKeyFields())
		output = deduped
		result.Stats.DuplicatesRemoved = removed
		p.logger.Debug("Removed %d duplicate record(s)", removed)
	} else {
		p.logger.Debug("Deduplication disabled for this run")
	}

	result.Stats.RowsWritten = output.RowCount()

	// =========================================================================
	// STEP 5: DERIVE OUTPUT FILE NAME
	// =========================================================================

	fileName := naming.OutputFilename(p.opts.Now(), p.opts.ReferenceCode)

	outputDir := p.cfg.OutputDir
	if p.opts.OutputDir != "" {
		outputDir = p.opts.OutputDir
	}

	fm := utils.NewFileManager(outputDir, p.cfg.ArchiveDir)

	// =========================================================================
	// STEP 6: WRITE OUTPUT
	// =========================================================================

	if p.opts.DryRun {
		result.OutputFile = fm.UniquePath(fileName)
		result.Success = true
		result.Stats.ProcessingTime = time.Since(startTime)
		p.logger.Info("Dry run: would write %d row(s) to %s", output.RowCount(), result.OutputFile)
		return result
	}

	if err := fm.EnsureDirectories(); err != nil {
		result.Error = err
		result.Stats.ProcessingTime = time.Since(startTime)
		return result
	}

	outputPath := fm.UniquePath(fileName)
	if err := csvfile.WriteFile(outputPath, output); err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		result.Stats.ProcessingTime = time.Since(startTime)
		return result
	}

	result.OutputFile = outputPath
	p.logger.Info("Wrote %d row(s) to %s", output.RowCount(), outputPath)

	// =========================================================================
	// STEP 7: ARCHIVE INPUT
	// =========================================================================

	if p.cfg.ArchiveInputs {
		archivePath, err := fm.ArchiveInput(inputPath)
		if err != nil {
			// Archival failure doesn't fail the run; the output exists.
			p.logger.Warn("Failed to archive input file: %v", err)
		} else {
			p.logger.Debug("Archived input to %s", archivePath)
		}
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	return result
}
