// =============================================================================
// Property CSV Mapper - File Manager Utility
// =============================================================================
//
// This module provides the file management utilities around a run:
//   - Directory management for the output and archive locations
//   - Input archival (moving processed files)
//   - Collision-safe output paths
//   - Error log generation
//
// ARCHIVAL STRATEGY:
//   - Input files are moved to the archive directory only after a
//     successful run (and only when archival is enabled)
//   - Failed files remain in their original location
//   - Error logs are created in the output directory, named by run ID
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations around a processing run.
type FileManager struct {
	// OutputDir is the directory where output files are placed.
	OutputDir string

	// ArchiveDir is the directory for archived input files.
	ArchiveDir string
}

// NewFileManager creates a FileManager for the given directories.
func NewFileManager(outputDir, archiveDir string) *FileManager {
	return &FileManager{
		OutputDir:  outputDir,
		ArchiveDir: archiveDir,
	}
}

// EnsureDirectories creates the output and archive directories if they
// don't exist.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.OutputDir, fm.ArchiveDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// =============================================================================
// OUTPUT NAMING
// =============================================================================

// UniquePath returns a path in OutputDir for the given file name that does
// not collide with an existing file. The generated output name is
// deterministic (date stamp + reference code), so two runs on the same day
// with the same code would otherwise overwrite each other; a short random
// fragment is inserted before the extension to keep both.
func (fm *FileManager) UniquePath(fileName string) string {
	path := filepath.Join(fm.OutputDir, fileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(fileName)
	base := strings.TrimSuffix(fileName, ext)
	fragment := uuid.New().String()[:8]

	return filepath.Join(fm.OutputDir, fmt.Sprintf("%s_%s%s", base, fragment, ext))
}

// =============================================================================
// ARCHIVAL
// =============================================================================

// ArchiveInput moves a processed input file into the archive directory.
//
// RETURNS:
//   - The archived path.
//   - An error if the file cannot be moved.
func (fm *FileManager) ArchiveInput(inputPath string) (string, error) {
	archivePath := filepath.Join(fm.ArchiveDir, filepath.Base(inputPath))

	if err := os.Rename(inputPath, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive input file: %w", err)
	}

	return archivePath, nil
}

// =============================================================================
// ERROR LOGGING
// =============================================================================

// WriteErrorLog writes a run's error and warning lines to a log file in the
// output directory, named after the run ID.
//
// RETURNS:
//   - The path to the written log file.
//   - An error if writing fails.
func (fm *FileManager) WriteErrorLog(runID string, lines []string) (string, error) {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	logPath := filepath.Join(fm.OutputDir, fmt.Sprintf("errors_%s.log", runID))

	file, err := os.Create(logPath)
	if err != nil {
		return "", fmt.Errorf("failed to create error log: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	fmt.Fprintf(writer, "Run %s at %s\n", runID, time.Now().Format(time.RFC3339))
	fmt.Fprintf(writer, "%d issue(s):\n\n", len(lines))

	for i, line := range lines {
		fmt.Fprintf(writer, "%d. %s\n", i+1, line)
	}

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to write error log: %w", err)
	}

	return logPath, nil
}
