// =============================================================================
// Property CSV Mapper - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Property CSV Mapper CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   propmap process --file leads.csv --ref-code PROJ-2025-001
//   propmap mapping       - Show the active column mapping
//   propmap version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (mapping, dedup, naming, pipeline)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/skiptracer88/property-csv-mapper/cmd"
)

func main() {
	cmd.Execute()
}
