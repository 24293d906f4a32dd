// =============================================================================
// Property CSV Mapper - Mapper
// =============================================================================
//
// The Mapper transforms an input dataset into a new dataset with an entirely
// different field set:
//
//   1. For each (source, target) pair, in declared order:
//      - source present:  copy the column verbatim (no trimming, no case
//                         change, no coercion), preserving row order
//      - source absent:   synthesize an empty column and report a
//                         MissingField diagnostic (non-fatal)
//   2. Append the reference-code column with the same literal value for
//      every row.
//
// The Mapper never drops or adds rows: output row count always equals input
// row count. Diagnostics are returned as values; rendering them is the
// caller's responsibility.
//
// The Mapper does not enforce a non-empty reference code. That precondition
// belongs to the calling workflow (the process command refuses to run
// without one).
//
// =============================================================================

package mapping

import (
	"fmt"

	"github.com/skiptracer88/property-csv-mapper/internal/types"
)

// =============================================================================
// DIAGNOSTICS
// =============================================================================

// DiagnosticKind classifies a non-fatal condition reported by the Mapper.
type DiagnosticKind string

// KindMissingField indicates a required source column was absent from the
// input and an empty target column was substituted.
const KindMissingField DiagnosticKind = "missing_field"

// Diagnostic is a structured, non-fatal condition surfaced during mapping.
type Diagnostic struct {
	// Kind classifies the condition.
	Kind DiagnosticKind

	// Field is the affected source column name.
	Field string

	// Message is a human-readable description.
	Message string
}

// String implements fmt.Stringer for log and summary output.
func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s: %s", d.Kind, d.Field, d.Message)
}

// =============================================================================
// MAPPER
// =============================================================================

// Apply projects the input dataset through the mapping and appends the
// reference-code column.
//
// PARAMETERS:
//   - ds: The input dataset. It is never modified.
//   - m: The ordered column mapping to apply.
//   - refCode: The reference code written to every output record. May be
//     any text, including empty; the caller enforces the non-empty rule.
//
// RETURNS:
//   - A new dataset with exactly len(m)+1 fields in mapping order, and the
//     same row count and row order as the input.
//   - Diagnostics for every source column that was absent from the input.
func Apply(ds *types.Dataset, m Mapping, refCode string) (*types.Dataset, []Diagnostic) {
	var diagnostics []Diagnostic

	// Determine column presence once, from the header set. A row map that
	// happens to lack a key would read as "" anyway, but presence must be
	// decided by the dataset's field set so missing columns are reported
	// exactly once.
	present := make(map[string]bool, len(m))
	for _, pair := range m {
		present[pair.Source] = ds.HasField(pair.Source)
		if !present[pair.Source] {
			diagnostics = append(diagnostics, Diagnostic{
				Kind:    KindMissingField,
				Field:   pair.Source,
				Message: fmt.Sprintf("column %q not found in input file; created empty %q column", pair.Source, pair.Target),
			})
		}
	}

	out := types.New(m.OutputHeaders())
	out.Rows = make([]types.Record, len(ds.Rows))

	for i, row := range ds.Rows {
		mapped := make(types.Record, len(m)+1)
		for _, pair := range m {
			if present[pair.Source] {
				mapped[pair.Target] = row[pair.Source]
			} else {
				mapped[pair.Target] = ""
			}
		}
		mapped[ReferenceCodeField] = refCode
		out.Rows[i] = mapped
	}

	return out, diagnostics
}
