// =============================================================================
// Property CSV Mapper - Column Mapping Module
// =============================================================================
//
// This module defines the column mapping used to project property-search CSV
// exports into the standardized DirectSkip import schema. It provides:
//   - The Mapping type: an explicit, ordered list of (source, target) pairs
//   - The built-in default mapping for property-owner exports
//   - The Validator: checks that all expected source columns are present
//   - The Mapper: performs the projection and appends the reference code
//
// The mapping is ordered configuration, not derived from input. It is passed
// into the Mapper explicitly so alternate mappings can be injected from the
// YAML config or from an XLSX mapping workbook (see xlsx.go).
//
// =============================================================================

package mapping

// ReferenceCodeField is the name of the output column that carries the
// run-supplied property reference code. Every output record gets the same
// literal value in this column.
const ReferenceCodeField = "Custom Field 1"

// =============================================================================
// MAPPING STRUCTURE
// =============================================================================

// FieldPair maps one source column to one target column.
type FieldPair struct {
	// Source is the column header in the uploaded property-search CSV.
	Source string

	// Target is the standardized column header in the output CSV.
	Target string
}

// Mapping is an ordered list of column mappings. Order is significant: the
// output columns appear in declared order, followed by ReferenceCodeField.
type Mapping []FieldPair

// Default returns the built-in property-owner mapping. The ten pairs cover
// the owner name, the owner mailing address, and the property address.
func Default() Mapping {
	return Mapping{
		{Source: "OWNER_1_FIRST", Target: "First Name"},
		{Source: "OWNER_1_LAST", Target: "Last Name"},
		{Source: "OWNER_ADDRESS", Target: "Mailing Address"},
		{Source: "OWNER_CITY", Target: "Mailing City"},
		{Source: "OWNER_STATE", Target: "Mailing State"},
		{Source: "OWNER_ZIP", Target: "Mailing Zip"},
		{Source: "PROP_ADDRESS", Target: "Property Address"},
		{Source: "PROP_CITY", Target: "Property City"},
		{Source: "PROP_STATE", Target: "Property State"},
		{Source: "PROP_ZIP", Target: "Property Zip"},
	}
}

// Sources returns the source column names in declared order.
func (m Mapping) Sources() []string {
	sources := make([]string, len(m))
	for i, pair := range m {
		sources[i] = pair.Source
	}
	return sources
}

// Targets returns the target column names in declared order.
func (m Mapping) Targets() []string {
	targets := make([]string, len(m))
	for i, pair := range m {
		targets[i] = pair.Target
	}
	return targets
}

// OutputHeaders returns the full output field set in column order: the
// mapped target columns followed by the reference-code column.
func (m Mapping) OutputHeaders() []string {
	return append(m.Targets(), ReferenceCodeField)
}
