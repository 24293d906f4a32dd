// =============================================================================
// Property CSV Mapper - Input Validation
// =============================================================================
//
// The validator checks that every source column referenced by the mapping is
// present in the input dataset's field set. It is a pure check: the caller
// decides whether a failed validation aborts the run or proceeds with
// empty-column substitution (see the --strict flag on the process command).
//
// A dataset with zero data rows is still validated against its header set;
// an empty dataset is not itself an error condition.
//
// =============================================================================

package mapping

import (
	"github.com/skiptracer88/property-csv-mapper/internal/types"
)

// ValidationResult reports which expected source columns are missing.
type ValidationResult struct {
	// Valid is true when every source column in the mapping was found.
	Valid bool

	// MissingFields lists the absent source columns in mapping order.
	MissingFields []string
}

// Validate checks the dataset's field set against the mapping's source
// columns. It inspects headers only; row values are never touched.
func Validate(ds *types.Dataset, m Mapping) ValidationResult {
	result := ValidationResult{Valid: true}

	for _, pair := range m {
		if !ds.HasField(pair.Source) {
			result.Valid = false
			result.MissingFields = append(result.MissingFields, pair.Source)
		}
	}

	return result
}
