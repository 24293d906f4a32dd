// =============================================================================
// Property CSV Mapper - Shared Types
// =============================================================================
//
// This package contains the dataset types shared by the mapping, dedup,
// csvfile, and pipeline packages. Keeping them here avoids import cycles.
//
// =============================================================================

package types

// Record is a single row of a dataset: a mapping from field name to a
// scalar text value. A missing field reads as the empty string.
type Record map[string]string

// Dataset is an ordered sequence of records sharing a common field set.
// Headers carries the field names in column order; Rows preserves the
// original row order of the source file.
type Dataset struct {
	// Headers contains the field names in column order.
	Headers []string

	// Rows contains the data rows, keyed by field name.
	Rows []Record
}

// New creates an empty dataset with the given headers.
func New(headers []string) *Dataset {
	return &Dataset{
		Headers: headers,
		Rows:    []Record{},
	}
}

// HasField reports whether the dataset's field set contains the given name.
func (d *Dataset) HasField(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// RowCount returns the number of data rows.
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}
