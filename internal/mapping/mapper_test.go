package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiptracer88/property-csv-mapper/internal/types"
)

// sampleDataset builds a dataset with the full default source field set.
func sampleDataset(rows int) *types.Dataset {
	ds := types.New(Default().Sources())
	for i := 0; i < rows; i++ {
		ds.Rows = append(ds.Rows, types.Record{
			"OWNER_1_FIRST": "John",
			"OWNER_1_LAST":  "Smith",
			"OWNER_ADDRESS": "123 Main St",
			"OWNER_CITY":    "Fort Worth",
			"OWNER_STATE":   "TX",
			"OWNER_ZIP":     "76101",
			"PROP_ADDRESS":  "500 Oak Ave",
			"PROP_CITY":     "Arlington",
			"PROP_STATE":    "TX",
			"PROP_ZIP":      "76010",
		})
	}
	return ds
}

func TestApplyFieldSetAndOrder(t *testing.T) {
	ds := sampleDataset(3)

	out, diags := Apply(ds, Default(), "PROJ-2025-001")

	assert.Empty(t, diags)
	require.Len(t, out.Headers, len(Default())+1)

	// Output columns follow mapping-declared order, reference code last.
	want := []string{
		"First Name", "Last Name",
		"Mailing Address", "Mailing City", "Mailing State", "Mailing Zip",
		"Property Address", "Property City", "Property State", "Property Zip",
		ReferenceCodeField,
	}
	assert.Equal(t, want, out.Headers)
	assert.Equal(t, ds.RowCount(), out.RowCount())
}

func TestApplyCopiesValuesVerbatim(t *testing.T) {
	ds := sampleDataset(1)
	// Values with odd casing and padding must survive untouched.
	ds.Rows[0]["OWNER_1_FIRST"] = "  jOhN "
	ds.Rows[0]["OWNER_ADDRESS"] = "123  MAIN   st"

	out, _ := Apply(ds, Default(), "X")

	assert.Equal(t, "  jOhN ", out.Rows[0]["First Name"])
	assert.Equal(t, "123  MAIN   st", out.Rows[0]["Mailing Address"])
}

func TestApplyMissingSourceColumn(t *testing.T) {
	// Drop two source columns from the input.
	headers := []string{
		"OWNER_1_FIRST", "OWNER_1_LAST", "OWNER_ADDRESS", "OWNER_CITY",
		"OWNER_STATE", "OWNER_ZIP", "PROP_ADDRESS", "PROP_CITY",
	}
	ds := types.New(headers)
	ds.Rows = append(ds.Rows, types.Record{
		"OWNER_1_FIRST": "Jane",
		"OWNER_1_LAST":  "Doe",
		"OWNER_ADDRESS": "9 Elm St",
		"OWNER_CITY":    "Dallas",
		"OWNER_STATE":   "TX",
		"OWNER_ZIP":     "75201",
		"PROP_ADDRESS":  "9 Elm St",
		"PROP_CITY":     "Dallas",
	})

	out, diags := Apply(ds, Default(), "CODE-1")

	// The run continues: target columns exist but are empty.
	assert.Equal(t, "", out.Rows[0]["Property State"])
	assert.Equal(t, "", out.Rows[0]["Property Zip"])

	// One diagnostic per missing source column, in mapping order.
	require.Len(t, diags, 2)
	assert.Equal(t, KindMissingField, diags[0].Kind)
	assert.Equal(t, "PROP_STATE", diags[0].Field)
	assert.Equal(t, "PROP_ZIP", diags[1].Field)

	// Row count is still preserved.
	assert.Equal(t, 1, out.RowCount())
}

func TestApplyReferenceCode(t *testing.T) {
	t.Run("every record carries the code", func(t *testing.T) {
		ds := sampleDataset(4)
		out, _ := Apply(ds, Default(), "PROJ:2025/001")

		for _, row := range out.Rows {
			assert.Equal(t, "PROJ:2025/001", row[ReferenceCodeField])
		}
	})

	t.Run("empty code passes through unchanged", func(t *testing.T) {
		// The non-empty precondition is the caller's job; the Mapper
		// applies whatever it is given.
		ds := sampleDataset(2)
		out, _ := Apply(ds, Default(), "")

		for _, row := range out.Rows {
			assert.Equal(t, "", row[ReferenceCodeField])
		}
	})
}

func TestApplyAlternateMapping(t *testing.T) {
	alt := Mapping{
		{Source: "a", Target: "Alpha"},
		{Source: "b", Target: "Beta"},
	}

	ds := types.New([]string{"a", "b", "c"})
	ds.Rows = append(ds.Rows, types.Record{"a": "1", "b": "2", "c": "3"})

	out, diags := Apply(ds, alt, "R")

	assert.Empty(t, diags)
	assert.Equal(t, []string{"Alpha", "Beta", ReferenceCodeField}, out.Headers)
	assert.Equal(t, "1", out.Rows[0]["Alpha"])
	assert.Equal(t, "2", out.Rows[0]["Beta"])

	// Unmapped input columns do not leak into the output.
	_, leaked := out.Rows[0]["c"]
	assert.False(t, leaked)
}

func TestApplyEmptyDataset(t *testing.T) {
	ds := types.New(Default().Sources())

	out, diags := Apply(ds, Default(), "CODE")

	assert.Empty(t, diags)
	assert.Equal(t, 0, out.RowCount())
	assert.Len(t, out.Headers, len(Default())+1)
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	ds := sampleDataset(1)

	_, _ = Apply(ds, Default(), "CODE")

	assert.Equal(t, Default().Sources(), ds.Headers)
	assert.Equal(t, "John", ds.Rows[0]["OWNER_1_FIRST"])
	_, tagged := ds.Rows[0][ReferenceCodeField]
	assert.False(t, tagged)
}
