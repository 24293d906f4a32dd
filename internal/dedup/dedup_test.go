package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiptracer88/property-csv-mapper/internal/types"
)

var testHeaders = []string{
	"First Name", "Last Name",
	"Mailing Address", "Mailing City", "Mailing State",
	"Property Address",
}

// record builds a test record; extra holds non-key fields.
func record(first, last, addr, city, state string, extra ...string) types.Record {
	r := types.Record{
		"First Name":      first,
		"Last Name":       last,
		"Mailing Address": addr,
		"Mailing City":    city,
		"Mailing State":   state,
	}
	if len(extra) > 0 {
		r["Property Address"] = extra[0]
	}
	return r
}

func dataset(rows ...types.Record) *types.Dataset {
	ds := types.New(testHeaders)
	ds.Rows = rows
	return ds
}

func TestKeyForNormalization(t *testing.T) {
	keys := DefaultKeyFields()

	t.Run("case and outer whitespace are normalized", func(t *testing.T) {
		a := keys.KeyFor(record("  john ", "Smith", "123 Main St ", "Fort Worth", "tx"))
		b := keys.KeyFor(record("JOHN", " smith", "123 MAIN ST", " fort worth", "TX "))
		assert.Equal(t, a, b)
	})

	t.Run("internal whitespace is NOT normalized", func(t *testing.T) {
		a := keys.KeyFor(record("john", "smith", "123 Main St", "Fort Worth", "TX"))
		b := keys.KeyFor(record("JOHN  ", " SMITH", "123 Main St", "Fort  Worth", "TX"))
		assert.NotEqual(t, a, b)
	})

	t.Run("missing fields read as empty", func(t *testing.T) {
		key := keys.KeyFor(types.Record{})
		assert.Equal(t, CompositeKey{}, key)
	})

	t.Run("owner and mailing compared as a pair", func(t *testing.T) {
		// Same owner at a different mailing address is not a duplicate.
		a := keys.KeyFor(record("John", "Smith", "123 Main St", "Fort Worth", "TX"))
		b := keys.KeyFor(record("John", "Smith", "9 Elm St", "Fort Worth", "TX"))
		assert.Equal(t, a.Owner, b.Owner)
		assert.NotEqual(t, a, b)
	})
}

func TestDeduplicateFirstWins(t *testing.T) {
	// R1 (index 0) and R2 (index 5) share a key; R1 must survive even
	// though other field content differs.
	r1 := record("John", "Smith", "123 Main St", "Fort Worth", "TX", "original property")
	fillers := []types.Record{
		record("Ann", "Lee", "1 A St", "Dallas", "TX"),
		record("Bob", "Ray", "2 B St", "Dallas", "TX"),
		record("Cam", "Fox", "3 C St", "Dallas", "TX"),
		record("Dee", "Kim", "4 D St", "Dallas", "TX"),
	}
	r2 := record("JOHN", "SMITH", "123 MAIN ST", "FORT WORTH", "tx", "later property")

	ds := dataset(append(append([]types.Record{r1}, fillers...), r2)...)

	out, removed := Deduplicate(ds, DefaultKeyFields())

	assert.Equal(t, 1, removed)
	require.Equal(t, 5, out.RowCount())
	assert.Equal(t, "original property", out.Rows[0]["Property Address"])

	// Survivors keep their original relative order.
	assert.Equal(t, "Ann", out.Rows[1]["First Name"])
	assert.Equal(t, "Dee", out.Rows[4]["First Name"])
}

func TestDeduplicateIdempotent(t *testing.T) {
	ds := dataset(
		record("John", "Smith", "123 Main St", "Fort Worth", "TX"),
		record("john", "smith", "123 main st", "fort worth", "tx"),
		record("Jane", "Doe", "9 Elm St", "Dallas", "TX"),
	)

	once, removed := Deduplicate(ds, DefaultKeyFields())
	assert.Equal(t, 1, removed)

	twice, removedAgain := Deduplicate(once, DefaultKeyFields())
	assert.Equal(t, 0, removedAgain)
	assert.Equal(t, once.Rows, twice.Rows)
}

func TestDeduplicateInternalWhitespaceLimitation(t *testing.T) {
	// "john smith" vs "JOHN   SMITH" differ by internal whitespace only.
	// The documented policy keeps BOTH records.
	ds := dataset(
		record("john", "smith", "123 Main St", "Fort Worth", "TX"),
		record("JOHN  ", " SMITH", "123 Main St", "Fort Worth", "TX"),
	)
	// Force the internal-whitespace difference into the owner key.
	ds.Rows[1]["First Name"] = "JOHN "
	ds.Rows[1]["Last Name"] = "  SMITH"
	ds.Rows[1]["Mailing Address"] = "123  Main St"

	out, removed := Deduplicate(ds, DefaultKeyFields())

	assert.Equal(t, 0, removed)
	assert.Equal(t, 2, out.RowCount())
}

func TestDeduplicateBlankRowsCollapse(t *testing.T) {
	// Fully blank owner+mailing rows all key as ("", "") and collapse
	// into the first one.
	ds := dataset(
		record("", "", "", "", ""),
		record("Jane", "Doe", "9 Elm St", "Dallas", "TX"),
		record("", "", "", "", ""),
		record("", "", "", "", ""),
	)

	out, removed := Deduplicate(ds, DefaultKeyFields())

	assert.Equal(t, 2, removed)
	require.Equal(t, 2, out.RowCount())
	assert.Equal(t, "", out.Rows[0]["First Name"])
	assert.Equal(t, "Jane", out.Rows[1]["First Name"])
}

func TestDeduplicateEndToEndScenario(t *testing.T) {
	// Four records; records 2 and 4 share normalized owner+mailing values,
	// records 1 and 3 are unique. Record 2 (not 4) must be retained.
	ds := dataset(
		record("Ann", "Lee", "1 A St", "Dallas", "TX"),
		record("John", "Smith", "123 Main St", "Fort Worth", "TX", "kept"),
		record("Jane", "Doe", "9 Elm St", "Dallas", "TX"),
		record(" JOHN ", "smith ", " 123 main st", "FORT WORTH", "Tx", "dropped"),
	)

	out, removed := Deduplicate(ds, DefaultKeyFields())

	assert.Equal(t, 1, removed)
	require.Equal(t, 3, out.RowCount())
	assert.Equal(t, "Ann", out.Rows[0]["First Name"])
	assert.Equal(t, "kept", out.Rows[1]["Property Address"])
	assert.Equal(t, "Jane", out.Rows[2]["First Name"])
}

func TestDeduplicateEmptyDataset(t *testing.T) {
	out, removed := Deduplicate(dataset(), DefaultKeyFields())

	assert.Equal(t, 0, removed)
	assert.Equal(t, 0, out.RowCount())
}
