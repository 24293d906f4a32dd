package mapping

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook writes a two-column mapping workbook for tests.
func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, name, cell))
		}
	}

	path := filepath.Join(t.TempDir(), "MAP.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"Source Header", "Target Header"},
		{"OWNER_1_FIRST", "First Name"},
		{"OWNER_1_LAST", "Last Name"},
		{"", ""}, // blank rows are skipped
		{"PROP_ZIP", "Property Zip"},
	})

	m, err := LoadXLSX(path)
	require.NoError(t, err)

	assert.Equal(t, Mapping{
		{Source: "OWNER_1_FIRST", Target: "First Name"},
		{Source: "OWNER_1_LAST", Target: "Last Name"},
		{Source: "PROP_ZIP", Target: "Property Zip"},
	}, m)
}

func TestLoadXLSXEmptyWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"Source Header", "Target Header"},
	})

	_, err := LoadXLSX(path)
	assert.Error(t, err)
}

func TestLoadXLSXMissingFile(t *testing.T) {
	_, err := LoadXLSX(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
