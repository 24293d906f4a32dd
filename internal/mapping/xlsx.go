// =============================================================================
// Property CSV Mapper - XLSX Mapping Workbook Loader
// =============================================================================
//
// The column mapping originated as an XLSX workbook (MAP.xlsx) maintained by
// the acquisitions team. This loader reads such a workbook so teams can ship
// an updated mapping without a code change.
//
// WORKBOOK STRUCTURE (first sheet):
//
//   | Column A          | Column B         |
//   |-------------------|------------------|
//   | Source Header     | Target Header    |
//   | OWNER_1_FIRST     | First Name       |
//   | OWNER_1_LAST      | Last Name        |
//   | ...               | ...              |
//
// Row 1 is a header row and is skipped. Rows with an empty source or target
// cell are skipped. Pair order follows row order.
//
// =============================================================================

package mapping

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// xlsxDataStartRow is the first data row (0-based) in the mapping workbook.
// Row 0 is the header row.
const xlsxDataStartRow = 1

// LoadXLSX reads an ordered column mapping from the first sheet of an XLSX
// workbook.
//
// RETURNS:
//   - The mapping, in workbook row order.
//   - An error if the workbook cannot be opened or defines no pairs.
func LoadXLSX(path string) (Mapping, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mapping workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("mapping workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	var m Mapping
	for i := xlsxDataStartRow; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 {
			continue
		}

		source := strings.TrimSpace(row[0])
		target := strings.TrimSpace(row[1])
		if source == "" || target == "" {
			continue
		}

		m = append(m, FieldPair{Source: source, Target: target})
	}

	if len(m) == 0 {
		return nil, fmt.Errorf("mapping workbook %s defines no column pairs", path)
	}

	return m, nil
}
