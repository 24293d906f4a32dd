// =============================================================================
// Property CSV Mapper - CSV Reader
// =============================================================================
//
// This module parses the uploaded property-search CSV into a dataset with
// named fields. It handles the common export quirks:
//   - Different delimiters (comma, pipe, tab, semicolon)
//   - Multi-row headers (merged column-wise)
//   - Rows with fewer cells than headers (padded with empty strings)
//   - Lazy quoting
//
// Cell values are passed through VERBATIM: no trimming, no case changes.
// The Mapper copies values untouched and the Deduplicator is the single
// place where normalization happens, so this reader must not pre-clean
// the data.
//
// =============================================================================

package csvfile

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/skiptracer88/property-csv-mapper/internal/config"
	"github.com/skiptracer88/property-csv-mapper/internal/types"
)

// Parse reads a CSV file and returns the parsed dataset.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV parsing settings from the configuration.
//
// RETURNS:
//   - The dataset, with one record per data row in file order.
//   - An error if the file cannot be read, is empty, or is not parseable
//     as delimited text.
func Parse(filePath string, settings config.CSVSettings) (*types.Dataset, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader, settings)

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers, err := extractHeaders(allRows, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to extract headers: %w", err)
	}

	ds := types.New(headers)
	ds.Rows = extractDataRows(allRows, headers, settings)

	return ds, nil
}

// configureReader applies the parsing settings to the CSV reader.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Exports frequently have ragged rows; short rows are padded later.
	reader.FieldsPerRecord = -1

	// Tolerate quotes that don't follow strict CSV rules.
	reader.LazyQuotes = true
}

// extractHeaders extracts and merges the header rows.
//
// Multi-row headers are merged column-wise: the non-empty cells of each
// column are joined with a single space.
//
//	Row 1: "Owner", "",      "Property", ""
//	Row 2: "First", "Last",  "Address",  "City"
//	Result: "Owner First", "Last", "Property Address", "City"
func extractHeaders(allRows [][]string, settings config.CSVSettings) ([]string, error) {
	if settings.HeaderRows <= 0 {
		return nil, fmt.Errorf("header_rows must be at least 1")
	}

	if len(allRows) < settings.HeaderRows {
		return nil, fmt.Errorf("file has fewer rows than header_rows setting")
	}

	if settings.HeaderRows == 1 {
		return cleanHeaders(allRows[0]), nil
	}

	maxCols := 0
	for i := 0; i < settings.HeaderRows; i++ {
		if len(allRows[i]) > maxCols {
			maxCols = len(allRows[i])
		}
	}

	headers := make([]string, maxCols)
	for col := 0; col < maxCols; col++ {
		var parts []string

		for row := 0; row < settings.HeaderRows; row++ {
			if col < len(allRows[row]) {
				value := strings.TrimSpace(allRows[row][col])
				if value != "" {
					parts = append(parts, value)
				}
			}
		}

		headers[col] = strings.Join(parts, " ")
	}

	return cleanHeaders(headers), nil
}

// cleanHeaders trims header names and gives empty headers a positional
// placeholder. Only field NAMES are cleaned here; data values are never
// touched.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))

	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}

	return cleaned
}

// extractDataRows converts the raw data rows to records. Rows are kept
// verbatim, including fully blank ones: collapsing blank rows is the
// Deduplicator's job, and the Mapper's row-count guarantee depends on
// nothing being dropped here.
func extractDataRows(allRows [][]string, headers []string, settings config.CSVSettings) []types.Record {
	startIndex := settings.DataStartRow - 1
	if startIndex < 0 {
		startIndex = settings.HeaderRows
	}

	if startIndex >= len(allRows) {
		return []types.Record{}
	}

	rows := make([]types.Record, 0, len(allRows)-startIndex)

	for _, raw := range allRows[startIndex:] {
		record := make(types.Record, len(headers))

		for colIndex, header := range headers {
			if colIndex < len(raw) {
				record[header] = raw[colIndex]
			} else {
				record[header] = ""
			}
		}

		rows = append(rows, record)
	}

	return rows
}
