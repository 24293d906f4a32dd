// =============================================================================
// Property CSV Mapper - CSV Writer
// =============================================================================
//
// This module renders a dataset as UTF-8 comma-separated text for the
// download boundary (content type text/csv). The header row carries the
// dataset's field names in column order; data rows follow in dataset order.
//
// =============================================================================

package csvfile

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/skiptracer88/property-csv-mapper/internal/types"
)

// Write renders the dataset as CSV to the given writer.
func Write(w io.Writer, ds *types.Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ds.Headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	cells := make([]string, len(ds.Headers))
	for i, row := range ds.Rows {
		for j, header := range ds.Headers {
			cells[j] = row[header]
		}
		if err := cw.Write(cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Generate renders the dataset as CSV and returns the bytes.
func Generate(ds *types.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, ds); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile renders the dataset and writes it to the given path.
func WriteFile(path string, ds *types.Dataset) error {
	data, err := Generate(ds)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
