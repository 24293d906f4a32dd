// =============================================================================
// Property CSV Mapper - Deduplicator
// =============================================================================
//
// This module removes rows that represent the same owner at the same mailing
// location. It operates on the Mapper's output, so the key fields default to
// the standardized target column names.
//
// KEY CONSTRUCTION (per record):
//   1. A missing field value reads as the empty string.
//   2. ownerKey   = trim(upper(first)) + " " + trim(upper(last)), trimmed.
//   3. mailingKey = trim(upper(address)) + " " + trim(upper(city)) + " " +
//                   trim(upper(state)), trimmed.
//   4. The composite key is the (ownerKey, mailingKey) pair; two records
//      match iff both components are equal.
//
// Normalization is uppercase plus outer trim ONLY. Internal whitespace
// differences (e.g. double spaces) produce distinct keys. That is a
// documented contract of the duplicate-detection policy, not a bug:
// downstream consumers depend on this exact behavior, so do not "fix" it
// by collapsing whitespace.
//
// Scanning is first-wins and stable: the survivor for each key is the row
// with the lowest original index, and survivors keep their original
// relative order. A record with entirely blank owner and mailing fields
// keys as ("", "") and collapses with every other such record.
//
// =============================================================================

package dedup

import (
	"strings"

	"github.com/skiptracer88/property-csv-mapper/internal/types"
)

// =============================================================================
// KEY FIELDS
// =============================================================================

// KeyFields names the columns that participate in the composite key.
type KeyFields struct {
	FirstName      string
	LastName       string
	MailingAddress string
	MailingCity    string
	MailingState   string
}

// DefaultKeyFields returns the key columns for the standardized DirectSkip
// schema produced by the Mapper.
func DefaultKeyFields() KeyFields {
	return KeyFields{
		FirstName:      "First Name",
		LastName:       "Last Name",
		MailingAddress: "Mailing Address",
		MailingCity:    "Mailing City",
		MailingState:   "Mailing State",
	}
}

// CompositeKey identifies an owner at a mailing location. It is a value
// type so it can be used directly as a map key.
type CompositeKey struct {
	Owner   string
	Mailing string
}

// KeyFor computes the composite key for a single record.
func (k KeyFields) KeyFor(r types.Record) CompositeKey {
	owner := strings.TrimSpace(normalize(r[k.FirstName]) + " " + normalize(r[k.LastName]))
	mailing := strings.TrimSpace(
		normalize(r[k.MailingAddress]) + " " + normalize(r[k.MailingCity]) + " " + normalize(r[k.MailingState]),
	)
	return CompositeKey{Owner: owner, Mailing: mailing}
}

// normalize applies the per-component policy: outer trim plus uppercase.
// Internal whitespace is deliberately left alone.
func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// =============================================================================
// DEDUPLICATION
// =============================================================================

// Deduplicate scans the dataset in row order and keeps only the first record
// for each composite key.
//
// RETURNS:
//   - A new dataset containing the surviving rows in original relative order.
//   - The number of removed rows (input count minus output count).
//
// The input dataset is never modified. Composite keys exist only for the
// duration of the pass.
func Deduplicate(ds *types.Dataset, keys KeyFields) (*types.Dataset, int) {
	out := types.New(ds.Headers)
	out.Rows = make([]types.Record, 0, len(ds.Rows))

	seen := make(map[CompositeKey]struct{}, len(ds.Rows))
	for _, row := range ds.Rows {
		key := keys.KeyFor(row)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out.Rows = append(out.Rows, row)
	}

	return out, len(ds.Rows) - len(out.Rows)
}
