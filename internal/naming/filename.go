// =============================================================================
// Property CSV Mapper - Output Filename Generator
// =============================================================================
//
// This module derives the deterministic, filesystem-safe name of the output
// CSV from the run date and the reference code:
//
//   20250115_PROJ2025001_DirectSkip_Import.csv
//   20250115_DirectSkip_Import.csv            (empty reference code)
//
// The functions here are pure: the caller supplies the date, and no I/O is
// performed.
//
// =============================================================================

package naming

import (
	"strings"
	"time"
)

// dateStampLayout is the 8-digit year-month-day stamp with no separators.
const dateStampLayout = "20060102"

// filenameSuffix is the fixed tail of every generated filename. DirectSkip
// is the downstream skip-tracing import the output is built for.
const filenameSuffix = "DirectSkip_Import.csv"

// illegalFilenameChars are removed from the reference code entirely; no
// substitution character is inserted in their place.
const illegalFilenameChars = `<>:"/\|?*`

// SanitizeReferenceCode makes a reference code safe for use in a filename.
// Illegal filesystem characters are deleted and spaces become underscores.
func SanitizeReferenceCode(code string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(illegalFilenameChars, r):
			return -1
		case r == ' ':
			return '_'
		default:
			return r
		}
	}, code)
}

// OutputFilename builds the output file name for the given run date and
// reference code. A code that is empty, or becomes empty after
// sanitization, is omitted along with its separator.
func OutputFilename(date time.Time, refCode string) string {
	stamp := date.Format(dateStampLayout)

	sanitized := SanitizeReferenceCode(refCode)
	if sanitized == "" {
		return stamp + "_" + filenameSuffix
	}

	return stamp + "_" + sanitized + "_" + filenameSuffix
}
