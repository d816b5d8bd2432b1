// Package diagnostic provides structured per-column reports for row conversion.
//
// Key capabilities:
//   - Informational notes for null and empty-text columns
//   - Warnings for lossy renderings (non-finite floats, degraded temporal values)
//   - Errors for columns that abort the row, with key suggestions
package diagnostic
