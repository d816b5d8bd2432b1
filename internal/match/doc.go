// Package match resolves document keys against record field names.
//
// Key functions:
//   - NormalizeIdent: folds quoting, case and separators out of an identifier
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the nearest candidate name for error messages
package match
