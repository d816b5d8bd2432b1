// Package rowconv converts result-set rows into typed records.
//
// A row is first assembled into an ordered document, one entry per column
// (Assemble), then decoded with a field table (Convert). Failures carry the
// stage and, when known, the column that caused them:
//
//	rec, err := rowconv.Convert(row, dec)
//	var re *rowconv.RowError
//	if errors.As(err, &re) && re.Stage == rowconv.StageNormalize {
//		// column re.Column has an unsupported kind
//	}
//
// Inspect reports what happened to every column without decoding, which is
// how degraded temporal values and NULL renderings are made visible.
package rowconv
