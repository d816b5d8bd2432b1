// Package sqlsource reads database/sql result sets as column rows.
//
// Column kinds come from ColumnType.DatabaseTypeName, understood for SQL Server
// and SQLite type names. Columns the driver cannot describe (SQLite expressions)
// take their kind from each scanned value; WithTypes pins a kind per column.
//
// The caller owns the *sql.DB and its lifetime; sqlsource only runs queries
// through a Querier.
package sqlsource
