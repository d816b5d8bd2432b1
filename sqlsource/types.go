package sqlsource

import (
	"strings"

	"rowdoc/column"
)

// databaseTypes maps upper-cased database type names (without size or
// precision arguments) to column kinds.
var databaseTypes = map[string]column.Kind{
	// SQL Server
	"TINYINT":          column.KindUint8,
	"SMALLINT":         column.KindInt16,
	"INT":              column.KindInt32,
	"BIGINT":           column.KindInt64,
	"REAL":             column.KindFloat32,
	"FLOAT":            column.KindFloat64,
	"BIT":              column.KindBit,
	"DECIMAL":          column.KindNumeric,
	"NUMERIC":          column.KindNumeric,
	"MONEY":            column.KindNumeric,
	"SMALLMONEY":       column.KindNumeric,
	"CHAR":             column.KindString,
	"VARCHAR":          column.KindString,
	"NCHAR":            column.KindString,
	"NVARCHAR":         column.KindString,
	"TEXT":             column.KindString,
	"NTEXT":            column.KindString,
	"UNIQUEIDENTIFIER": column.KindGUID,
	"BINARY":           column.KindBinary,
	"VARBINARY":        column.KindBinary,
	"IMAGE":            column.KindBinary,
	"XML":              column.KindXML,
	"DATE":             column.KindDate,
	"TIME":             column.KindTime,
	"DATETIME":         column.KindDateTime,
	"SMALLDATETIME":    column.KindSmallDateTime,
	"DATETIME2":        column.KindDateTime2,
	"DATETIMEOFFSET":   column.KindDateTimeOffset,
	"SQL_VARIANT":      column.KindVariant,
	"UDT":              column.KindUDT,
	"GEOGRAPHY":        column.KindUDT,
	"GEOMETRY":         column.KindUDT,
	"HIERARCHYID":      column.KindUDT,

	// SQLite declared types
	"INTEGER":   column.KindInt64,
	"BOOLEAN":   column.KindBit,
	"BOOL":      column.KindBit,
	"DOUBLE":    column.KindFloat64,
	"BLOB":      column.KindBinary,
	"TIMESTAMP": column.KindDateTime2,
	"UUID":      column.KindGUID,
	"CLOB":      column.KindString,
}

// KindOf resolves a database type name such as "nvarchar(50)" or "DECIMAL(10,2)".
func KindOf(databaseType string) (column.Kind, bool) {
	name := strings.ToUpper(strings.TrimSpace(databaseType))
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}

	kind, ok := databaseTypes[name]
	return kind, ok
}
