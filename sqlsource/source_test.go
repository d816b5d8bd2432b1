package sqlsource_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"rowdoc/column"
	"rowdoc/rowconv"
	"rowdoc/sqlsource"
)

const schema = `
CREATE TABLE account (
	id      INTEGER PRIMARY KEY,
	name    TEXT,
	score   DOUBLE,
	active  BOOLEAN,
	amount  DECIMAL(10,2),
	created TIMESTAMP,
	payload BLOB,
	ref     UUID,
	small   INT
);
INSERT INTO account VALUES
	(1, 'Ada', 2.5, 1, '12.50', '2024-03-01 12:30:00', X'00FF10', '6f1c2a9e-3b5d-4e7f-8a90-1b2c3d4e5f60', 7),
	(2, NULL, NULL, NULL, NULL, NULL, NULL, NULL, NULL);
`

func openDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	_, err = db.Exec(schema)
	require.NoError(t, err)

	return db
}

func TestQuery(t *testing.T) {
	db := openDB(t)

	rows, err := sqlsource.Query(context.Background(), db,
		"SELECT id, name, score, active, amount, created, payload, ref, id + 1 AS next FROM account ORDER BY id", nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"id", "name", "score", "active", "amount", "created", "payload", "ref", "next"}, rows[0].Names())

	kinds := make([]column.Kind, 0, rows[0].Len())
	for _, v := range rows[0].Pairs() {
		kinds = append(kinds, v.Kind)
	}
	assert.Equal(t, []column.Kind{
		column.KindInt64, column.KindString, column.KindFloat64, column.KindBit, column.KindNumeric,
		column.KindDateTime2, column.KindBinary, column.KindGUID, column.KindInt64,
	}, kinds)

	doc, err := rowconv.Assemble(rows[0])
	require.NoError(t, err)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"name": "Ada",
		"score": 2.5,
		"active": true,
		"amount": "12.5",
		"created": "2024-03-01T12:30:00",
		"payload": "AP8Q",
		"ref": "6f1c2a9e-3b5d-4e7f-8a90-1b2c3d4e5f60",
		"next": 2
	}`, string(out))

	doc, err = rowconv.Assemble(rows[1])
	require.NoError(t, err)

	out, err = json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 2,
		"name": "",
		"score": null,
		"active": null,
		"amount": null,
		"created": null,
		"payload": null,
		"ref": null,
		"next": 3
	}`, string(out))
}

func TestQueryWithTypes(t *testing.T) {
	db := openDB(t)

	rows, err := sqlsource.Query(context.Background(), db,
		"SELECT created, name, 40 + ? AS answer FROM account WHERE id = ?", []any{2, 1},
		sqlsource.WithTypes(map[string]column.Kind{"created": column.KindDate, "name": column.KindXML}),
		sqlsource.WithTypes(map[string]column.Kind{"answer": column.KindInt16}),
	)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	doc, err := rowconv.Assemble(rows[0])
	require.NoError(t, err)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"created":"2024-03-01","name":"Ada","answer":42}`, string(out))
}

func TestQueryOverflow(t *testing.T) {
	db := openDB(t)

	_, err := db.Exec("UPDATE account SET small = 3000000000 WHERE id = 1")
	require.NoError(t, err)

	_, err = sqlsource.Query(context.Background(), db, "SELECT small FROM account", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "small"`)
	assert.Contains(t, err.Error(), "overflows int32")
}

func TestQuerySmallDateTimeRange(t *testing.T) {
	db := openDB(t)
	types := sqlsource.WithTypes(map[string]column.Kind{"first": column.KindSmallDateTime, "last": column.KindSmallDateTime})

	rows, err := sqlsource.Query(context.Background(), db,
		"SELECT '1900-01-01 00:00:00' AS first, '2079-06-06 23:59:00' AS last", nil, types)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	doc, err := rowconv.Assemble(rows[0])
	require.NoError(t, err)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"first":"1900-01-01T00:00:00","last":"2079-06-06T23:59:00"}`, string(out))

	for _, query := range []string{
		"SELECT '2100-01-01 12:00:00' AS last",
		"SELECT '1899-12-31 12:00:00' AS first",
	} {
		_, err = sqlsource.Query(context.Background(), db, query, nil, types)
		require.ErrorIs(t, err, column.ErrOutOfRange, query)
	}
}

func TestQueryError(t *testing.T) {
	db := openDB(t)

	_, err := sqlsource.Query(context.Background(), db, "SELECT nope FROM account", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run query")
}

func TestStream(t *testing.T) {
	db := openDB(t)

	var ids []int64
	for row, err := range sqlsource.Stream(context.Background(), db, "SELECT id FROM account ORDER BY id", nil) {
		require.NoError(t, err)

		_, v := row.Column(0)
		ids = append(ids, v.I64)
	}
	assert.Equal(t, []int64{1, 2}, ids)

	count := 0
	for range sqlsource.Stream(context.Background(), db, "SELECT id FROM account", nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)

	for _, err := range sqlsource.Stream(context.Background(), db, "SELECT nope FROM account", nil) {
		require.Error(t, err)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		kind column.Kind
		ok   bool
	}{
		{"int", column.KindInt32, true},
		{"nvarchar(50)", column.KindString, true},
		{"DECIMAL(10, 2)", column.KindNumeric, true},
		{" datetimeoffset(7) ", column.KindDateTimeOffset, true},
		{"uniqueidentifier", column.KindGUID, true},
		{"sql_variant", column.KindVariant, true},
		{"geography", column.KindUDT, true},
		{"INTEGER", column.KindInt64, true},
		{"", 0, false},
		{"JSONB", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := sqlsource.KindOf(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}
