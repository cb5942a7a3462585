package tabfmt_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/go-cmp/cmp"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabfmt"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE items (name TEXT, qty INTEGER, price REAL, note TEXT);
		INSERT INTO items VALUES ('apple', 3, 1.25, NULL), ('pear', 10, 0.5, 'ripe');
	`)
	require.NoError(t, err)
	return db
}

func TestReadSQL(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	f, err := tabfmt.ReadSQL(context.Background(), db, "SELECT name, qty, price, note FROM items ORDER BY name")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "qty", "price", "note"}, f.Columns())
	assert.Equal(t, []tabfmt.Kind{tabfmt.KindString, tabfmt.KindInt, tabfmt.KindFloat, tabfmt.KindString}, frameKinds(f))

	want := [][]any{
		{"apple", int64(3), 1.25, nil},
		{"pear", int64(10), 0.5, "ripe"},
	}
	if diff := cmp.Diff(want, frameRows(f)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestReadSQLArgs(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	f, err := tabfmt.ReadSQL(context.Background(), db, "SELECT name FROM items WHERE qty > ?", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, f.NumRows())
	assert.Equal(t, "pear", f.Value(0, 0))
}

func TestReadSQLNoRows(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	f, err := tabfmt.ReadSQL(context.Background(), db, "SELECT name, qty FROM items WHERE qty < 0")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "qty"}, f.Columns())
	assert.Zero(t, f.NumRows())
}

func TestReadSQLBadQuery(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	_, err := tabfmt.ReadSQL(context.Background(), db, "SELECT * FROM missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sql: query")
}

func TestReadSQLCanceled(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tabfmt.ReadSQL(ctx, db, "SELECT name FROM items")
	require.ErrorIs(t, err, context.Canceled)
}
