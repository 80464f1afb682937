package frame

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "seqs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	f := sample(t)

	require.NoError(t, WriteSQL(ctx, db, "reads", f))

	back, err := FromSQL(ctx, db, `SELECT id, sequence FROM reads ORDER BY id`)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "sequence"}, back.Columns())
	assert.Equal(t, []string{"s1", "ACGT"}, back.Row(0))
	assert.Equal(t, []string{"s2", ""}, back.Row(1))
}

func TestFromSQLRendersValues(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	_, err := db.Exec(`CREATE TABLE t (id TEXT, n INTEGER, x REAL, note TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO t VALUES ('a', 3, 1.5, NULL)`)
	require.NoError(t, err)

	f, err := FromSQL(ctx, db, `SELECT id, n, x, note FROM t WHERE id = ?`, "a")
	require.NoError(t, err)
	require.Equal(t, 1, f.Len())
	assert.Equal(t, []string{"a", "3", "1.5", ""}, f.Row(0))

	_, err = FromSQL(ctx, db, `SELECT * FROM missing`)
	assert.Error(t, err)
}

func TestWriteSQLRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE "reads"`).WillReturnResult(sqlmock.NewResult(0, 0))
	prep := mock.ExpectPrepare(`INSERT INTO "reads" VALUES \(\?, \?\)`)
	prep.ExpectExec().WithArgs("s1", "ACGT").WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().WithArgs("s2", "").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = WriteSQL(context.Background(), db, "reads", sample(t))
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "insert row 2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWriteSQLCommits(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE "we""ird" \("id" TEXT\)`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectPrepare(`INSERT INTO`).ExpectExec().WithArgs("x").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	f, _ := New("id")
	require.NoError(t, f.Append("x"))
	require.NoError(t, WriteSQL(context.Background(), db, `we"ird`, f))
	assert.NoError(t, mock.ExpectationsWereMet())

	empty, _ := New()
	assert.Error(t, WriteSQL(context.Background(), db, "t", empty))
}
