package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

var errCardDeclined = errors.New("card declined")

// openStore mirrors the client schema: a key/value table for the catalog
// and the purchases table written alongside it.
func openStore(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL);
CREATE TABLE purchases (
  seq        INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id    TEXT NOT NULL,
  artwork_id TEXT NOT NULL,
  UNIQUE (user_id, artwork_id)
);`)
	require.NoError(t, err)
	return db
}

func markSold(ctx context.Context, q DBTX) error {
	_, err := q.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES ('artworks', '[{"id":"2","sold":true}]')`)
	return err
}

func recordPurchase(ctx context.Context, fallback DBTX) error {
	_, err := Conn(ctx, fallback).ExecContext(ctx,
		`INSERT INTO purchases (user_id, artwork_id) VALUES ('sample-user-1', '2')`)
	return err
}

func counts(t *testing.T, db *sql.DB) (artworks, purchases int) {
	t.Helper()
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&artworks))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM purchases`).Scan(&purchases))
	return artworks, purchases
}

func TestWithTx_SaleAndPurchaseCommitTogether(t *testing.T) {
	db := openStore(t)

	err := WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		assert.True(t, InTx(ctx))
		if err := markSold(ctx, tx); err != nil {
			return err
		}
		return recordPurchase(ctx, db)
	})
	require.NoError(t, err)

	artworks, purchases := counts(t, db)
	assert.Equal(t, 1, artworks)
	assert.Equal(t, 1, purchases)
}

func TestWithTx_FailedPurchaseUndoesSale(t *testing.T) {
	db := openStore(t)

	err := WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, markSold(ctx, tx))
		require.NoError(t, recordPurchase(ctx, db))
		return errCardDeclined
	})
	require.ErrorIs(t, err, errCardDeclined)

	artworks, purchases := counts(t, db)
	assert.Zero(t, artworks)
	assert.Zero(t, purchases)
}

func TestWithTx_PanicRollsBackAndPropagates(t *testing.T) {
	db := openStore(t)

	require.Panics(t, func() {
		_ = WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
			require.NoError(t, markSold(ctx, tx))
			panic("catalog corrupted")
		})
	})

	artworks, _ := counts(t, db)
	assert.Zero(t, artworks)
}

func TestWithTx_NestedCallJoinsOuter(t *testing.T) {
	db := openStore(t)

	err := WithTx(context.Background(), db, func(ctx context.Context, outer DBTX) error {
		require.NoError(t, WithTx(ctx, db, func(ctx context.Context, inner DBTX) error {
			assert.Same(t, outer, inner)
			return markSold(ctx, inner)
		}))
		return errCardDeclined
	})
	require.ErrorIs(t, err, errCardDeclined)

	artworks, _ := counts(t, db)
	assert.Zero(t, artworks, "inner work must roll back with the outer transaction")
}

func TestConn_WithoutTxReturnsFallback(t *testing.T) {
	db := openStore(t)
	assert.False(t, InTx(context.Background()))
	assert.Same(t, db, Conn(context.Background(), db))
}

func TestWithTx_ClosedDatabase(t *testing.T) {
	db := openStore(t)
	require.NoError(t, db.Close())

	called := false
	err := WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}
