package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/artmarket/internal/client/migrations"
	"github.com/dmitrijs2005/artmarket/internal/client/repositories/kv"
	"github.com/dmitrijs2005/artmarket/internal/client/repositories/purchases"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Repositories bundles the local stores the services depend on.
type Repositories struct {
	KV        kv.Repository
	Purchases purchases.Repository
}

func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		KV:        kv.NewSQLiteRepository(db),
		Purchases: purchases.NewSQLiteRepository(db),
	}
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite database at dsn and brings its schema up to
// date. A single connection is used so that ":memory:" behaves like a file.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
