// Package repomanager selects and owns the storage backend of the directory
// service.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/artmarket/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Close() error
}

// New returns a Postgres-backed manager for a non-empty dsn and an
// in-memory one otherwise.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == "" {
		return NewInMemoryRepositoryManager(), nil
	}
	return NewPostgresRepositoryManager(ctx, dsn)
}
