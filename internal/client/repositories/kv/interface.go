// Package kv is the persisted key/value store backing the client core.
// Values are opaque bytes; the JSON helpers cover the common case.
package kv

import "context"

type Repository interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// WithinTx runs fn inside a single transaction. Other repositories on
	// the same database join it when handed the ctx passed to fn.
	WithinTx(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
}
