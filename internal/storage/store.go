// Package storage provides the string-keyed slot store that backs all
// persisted demo state. Each slot holds a single JSON document; the store is
// written by exactly one process at a time, so mutations are plain
// read-modify-write cycles without cross-slot transactions.
package storage

import (
	"context"
	"strings"
)

// Well-known slot keys.
const (
	KeyUsers      = "users"
	KeySession    = "session"
	KeyResetToken = "reset_token"
)

// Store is a durable string-keyed slot store.
//
// Get returns (nil, nil) when the key is absent; callers distinguish
// "no value" from real failures that way. Delete of a missing key is not
// an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
	Close() error
}

// Open constructs a Store for the given DSN. Postgres URLs select the
// Postgres backend; anything else is treated as a SQLite file path.
func Open(ctx context.Context, dsn string) (Store, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return OpenPostgres(ctx, dsn)
	}
	return OpenSQLite(ctx, dsn)
}
