package repomanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/avarich/internal/server/repositories/users"
)

// RepositoryManager owns a storage connection and vends the repositories
// built on top of it.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Close(ctx context.Context) error
}

// Storage kinds recognised by NewRepositoryManager.
const (
	KindPostgres = "postgres"
	KindMongo    = "mongodb"
	KindMemory   = "memory"
)

// storageKind maps a DSN to the backend that serves it. An empty DSN selects
// the in-memory store.
func storageKind(dsn string) (string, error) {
	if dsn == "" {
		return KindMemory, nil
	}
	scheme, _, ok := strings.Cut(dsn, "://")
	if !ok {
		return "", fmt.Errorf("unsupported database dsn: missing scheme")
	}
	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return KindPostgres, nil
	case "mongodb", "mongodb+srv":
		return KindMongo, nil
	case "memory":
		return KindMemory, nil
	}
	return "", fmt.Errorf("unsupported database scheme %q", scheme)
}

// NewRepositoryManager opens the store addressed by dsn.
func NewRepositoryManager(ctx context.Context, dsn string) (RepositoryManager, error) {
	kind, err := storageKind(dsn)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindPostgres:
		return NewPostgresRepositoryManager(dsn)
	case KindMongo:
		return NewMongoRepositoryManager(ctx, dsn)
	default:
		return NewInMemoryRepositoryManager(), nil
	}
}
