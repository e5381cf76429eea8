package main

import (
	"context"
	"fmt"
	"strings"

	"toytracker/internal/store"
	"toytracker/internal/store/postgres"
	"toytracker/internal/store/sqlite"
)

// openStore picks the driver from the DSN scheme.
func openStore(ctx context.Context, dsn string) (store.Store, error) {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.New(ctx, dsn)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.New(ctx, dsn)
	case dsn == "":
		return nil, fmt.Errorf("database.dsn is not configured")
	default:
		return nil, fmt.Errorf("unsupported database dsn %q: want sqlite:// or postgres://", dsn)
	}
}
