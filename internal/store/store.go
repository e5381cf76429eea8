package store

import "context"

// Store is a write-through sink for one snapshot. ReplaceSnapshot discards
// whatever a previous run stored.
type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	ReplaceSnapshot(ctx context.Context, s Snapshot) error
	CountToys(ctx context.Context) (int, error)

	RunSQL(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)
}
