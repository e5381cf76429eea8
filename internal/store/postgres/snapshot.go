package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"toytracker/internal/store"
)

func (c *Client) ReplaceSnapshot(ctx context.Context, s store.Snapshot) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE toy_zones, toys, snapshots`); err != nil {
		return fmt.Errorf("clearing snapshot tables: %w", err)
	}

	toyRows := make([][]any, 0, len(s.Toys))
	for _, t := range s.Toys {
		toyRows = append(toyRows, []any{
			int32(t.Seq), int32(t.ItemID), t.Name, ownedValue(t.Owned), tierValue(t.TierID),
			t.Locations, t.WowheadURL, t.Commands,
		})
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"toys"},
		[]string{"seq", "item_id", "name", "owned", "tier_id", "locations", "wowhead_url", "tomtom"},
		pgx.CopyFromRows(toyRows),
	)
	if err != nil {
		return fmt.Errorf("copying toys: %w", err)
	}

	batch := &pgx.Batch{}
	for _, z := range s.Zones {
		batch.Queue(`
INSERT INTO toy_zones (zone, item_id, location) VALUES ($1, $2, $3)
ON CONFLICT (zone, item_id) DO NOTHING
`, z.Zone, z.ItemID, z.Location)
	}
	batch.Queue(`
INSERT INTO snapshots (id, source_file, source_hash, toy_count, synced_at)
VALUES (1, $1, $2, $3, now())
`, s.SourceFile, s.SourceHash, len(s.Toys))

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("writing zones: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

func (c *Client) CountToys(ctx context.Context) (int, error) {
	var n int
	if err := c.pool.QueryRow(ctx, `SELECT COUNT(*) FROM toys`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting toys: %w", err)
	}
	return n, nil
}

func ownedValue(owned string) any {
	switch owned {
	case "true":
		return true
	case "false":
		return false
	default:
		return nil
	}
}

func tierValue(tier *int) any {
	if tier == nil {
		return nil
	}
	return int32(*tier)
}
