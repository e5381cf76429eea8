package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"toytracker/internal/store"
)

func (c *Client) ReplaceSnapshot(ctx context.Context, s store.Snapshot) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"toy_zones", "toys", "snapshots"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	toyStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO toys (seq, item_id, name, owned, tier_id, locations, wowhead_url, tomtom)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing toy insert: %w", err)
	}
	defer toyStmt.Close()

	for _, t := range s.Toys {
		_, err := toyStmt.ExecContext(ctx,
			t.Seq,
			t.ItemID,
			t.Name,
			nullString(t.Owned),
			nullInt(t.TierID),
			t.Locations,
			t.WowheadURL,
			t.Commands,
		)
		if err != nil {
			return fmt.Errorf("inserting toy %d: %w", t.ItemID, err)
		}
	}

	zoneStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO toy_zones (zone, item_id, location) VALUES (?, ?, ?)
	ON CONFLICT (zone, item_id) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("preparing zone insert: %w", err)
	}
	defer zoneStmt.Close()

	for _, z := range s.Zones {
		if _, err := zoneStmt.ExecContext(ctx, z.Zone, z.ItemID, z.Location); err != nil {
			return fmt.Errorf("inserting zone %s for %d: %w", z.Zone, z.ItemID, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO snapshots (id, source_file, source_hash, toy_count, synced_at)
	VALUES (1, ?, ?, ?, datetime('now'))
	`, s.SourceFile, s.SourceHash, len(s.Toys))
	if err != nil {
		return fmt.Errorf("recording snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

func (c *Client) CountToys(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM toys`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting toys: %w", err)
	}
	return n, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
