package postgres

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
CREATE TABLE IF NOT EXISTS snapshots (
    id          INTEGER PRIMARY KEY CHECK (id = 1),
    source_file TEXT NOT NULL,
    source_hash TEXT NOT NULL,
    toy_count   INTEGER NOT NULL,
    synced_at   TIMESTAMPTZ DEFAULT now()
);

CREATE TABLE IF NOT EXISTS toys (
    seq         INTEGER PRIMARY KEY,
    item_id     INTEGER NOT NULL,
    name        TEXT NOT NULL,
    owned       BOOLEAN,
    tier_id     INTEGER,
    locations   TEXT DEFAULT '',
    wowhead_url TEXT NOT NULL,
    tomtom      TEXT DEFAULT ''
);

CREATE TABLE IF NOT EXISTS toy_zones (
    zone     TEXT NOT NULL,
    item_id  INTEGER NOT NULL,
    location TEXT NOT NULL,
    CONSTRAINT uq_toy_zone UNIQUE (zone, item_id)
);

CREATE INDEX IF NOT EXISTS idx_toys_item ON toys (item_id);
CREATE INDEX IF NOT EXISTS idx_toys_owned ON toys (owned);
CREATE INDEX IF NOT EXISTS idx_toy_zones_zone ON toy_zones (lower(zone));
`
	if _, err := c.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}
