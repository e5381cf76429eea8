package sqlite

import (
	"context"
	"fmt"
	"strings"
)

const ddl = `
CREATE TABLE IF NOT EXISTS snapshots (
	id          INTEGER PRIMARY KEY CHECK (id = 1),
	source_file TEXT NOT NULL,
	source_hash TEXT NOT NULL,
	toy_count   INTEGER NOT NULL,
	synced_at   TEXT DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS toys (
	seq         INTEGER PRIMARY KEY,
	item_id     INTEGER NOT NULL,
	name        TEXT NOT NULL,
	owned       TEXT,
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
CREATE INDEX IF NOT EXISTS idx_toy_zones_zone ON toy_zones (zone COLLATE NOCASE);
`

func (c *Client) EnsureSchema(ctx context.Context) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(ddl) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}
	return nil
}

func splitStatements(ddl string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(ddl, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(stripped, ";") {
			statements = append(statements, current.String())
			current.Reset()
		}
	}

	if strings.TrimSpace(current.String()) != "" {
		statements = append(statements, current.String())
	}
	return statements
}
