package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toytracker/internal/store"
	"toytracker/internal/toy"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()
	client, err := New(ctx, "sqlite://"+filepath.Join(t.TempDir(), "toys.db"))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close(ctx) })
	require.NoError(t, client.EnsureSchema(ctx))
	return client
}

func testSnapshot() store.Snapshot {
	return store.NewSnapshot("ATT_ToyTracker.lua", "abc123", []toy.Record{
		{ItemID: 1, Name: "Orb", Owned: toy.OwnedTrue, TierID: toy.OptionalInt{Value: 2, Valid: true}},
		{ItemID: 2, Name: "Horn", Owned: toy.OwnedFalse, Locations: "12.3, 45.6 — Valdrakken (2112); Dornogal (2339)"},
		{ItemID: 2, Name: "Horn", Owned: toy.OwnedFalse, Locations: "Dornogal (2339)"},
		{ItemID: 3, Name: "Ghost"},
	})
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	client := newTestClient(t)
	require.NoError(t, client.EnsureSchema(context.Background()))
}

func TestReplaceSnapshot(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	require.NoError(t, client.ReplaceSnapshot(ctx, testSnapshot()))

	n, err := client.CountToys(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	rows, err := client.RunSQL(ctx, `SELECT zone, COUNT(*) AS n FROM toy_zones GROUP BY zone ORDER BY zone`, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Dornogal", rows[0]["zone"])
	assert.EqualValues(t, 1, rows[0]["n"])
	assert.Equal(t, "Valdrakken", rows[1]["zone"])

	rows, err = client.RunSQL(ctx, `SELECT owned, tier_id FROM toys WHERE item_id = ?`, map[string]any{"1": 3})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0]["owned"])
	assert.Nil(t, rows[0]["tier_id"])
}

func TestReplaceSnapshot_Overwrites(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	require.NoError(t, client.ReplaceSnapshot(ctx, testSnapshot()))
	require.NoError(t, client.ReplaceSnapshot(ctx, store.NewSnapshot("other.lua", "def", []toy.Record{
		{ItemID: 9, Name: "Only", Owned: toy.OwnedFalse},
	})))

	n, err := client.CountToys(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rows, err := client.RunSQL(ctx, `SELECT source_file, source_hash, toy_count FROM snapshots`, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "other.lua", rows[0]["source_file"])
	assert.EqualValues(t, 1, rows[0]["toy_count"])

	rows, err = client.RunSQL(ctx, `SELECT zone FROM toy_zones`, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Unknown", rows[0]["zone"])
}

func TestRunSQL_InvalidParams(t *testing.T) {
	client := newTestClient(t)
	_, err := client.RunSQL(context.Background(), `SELECT ?`, map[string]any{"name": "x"})
	assert.Error(t, err)
}
