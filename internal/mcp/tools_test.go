package mcp

import (
	"context"
	"errors"
	"testing"

	"toytracker/internal/toy"
)

type mockSource struct {
	records []toy.Record
	err     error
	calls   int
}

func (m *mockSource) Records(ctx context.Context) ([]toy.Record, error) {
	m.calls++
	return m.records, m.err
}

func testRecords() []toy.Record {
	return []toy.Record{
		{ItemID: 1973, Name: "Orb of Deception", Owned: toy.OwnedTrue, Locations: "Stormwind City (84)"},
		{
			ItemID:    200116,
			Name:      "Everlasting Horn",
			Owned:     toy.OwnedFalse,
			TierID:    toy.OptionalInt{Value: 10, Valid: true},
			Locations: "12.3, 45.6 — Valdrakken (2112); Dornogal (2339)",
		},
		{ItemID: 33219, Name: "Goblin Kettle", Owned: toy.OwnedFalse, Locations: "Dornogal (2339)"},
		{ItemID: 54343, Name: "Racer Controller"},
	}
}

func TestListMissingByZone(t *testing.T) {
	source := &mockSource{records: testRecords()}
	server := NewServer(source, "test")

	_, output, err := server.handleListMissingByZone(context.Background(), nil, ListMissingByZoneInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Zones) != 2 {
		t.Fatalf("expected 2 zones, got %+v", output.Zones)
	}
	if output.Zones[0].Zone != "Dornogal" || len(output.Zones[0].Toys) != 2 {
		t.Fatalf("unexpected first zone: %+v", output.Zones[0])
	}
	if output.Zones[1].Zone != "Valdrakken" {
		t.Fatalf("unexpected second zone: %+v", output.Zones[1])
	}
	horn := output.Zones[1].Toys[0]
	if horn.TomTom != "/way #2112 12.3 45.6 Everlasting Horn" {
		t.Fatalf("unexpected tomtom: %q", horn.TomTom)
	}
	if horn.TierID != "10" {
		t.Fatalf("unexpected tier: %q", horn.TierID)
	}
}

func TestListMissingByZone_Filter(t *testing.T) {
	server := NewServer(&mockSource{records: testRecords()}, "test")

	_, output, err := server.handleListMissingByZone(context.Background(), nil, ListMissingByZoneInput{Zone: "valdrakken"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Zones) != 1 || output.Zones[0].Zone != "Valdrakken" {
		t.Fatalf("unexpected filter output: %+v", output)
	}
}

func TestTopZones(t *testing.T) {
	server := NewServer(&mockSource{records: testRecords()}, "test")

	_, output, err := server.handleTopZones(context.Background(), nil, TopZonesInput{Limit: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Zones) != 1 {
		t.Fatalf("expected 1 zone, got %+v", output.Zones)
	}
	top := output.Zones[0]
	if top.Rank != 1 || top.Zone != "Dornogal" || top.Count != 2 || len(top.Toys) != 2 {
		t.Fatalf("unexpected top zone: %+v", top)
	}
	if top.Toys[0].Name != "Everlasting Horn" {
		t.Fatalf("members should be sorted by name: %+v", top.Toys)
	}
}

func TestTopZones_NegativeLimit(t *testing.T) {
	source := &mockSource{records: testRecords()}
	server := NewServer(source, "test")

	_, _, err := server.handleTopZones(context.Background(), nil, TopZonesInput{Limit: -1})
	if err == nil {
		t.Fatalf("expected error")
	}
	if source.calls != 0 {
		t.Fatalf("source should not be read for invalid input")
	}
}

func TestGetToy(t *testing.T) {
	server := NewServer(&mockSource{records: testRecords()}, "test")

	_, output, err := server.handleGetToy(context.Background(), nil, GetToyInput{ItemID: 200116})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Status != toy.StatusMissing || output.WowheadURL != "https://www.wowhead.com/item=200116" {
		t.Fatalf("unexpected toy output: %+v", output)
	}
	if len(output.Zones) != 2 || output.Zones[0] != "Valdrakken" || output.Zones[1] != "Dornogal" {
		t.Fatalf("unexpected zones: %v", output.Zones)
	}
	if len(output.TomTom) != 1 {
		t.Fatalf("unexpected tomtom: %v", output.TomTom)
	}
}

func TestGetToy_AbsentOwnership(t *testing.T) {
	server := NewServer(&mockSource{records: testRecords()}, "test")

	_, output, err := server.handleGetToy(context.Background(), nil, GetToyInput{ItemID: 54343})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Status != "ABSENT" || len(output.Zones) != 0 {
		t.Fatalf("unexpected toy output: %+v", output)
	}
}

func TestGetToy_NotFound(t *testing.T) {
	server := NewServer(&mockSource{records: testRecords()}, "test")

	if _, _, err := server.handleGetToy(context.Background(), nil, GetToyInput{ItemID: 1}); err == nil {
		t.Fatalf("expected error")
	}
	if _, _, err := server.handleGetToy(context.Background(), nil, GetToyInput{}); err == nil {
		t.Fatalf("expected error for missing item_id")
	}
}

func TestInventory(t *testing.T) {
	server := NewServer(&mockSource{records: testRecords()}, "test")

	_, output, err := server.handleInventory(context.Background(), nil, InventoryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %+v", output.Rows)
	}
	if output.Rows[0].ItemID != 33219 || output.Rows[2].ItemID != 1973 {
		t.Fatalf("unexpected order: %+v", output.Rows)
	}

	_, output, err = server.handleInventory(context.Background(), nil, InventoryInput{Status: "owned"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Rows) != 1 || output.Rows[0].Status != toy.StatusOwned {
		t.Fatalf("unexpected filtered rows: %+v", output.Rows)
	}
}

func TestInventory_BadStatus(t *testing.T) {
	server := NewServer(&mockSource{records: testRecords()}, "test")

	if _, _, err := server.handleInventory(context.Background(), nil, InventoryInput{Status: "maybe"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSourceError(t *testing.T) {
	server := NewServer(&mockSource{err: errors.New("boom")}, "test")

	if _, _, err := server.handleListMissingByZone(context.Background(), nil, ListMissingByZoneInput{}); err == nil {
		t.Fatalf("expected error")
	}
}
