package mcp

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"toytracker/internal/location"
	"toytracker/internal/report"
	"toytracker/internal/toy"
)

type ListMissingByZoneInput struct {
	Zone string `json:"zone,omitempty" jsonschema:"only this zone, case-insensitive"`
}

type TopZonesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of zones to return, default 10"`
}

type GetToyInput struct {
	ItemID int `json:"item_id" jsonschema:"toy item ID"`
}

type InventoryInput struct {
	Status string `json:"status,omitempty" jsonschema:"OWNED or MISSING"`
}

type ZoneToyOutput struct {
	ItemID     int    `json:"item_id"`
	Name       string `json:"name"`
	TierID     string `json:"tier_id,omitempty"`
	Location   string `json:"location,omitempty"`
	WowheadURL string `json:"wowhead_url"`
	TomTom     string `json:"tomtom,omitempty"`
}

type ZoneOutput struct {
	Zone string          `json:"zone"`
	Toys []ZoneToyOutput `json:"toys"`
}

type ListMissingByZoneOutput struct {
	Zones []ZoneOutput `json:"zones"`
}

type RankedZoneOutput struct {
	Rank  int             `json:"rank"`
	Zone  string          `json:"zone"`
	Count int             `json:"missing_count"`
	Toys  []ZoneToyOutput `json:"toys"`
}

type TopZonesOutput struct {
	Zones []RankedZoneOutput `json:"zones"`
}

type ToyOutput struct {
	ItemID     int      `json:"item_id"`
	Name       string   `json:"name"`
	Status     string   `json:"status"`
	TierID     string   `json:"tier_id,omitempty"`
	Locations  string   `json:"locations,omitempty"`
	Zones      []string `json:"zones"`
	WowheadURL string   `json:"wowhead_url"`
	TomTom     []string `json:"tomtom"`
}

type InventoryRowOutput struct {
	ItemID     int    `json:"item_id"`
	Status     string `json:"status"`
	TierID     string `json:"tier_id,omitempty"`
	Name       string `json:"name"`
	Locations  string `json:"locations,omitempty"`
	WowheadURL string `json:"wowhead_url"`
	TomTom     string `json:"tomtom,omitempty"`
}

type InventoryOutput struct {
	Rows []InventoryRowOutput `json:"rows"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_missing_by_zone",
		Description: "List missing toys grouped by zone",
	}, s.handleListMissingByZone)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "top_zones",
		Description: "Rank zones by number of distinct missing toys",
	}, s.handleTopZones)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_toy",
		Description: "Retrieve one toy by item ID with its zones and waypoints",
	}, s.handleGetToy)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "inventory",
		Description: "List every toy with known ownership, missing first",
	}, s.handleInventory)
}

func (s *Server) handleListMissingByZone(ctx context.Context, req *sdk.CallToolRequest, input ListMissingByZoneInput) (*sdk.CallToolResult, ListMissingByZoneOutput, error) {
	records, err := s.source.Records(ctx)
	if err != nil {
		return nil, ListMissingByZoneOutput{}, err
	}

	output := make([]ZoneOutput, 0)
	for _, group := range report.BuildByZone(records) {
		if input.Zone != "" && !strings.EqualFold(group.Zone, input.Zone) {
			continue
		}
		toys := make([]ZoneToyOutput, 0, len(group.Entries))
		for _, e := range group.Entries {
			toys = append(toys, ZoneToyOutput{
				ItemID:     e.ItemID,
				Name:       e.Name,
				TierID:     e.TierID,
				Location:   e.Location,
				WowheadURL: e.WowheadURL,
				TomTom:     e.Commands,
			})
		}
		output = append(output, ZoneOutput{Zone: group.Zone, Toys: toys})
	}
	return nil, ListMissingByZoneOutput{Zones: output}, nil
}

func (s *Server) handleTopZones(ctx context.Context, req *sdk.CallToolRequest, input TopZonesInput) (*sdk.CallToolResult, TopZonesOutput, error) {
	if input.Limit < 0 {
		return nil, TopZonesOutput{}, fmt.Errorf("limit must not be negative")
	}
	limit := input.Limit
	if limit == 0 {
		limit = report.DefaultDrilldown
	}

	records, err := s.source.Records(ctx)
	if err != nil {
		return nil, TopZonesOutput{}, err
	}

	top := report.BuildRanking(records).Top(limit)
	output := make([]RankedZoneOutput, 0, len(top))
	for _, zone := range top {
		toys := make([]ZoneToyOutput, 0, len(zone.Entries))
		for _, e := range zone.Entries {
			toys = append(toys, ZoneToyOutput{
				ItemID:     e.ItemID,
				Name:       e.Name,
				WowheadURL: e.WowheadURL,
				TomTom:     e.Commands,
			})
		}
		output = append(output, RankedZoneOutput{
			Rank:  zone.Rank,
			Zone:  zone.Zone,
			Count: zone.Count,
			Toys:  toys,
		})
	}
	return nil, TopZonesOutput{Zones: output}, nil
}

func (s *Server) handleGetToy(ctx context.Context, req *sdk.CallToolRequest, input GetToyInput) (*sdk.CallToolResult, ToyOutput, error) {
	if input.ItemID <= 0 {
		return nil, ToyOutput{}, fmt.Errorf("item_id is required")
	}
	records, err := s.source.Records(ctx)
	if err != nil {
		return nil, ToyOutput{}, err
	}

	for _, rec := range records {
		if rec.ItemID == input.ItemID {
			return nil, toyOutputFromRecord(rec), nil
		}
	}
	return nil, ToyOutput{}, fmt.Errorf("toy %d not found", input.ItemID)
}

func (s *Server) handleInventory(ctx context.Context, req *sdk.CallToolRequest, input InventoryInput) (*sdk.CallToolResult, InventoryOutput, error) {
	status := strings.ToUpper(strings.TrimSpace(input.Status))
	if status != "" && status != toy.StatusOwned && status != toy.StatusMissing {
		return nil, InventoryOutput{}, fmt.Errorf("status must be %s or %s", toy.StatusOwned, toy.StatusMissing)
	}

	records, err := s.source.Records(ctx)
	if err != nil {
		return nil, InventoryOutput{}, err
	}

	rows := make([]InventoryRowOutput, 0)
	for _, row := range report.BuildInventory(records) {
		if status != "" && row.Status != status {
			continue
		}
		rows = append(rows, InventoryRowOutput{
			ItemID:     row.ItemID,
			Status:     row.Status,
			TierID:     row.TierID,
			Name:       row.Name,
			Locations:  row.Locations,
			WowheadURL: row.WowheadURL,
			TomTom:     row.Commands,
		})
	}
	return nil, InventoryOutput{Rows: rows}, nil
}

// toyOutputFromRecord reports ownership as "ABSENT" when the flag is missing,
// a state the CSV reports never show.
func toyOutputFromRecord(rec toy.Record) ToyOutput {
	status := "ABSENT"
	if rec.Owned.Known() {
		status = rec.Status()
	}

	zones := make([]string, 0)
	for _, f := range location.ParseAll(rec.Locations) {
		zones = append(zones, f.Zone)
	}

	return ToyOutput{
		ItemID:     rec.ItemID,
		Name:       rec.Name,
		Status:     status,
		TierID:     rec.TierID.String(),
		Locations:  rec.Locations,
		Zones:      zones,
		WowheadURL: report.WowheadURL(rec.ItemID),
		TomTom:     location.Commands(rec.Locations, rec.Name),
	}
}
