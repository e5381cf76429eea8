package store

import (
	"toytracker/internal/location"
	"toytracker/internal/report"
	"toytracker/internal/toy"
)

type ToyInput struct {
	Seq        int
	ItemID     int
	Name       string
	Owned      string
	TierID     *int
	Locations  string
	WowheadURL string
	Commands   string
}

type ZoneInput struct {
	Zone     string
	ItemID   int
	Location string
}

type Snapshot struct {
	SourceFile string
	SourceHash string
	Toys       []ToyInput
	Zones      []ZoneInput
}

// NewSnapshot flattens decoded records into table rows. Every record is kept
// in toys, including repeated item IDs and absent ownership; zones hold the
// missing toys only, one row per distinct (zone, item ID).
func NewSnapshot(sourceFile, sourceHash string, records []toy.Record) Snapshot {
	s := Snapshot{
		SourceFile: sourceFile,
		SourceHash: sourceHash,
		Toys:       make([]ToyInput, 0, len(records)),
		Zones:      make([]ZoneInput, 0),
	}

	type zoneKey struct {
		zone   string
		itemID int
	}
	seen := make(map[zoneKey]struct{})

	for i, r := range records {
		input := ToyInput{
			Seq:        i + 1,
			ItemID:     r.ItemID,
			Name:       r.Name,
			Locations:  r.Locations,
			WowheadURL: report.WowheadURL(r.ItemID),
			Commands:   location.JoinCommands(location.Commands(r.Locations, r.Name)),
		}
		if r.Owned.Known() {
			input.Owned = r.Owned.String()
		}
		if r.TierID.Valid {
			tier := r.TierID.Value
			input.TierID = &tier
		}
		s.Toys = append(s.Toys, input)

		if !r.Missing() {
			continue
		}
		for _, f := range location.ZoneFragments(r.Locations) {
			key := zoneKey{zone: f.Zone, itemID: r.ItemID}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			s.Zones = append(s.Zones, ZoneInput{Zone: f.Zone, ItemID: r.ItemID, Location: f.Raw})
		}
	}
	return s
}
