package report

import (
	"cmp"
	"slices"

	"toytracker/internal/location"
	"toytracker/internal/toy"
)

// DefaultDrilldown is how many top zones get a member listing.
const DefaultDrilldown = 10

type ZoneCount struct {
	Rank  int
	Zone  string
	Count int
}

type RankedEntry struct {
	ItemID     int
	Name       string
	WowheadURL string
	Commands   string
}

type ZoneDrilldown struct {
	ZoneCount
	Entries []RankedEntry
}

type Ranking struct {
	Zones []ZoneCount

	members map[string][]RankedEntry
}

// BuildRanking counts distinct missing item IDs per zone. Zones are ranked
// by count, highest first, ties broken by case-insensitive name.
func BuildRanking(records []toy.Record) Ranking {
	members := make(map[string][]RankedEntry)
	seen := make(map[string]map[int]struct{})
	order := make([]string, 0)

	for _, r := range records {
		if !r.Missing() {
			continue
		}
		entry := RankedEntry{
			ItemID:     r.ItemID,
			Name:       r.Name,
			WowheadURL: WowheadURL(r.ItemID),
			Commands:   location.JoinCommands(location.Commands(r.Locations, r.Name)),
		}
		for _, f := range location.ZoneFragments(r.Locations) {
			ids, ok := seen[f.Zone]
			if !ok {
				ids = make(map[int]struct{})
				seen[f.Zone] = ids
				order = append(order, f.Zone)
			}
			if _, dup := ids[r.ItemID]; dup {
				continue
			}
			ids[r.ItemID] = struct{}{}
			members[f.Zone] = append(members[f.Zone], entry)
		}
	}

	zones := make([]ZoneCount, 0, len(order))
	for _, zone := range order {
		zones = append(zones, ZoneCount{Zone: zone, Count: len(members[zone])})
	}
	slices.SortStableFunc(zones, func(a, b ZoneCount) int {
		return cmp.Or(
			cmp.Compare(b.Count, a.Count),
			compareFold(a.Zone, b.Zone),
		)
	})
	for i := range zones {
		zones[i].Rank = i + 1
	}

	return Ranking{Zones: zones, members: members}
}

// Top returns the first n ranked zones with their members sorted by name.
// n <= 0 returns nothing.
func (r Ranking) Top(n int) []ZoneDrilldown {
	if n <= 0 {
		return nil
	}
	n = min(n, len(r.Zones))

	out := make([]ZoneDrilldown, 0, n)
	for _, zc := range r.Zones[:n] {
		entries := slices.Clone(r.members[zc.Zone])
		slices.SortStableFunc(entries, func(a, b RankedEntry) int {
			return compareFold(a.Name, b.Name)
		})
		out = append(out, ZoneDrilldown{ZoneCount: zc, Entries: entries})
	}
	return out
}

func (r Ranking) Members(zone string) []RankedEntry {
	return slices.Clone(r.members[zone])
}
