package report

import (
	"cmp"
	"slices"
	"strings"

	"toytracker/internal/location"
	"toytracker/internal/toy"
)

// ZoneEntry is one missing toy listed under one zone. Location is the
// fragment that placed the toy in the zone; Commands covers every
// coordinate fragment of the toy.
type ZoneEntry struct {
	Zone       string
	Name       string
	ItemID     int
	TierID     string
	Location   string
	WowheadURL string
	Commands   string
}

type ZoneGroup struct {
	Zone    string
	Entries []ZoneEntry
}

// BuildByZone groups missing toys under every zone their locations mention.
// Within a zone entries are ordered by name then item ID and an item ID is
// listed once, keeping the first entry in that order.
func BuildByZone(records []toy.Record) []ZoneGroup {
	byZone := make(map[string][]ZoneEntry)
	order := make([]string, 0)

	for _, r := range records {
		if !r.Missing() {
			continue
		}
		commands := location.JoinCommands(location.Commands(r.Locations, r.Name))
		for _, f := range location.ZoneFragments(r.Locations) {
			if _, ok := byZone[f.Zone]; !ok {
				order = append(order, f.Zone)
			}
			byZone[f.Zone] = append(byZone[f.Zone], ZoneEntry{
				Zone:       f.Zone,
				Name:       r.Name,
				ItemID:     r.ItemID,
				TierID:     r.TierID.String(),
				Location:   f.Raw,
				WowheadURL: WowheadURL(r.ItemID),
				Commands:   commands,
			})
		}
	}

	slices.SortStableFunc(order, compareFold)

	groups := make([]ZoneGroup, 0, len(order))
	for _, zone := range order {
		entries := byZone[zone]
		slices.SortStableFunc(entries, func(a, b ZoneEntry) int {
			return cmp.Or(
				compareFold(a.Name, b.Name),
				cmp.Compare(a.ItemID, b.ItemID),
			)
		})
		groups = append(groups, ZoneGroup{Zone: zone, Entries: dedupeEntries(entries)})
	}
	return groups
}

func dedupeEntries(entries []ZoneEntry) []ZoneEntry {
	seen := make(map[int]struct{}, len(entries))
	out := make([]ZoneEntry, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.ItemID]; ok {
			continue
		}
		seen[e.ItemID] = struct{}{}
		out = append(out, e)
	}
	return out
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
