package report

import (
	"cmp"
	"slices"
	"strconv"

	"toytracker/internal/location"
	"toytracker/internal/toy"
)

const wowheadItemURL = "https://www.wowhead.com/item="

func WowheadURL(itemID int) string {
	return wowheadItemURL + strconv.Itoa(itemID)
}

type InventoryRow struct {
	ItemID     int
	Status     string
	TierID     string
	Name       string
	Locations  string
	WowheadURL string
	Commands   string
}

// BuildInventory lists every record whose ownership is known, missing toys
// first, then by item ID. Repeated item IDs are kept.
func BuildInventory(records []toy.Record) []InventoryRow {
	rows := make([]InventoryRow, 0, len(records))
	for _, r := range records {
		if !r.Owned.Known() {
			continue
		}
		rows = append(rows, InventoryRow{
			ItemID:     r.ItemID,
			Status:     r.Status(),
			TierID:     r.TierID.String(),
			Name:       r.Name,
			Locations:  r.Locations,
			WowheadURL: WowheadURL(r.ItemID),
			Commands:   location.JoinCommands(location.Commands(r.Locations, r.Name)),
		})
	}

	slices.SortStableFunc(rows, func(a, b InventoryRow) int {
		return cmp.Or(
			cmp.Compare(statusRank(a.Status), statusRank(b.Status)),
			cmp.Compare(a.ItemID, b.ItemID),
		)
	})
	return rows
}

func statusRank(status string) int {
	if status == toy.StatusMissing {
		return 0
	}
	return 1
}
