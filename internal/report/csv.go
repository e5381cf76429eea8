package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var (
	inventoryHeader = []string{"itemID", "status", "tierID", "name", "locations", "wowhead_url", "tomtom_commands"}
	zonesHeader     = []string{"zone", "toy_name", "itemID", "tierID", "location", "wowhead_url", "tomtom_commands"}
	rankingHeader   = []string{"rank", "zone", "missing_toy_count"}
)

func WriteInventoryCSV(w io.Writer, rows []InventoryRow) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, inventoryHeader)
	for _, r := range rows {
		records = append(records, []string{
			strconv.Itoa(r.ItemID), r.Status, r.TierID, r.Name, r.Locations, r.WowheadURL, r.Commands,
		})
	}
	return writeCSV(w, records)
}

func WriteZonesCSV(w io.Writer, groups []ZoneGroup) error {
	records := [][]string{zonesHeader}
	for _, group := range groups {
		for _, e := range group.Entries {
			records = append(records, []string{
				group.Zone, e.Name, strconv.Itoa(e.ItemID), e.TierID, e.Location, e.WowheadURL, e.Commands,
			})
		}
	}
	return writeCSV(w, records)
}

func WriteRankingCSV(w io.Writer, ranking Ranking) error {
	records := make([][]string, 0, len(ranking.Zones)+1)
	records = append(records, rankingHeader)
	for _, zc := range ranking.Zones {
		records = append(records, []string{strconv.Itoa(zc.Rank), zc.Zone, strconv.Itoa(zc.Count)})
	}
	return writeCSV(w, records)
}

func writeCSV(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
