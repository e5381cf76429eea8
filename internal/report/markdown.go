package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func WriteZonesMarkdown(w io.Writer, groups []ZoneGroup) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "# Missing Toys by Zone (best-effort)\n\n")
	fmt.Fprint(bw, "> Generated from ATT_ToyTracker SavedVariables. Locations + TomTom commands are best-effort.\n\n")

	for _, group := range groups {
		fmt.Fprintf(bw, "## %s\n\n", group.Zone)
		fmt.Fprint(bw, "| Toy | itemID | tierID | Location | TomTom |\n")
		fmt.Fprint(bw, "|---|---:|---:|---|---|\n")
		for _, e := range group.Entries {
			tomtom := ""
			if e.Commands != "" {
				tomtom = "`" + e.Commands + "`"
			}
			fmt.Fprintf(bw, "| [%s](%s) | %d | %s | %s | %s |\n",
				escapeCell(e.Name), e.WowheadURL, e.ItemID, e.TierID, escapeCell(e.Location), tomtom)
		}
		fmt.Fprint(bw, "\n")
	}
	return bw.Flush()
}

// WriteRankingMarkdown writes the full ranking table followed by a member
// listing for the top drilldown zones.
func WriteRankingMarkdown(w io.Writer, ranking Ranking, drilldown int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "# Top Zones by Missing Toy Count (best-effort)\n\n")
	fmt.Fprint(bw, "| Rank | Zone | Missing Toys |\n|---:|---|---:|\n")
	for _, zc := range ranking.Zones {
		fmt.Fprintf(bw, "| %d | %s | %d |\n", zc.Rank, zc.Zone, zc.Count)
	}

	fmt.Fprintf(bw, "\n## Quick drill-down (top %d zones)\n\n", drilldown)
	for _, zone := range ranking.Top(drilldown) {
		fmt.Fprintf(bw, "### %s (%d)\n\n", zone.Zone, zone.Count)
		for _, e := range zone.Entries {
			tomtom := ""
			if e.Commands != "" {
				tomtom = " — `" + e.Commands + "`"
			}
			fmt.Fprintf(bw, "- [%s](%s) (itemID %d)%s\n", escapeCell(e.Name), e.WowheadURL, e.ItemID, tomtom)
		}
		fmt.Fprint(bw, "\n")
	}
	return bw.Flush()
}
