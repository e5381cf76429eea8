package validate

import (
	"testing"
)

func TestRun_CleanDump(t *testing.T) {
	text := `ATT_ToyTrackerDB = { toys = {
		[1973] = { name = "Orb", owned = true, locations = "12.3, 45.6 — Valdrakken (2112)", },
		[200116] = { name = "Horn", owned = false, },
	}}`

	report := Run(text)
	if report.Records != 2 {
		t.Errorf("Records = %d, want 2", report.Records)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", report.Issues)
	}
	if report.HasErrors() {
		t.Error("HasErrors() = true for a clean dump")
	}
}

func TestRun_Issues(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		code     string
		severity Severity
		itemID   int
	}{
		{
			name:     "no records",
			text:     `ATT_ToyTrackerDB = {}`,
			code:     codeNoRecords,
			severity: SeverityError,
		},
		{
			name:     "duplicate item id",
			text:     `[5] = { name = "A", owned = true, }, [5] = { name = "B", owned = false, },`,
			code:     codeDuplicateItemID,
			severity: SeverityWarn,
			itemID:   5,
		},
		{
			name:     "ownership absent",
			text:     `[7] = { name = "Racer", },`,
			code:     codeOwnershipAbsent,
			severity: SeverityWarn,
			itemID:   7,
		},
		{
			name:     "hyphen instead of em dash",
			text:     `[8] = { owned = false, locations = "12.3, 45.6 - Valdrakken (2112)", },`,
			code:     codeUnmatchedLocation,
			severity: SeverityWarn,
			itemID:   8,
		},
		{
			name:     "missing map id",
			text:     `[9] = { owned = false, locations = "12.3, 45.6 — Valdrakken", },`,
			code:     codeUnmatchedLocation,
			severity: SeverityWarn,
			itemID:   9,
		},
		{
			name:     "nested table",
			text:     `[10] = { owned = false, sources = { 1 }, name = "Lost", },`,
			code:     codeNestedTable,
			severity: SeverityWarn,
			itemID:   10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Run(tt.text)
			var found bool
			for _, issue := range report.Issues {
				if issue.Code != tt.code {
					continue
				}
				found = true
				if issue.Severity != tt.severity {
					t.Errorf("severity = %s, want %s", issue.Severity, tt.severity)
				}
				if issue.ItemID != tt.itemID {
					t.Errorf("item ID = %d, want %d", issue.ItemID, tt.itemID)
				}
			}
			if !found {
				t.Fatalf("expected %s issue, got %+v", tt.code, report.Issues)
			}
		})
	}
}

func TestRun_DuplicateReportedOnce(t *testing.T) {
	text := `[5] = { owned = true, }, [5] = { owned = true, }, [5] = { owned = false, },`

	report := Run(text)
	var n int
	for _, issue := range report.Issues {
		if issue.Code == codeDuplicateItemID {
			n++
		}
	}
	if n != 1 {
		t.Errorf("got %d duplicate issues, want 1", n)
	}
}

func TestRun_ZoneOnlyFragmentIsFine(t *testing.T) {
	report := Run(`[11] = { owned = false, locations = "Dornogal (2339); Dalaran (Legion) (627)", },`)
	if len(report.Issues) != 0 {
		t.Errorf("expected no issues, got %+v", report.Issues)
	}
}

func TestReport_BySeverity(t *testing.T) {
	report := &Report{Issues: []Issue{
		{Severity: SeverityError, Code: "a"},
		{Severity: SeverityWarn, Code: "b"},
		{Severity: SeverityWarn, Code: "c"},
	}}

	if got := len(report.BySeverity(SeverityWarn)); got != 2 {
		t.Errorf("warnings = %d, want 2", got)
	}
	if !report.HasErrors() {
		t.Error("HasErrors() = false")
	}
}
