package validate

import (
	"fmt"
	"strings"

	"toytracker/internal/location"
	"toytracker/internal/parser"
	"toytracker/internal/toy"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeNoRecords         = "no_records"
	codeDuplicateItemID   = "duplicate_item_id"
	codeOwnershipAbsent   = "ownership_absent"
	codeUnmatchedLocation = "unmatched_location"
	codeNestedTable       = "nested_table"
)

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	ItemID   int
	Name     string
}

type Report struct {
	Records int
	Issues  []Issue
}

func (r *Report) BySeverity(severity Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

func (r *Report) HasErrors() bool {
	return len(r.BySeverity(SeverityError)) > 0
}

// Run checks a SavedVariables dump for the shapes the extractor handles
// silently: skipped or excluded records, duplicate IDs, truncated blocks and
// location fragments that look like coordinates but produce no waypoint.
func Run(text string) *Report {
	report := &Report{Issues: make([]Issue, 0)}
	seen := make(map[int]int)

	for block := range parser.Blocks(text) {
		report.Records++
		rec := parser.Decode(block)
		seen[rec.ItemID]++
		if seen[rec.ItemID] == 2 {
			report.Issues = append(report.Issues, issueFor(rec, SeverityWarn, codeDuplicateItemID,
				"item ID appears more than once; zone reports keep one entry per zone"))
		}

		if strings.Contains(block.Text, "{") {
			report.Issues = append(report.Issues, issueFor(rec, SeverityWarn, codeNestedTable,
				"record contains a nested table; fields after it are not read"))
		}

		if !rec.Owned.Known() {
			report.Issues = append(report.Issues, issueFor(rec, SeverityWarn, codeOwnershipAbsent,
				"owned flag missing; record is excluded from every report"))
		}

		for _, frag := range location.ParseAll(rec.Locations) {
			if looksLikeCoords(frag) {
				report.Issues = append(report.Issues, issueFor(rec, SeverityWarn, codeUnmatchedLocation,
					fmt.Sprintf("location %q has coordinates but no waypoint form", frag.Raw)))
			}
		}
	}

	if report.Records == 0 {
		report.Issues = append(report.Issues, Issue{
			Severity: SeverityError,
			Code:     codeNoRecords,
			Message:  "no toy records found; is this an ATT_ToyTracker dump?",
		})
	}

	return report
}

func looksLikeCoords(frag location.Fragment) bool {
	if frag.HasCoords {
		return false
	}
	head, _, _ := strings.Cut(frag.Raw, "—")
	return strings.Contains(head, ",") && strings.ContainsAny(head, "0123456789")
}

func issueFor(rec toy.Record, severity Severity, code, message string) Issue {
	return Issue{
		Severity: severity,
		Code:     code,
		Message:  message,
		ItemID:   rec.ItemID,
		Name:     rec.Name,
	}
}
