package ingest

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"toytracker/internal/config"
	"toytracker/internal/report"
	"toytracker/internal/store"
)

type Result struct {
	SourceFile string
	Counts     Counts
	Written    []string
	Synced     bool
	Errors     []error
}

type Options struct {
	Reports []report.Kind
	// Drilldown overrides cfg.TopLimit when positive.
	Drilldown int
	// Inventory, when set, receives the inventory CSV instead of a file.
	Inventory io.Writer
	// Sink, when set, receives the whole snapshot after the reports.
	Sink Sink
}

// Sink is the part of store.Store a run writes to.
type Sink interface {
	EnsureSchema(ctx context.Context) error
	ReplaceSnapshot(ctx context.Context, s store.Snapshot) error
}

// Run reads the configured snapshot once and writes the requested reports.
// Reading the input is fatal; report and sink failures are collected in
// Result.Errors so the remaining outputs are still produced.
func Run(ctx context.Context, cfg *config.ProjectConfig, options Options) (*Result, error) {
	snap, err := Load(cfg)
	if err != nil {
		return nil, err
	}
	return Write(ctx, cfg, snap, options), nil
}

func Write(ctx context.Context, cfg *config.ProjectConfig, snap *Snapshot, options Options) *Result {
	result := &Result{SourceFile: snap.SourceFile, Counts: snap.Counts()}
	log.WithFields(log.Fields{
		"source":   snap.SourceFile,
		"records":  result.Counts.Records,
		"missing":  result.Counts.Missing,
		"excluded": result.Counts.Excluded,
	}).Debug("snapshot loaded")

	drilldown := cfg.TopLimit
	if options.Drilldown > 0 {
		drilldown = options.Drilldown
	}

	for _, kind := range options.Reports {
		paths, err := writeReport(cfg.OutputDir, kind, snap, drilldown, options.Inventory)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("writing %s report: %w", kind, err))
			continue
		}
		result.Written = append(result.Written, paths...)
	}

	if options.Sink != nil {
		if err := sync(ctx, options.Sink, snap); err != nil {
			result.Errors = append(result.Errors, err)
		} else {
			result.Synced = true
		}
	}

	return result
}

func writeReport(dir string, kind report.Kind, snap *Snapshot, drilldown int, inventory io.Writer) ([]string, error) {
	switch kind {
	case report.KindInventory:
		rows := report.BuildInventory(snap.Records)
		if inventory != nil {
			return nil, report.WriteInventoryCSV(inventory, rows)
		}
		path, err := report.WriteFile(dir, report.InventoryCSV, func(w io.Writer) error {
			return report.WriteInventoryCSV(w, rows)
		})
		if err != nil {
			return nil, err
		}
		return []string{path}, nil

	case report.KindZones:
		groups := report.BuildByZone(snap.Records)
		md, err := report.WriteFile(dir, report.ZonesMarkdown, func(w io.Writer) error {
			return report.WriteZonesMarkdown(w, groups)
		})
		if err != nil {
			return nil, err
		}
		csvPath, err := report.WriteFile(dir, report.ZonesCSV, func(w io.Writer) error {
			return report.WriteZonesCSV(w, groups)
		})
		if err != nil {
			return []string{md}, err
		}
		return []string{md, csvPath}, nil

	case report.KindRanking:
		ranking := report.BuildRanking(snap.Records)
		md, err := report.WriteFile(dir, report.RankingMarkdown, func(w io.Writer) error {
			return report.WriteRankingMarkdown(w, ranking, drilldown)
		})
		if err != nil {
			return nil, err
		}
		csvPath, err := report.WriteFile(dir, report.RankingCSV, func(w io.Writer) error {
			return report.WriteRankingCSV(w, ranking)
		})
		if err != nil {
			return []string{md}, err
		}
		return []string{md, csvPath}, nil

	default:
		return nil, fmt.Errorf("unknown report kind %q", kind)
	}
}

func sync(ctx context.Context, sink Sink, snap *Snapshot) error {
	if err := sink.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	if err := sink.ReplaceSnapshot(ctx, store.NewSnapshot(snap.SourceFile, snap.SourceHash, snap.Records)); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
