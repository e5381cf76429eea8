package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	InventoryCSV    = "att_toys.csv"
	ZonesMarkdown   = "missing_toys_by_zone.md"
	ZonesCSV        = "missing_toys_by_zone.csv"
	RankingMarkdown = "top_zones_by_missing_toys.md"
	RankingCSV      = "top_zones_by_missing_toys.csv"
)

// WriteFile creates dir if needed and replaces dir/name with whatever
// render writes. It returns the written path.
func WriteFile(dir, name string, render func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	return path, nil
}
