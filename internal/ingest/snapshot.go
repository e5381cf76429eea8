package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"toytracker/internal/config"
	"toytracker/internal/parser"
	"toytracker/internal/toy"
)

// Snapshot is one full read of the SavedVariables file.
type Snapshot struct {
	SourceFile string
	SourceHash string
	Text       string
	Records    []toy.Record
}

func LoadSnapshot(path string) (*Snapshot, error) {
	text, err := parser.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256([]byte(text))
	return &Snapshot{
		SourceFile: path,
		SourceHash: hex.EncodeToString(sum[:]),
		Text:       text,
		Records:    parser.Parse(text),
	}, nil
}

// Load resolves the configured input path and reads it.
func Load(cfg *config.ProjectConfig) (*Snapshot, error) {
	path, err := cfg.SavedVariablesPath()
	if err != nil {
		return nil, err
	}
	return LoadSnapshot(path)
}

type Counts struct {
	Records  int
	Owned    int
	Missing  int
	Excluded int
}

func (s *Snapshot) Counts() Counts {
	c := Counts{Records: len(s.Records)}
	for _, r := range s.Records {
		switch r.Owned {
		case toy.OwnedTrue:
			c.Owned++
		case toy.OwnedFalse:
			c.Missing++
		default:
			c.Excluded++
		}
	}
	return c
}

// FileSource re-reads Path on every call.
type FileSource struct {
	Path string
}

func (f FileSource) Records(ctx context.Context) ([]toy.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap, err := LoadSnapshot(f.Path)
	if err != nil {
		return nil, err
	}
	return snap.Records, nil
}
