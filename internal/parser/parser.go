package parser

import (
	"fmt"
	"iter"
	"os"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"toytracker/internal/toy"
)

// RawBlock is the unparsed body of one `[<id>] = { ... },` entry.
type RawBlock struct {
	ItemID int
	Text   string
}

// blockPattern stops at the nearest `},`. Entries whose body contains a
// nested table are truncated at the inner closing brace.
var blockPattern = regexp.MustCompile(`(?s)\[(\d+)\]\s*=\s*\{(.*?)\}\s*,`)

// Blocks scans text for top-level entries. Each call to the returned
// sequence rescans text from the start.
func Blocks(text string) iter.Seq[RawBlock] {
	return func(yield func(RawBlock) bool) {
		for _, loc := range blockPattern.FindAllStringSubmatchIndex(text, -1) {
			id, err := strconv.Atoi(text[loc[2]:loc[3]])
			if err != nil {
				log.Debugf("skipping block with unusable id %q: %v", text[loc[2]:loc[3]], err)
				continue
			}
			if !yield(RawBlock{ItemID: id, Text: text[loc[4]:loc[5]]}) {
				return
			}
		}
	}
}

// Decode builds a record from one raw block. The name falls back to a
// placeholder and locations fall back to the legacy `location` key.
func Decode(block RawBlock) toy.Record {
	name := String(block.Text, "name")
	if name == "" {
		name = toy.PlaceholderName(block.ItemID)
	}

	locations := String(block.Text, "locations")
	if locations == "" {
		locations = String(block.Text, "location")
	}

	record := toy.Record{
		ItemID:    block.ItemID,
		Name:      name,
		Owned:     Bool(block.Text, "owned"),
		Locations: locations,
	}
	if tier, ok := Int(block.Text, "tierID"); ok {
		record.TierID = toy.OptionalInt{Value: tier, Valid: true}
	}
	return record
}

// Parse decodes every block in text, in text order, without
// de-duplicating item IDs.
func Parse(text string) []toy.Record {
	records := make([]toy.Record, 0)
	for block := range Blocks(text) {
		records = append(records, Decode(block))
	}
	log.Debugf("decoded %d toy records", len(records))
	return records
}

func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading saved variables: %w", err)
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}

func ParseFile(path string) ([]toy.Record, error) {
	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(text), nil
}
