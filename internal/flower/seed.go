package flower

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Seed formats accepted by DecodeSeed
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

//go:embed flowers.json
var defaultSeed []byte

// DefaultSeed returns the built-in dataset the table starts with.
func DefaultSeed() []Flower {
	return DecodeSeed(defaultSeed, FormatJSON)
}

// DecodeSeed parses a seed document into records.
//
// The document must be a sequence of objects with the five record attributes.
// Anything else (a map, a scalar, invalid syntax, elements that are not
// objects) degrades to an empty list rather than an error. Seed records
// are not trimmed or validated.
func DecodeSeed(data []byte, format string) []Flower {
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		return decodeYAMLSeed(data)
	default:
		return decodeJSONSeed(data)
	}
}

func decodeJSONSeed(data []byte) []Flower {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return []Flower{}
	}

	records := make([]Flower, 0, len(raw))
	for _, item := range raw {
		var r Flower
		if err := json.Unmarshal(item, &r); err != nil {
			return []Flower{}
		}
		records = append(records, r)
	}
	return records
}

func decodeYAMLSeed(data []byte) []Flower {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []Flower{}
	}

	// Unmarshal wraps everything in a DocumentNode
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return []Flower{}
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return []Flower{}
	}

	var records []Flower
	if err := root.Decode(&records); err != nil {
		return []Flower{}
	}
	if records == nil {
		records = []Flower{}
	}
	return records
}

// FormatForPath picks a seed format from a file extension.
// Unknown extensions fall back to JSON.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadSeedFile reads a seed file from disk.
// Only I/O failures are reported; malformed content yields an empty list.
func LoadSeedFile(path string) ([]Flower, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return DecodeSeed(data, FormatForPath(path)), nil
}
