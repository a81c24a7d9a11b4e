package padel

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath picks the document format from a file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a match document. Records that cannot be decoded are left out of the
// result and reported in skipped; err is only set when the envelope itself is unreadable.
func Decode(data []byte, format Format) (matches []Match, skipped []error, err error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatJSON, "":
		return decodeJSON(data)
	default:
		return nil, nil, fmt.Errorf("unsupported match data format %q", format)
	}
}

func decodeJSON(data []byte) ([]Match, []error, error) {
	var envelope struct {
		Matches []json.RawMessage `json:"matches"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, nil, fmt.Errorf("failed to decode match data: %w", err)
	}

	matches := make([]Match, 0, len(envelope.Matches))
	var skipped []error
	for i, raw := range envelope.Matches {
		var m Match
		if err := json.Unmarshal(raw, &m); err != nil {
			skipped = append(skipped, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		matches = append(matches, m)
	}
	return matches, skipped, nil
}

func decodeYAML(data []byte) ([]Match, []error, error) {
	var envelope struct {
		Matches []yaml.Node `yaml:"matches"`
	}
	if err := yaml.Unmarshal(data, &envelope); err != nil {
		return nil, nil, fmt.Errorf("failed to decode match data: %w", err)
	}

	matches := make([]Match, 0, len(envelope.Matches))
	var skipped []error
	for i := range envelope.Matches {
		var m Match
		if err := envelope.Matches[i].Decode(&m); err != nil {
			skipped = append(skipped, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		matches = append(matches, m)
	}
	return matches, skipped, nil
}

// Encode serializes matches as a {"matches": [...]} document.
func Encode(matches []Match, format Format) ([]byte, error) {
	if matches == nil {
		matches = []Match{}
	}
	data := MatchData{Matches: matches}
	switch format {
	case FormatYAML:
		return yaml.Marshal(data)
	case FormatJSON, "":
		return json.MarshalIndent(data, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported match data format %q", format)
	}
}
