package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported state document formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// LoadFile reads an initial state document. The format follows the file
// extension: .json is decoded as JSON, .yaml and .yml as YAML.
func LoadFile(path string) (State, error) {
	format, ok := formatFor(path)
	if !ok {
		return nil, fmt.Errorf("state: unsupported state file %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("state: read %s: %w", path, err)
	}
	st, err := Load(data, format)
	if err != nil {
		return nil, fmt.Errorf("state: %s: %w", path, err)
	}
	return st, nil
}

// Load decodes a state document in the given format. Empty documents yield
// an empty state; documents whose top level is not a mapping are rejected.
func Load(data []byte, format string) (State, error) {
	out := State{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return out, nil
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatYAML, "yml":
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if out == nil {
		out = State{}
	}
	return out, nil
}

func formatFor(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}
