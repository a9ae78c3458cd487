package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML section export and applies config defaults.
// The result is not validated; callers decide how to handle malformed
// data (the carousel falls back to a static render).
func Parse(data []byte) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Data{}, fmt.Errorf("parse content: %w", err)
	}
	d.Config = d.Config.Normalize()
	return d, nil
}

// Load reads and parses a YAML section export from disk.
func Load(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("load content: %w", err)
	}
	return Parse(raw)
}
