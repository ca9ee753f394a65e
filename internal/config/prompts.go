package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/explainify/nb-explainify/internal/fsops"
)

// LoadPromptOverrides reads a yaml document mapping operation names to
// replacement template text. Name validation happens when the overrides
// are merged into a prompt set, where the closed operation list lives.
func LoadPromptOverrides(fsys fsops.FS, path string) (map[string]string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompt overrides %s: %w", path, err)
	}
	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse prompt overrides %s: %w", path, err)
	}
	return overrides, nil
}
