package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadRoster reads a roster file, or returns DefaultRoster when path is empty.
func LoadRoster(path string) (*RosterConfig, error) {
	if path == "" {
		return DefaultRoster(), nil
	}
	var rc RosterConfig
	if err := loadYAML(path, &rc); err != nil {
		return nil, fmt.Errorf("loading roster %s: %w", path, err)
	}
	if err := rc.Validate(); err != nil {
		return nil, err
	}
	return &rc, nil
}
