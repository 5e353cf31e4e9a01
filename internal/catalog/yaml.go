package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the on-disk YAML structure consumed by LoadFile.
type CatalogFile struct {
	Monsters []MonsterRecord `yaml:"monsters"`
	Fusions  []FusionRecord  `yaml:"fusions"`
}

// LoadFile reads a YAML catalog file and builds a Catalog from it.
// The record-based Load remains the core surface; this is a convenience
// for callers that keep their card data on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cf CatalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}

	cat, err := Load(cf.Monsters, cf.Fusions)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, nil
}
