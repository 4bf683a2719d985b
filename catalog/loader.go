package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed fruits.yaml
var defaultCatalogYAML []byte

// fileFormat is the on-disk catalog layout
type fileFormat struct {
	Version int    `yaml:"version"`
	Items   []Item `yaml:"items"`
}

// Default returns the built-in fruit catalog
func Default() *Catalog {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalog YAML file; an empty path yields the built-in catalog
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog YAML
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if f.Version > 1 {
		return nil, fmt.Errorf("version %d: %w", f.Version, ErrUnknownVersion)
	}
	return New(f.Items)
}
