package geo

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/provinces.yaml
var defaultDataset []byte

// dataset is the YAML wire format for the province graph.
type dataset struct {
	Provinces []*Province `yaml:"provinces"`
}

// Load parses a YAML province dataset and builds the graph.
func Load(data []byte, opts ...Option) (*Graph, error) {
	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse province dataset: %w", err)
	}
	if len(ds.Provinces) == 0 {
		return nil, fmt.Errorf("province dataset is empty")
	}

	g, err := NewGraph(ds.Provinces, opts...)
	if err != nil {
		return nil, fmt.Errorf("validate province dataset: %w", err)
	}
	return g, nil
}

// LoadFile loads a province dataset from a YAML file.
func LoadFile(path string, opts ...Option) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read province dataset: %w", err)
	}
	return Load(data, opts...)
}

// Default builds the graph from the embedded dataset.
// The embedded data is closed and symmetric; a failure here is a build bug.
func Default(opts ...Option) (*Graph, error) {
	return Load(defaultDataset, opts...)
}

// MustDefault is Default for initialization paths where the embedded
// dataset is trusted.
func MustDefault(opts ...Option) *Graph {
	g, err := Default(opts...)
	if err != nil {
		panic(fmt.Sprintf("embedded province dataset invalid: %v", err))
	}
	return g
}
