package typesolver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Descriptors is the YAML form of a type list:
//
//	types:
//	  - name: java.lang.Object
//	  - name: p.Base
//	    ancestors: [java.lang.Object]
//	    fields:
//	      - name: count
//	        type: int
type Descriptors struct {
	Types []Type `yaml:"types"`
}

// Decode reads type descriptors.
func Decode(data []byte) ([]Type, error) {
	var d Descriptors
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshal type descriptors: %w", err)
	}

	return d.Types, nil
}

// Load reads a descriptors file and builds the memory solver.
func Load(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read types file %s: %w", path, err)
	}

	types, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode types file %s: %w", path, err)
	}

	m, err := NewMemory(types...)
	if err != nil {
		return nil, fmt.Errorf("build types from %s: %w", path, err)
	}

	return m, nil
}
