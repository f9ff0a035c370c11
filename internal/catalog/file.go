package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Foods []Food `yaml:"foods"`
}

// LoadFile reads a YAML catalog from path. See Parse for the format.
func LoadFile(path string, floor float64) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()
	return Parse(f, floor)
}

// Parse decodes a YAML catalog of the form
//
//	foods:
//	  - id: 1
//	    canonical_name: sugar
//	    group_name: sweeteners
//	    default_status: SAFE
//	    synonyms: [sucrose]
func Parse(r io.Reader, floor float64) (*Memory, error) {
	var cf catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewMemory(cf.Foods, floor)
}
