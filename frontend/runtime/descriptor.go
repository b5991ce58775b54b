package runtime

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"io"
)

// Descriptor is the on-disk form of a provided runtime:
//
//	functions:
//	  - name: println
//	    params: [String]
//	    returns: Unit
type Descriptor struct {
	Functions []Signature `yaml:"functions"`
}

// LoadDescriptor decodes a YAML Descriptor and validates its signatures.
// An empty document is an empty runtime.
func LoadDescriptor(r io.Reader) ([]Signature, error) {
	var desc Descriptor
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&desc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("runtime descriptor: parse: %w", err)
	}
	for i, sig := range desc.Functions {
		if sig.Name == "" {
			return nil, fmt.Errorf("runtime descriptor: function %d has no name", i)
		}
		if sig.Returns == "" {
			return nil, fmt.Errorf("runtime descriptor: function '%s' has no return type", sig.Name)
		}
	}
	if err := Validate(desc.Functions); err != nil {
		return nil, err
	}
	return desc.Functions, nil
}
