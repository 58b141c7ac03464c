package point

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Codec surface: a point serializes as the plain sequence of its elements,
// nothing more. Deserializing constructs a fresh point whose dimension count
// equals the decoded sequence length — decoding IS construction, so the
// fixed-length invariant holds for the resulting value.

// MarshalJSON encodes the backing store as a JSON array. A zero-dimensional
// point encodes as "[]".
func (p Point[T]) MarshalJSON() ([]byte, error) {
	if p.coords == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.coords)
}

// UnmarshalJSON decodes a JSON array into a fresh backing store, replacing
// the receiver's contents.
func (p *Point[T]) UnmarshalJSON(data []byte) error {
	var coords []T
	if err := json.Unmarshal(data, &coords); err != nil {
		return fmt.Errorf("point: unmarshal JSON: %w", err)
	}
	checkCeiling(len(coords), "UnmarshalJSON")
	p.coords = coords
	return nil
}

// MarshalYAML encodes the backing store as a YAML sequence. A
// zero-dimensional point encodes as an empty sequence.
func (p Point[T]) MarshalYAML() (interface{}, error) {
	if p.coords == nil {
		return []T{}, nil
	}
	return p.coords, nil
}

// UnmarshalYAML decodes a YAML sequence node into a fresh backing store,
// replacing the receiver's contents.
func (p *Point[T]) UnmarshalYAML(node *yaml.Node) error {
	var coords []T
	if err := node.Decode(&coords); err != nil {
		return fmt.Errorf("point: unmarshal YAML: %w", err)
	}
	checkCeiling(len(coords), "UnmarshalYAML")
	p.coords = coords
	return nil
}
