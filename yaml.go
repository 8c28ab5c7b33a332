package patcher

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes raw YAML into a Document. The top-level value must
// be a mapping. Decoding goes through yaml.Node so that field
// declaration order survives; leaves come out with yaml.v3's native
// types (int, float64, bool, string, time.Time for timestamps) and are
// normalized the same way JSON leaves are.
func DecodeYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("decoding document: empty input")
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("decoding document: top-level value is not a mapping")
	}

	d := &Document{values: make(map[string]Value, len(mapping.Content)/2)}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		valNode := mapping.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return nil, fmt.Errorf("decoding document: field name at line %d: %w", keyNode.Line, err)
		}
		if _, ok := d.values[name]; ok {
			continue
		}

		var v any
		if err := valNode.Decode(&v); err != nil {
			return nil, fmt.Errorf("decoding document: field %q: %w", name, err)
		}

		d.names = append(d.names, name)
		d.values[name] = valueFromAny(v)
	}

	return d, nil
}
