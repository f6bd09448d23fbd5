package metadata

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML renders a registry object as the YAML definition shown on the
// console's Definition tab and offered for export.
func ToYAML(object any) (string, error) {
	out, err := yaml.Marshal(object)
	if err != nil {
		return "", fmt.Errorf("marshal definition: %w", err)
	}
	return string(out), nil
}

// MarshalYAML encodes value types by registry wire name.
func (v ValueType) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML decodes a registry wire name into a value type.
func (v *ValueType) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return fmt.Errorf("decode value type: %w", err)
	}
	*v = ParseValueType(name)
	return nil
}
