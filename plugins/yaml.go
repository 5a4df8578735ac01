package plugins

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a run target from its tag.
func (t *PluginRunTarget) UnmarshalYAML(value *yaml.Node) error {
	var tag string
	if err := value.Decode(&tag); err != nil {
		return err
	}
	parsed, err := ParseRunTarget(tag)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes a run target as its tag.
func (t PluginRunTarget) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return Master.tag, nil
	}
	return t.tag, nil
}

// UnmarshalYAML decodes a definition and applies the same defaults as
// NewPluginDefinition, so manifests may omit runOn and any list.
func (d *PluginDefinition) UnmarshalYAML(value *yaml.Node) error {
	// alias drops the method set to avoid recursing into this function
	type alias PluginDefinition
	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*d = PluginDefinition(aux)
	d.applyDefaults()
	return nil
}
