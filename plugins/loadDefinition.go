package plugins

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDefinition reads a plugin manifest from a YAML file. The result is
// defaulted but not validated.
func LoadDefinition(path string) (PluginDefinition, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return PluginDefinition{}, err
	}
	var d PluginDefinition
	if err := yaml.Unmarshal(b, &d); err != nil {
		return PluginDefinition{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	// an empty document never reaches UnmarshalYAML
	d.applyDefaults()
	return d, nil
}
