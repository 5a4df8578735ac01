package cluster

import (
	"gopkg.in/yaml.v3"

	"github.com/mikekinsman/aztk/plugins"
)

// UnmarshalYAML decodes an installed plugin. An entry with no definition,
// or a null one, gets the default definition for its name, and a
// definition without a name takes the entry's.
func (p *Plugin) UnmarshalYAML(value *yaml.Node) error {
	type raw Plugin
	var aux raw
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*p = Plugin(aux)
	if p.Definition.RunOn.IsZero() {
		p.Definition = plugins.NewPluginDefinition(p.Name, plugins.PluginOptions{})
	}
	if p.Definition.Name == "" {
		p.Definition.Name = p.Name
	}
	return nil
}
