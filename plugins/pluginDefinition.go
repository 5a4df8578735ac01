package plugins

// PluginDefinition is the manifest of a cluster plugin.
type PluginDefinition struct {
	Name    string          `yaml:"name"`
	RunOn   PluginRunTarget `yaml:"runOn"`
	Ports   []PluginPort    `yaml:"ports"`
	Files   []string        `yaml:"files"`
	Args    []string        `yaml:"args"`
	Execute string          `yaml:"execute,omitempty"`
}

// PluginOptions holds the optional parts of a PluginDefinition. Every field
// may be left at its zero value: RunOn then defaults to Master and the
// slices to empty.
type PluginOptions struct {
	RunOn   PluginRunTarget
	Ports   []PluginPort
	Files   []string
	Args    []string
	Execute string
}

// NewPluginDefinition builds the manifest for the plugin called name. No
// validation happens here; see Validate.
func NewPluginDefinition(name string, opts PluginOptions) PluginDefinition {
	d := PluginDefinition{
		Name:    name,
		RunOn:   opts.RunOn,
		Ports:   opts.Ports,
		Files:   opts.Files,
		Args:    opts.Args,
		Execute: opts.Execute,
	}
	d.applyDefaults()
	return d
}

func (d *PluginDefinition) applyDefaults() {
	if d.RunOn.IsZero() {
		d.RunOn = Master
	}
	if d.Ports == nil {
		d.Ports = []PluginPort{}
	}
	if d.Files == nil {
		d.Files = []string{}
	}
	if d.Args == nil {
		d.Args = []string{}
	}
}
