package plugins

// PluginPort describes one port a plugin wants forwarded from a cluster node
// to the user's machine.
type PluginPort struct {
	// Remote is the port on the cluster node.
	Remote int `yaml:"remote"`
	// Local is the port on the user's machine.
	Local int `yaml:"local"`
	// Name optionally tells several ports of the same plugin apart.
	Name string `yaml:"name,omitempty"`
}
