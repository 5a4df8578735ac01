package cluster

import "github.com/mikekinsman/aztk/plugins"

// Cluster is the state of a cluster as reported by the batch service.
type Cluster struct {
	ID            string         `yaml:"id"`
	State         string         `yaml:"state,omitempty"`
	VMSize        string         `yaml:"vm_size,omitempty"`
	MasterNodeID  string         `yaml:"master_node_id"`
	Nodes         []Node         `yaml:"nodes"`
	Configuration *Configuration `yaml:"configuration,omitempty"`
}

// Node is one compute node of a cluster.
type Node struct {
	ID    string           `yaml:"id"`
	Role  plugins.NodeRole `yaml:"role"`
	IP    string           `yaml:"ip"`
	Port  int              `yaml:"port"`
	State string           `yaml:"state,omitempty"`
}

// Configuration is what the cluster was created with. Only the installed
// plugins matter here.
type Configuration struct {
	Plugins []Plugin `yaml:"plugins"`
}

// Plugin is a plugin installed on a cluster, in installation order.
type Plugin struct {
	Name       string                   `yaml:"name"`
	Definition plugins.PluginDefinition `yaml:"definition"`
}

// RemoteLogin holds the address to SSH into a node.
type RemoteLogin struct {
	IP   string
	Port int
}

// Plugins returns the installed plugins, or nil when the cluster carries no
// configuration.
func (c *Cluster) Plugins() []Plugin {
	if c == nil || c.Configuration == nil {
		return nil
	}
	return c.Configuration.Plugins
}

// PluginsFor returns the installed plugins whose run target covers node.
func (c *Cluster) PluginsFor(node Node) []Plugin {
	var out []Plugin
	for _, p := range c.Plugins() {
		if p.Definition.RunOn.Matches(node.Role) {
			out = append(out, p)
		}
	}
	return out
}
