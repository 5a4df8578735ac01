package cmd

import (
	"fmt"

	"github.com/mikekinsman/aztk/cluster"
)

const pluginPortsHeader = "Plugins:"

// renderPluginPorts lists the port forwards contributed by c's plugins: a
// header, then one "<plugin> <port-name>: http://localhost:<local>" line
// per port in plugin then declaration order. It returns nil when no plugin
// declares a port.
func renderPluginPorts(c *cluster.Cluster) []string {
	ps := c.Plugins()
	hasPorts := false
	for _, p := range ps {
		if len(p.Definition.Ports) > 0 {
			hasPorts = true
			break
		}
	}
	if !hasPorts {
		return nil
	}

	lines := []string{pluginPortsHeader}
	for _, p := range ps {
		for _, port := range p.Definition.Ports {
			lines = append(lines, fmt.Sprintf("%s %s: %s%d", p.Name, port.Name, httpPrefix, port.Local))
		}
	}
	return lines
}
