package plugins

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the contract construction leaves to documentation: a
// non-empty name, positive port numbers and unique port names within the
// plugin.
func (d PluginDefinition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("plugin.name is required")
	}
	seen := make(map[string]int, len(d.Ports))
	for i, p := range d.Ports {
		if p.Remote <= 0 {
			return fmt.Errorf("ports[%d].remote must be a positive port number, got %d", i, p.Remote)
		}
		if p.Local <= 0 {
			return fmt.Errorf("ports[%d].local must be a positive port number, got %d", i, p.Local)
		}
		if p.Name == "" {
			continue
		}
		if j, ok := seen[p.Name]; ok {
			return fmt.Errorf("ports[%d].name %q duplicates ports[%d]", i, p.Name, j)
		}
		seen[p.Name] = i
	}
	for i, f := range d.Files {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("files[%d] is empty", i)
		}
	}
	return nil
}
