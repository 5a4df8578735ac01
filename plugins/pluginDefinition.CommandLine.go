package plugins

import "github.com/mikekinsman/aztk/shell"

// CommandLine renders the execute command followed by its shell-quoted
// arguments, ready to run on the node. It is empty when the plugin has
// nothing to execute.
func (d PluginDefinition) CommandLine() string {
	if d.Execute == "" {
		return ""
	}
	if len(d.Args) == 0 {
		return d.Execute
	}
	return d.Execute + " " + shell.Join(d.Args...)
}
