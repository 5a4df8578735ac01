package plugins

import "fmt"

// PluginRunTarget selects the node role(s) a plugin is installed on.
type PluginRunTarget struct {
	tag string
}

var (
	// Master installs the plugin on the master node only.
	Master = PluginRunTarget{tag: "master"}
	// Worker installs the plugin on worker nodes only.
	Worker = PluginRunTarget{tag: "worker"}
	// All installs the plugin on every node.
	All = PluginRunTarget{tag: "all-nodes"}
)

// String returns the fixed tag of the run target.
func (t PluginRunTarget) String() string {
	return t.tag
}

// IsZero reports whether t is the unset value.
func (t PluginRunTarget) IsZero() bool {
	return t.tag == ""
}

// ParseRunTarget maps a tag back to its run target.
func ParseRunTarget(tag string) (PluginRunTarget, error) {
	switch tag {
	case Master.tag:
		return Master, nil
	case Worker.tag:
		return Worker, nil
	case All.tag:
		return All, nil
	}
	return PluginRunTarget{}, fmt.Errorf("unknown plugin run target %q (want master, worker or all-nodes)", tag)
}
