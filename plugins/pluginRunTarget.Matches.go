package plugins

import "fmt"

// NodeRole is the role a cluster node plays.
type NodeRole string

const (
	RoleMaster NodeRole = "master"
	RoleWorker NodeRole = "worker"
)

// Matches reports whether a plugin with this run target is installed on a
// node with the given role. It panics on the zero run target, which no
// constructor produces.
func (t PluginRunTarget) Matches(role NodeRole) bool {
	switch t {
	case Master:
		return role == RoleMaster
	case Worker:
		return role == RoleWorker
	case All:
		return role == RoleMaster || role == RoleWorker
	}
	panic(fmt.Sprintf("plugins: unhandled run target %q", t.tag))
}
