package remote

import (
	"net"
	"strconv"
	"time"
)

// UsernamePlaceholder stands in for the login user when none is known, so a
// printed command can still be completed by hand.
const UsernamePlaceholder = "<username>"

// Forward maps a port on the user's machine to a port on the node's
// loopback interface, like `ssh -L local:localhost:remote`.
type Forward struct {
	Local  int
	Remote int
}

// Target is everything needed to open one SSH session.
type Target struct {
	Host     string
	Port     int
	User     string
	Forwards []Forward
	// RemoteCommand runs instead of a login shell when set.
	RemoteCommand string
}

// Address returns host:port for dialing.
func (t Target) Address() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// user returns the login user, or the placeholder.
func (t Target) user() string {
	if t.User == "" {
		return UsernamePlaceholder
	}
	return t.User
}

// Auth holds the client-side credentials and host key policy.
type Auth struct {
	KeyPath        string
	Passphrase     string
	Password       string
	KnownHostsPath string
	StrictHostKey  bool
	DialTimeout    time.Duration
}
