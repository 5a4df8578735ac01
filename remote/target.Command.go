package remote

import (
	"fmt"
	"strings"

	"github.com/mikekinsman/aztk/shell"
)

// Command renders the OpenSSH invocation equivalent to Connect:
//
//	ssh -L 8080:localhost:8080 ... -t user@host -p port 'remote command'
func (t Target) Command() string {
	parts := []string{"ssh"}
	for _, f := range t.Forwards {
		parts = append(parts, "-L", fmt.Sprintf("%d:localhost:%d", f.Local, f.Remote))
	}
	parts = append(parts, "-t", t.user()+"@"+t.Host, "-p", fmt.Sprint(t.Port))
	if t.RemoteCommand != "" {
		parts = append(parts, shell.Quote(t.RemoteCommand))
	}
	return strings.Join(parts, " ")
}
