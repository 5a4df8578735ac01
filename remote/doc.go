// Package remote opens SSH sessions to cluster nodes.
//
// A Target describes one session: the node address, the login user, the
// local port forwards and the command to run. Command renders the
// equivalent OpenSSH invocation for users who want to connect themselves;
// Connect opens the session natively over golang.org/x/crypto/ssh, serving
// each forward from a local listener for as long as the session lasts.
package remote
