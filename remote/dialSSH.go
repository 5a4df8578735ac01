package remote

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// dialSSH establishes an SSH client connection to t with the credentials
// in a.
func dialSSH(t Target, a Auth) (*ssh.Client, error) {
	auths, err := a.methods()
	if err != nil {
		return nil, err
	}

	hostKeyCB, err := hostKeyCallback(a)
	if err != nil {
		return nil, err
	}

	cfg := &ssh.ClientConfig{
		User:            t.User,
		Auth:            auths,
		HostKeyCallback: hostKeyCB,
		Timeout:         a.DialTimeout,
	}

	addr := t.Address()
	d := net.Dialer{Timeout: a.DialTimeout}
	conn, err := d.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, addr, cfg)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return ssh.NewClient(c, chans, reqs), nil
}

// hostKeyCallback verifies against known_hosts when strict checking is on
// and fails closed if the file is missing.
func hostKeyCallback(a Auth) (ssh.HostKeyCallback, error) {
	if !a.StrictHostKey {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	if _, err := os.Stat(a.KnownHostsPath); err != nil {
		return nil, fmt.Errorf("known_hosts file not found at %s and strict-host-key is enabled", a.KnownHostsPath)
	}
	cb, err := knownhosts.New(a.KnownHostsPath)
	if err != nil {
		return nil, fmt.Errorf("known_hosts: %w", err)
	}
	return cb, nil
}
