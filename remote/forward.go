package remote

import (
	"io"
	"net"
	"strconv"
	"sync"

	"github.com/mikekinsman/aztk/log"
)

// tunnelDialer opens connections from the far end of an SSH connection.
// *ssh.Client satisfies it.
type tunnelDialer interface {
	Dial(network, addr string) (net.Conn, error)
}

// forwarder serves a set of local forwards until closed.
type forwarder struct {
	listeners []net.Listener
	wg        sync.WaitGroup
}

// startForwards listens on 127.0.0.1 for every forward and relays each
// accepted connection to localhost:<remote> on the node. A local port that
// cannot be bound, because another forward or process holds it, is
// reported and skipped, as `ssh -L` does.
func startForwards(d tunnelDialer, fwds []Forward) *forwarder {
	fw := &forwarder{}
	for _, f := range fwds {
		ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(f.Local)))
		if err != nil {
			log.Yellow("Warning: could not forward local port %d to %d: %v", f.Local, f.Remote, err)
			continue
		}
		fw.listeners = append(fw.listeners, ln)
		remote := net.JoinHostPort("localhost", strconv.Itoa(f.Remote))
		log.Debugf("forwarding %s -> %s", ln.Addr(), remote)
		fw.wg.Add(1)
		go fw.serve(ln, d, remote)
	}
	return fw
}

// Addrs returns the bound local addresses in forward order. Skipped
// forwards have no entry.
func (fw *forwarder) Addrs() []net.Addr {
	out := make([]net.Addr, 0, len(fw.listeners))
	for _, ln := range fw.listeners {
		out = append(out, ln.Addr())
	}
	return out
}

func (fw *forwarder) serve(ln net.Listener, d tunnelDialer, remote string) {
	defer fw.wg.Done()
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		go relay(conn, d, remote)
	}
}

func relay(local net.Conn, d tunnelDialer, remote string) {
	defer local.Close()
	rc, err := d.Dial("tcp", remote)
	if err != nil {
		log.Debugf("forward to %s failed: %v", remote, err)
		return
	}
	defer rc.Close()

	done := make(chan struct{}, 2)
	go func() {
		_, _ = io.Copy(rc, local)
		done <- struct{}{}
	}()
	go func() {
		_, _ = io.Copy(local, rc)
		done <- struct{}{}
	}()
	// either side finishing ends the relay; the deferred closes unblock the other
	<-done
}

// Close stops accepting on every listener and waits for the accept loops
// to exit. Relays already in flight finish on their own.
func (fw *forwarder) Close() error {
	var first error
	for _, ln := range fw.listeners {
		if err := ln.Close(); err != nil && first == nil {
			first = err
		}
	}
	fw.wg.Wait()
	return first
}
