// Command ssh_test_server runs a fake master node SSH daemon for trying
// `aztk cluster ssh` locally: point a clusters.yaml node at its address and
// pass --strict-host-key=false.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	srv "github.com/mikekinsman/aztk/tools/sshserv"
)

func main() {
	addr := pflag.String("listen", "127.0.0.1:20222", "Address to listen on")
	pflag.Parse()

	s, err := srv.Start(*addr)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "failed to start test ssh server:", err)
		os.Exit(1)
	}
	_, _ = fmt.Fprintf(os.Stderr, "test ssh server listening on %s:%d\n", s.Host(), s.Port())
	defer s.Stop()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
