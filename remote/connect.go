package remote

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/ssh"
	"golang.org/x/term"

	"github.com/mikekinsman/aztk/log"
)

// Streams are the local ends of the remote session.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StdStreams returns the process's standard streams.
func StdStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Connect dials t, serves its forwards and runs the remote command (or a
// login shell) attached to s until it exits or ctx is canceled. When Stdin
// is a terminal it is put in raw mode and a PTY of the same size is
// requested, like `ssh -t`.
func Connect(ctx context.Context, t Target, a Auth, s Streams) error {
	client, err := dialSSH(t, a)
	if err != nil {
		return fmt.Errorf("ssh connection failed: %w", err)
	}
	defer func() { _ = client.Close() }()

	fw := startForwards(client, t.Forwards)
	defer func() { _ = fw.Close() }()

	return runSession(ctx, client, t.RemoteCommand, s)
}

func runSession(ctx context.Context, client *ssh.Client, command string, s Streams) error {
	sess, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer func() { _ = sess.Close() }()

	sess.Stdin = s.Stdin
	sess.Stdout = s.Stdout
	sess.Stderr = s.Stderr

	if f, ok := s.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		restore, err := requestPty(sess, int(f.Fd()))
		if err != nil {
			return err
		}
		defer restore()
	}

	if command != "" {
		log.Debugf("running %q", command)
		err = sess.Start(command)
	} else {
		err = sess.Shell()
	}
	if err != nil {
		return fmt.Errorf("start remote command: %w", err)
	}

	waitCh := make(chan error, 1)
	go func() { waitCh <- sess.Wait() }()
	select {
	case err := <-waitCh:
		return err
	case <-ctx.Done():
		_ = sess.Close()
		return ctx.Err()
	}
}

// requestPty switches fd to raw mode and asks for a matching remote PTY.
// The returned func restores the terminal.
func requestPty(sess *ssh.Session, fd int) (func(), error) {
	width, height, err := term.GetSize(fd)
	if err != nil {
		width, height = 80, 40
	}
	modes := ssh.TerminalModes{
		ssh.ECHO:          1,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	termType := os.Getenv("TERM")
	if termType == "" {
		termType = "xterm"
	}
	if err := sess.RequestPty(termType, height, width, modes); err != nil {
		return nil, fmt.Errorf("request pty: %w", err)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw terminal: %w", err)
	}
	return func() { _ = term.Restore(fd, state) }, nil
}
