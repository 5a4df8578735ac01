// Package sshserv is a stand-in for a cluster master node's SSH daemon. It
// accepts any user without authentication, runs exec requests by echoing
// them back, answers shell requests with a line-echoing prompt, and dials
// direct-tcpip (ssh -L) channels on the loopback interface.
package sshserv

import (
	"bufio"
	"crypto/rand"
	"crypto/rsa"
	"encoding/binary"
	"errors"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/ssh"
)

// Server is a running test SSH server.
type Server struct {
	ln   net.Listener
	cfg  *ssh.ServerConfig
	done chan struct{}

	mu       sync.Mutex
	commands []string
}

// Start listens on listenAddr (e.g. 127.0.0.1:0) and serves until Stop.
func Start(listenAddr string) (*Server, error) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}
	signer, err := ssh.NewSignerFromKey(priv)
	if err != nil {
		return nil, err
	}
	cfg := &ssh.ServerConfig{NoClientAuth: true}
	cfg.AddHostKey(signer)

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, err
	}
	s := &Server{ln: ln, cfg: cfg, done: make(chan struct{})}
	go s.serve()
	return s, nil
}

// Host returns the listening IP.
func (s *Server) Host() string {
	return s.ln.Addr().(*net.TCPAddr).IP.String()
}

// Port returns the listening port.
func (s *Server) Port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

// Commands returns the exec commands received so far, in order.
func (s *Server) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.commands...)
}

// Stop closes the listener and waits for the accept loop to exit.
func (s *Server) Stop() {
	_ = s.ln.Close()
	<-s.done
}

func (s *Server) serve() {
	defer close(s.done)
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			continue
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(raw net.Conn) {
	_, chans, reqs, err := ssh.NewServerConn(raw, s.cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	go ssh.DiscardRequests(reqs)
	for nc := range chans {
		switch nc.ChannelType() {
		case "session":
			ch, in, err := nc.Accept()
			if err != nil {
				continue
			}
			go s.handleSession(ch, in)
		case "direct-tcpip":
			handleDirectTCPIP(nc)
		default:
			_ = nc.Reject(ssh.UnknownChannelType, "")
		}
	}
}

func (s *Server) handleSession(ch ssh.Channel, in <-chan *ssh.Request) {
	defer ch.Close()
	for req := range in {
		switch req.Type {
		case "pty-req", "env", "window-change":
			_ = req.Reply(true, nil)
		case "exec":
			cmd := execCommand(req.Payload)
			s.mu.Lock()
			s.commands = append(s.commands, cmd)
			s.mu.Unlock()
			_ = req.Reply(true, nil)
			_, _ = ch.Write([]byte("ran: " + cmd + "\n"))
			sendExitStatus(ch, 0)
			return
		case "shell":
			_ = req.Reply(true, nil)
			emulateShell(ch)
			sendExitStatus(ch, 0)
			return
		default:
			_ = req.Reply(false, nil)
		}
	}
}

// execCommand decodes the string payload of an exec request.
func execCommand(payload []byte) string {
	if len(payload) < 4 {
		return ""
	}
	n := binary.BigEndian.Uint32(payload)
	if int(n)+4 > len(payload) {
		return ""
	}
	return string(payload[4 : 4+n])
}

func sendExitStatus(ch ssh.Channel, code uint32) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, code)
	_, _ = ch.SendRequest("exit-status", false, b)
}

// emulateShell answers every input line with "ok" until "exit" or EOF.
func emulateShell(ch ssh.Channel) {
	br := bufio.NewReader(ch)
	for {
		line, err := br.ReadString('\n')
		if s := strings.TrimSpace(line); s == "exit" {
			return
		} else if s != "" {
			_, _ = ch.Write([]byte("ok\n"))
		}
		if err != nil {
			return
		}
	}
}

// handleDirectTCPIP dials the requested port on the loopback interface,
// whatever host the client named, and pipes the channel through.
func handleDirectTCPIP(nc ssh.NewChannel) {
	var p struct {
		Host     string
		Port     uint32
		OrigHost string
		OrigPort uint32
	}
	if err := ssh.Unmarshal(nc.ExtraData(), &p); err != nil {
		_ = nc.Reject(ssh.ConnectionFailed, "bad payload")
		return
	}
	target, err := net.Dial("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(int(p.Port))))
	if err != nil {
		_ = nc.Reject(ssh.ConnectionFailed, err.Error())
		return
	}
	ch, in, err := nc.Accept()
	if err != nil {
		_ = target.Close()
		return
	}
	go ssh.DiscardRequests(in)
	go func() {
		defer ch.Close()
		defer target.Close()
		go func() {
			_, _ = io.Copy(target, ch)
			if cw, ok := target.(interface{ CloseWrite() error }); ok {
				_ = cw.CloseWrite()
			}
		}()
		_, _ = io.Copy(ch, target)
	}()
}
