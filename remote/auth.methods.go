package remote

import (
	"errors"
	"fmt"
	"net"
	"os"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
)

// errEncryptedKey is returned for a passphrase-protected key when no
// passphrase was configured.
var errEncryptedKey = errors.New("private key is encrypted; provide --passphrase or AZTK_PASSPHRASE")

// methods lists the ways to authenticate, in the order the server is
// offered them: the configured key, the password, then a running
// ssh-agent.
func (a Auth) methods() ([]ssh.AuthMethod, error) {
	var out []ssh.AuthMethod
	if a.KeyPath != "" {
		signer, err := a.signer()
		if err != nil {
			return nil, fmt.Errorf("load key %s: %w", a.KeyPath, err)
		}
		out = append(out, ssh.PublicKeys(signer))
	}
	if a.Password != "" {
		out = append(out, ssh.Password(a.Password))
	}
	if sock := os.Getenv("SSH_AUTH_SOCK"); sock != "" {
		if conn, err := net.Dial("unix", sock); err == nil {
			out = append(out, ssh.PublicKeysCallback(agent.NewClient(conn).Signers))
		}
	}
	return out, nil
}

// signer parses the private key at KeyPath, decrypting it with Passphrase
// when one is set.
func (a Auth) signer() (ssh.Signer, error) {
	pem, err := os.ReadFile(a.KeyPath)
	if err != nil {
		return nil, err
	}
	if a.Passphrase != "" {
		return ssh.ParsePrivateKeyWithPassphrase(pem, []byte(a.Passphrase))
	}
	s, err := ssh.ParsePrivateKey(pem)
	var missing *ssh.PassphraseMissingError
	if errors.As(err, &missing) {
		return nil, errEncryptedKey
	}
	return s, err
}
