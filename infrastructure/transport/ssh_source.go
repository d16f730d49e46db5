package transport

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/juju/errors"
	"github.com/kballard/go-shellquote"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
)

// DefaultTimeout bounds the SSH dial and handshake
const DefaultTimeout = 10 * time.Second

// SSHSource fetches a configuration dump kept on a remote archive host
type SSHSource struct {
	config entities.SourceConfig
	client *ssh.Client
}

// NewSSHSource creates a new SSH source with the given configuration
func NewSSHSource(config entities.SourceConfig) *SSHSource {
	return &SSHSource{config: config}
}

// Connect opens the SSH connection if it is not open yet
func (ss *SSHSource) Connect() error {
	if ss.IsConnected() {
		return nil
	}

	auth, err := authMethods(ss.config)
	if err != nil {
		return err
	}
	hostKeyCallback, err := hostKeyCallback(ss.config)
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(ss.config.Host, strconv.Itoa(ss.config.Port))
	sshConfig := &ssh.ClientConfig{
		User:            ss.config.Username,
		Auth:            auth,
		HostKeyCallback: hostKeyCallback,
		Timeout:         DefaultTimeout,
	}

	client, err := ssh.Dial("tcp", addr, sshConfig)
	if err != nil {
		return errors.Annotatef(err, "failed to connect to %s via SSH", addr)
	}
	ss.client = client
	logger.Debugf("connected to %s via SSH", addr)
	return nil
}

// IsConnected reports whether the SSH connection is open
func (ss *SSHSource) IsConnected() bool {
	return ss.client != nil
}

// Close releases the SSH connection
func (ss *SSHSource) Close() error {
	if ss.client == nil {
		return nil
	}
	err := ss.client.Close()
	ss.client = nil
	logger.Debugf("disconnected from %s", ss.config.Host)
	return err
}

// Lines reads the remote file in a fresh session
func (ss *SSHSource) Lines() ([]string, error) {
	if err := ss.Connect(); err != nil {
		return nil, err
	}

	session, err := ss.client.NewSession()
	if err != nil {
		return nil, errors.Annotatef(err, "failed to create SSH session for %s", ss.config.Host)
	}
	defer session.Close()

	cmd := RemoteCommand(ss.config.Path)
	logger.Debugf("executing: %s", cmd)
	output, err := session.Output(cmd)
	if err != nil {
		return nil, errors.Annotatef(err, "error executing %s on %s", cmd, ss.config.Host)
	}

	lines, err := readLines(strings.NewReader(string(output)))
	if err != nil {
		return nil, errors.Annotatef(err, "failed to read output from %s", ss.config.Host)
	}
	logger.Debugf("read %d line(s) from %s", len(lines), ss.Describe())
	return lines, nil
}

// Describe names the source for messages
func (ss *SSHSource) Describe() string {
	return fmt.Sprintf("%s@%s:%s", ss.config.Username, ss.config.Host, ss.config.Path)
}

// RemoteCommand builds the shell command printing path on the archive host
func RemoteCommand(path string) string {
	return shellquote.Join("cat", "--", path)
}

func authMethods(config entities.SourceConfig) ([]ssh.AuthMethod, error) {
	methods := make([]ssh.AuthMethod, 0, 2)
	if config.PrivateKey != "" {
		keyData, err := os.ReadFile(config.PrivateKey)
		if err != nil {
			return nil, errors.Annotatef(err, "failed to read private key %s", config.PrivateKey)
		}
		signer, err := ssh.ParsePrivateKey(keyData)
		if err != nil {
			return nil, errors.Annotatef(err, "failed to parse private key %s", config.PrivateKey)
		}
		methods = append(methods, ssh.PublicKeys(signer))
	}
	if config.Password != "" {
		methods = append(methods, ssh.Password(config.Password))
	}
	if len(methods) == 0 {
		return nil, errors.Errorf("no SSH credentials configured for %s", config.Host)
	}
	return methods, nil
}

func hostKeyCallback(config entities.SourceConfig) (ssh.HostKeyCallback, error) {
	if config.InsecureIgnoreHostKey {
		logger.Warningf("host key checking disabled for %s", config.Host)
		return ssh.InsecureIgnoreHostKey(), nil
	}
	callback, err := knownhosts.New(config.KnownHosts)
	if err != nil {
		return nil, errors.Annotatef(err, "failed to load known_hosts %s", config.KnownHosts)
	}
	return callback, nil
}
