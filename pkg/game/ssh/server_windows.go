//go:build windows
// +build windows

package ssh

import (
	"context"
	"errors"
	"net"
	"time"
)

const ServerIdleTimeout = 5 * time.Minute

// SSH server is unsupported on Windows

var ErrUnsupported = errors.New("SSH server is not supported on windows")

type SSHServer struct {
	ListenAddress string
	Binary        string
	Args          []string
	HostKeyFile   string
	IdleTimeout   time.Duration

	Logger chan<- string
}

func NewSessionID() string {
	return ""
}

func (s *SSHServer) Host() error {
	return ErrUnsupported
}

func (s *SSHServer) Shutdown(ctx context.Context) error {
	return nil
}

func (s *SSHServer) Addr() net.Addr {
	return nil
}

func (s *SSHServer) Sessions() int {
	return 0
}
