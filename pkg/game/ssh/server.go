//go:build !windows
// +build !windows

package ssh

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"net"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/fatih/color"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const ServerIdleTimeout = 5 * time.Minute

var (
	ErrNoListenAddress = errors.New("SSH server ListenAddress must be specified")
	ErrNoBinary        = errors.New("SSH server Binary must be specified")
)

var (
	sessionColor = color.New(color.FgCyan).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
)

// SSHServer starts an independent game in a pseudo-terminal for every
// SSH session.
type SSHServer struct {
	ListenAddress string
	Binary        string
	Args          []string
	HostKeyFile   string
	IdleTimeout   time.Duration

	Logger chan<- string

	server   *ssh.Server
	addr     net.Addr
	sessions int64

	sync.Mutex
}

// NewSessionID returns a short human readable session name.
func NewSessionID() string {
	return petname.Generate(2, "-")
}

// Host listens for SSH connections until Shutdown is called.
func (s *SSHServer) Host() error {
	if s.ListenAddress == "" {
		return ErrNoListenAddress
	} else if s.Binary == "" {
		return ErrNoBinary
	}

	idleTimeout := s.IdleTimeout
	if idleTimeout == 0 {
		idleTimeout = ServerIdleTimeout
	}

	server := &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: idleTimeout,
		Handler:     s.handleSession,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if s.HostKeyFile != "" {
		err := server.SetOption(ssh.HostKeyFile(s.HostKeyFile))
		if err != nil {
			return fmt.Errorf("failed to load host key %s: %w", s.HostKeyFile, err)
		}
	} else {
		signer, err := generateHostKey()
		if err != nil {
			return err
		}
		server.AddHostKey(signer)

		s.logf("Generated temporary host key %s", gossh.FingerprintSHA256(signer.PublicKey()))
	}

	ln, err := net.Listen("tcp", s.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.ListenAddress, err)
	}

	s.Lock()
	s.server = server
	s.addr = ln.Addr()
	s.Unlock()

	s.logf("Listening for SSH connections on %s", ln.Addr())

	err = server.Serve(ln)
	if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("failed to host SSH server: %w", err)
	}
	return nil
}

// Shutdown stops listening and waits for active sessions until ctx is
// done.
func (s *SSHServer) Shutdown(ctx context.Context) error {
	s.Lock()
	server := s.server
	s.Unlock()

	if server == nil {
		return nil
	}

	return server.Shutdown(ctx)
}

// Addr returns the address the server listens on, or nil before Host
// has started listening.
func (s *SSHServer) Addr() net.Addr {
	s.Lock()
	defer s.Unlock()

	return s.addr
}

// Sessions returns the number of connected sessions.
func (s *SSHServer) Sessions() int {
	return int(atomic.LoadInt64(&s.sessions))
}

func (s *SSHServer) handleSession(sshSession ssh.Session) {
	id := NewSessionID()

	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		io.WriteString(sshSession, "failed to start blockterm: non-interactive terminals are not supported\n")

		sshSession.Exit(1)
		return
	}

	active := atomic.AddInt64(&s.sessions, 1)
	defer atomic.AddInt64(&s.sessions, -1)

	started := time.Now()
	s.logf("Session %s started by %s from %s (%d active)", sessionColor(id), sshSession.User(), sshSession.RemoteAddr(), active)

	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.Binary, s.Args...)
	cmd.Env = append(sshSession.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		s.logf("Session %s failed: %s", sessionColor(id), errorColor(err))

		io.WriteString(sshSession, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sshSession.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			err := pty.Setsize(f, winsize(win))
			if err != nil {
				s.logf("Session %s failed to resize: %s", sessionColor(id), errorColor(err))
			}
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	cancelCmd()
	cmd.Wait()

	s.logf("Session %s ended after %s", sessionColor(id), time.Since(started).Round(time.Second))
}

func (s *SSHServer) logf(format string, a ...interface{}) {
	if s.Logger == nil {
		return
	}

	s.Logger <- fmt.Sprintf(format, a...)
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}

func generateHostKey() (gossh.Signer, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate host key: %w", err)
	}

	signer, err := gossh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create host key signer: %w", err)
	}

	return signer, nil
}
