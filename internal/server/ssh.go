package server

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gliderlabs/ssh"
	"github.com/skip2/go-qrcode"

	"github.com/nlordell/qrterm/internal/config"
	"github.com/nlordell/qrterm/internal/qr"
	"github.com/nlordell/qrterm/internal/render"
)

// SSHServer renders QR codes for remote sessions over SSH.
type SSHServer struct {
	cfg   *config.Config
	level qrcode.RecoveryLevel
}

// NewSSHServer creates a server from the daemon config.
func NewSSHServer(cfg *config.Config) (*SSHServer, error) {
	level, err := qr.Level(cfg.Level)
	if err != nil {
		return nil, err
	}
	return &SSHServer{cfg: cfg, level: level}, nil
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.cfg.Listen,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	// Set host key
	if err := server.SetOption(ssh.HostKeyFile(s.cfg.HostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.cfg.Listen)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	username := sess.User()
	if username == "" {
		username = "Anonymous"
	}

	log.Printf("Session opened: %s (%s)", username, sess.RemoteAddr())
	defer log.Printf("Session closed: %s (%s)", username, sess.RemoteAddr())

	data, err := sessionData(sess.Command(), sess, sess)
	if err != nil {
		sess.Exit(1)
		return
	}
	if len(data) > s.cfg.MaxDataBytes {
		fmt.Fprintf(sess.Stderr(), "qrterm: data exceeds %d bytes\n", s.cfg.MaxDataBytes)
		sess.Exit(1)
		return
	}

	surface, err := qr.Encode(data, s.level)
	if err != nil {
		fmt.Fprintf(sess.Stderr(), "qrterm: %v\n", err)
		sess.Exit(1)
		return
	}

	// With a PTY the code replaces whatever is on screen; without one the
	// output is plain text the client can pipe.
	if _, _, ok := sess.Pty(); ok {
		io.WriteString(sess, render.ClearScreen()+render.CursorHome())
	}
	if err := surface.Image().Render(sess); err != nil {
		log.Printf("Render failed for %s: %v", username, err)
	}
}

// sessionData resolves the data to encode for a session: the exec command if
// one was sent, otherwise one prompted line of input.
func sessionData(command []string, r io.Reader, w io.Writer) (string, error) {
	if len(command) > 0 {
		return strings.Join(command, " "), nil
	}

	if _, err := io.WriteString(w, "Data: "); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
