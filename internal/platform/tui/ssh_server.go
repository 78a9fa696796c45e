package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/vovakirdan/lanerun/internal/config"
	"github.com/vovakirdan/lanerun/internal/core"
	"github.com/vovakirdan/lanerun/internal/profile"
	"github.com/vovakirdan/lanerun/internal/session"
	"github.com/vovakirdan/lanerun/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.lanerun/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Seed fixes every session's RNG seed; 0 seeds each session from the clock.
	Seed int64
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves one lane runner game per SSH connection. The profile
// and run history are shared by every session.
type SSHServer struct {
	config   SSHServerConfig
	game     config.Config
	server   *ssh.Server
	profile  *profile.Store
	store    *storage.Store
	logger   *log.Logger
	sessions atomic.Int64
}

// NewSSHServer creates an SSH server. profile and store may be nil, in
// which case nothing is persisted.
func NewSSHServer(cfg SSHServerConfig, game config.Config, prof *profile.Store, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	srv := &SSHServer{
		config:  cfg,
		game:    game,
		profile: prof,
		store:   store,
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".lanerun", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a fresh session and model for each SSH connection.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	sess := session.New(s.game, s.sessionOptions(sshSession.User()))
	model := NewModel(sess, Options{
		Runtime: core.RuntimeConfig{ScreenW: pty.Window.Width, ScreenH: pty.Window.Height},
	})
	s.logger.Info("game session", "user", sshSession.User(), "term", pty.Term,
		"size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height), "active", s.track(sshSession.Context()))

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// track counts a session as active until ctx is done and returns the new
// count.
func (s *SSHServer) track(ctx context.Context) int64 {
	n := s.sessions.Add(1)
	go func() {
		<-ctx.Done()
		s.sessions.Add(-1)
	}()
	return n
}

// Active returns the number of open game sessions.
func (s *SSHServer) Active() int64 {
	return s.sessions.Load()
}

func (s *SSHServer) sessionOptions(user string) session.Options {
	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := session.Options{
		Player: user,
		Seed:   seed,
		Logger: s.logger,
	}
	// Typed nils must not leak into the interfaces.
	if s.profile != nil {
		opts.Scores = s.profile
		opts.Assets = s.profile
	}
	if s.store != nil {
		opts.Runs = s.store
	}
	return opts
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server. Open stores are left to the caller.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
