package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.runner/host_key.
	HostKeyPath string

	// DBPath is the path to the runs database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// FPS is the frame rate of every session.
	FPS int

	// StartMode is the mode a new session starts in. Empty opens the menu.
	StartMode string

	// Runner configures the games started by sessions. Audio is always
	// silent over SSH.
	Runner config.RunnerConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.runner/runner.db",
		IdleTimeout: 30 * time.Minute,
		FPS:         60,
		StartMode:   "showcase",
		Runner:      config.DefaultRunnerConfig(),
	}
}

// SSHServer serves the runner to remote terminals through Wish.
// Sessions share one score store.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  core.ScoreStore
	closer io.Closer
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner-ssh",
	})

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".runner", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// The store is opened last so that only the server constructor below
	// can fail while it is held.
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open runs database, keeping scores in memory", "error", err)
		srv.store = storage.NewMemory()
	} else {
		srv.store = store
		srv.closer = store
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	screen := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.FPS,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.newGame, s.store, screen, sshSession.User())
	if s.config.StartMode != "" {
		model = model.StartRun(s.config.StartMode)
	}
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// newGame creates a game for one session.
func (s *SSHServer) newGame(mode string, user string) (registry.Game, error) {
	return registry.Create(mode, registry.Options{
		Config: s.config.Runner,
		Seed:   time.Now().UnixNano(),
		Store:  s.store,
		Cue:    audio.Silent{},
		Logger: s.logger.With("user", user, "mode", mode),
	})
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
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

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			s.logger.Warn("closing runs database", "error", err)
		}
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// GameFactory creates the game for a mode picked in a session.
type GameFactory func(mode, user string) (registry.Game, error)

// SessionModel manages one remote session: menu -> run -> menu.
// A single frame loop runs for the whole session; frames reach the game
// only while a run is on screen.
type SessionModel struct {
	newGame  GameFactory
	store    core.ScoreStore
	config   core.RuntimeConfig
	username string
	menu     MenuModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(newGame GameFactory, store core.ScoreStore, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		newGame:  newGame,
		store:    store,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(highScoreOf(store), cfg),
	}
}

func highScoreOf(store core.ScoreStore) int {
	if store == nil {
		return 0
	}
	hs, err := store.HighScore()
	if err != nil {
		return 0
	}
	return hs
}

// Init starts the session frame loop.
func (m SessionModel) Init() tea.Cmd {
	return frameCmd(m.config.TickRate)
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	if _, ok := msg.(FrameMsg); ok {
		return m, frameCmd(m.config.TickRate)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates while the menu is shown.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	result := m.menu.Result()
	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case result.WantsScoreboard:
		// Scoreboard is local-only; stay in the menu.
		m.menu = NewMenuModel(highScoreOf(m.store), m.config)
		return m, nil

	case result.ModeID != "":
		return m.StartRun(result.ModeID), nil
	}

	return m, cmd
}

// StartRun puts a new game of the given mode on screen. On failure the
// session stays in a fresh menu.
func (m SessionModel) StartRun(mode string) SessionModel {
	game, err := m.newGame(mode, m.username)
	if err != nil {
		m.menu = NewMenuModel(highScoreOf(m.store), m.config)
		return m
	}
	model := NewModel(game, m.config)
	m.game = &model
	return m
}

// updateGame handles updates while a run is on screen. Quitting the run
// records it and returns to the menu.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		if action, isQuit := m.game.keys.MapKey(km); isQuit && action == core.ActionQuit {
			m.game.game.Finish()
			m.game = nil
			m.menu = NewMenuModel(highScoreOf(m.store), m.config)
			return m, nil
		}
	}

	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.game = &gm
	}
	return m, cmd
}

// InGame reports whether a run is on screen.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}
