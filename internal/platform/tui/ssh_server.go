package tui

import (
	"context"
	"errors"
	"fmt"
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

	"github.com/Aditya232-rtx/bouncetales/internal/core"
	"github.com/Aditya232-rtx/bouncetales/internal/game"
	"github.com/Aditya232-rtx/bouncetales/internal/registry"
	"github.com/Aditya232-rtx/bouncetales/internal/score"
	"github.com/Aditya232-rtx/bouncetales/internal/skin"
	"github.com/Aditya232-rtx/bouncetales/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.bounce/host_key.
	HostKeyPath string

	// DBPath is the path to the run history database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.bounce/scores.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server so the game can be played remotely.
type SSHServer struct {
	config     SSHServerConfig
	server     *ssh.Server
	store      *storage.Store
	highScores *score.Store
	logger     *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bounce-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config:     cfg,
		store:      store,
		highScores: score.NewStore(""),
		logger:     logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".bounce", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
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
		if store != nil {
			store.Close()
		}
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

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.store, s.highScores, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
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

	// Setup signal handling for graceful shutdown
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

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen identifies which screen the session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenLevels
	screenCustomize
	screenScores
	screenGame
)

// SessionModel manages the full session flow: menu, level select,
// customization, scoreboard, and the game itself. This is the top-level
// model used for SSH sessions.
type SessionModel struct {
	store      *storage.Store
	highScores *score.Store
	config     core.RuntimeConfig

	screen    sessionScreen
	menu      MenuModel
	levels    LevelSelectModel
	customize CustomizeModel
	board     ScoreboardModel
	gameModel *Model
	quitting  bool
}

// NewSessionModel creates a new session model starting at the main menu.
func NewSessionModel(store *storage.Store, highScores *score.Store, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:      store,
		highScores: highScores,
		config:     cfg,
		menu:       NewMenuModel(highScores, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenLevels:
		return m.updateLevels(msg)
	case screenCustomize:
		return m.updateCustomize(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Choice() {
	case MenuChoicePlay:
		game.SetStartLevel(0)
		return m.startGame()

	case MenuChoiceLevelSelect:
		m.screen = screenLevels
		m.levels = NewLevelSelectModel(m.config.ScreenW, m.config.ScreenH)
		return m, m.levels.Init()

	case MenuChoiceCustomize:
		current, _ := skin.Load("")
		m.screen = screenCustomize
		m.customize = NewCustomizeModel(current, "", m.config.ScreenW, m.config.ScreenH)
		return m, m.customize.Init()

	case MenuChoiceScores:
		m.screen = screenScores
		m.board = NewScoreboardModel(m.store, m.highScores, m.config.ScreenW, m.config.ScreenH)
		return m, m.board.Init()
	}

	return m, cmd
}

func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.levels.Update(msg)
	if lm, ok := newModel.(LevelSelectModel); ok {
		m.levels = lm
	}

	if m.levels.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.levels.WantsBack() {
		return m.backToMenu()
	}
	if idx := m.levels.Selected(); idx >= 0 {
		game.SetStartLevel(idx)
		return m.startGame()
	}

	return m, cmd
}

func (m SessionModel) updateCustomize(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.customize.Update(msg)
	if cm, ok := newModel.(CustomizeModel); ok {
		m.customize = cm
	}

	if m.customize.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.customize.done {
		game.SetSkin(m.customize.Skin())
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.board.Update(msg)
	if bm, ok := newModel.(ScoreboardModel); ok {
		m.board = bm
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateGame handles updates when playing.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.gameModel = &gm
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		return m.backToMenu()
	}
	if m.gameModel.quitting {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// startGame creates a fresh game instance and switches to the game screen.
func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	g, err := registry.Create("bounce")
	if err != nil {
		// Shouldn't happen: the game registers itself in init()
		return m.backToMenu()
	}

	m.config.Seed = time.Now().UnixNano()
	gameModel := NewModel(g, m.store, m.highScores, m.config)
	m.gameModel = &gameModel
	m.screen = screenGame

	return m, m.gameModel.Init()
}

// backToMenu returns to a freshly loaded main menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.highScores, m.config)
	return m, m.menu.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case screenLevels:
		return m.levels.View()
	case screenCustomize:
		return m.customize.View()
	case screenScores:
		return m.board.View()
	}

	return m.menu.View()
}
