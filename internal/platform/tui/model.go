package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/control"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Model is the Bubble Tea model for a running game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	start      time.Time
	fps        int
	width      int
	height     int
	showHelp   bool
	shotDir    string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	m := Model{
		game:       game,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		start:      time.Now(),
		fps:        cfg.TickRate,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		shotDir:    screenshotDir(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameRows())
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.width, m.gameRows())
		return m, nil

	case RestartMsg:
		m.inputFrame.Set(core.ActionRestart)
		return m, nil

	case JumpMsg:
		m.inputFrame.Set(core.ActionJump)
		return m, nil

	case FrameMsg:
		m.frame(time.Time(msg))
		return m, frameCmd(m.fps)
	}

	return m, nil
}

// handleKey processes keyboard input. Game actions are buffered until the
// next frame; quit, help and screenshot act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		if _, err := m.SaveScreenshot(); err != nil {
			log.Warn("screenshot failed", "err", err)
		}
		return m, nil
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.screen.Resize(m.width, m.gameRows())
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.game.Finish()
		return m, tea.Quit
	}
	return m, nil
}

// frame applies buffered input and advances the game to t.
func (m *Model) frame(t time.Time) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.game.Restart()
	}
	if m.inputFrame.Has(core.ActionPause) {
		m.game.TogglePause()
	}
	if m.inputFrame.Has(core.ActionJump) {
		m.game.Jump()
	}
	m.inputFrame.Clear()

	m.game.Frame(t.Sub(m.start))
}

// gameRows returns the rows available to the game below the help line.
func (m Model) gameRows() int {
	if m.showHelp {
		return core.Max(m.height-1, 0)
	}
	return m.height
}

// SaveScreenshot renders the current frame to a text file and returns its path.
func (m *Model) SaveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", errors.New("screenshot: no home directory")
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", err
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.showHelp {
		view += "\n" + m.help.View(m.keys.Keys())
	}
	return view
}

func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "screenshots")
}

// RunConfig configures Run.
type RunConfig struct {
	Screen        core.RuntimeConfig
	ControlAddr   string // Empty disables the control API
	ControlSecret string
	Logger        *log.Logger
	Input         io.Reader // Optional; defaults to the terminal
	Output        io.Writer // Optional; defaults to the terminal
	AltScreen     bool
}

// Run starts the Bubble Tea program for game and blocks until it exits.
// When ControlAddr is set, the control API runs alongside the program and
// forwards its triggers through the event loop.
func Run(game registry.Game, cfg RunConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	opts := []tea.ProgramOption{}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Input != nil {
		opts = append(opts, tea.WithInput(cfg.Input))
	}
	if cfg.Output != nil {
		opts = append(opts, tea.WithOutput(cfg.Output))
	}
	p := tea.NewProgram(NewModel(game, cfg.Screen), opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.ControlAddr != "" {
		srv := control.New(ProgramTrigger{Program: p}, game.Status(), cfg.ControlSecret, logger)
		go func() {
			if err := srv.Serve(ctx, cfg.ControlAddr); err != nil {
				logger.Error("control api stopped", "err", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}
