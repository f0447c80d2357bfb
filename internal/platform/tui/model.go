package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bullet-time/internal/config"
	"github.com/vovakirdan/bullet-time/internal/core"
)

// helpRows is the number of terminal rows reserved below the game for the help footer.
const helpRows = 1

// Options configures the terminal host.
type Options struct {
	// Input controls held-key emulation.
	Input config.InputConfig

	// Logger receives round events. Nil discards them.
	Logger *log.Logger

	// Bell, when set, receives a BEL character on game over.
	Bell io.Writer

	// SkipTitle starts the round immediately.
	SkipTitle bool

	// ScreenshotDir overrides ~/.bullettime/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	keys      KeyMap
	help      help.Model
	held      *heldKeys
	edges     core.InputFrame // Pause/restart presses waiting for the next tick
	gameState core.GameState
	logger    *log.Logger
	lastTick  time.Time
	clock     func() time.Time
	title     bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   newHeldKeys(opts.Input),
		edges:  core.NewInputFrame(),
		logger: logger,
		clock:  time.Now,
		title:  !opts.SkipTitle,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.gameConfig().ScreenH)
	return m
}

// gameConfig returns the runtime config handed to the game: the terminal
// minus the help footer.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-helpRows, 0)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	// gameState is refreshed on the first tick (value receiver)
	if !m.title {
		m.logger.Info("round started", "game", m.game.ID(), "seed", m.config.Seed)
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "survived", m.gameState.Elapsed)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.title {
		if key.Matches(msg, m.keys.Start) {
			m.title = false
			m.lastTick = time.Time{}
			m.logger.Info("round started", "game", m.game.ID(), "seed", m.config.Seed)
		}
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.held.press(a, m.clock())
	case core.ActionPause, core.ActionRestart:
		m.edges.Set(a)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	gameCfg := m.gameConfig()
	m.screen.Resize(gameCfg.ScreenW, gameCfg.ScreenH)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(gameCfg)
	} else if !m.gameState.GameOver() {
		m.game.Reset(gameCfg)
	}
	m.logger.Debug("resized", "cols", msg.Width, "rows", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks. The frame delta is the wall-clock
// time since the previous tick; the first tick after start or the title
// screen steps with zero.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.title {
		return m, tickCmd(m.config.TickRate)
	}

	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = max(now.Sub(m.lastTick), 0)
	}
	m.lastTick = now

	in := m.edges.Clone()
	m.held.apply(&in, now)
	m.edges.Clear()

	prev := m.gameState
	result := m.game.Step(in, dt)
	m.gameState = result.State

	if result.State.Phase != core.PhaseRunning {
		m.held.releaseAll()
	}
	m.observe(prev, result)

	return m, tickCmd(m.config.TickRate)
}

// observe logs the events of one step and rings the bell on game over.
func (m Model) observe(prev core.GameState, result core.StepResult) {
	st := result.State
	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventDifficultyTick:
			m.logger.Debug("difficulty tick", "score", ev.Score, "elapsed", st.Elapsed)
		case core.EventBulletSpawned:
			m.logger.Debug("bullet spawned", "score", ev.Score)
		case core.EventPaused:
			m.logger.Info("paused", "score", st.Score, "elapsed", st.Elapsed)
		case core.EventResumed:
			m.logger.Info("resumed", "score", st.Score)
		case core.EventRestarted:
			m.logger.Info("round restarted", "previous_score", prev.Score)
		case core.EventCollision:
			m.logger.Info("game over", "score", ev.Score, "survived", st.Elapsed)
			if m.opts.Bell != nil {
				//nolint:errcheck // Best-effort cue
				m.opts.Bell.Write([]byte{'\a'})
			}
		}
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot failed", "err", err)
			return
		}
		dir = filepath.Join(home, ".bullettime", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.title {
		return m.titleView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
