package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-breaker/internal/audio"
	"github.com/vovakirdan/block-breaker/internal/core"
	"github.com/vovakirdan/block-breaker/internal/registry"
	"github.com/vovakirdan/block-breaker/internal/storage"
)

// Options wires a game model to the outside world. Every field is optional.
type Options struct {
	Store  *storage.Store
	Audio  audio.Player
	Logger *log.Logger
	Clock  core.Clock
	Player string // SSH user name stored with runs
}

func (o Options) withDefaults() Options {
	if o.Audio == nil {
		o.Audio = audio.Silent{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Clock == nil {
		o.Clock = core.SystemClock{}
	}
	return o
}

// runStats accumulates what gets stored when a run ends.
type runStats struct {
	start     time.Time
	destroyed int
	items     int
	launched  bool
	saved     bool
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	held       *HoldTracker
	pending    core.InputFrame
	gameState  core.GameState
	run        *runStats
	quitting   bool
	backToMenu bool
	quitOnBack bool
}

// NewGameModel creates a new game model.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	opts = opts.withDefaults()

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		held:      NewHoldTracker(HoldWindow),
		pending:   core.NewInputFrame(),
		run:       &runStats{start: opts.Clock.Now()},
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Audio.StartMusic()
	m.opts.Logger.Info("game started", "stage", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case action == core.ActionBack:
		// Back only leaves a finished or paused game
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			m.saveRun()
			if m.quitOnBack {
				return m, tea.Quit
			}
		}
	case isHeld(action):
		m.held.Press(action, m.opts.Clock.Now())
	default:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// only the cell mapping changes.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if r, ok := m.game.(resizable); ok {
		r.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// resizable is implemented by games that track the terminal size.
type resizable interface {
	Resize(width, height int)
}

// handleTick runs one simulation frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	now := m.opts.Clock.Now()
	frame := m.pending.Clone()
	m.held.Fill(&frame, now)
	m.pending.Clear()

	wasOver := m.gameState.GameOver
	result := m.game.Step(frame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		// Restarted
		m.run = &runStats{start: now}
		m.held.Reset()
		m.opts.Logger.Info("game restarted", "stage", m.game.ID())
	}

	m.handleEvents(result.Events)

	if m.gameState.Phase != "serve" {
		m.run.launched = true
	}
	if m.gameState.GameOver {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// handleEvents routes frame events to the audio player and the log.
func (m GameModel) handleEvents(events []core.Event) {
	for _, e := range events {
		if snd, ok := audio.SoundFor(e); ok {
			m.opts.Audio.Play(snd)
		}

		switch e.Kind {
		case core.EventBlockDestroyed:
			m.run.destroyed++
		case core.EventUpgradeCollected:
			m.run.items = e.Count
		case core.EventGameOver, core.EventStageCleared:
			m.opts.Logger.Info("run finished",
				"stage", m.game.ID(),
				"kind", e.Kind.String(),
				"score", m.gameState.Score,
			)
			continue
		}

		m.opts.Logger.Debug("event",
			"kind", e.Kind.String(),
			"detail", e.Detail,
			"count", e.Count,
			"x", int(e.Pos.X),
			"y", int(e.Pos.Y),
		)
	}
}

// saveRun stores the current run once. Runs abandoned before the ball was
// ever launched are not stored.
func (m GameModel) saveRun() {
	if m.run.saved || !m.run.launched {
		return
	}
	m.run.saved = true

	if m.opts.Store == nil {
		return
	}

	r := storage.Run{
		Stage:           m.game.ID(),
		Player:          m.opts.Player,
		Score:           m.gameState.Score,
		BlocksDestroyed: m.run.destroyed,
		Items:           m.run.items,
		Cleared:         m.gameState.Won,
		DurationSecs:    int(m.opts.Clock.Now().Sub(m.run.start).Seconds()),
	}
	if _, err := m.opts.Store.SaveRun(r); err != nil {
		m.opts.Logger.Warn("could not save run", "error", err)
		return
	}
	m.opts.Logger.Info("run saved", "stage", r.Stage, "score", r.Score, "cleared", r.Cleared)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in its own Bubble Tea program. It returns true when the
// player asked to go back to the stage menu rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewGameModel(game, cfg, opts)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
