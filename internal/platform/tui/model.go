package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/anillaksu/neonsurvivor/internal/core"
	"github.com/anillaksu/neonsurvivor/internal/games/survivor"
	"github.com/anillaksu/neonsurvivor/internal/input"
	"github.com/anillaksu/neonsurvivor/internal/platform"
)

// Model is the Bubble Tea model that runs one game session.
type Model struct {
	game     *survivor.Game
	screen   *core.Screen
	recorder *platform.Recorder
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     *KeyMapper
	held     heldKeys
	snap     survivor.Snapshot
	lastTick time.Time
	paused   bool
	quitting bool
}

// NewModel creates a model around a game. The game is reset with cfg.
func NewModel(game *survivor.Game, recorder *platform.Recorder, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder: recorder,
		logger:   logger,
		config:   cfg,
		keys:     NewKeyMapper(),
		held:     newHeldKeys(DefaultHoldWindow),
		snap:     game.Snapshot(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.snap.Mode == survivor.ModeGameOver {
			m.game.Push(input.RestartRequested{})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey turns a key press into input events for the next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action.Command {
	case CmdQuit:
		m.quitting = true
		return m, tea.Quit

	case CmdPause:
		if m.snap.Mode == survivor.ModePlaying || m.paused {
			m.paused = !m.paused
			m.release()
			m.logger.Debug("pause toggled", "paused", m.paused)
		}

	case CmdMove:
		if m.snap.Mode == survivor.ModeUpgrading {
			switch action.Key {
			case input.KeyUp:
				m.game.Push(input.MenuMoved{Delta: -1})
			case input.KeyDown:
				m.game.Push(input.MenuMoved{Delta: 1})
			}
			return m, nil
		}
		if m.held.press(action.Key, now) {
			m.game.Push(input.KeyPressed{Key: action.Key})
		}

	case CmdSelect:
		m.game.Push(input.UpgradeSelected{Index: action.Index})

	case CmdConfirm:
		if m.snap.Mode == survivor.ModeGameOver {
			m.game.Push(input.RestartRequested{})
		} else {
			m.game.Push(input.MenuConfirmed{})
		}

	case CmdRestart:
		m.game.Push(input.RestartRequested{})
	}
	return m, nil
}

// handleTick advances the simulation by the measured frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	for _, k := range m.held.expire(now) {
		m.game.Push(input.KeyReleased{Key: k})
	}
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	events := m.game.Tick(dt)
	m.recorder.Observe(events)
	m.snap = m.game.Snapshot()

	return m, tickCmd(m.config.TickRate)
}

// release lets go of every held direction.
func (m Model) release() {
	for _, k := range m.held.releaseAll() {
		m.game.Push(input.KeyReleased{Key: k})
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	DrawFrame(m.screen, m.snap, HUD{Best: m.recorder.Best(), Seed: m.game.Seed(), Paused: m.paused})
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a game.
func Run(game *survivor.Game, recorder *platform.Recorder, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, recorder, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
