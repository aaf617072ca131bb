package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/anillaksu/neonsurvivor/internal/config"
	"github.com/anillaksu/neonsurvivor/internal/core"
	"github.com/anillaksu/neonsurvivor/internal/games/survivor"
	"github.com/anillaksu/neonsurvivor/internal/platform"
	"github.com/anillaksu/neonsurvivor/internal/storage"
)

func newTestModel(t *testing.T, tweak ...func(*config.SurvivorConfig)) Model {
	t.Helper()
	cfg := config.Default()
	cfg.EnemySpawnRate = 0.001
	for _, f := range tweak {
		f(&cfg)
	}
	logger := log.New(io.Discard)
	rec := platform.NewRecorder(nil, logger, storage.FrontendTerminal, 1)
	return NewModel(survivor.New(cfg), rec, logger, core.RuntimeConfig{ScreenW: 82, ScreenH: 33, TickRate: 60, Seed: 1})
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelMovesWhileKeyHeld(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(100, 0)

	m = step(t, m, TickMsg(t0))
	next, _ := m.handleKey(runeKey("d"), t0)
	m = next.(Model)
	m = step(t, m, TickMsg(t0.Add(100*time.Millisecond)))

	x := m.snap.Player.Pos.X
	if x <= 400 {
		t.Fatalf("player did not move right: x=%v", x)
	}

	// Without repeats the key decays and the player stops.
	m = step(t, m, TickMsg(t0.Add(400*time.Millisecond)))
	stopped := m.snap.Player.Pos.X
	m = step(t, m, TickMsg(t0.Add(500*time.Millisecond)))
	if m.snap.Player.Pos.X != stopped {
		t.Errorf("player kept moving after the hold window")
	}
}

func TestModelPauseFreezesSimulation(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(100, 0)
	m = step(t, m, TickMsg(t0))
	m = step(t, m, runeKey("p"))
	if !m.paused {
		t.Fatal("p did not pause")
	}

	before := m.snap.Tick
	m = step(t, m, TickMsg(t0.Add(100*time.Millisecond)))
	if m.snap.Tick != before {
		t.Errorf("simulation ticked while paused")
	}

	m = step(t, m, runeKey("p"))
	m = step(t, m, TickMsg(t0.Add(200*time.Millisecond)))
	if m.snap.Tick == before {
		t.Errorf("simulation did not resume")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runeKey("q"))
	if !next.(Model).quitting || cmd == nil {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m := newTestModel(t, func(c *config.SurvivorConfig) {
		c.EnemySpawnRate = 5
		c.Timing.FireIntervalSecs = 1e6
	})
	t0 := time.Unix(100, 0)

	// The idle player never fires, so the first enemy reaches it.
	for i := 0; m.game.Mode() != survivor.ModeGameOver; i++ {
		if i > 1000 {
			t.Fatal("run never ended")
		}
		m.game.Tick(0.1)
	}
	m = step(t, m, TickMsg(t0))
	if m.snap.Mode != survivor.ModeGameOver {
		t.Fatalf("mode = %v, want gameOver", m.snap.Mode)
	}
	m.View()
	if out := m.screen.String(); !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Seed: 1") {
		t.Errorf("game over panel missing seed:\n%s", out)
	}

	m = step(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = step(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if m.snap.Mode != survivor.ModePlaying || m.snap.Score != 0 || len(m.snap.Enemies) != 0 {
		t.Errorf("mode=%v score=%d enemies=%d after click restart", m.snap.Mode, m.snap.Score, len(m.snap.Enemies))
	}
}

func TestModelUpgradeMenuKeys(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(100, 0)
	for m.game.Mode() != survivor.ModeUpgrading {
		m.game.Tick(0.25)
	}
	m = step(t, m, TickMsg(t0))
	if m.snap.Mode != survivor.ModeUpgrading {
		t.Fatalf("mode = %v", m.snap.Mode)
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(t, m, TickMsg(t0.Add(10*time.Millisecond)))
	if m.snap.Cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.snap.Cursor)
	}

	m = step(t, m, runeKey("3"))
	m = step(t, m, TickMsg(t0.Add(20*time.Millisecond)))
	if m.snap.Mode != survivor.ModePlaying || m.snap.Upgrades.Total() != 1 {
		t.Errorf("mode=%v upgrades=%v after selecting option 3", m.snap.Mode, m.snap.Upgrades)
	}
}
