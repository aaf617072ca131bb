// Package survivor implements the NeonSurvivor simulation: a player that
// auto-fires in fixed directions while enemies spawn at the arena edges and
// pursue it. The package is pure and single-threaded; adapters feed input
// events through a queue and call Tick once per frame.
package survivor

import (
	"math/rand"

	"github.com/anillaksu/neonsurvivor/internal/config"
	"github.com/anillaksu/neonsurvivor/internal/core"
	"github.com/anillaksu/neonsurvivor/internal/input"
)

// Game owns the simulation state and the input queue feeding it.
type Game struct {
	cfg   config.SurvivorConfig
	rng   *rand.Rand
	seed  int64
	queue *input.Queue
	input input.State
	state State
	ticks uint64
}

// New creates a game using cfg. Call Reset before the first Tick.
func New(cfg config.SurvivorConfig) *Game {
	return &Game{
		cfg:   cfg,
		queue: input.NewQueue(),
		input: input.NewState(cfg.Joystick.MaxRadius),
	}
}

// Reset seeds the RNG and starts a fresh run.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.seed = rt.Seed
	g.rng = rand.New(rand.NewSource(rt.Seed)) //#nosec G404 -- game randomness, not security
	g.ticks = 0
	g.queue.Clear()
	g.input.Reset()
	g.state = State{
		Width:  float64(g.cfg.Arena.Width),
		Height: float64(g.cfg.Arena.Height),
	}
	g.startRun()
}

// startRun resets everything a new run needs. Arena size and the RNG carry
// over so a restart continues the same random sequence.
func (g *Game) startRun() {
	s := &g.state
	s.Store.Clear()
	s.Player = Player{Pos: s.center(), Size: PlayerSize, BaseSpeed: g.cfg.PlayerSpeed}
	s.Score = 0
	s.Level = 1
	s.Upgrades = Upgrades{}
	s.Mode = ModePlaying
	s.SpawnRate = g.cfg.SpawnRate(1)
	s.SpawnTimer = 0
	s.FireTimer = 0
	s.LevelElapsedMS = 0
	s.BannerElapsedMS = 0
	s.Options = nil
	s.Cursor = 0
	s.Survived = 0
}

// Push queues input events for the next Tick. Safe for concurrent use.
func (g *Game) Push(events ...input.Event) {
	g.queue.Push(events...)
}

// Tick drains the input queue and advances the simulation by dt seconds.
// Only the systems allowed by the current mode run.
func (g *Game) Tick(dt float64) []Event {
	if g.rng == nil {
		g.Reset(core.RuntimeConfig{})
	}
	dt = max(dt, 0)
	g.ticks++

	var events []Event
	for _, ev := range g.queue.Drain() {
		events = append(events, g.handleInput(ev)...)
	}

	s := &g.state
	dtMS := dt * 1000
	switch s.Mode {
	case ModePlaying:
		events = append(events, g.stepPlaying(dt)...)
	case ModeLevelUp:
		events = append(events, advanceBanner(s, g.cfg, g.rng, dtMS)...)
	case ModeUpgrading, ModeGameOver:
		// Waiting for a selection or a restart.
	}
	return events
}

func (g *Game) stepPlaying(dt float64) []Event {
	s := &g.state
	var events []Event

	speed := s.Player.EffectiveSpeed(s.Upgrades.Count(UpgradeSpeed), g.cfg.Scaling.SpeedPerUpgrade)
	movePlayer(s, g.input.Vector(), speed, dt)
	events = append(events, spawnEnemies(s, g.rng, g.cfg.EnemySpeed(s.Level), dt)...)
	moveEnemies(s, dt)
	fireProjectiles(s, g.cfg.Timing.FireIntervalSecs, g.cfg.BulletSpeedFor(s.Upgrades.Count(UpgradeBulletSpeed)), dt)
	moveProjectiles(s, dt)
	events = append(events, resolveHits(s, g.cfg.Scaling.KillScore)...)

	s.Survived += dt
	if contact := resolvePlayerContact(s); contact != nil {
		return append(events, contact...)
	}
	return append(events, advanceLevel(s, g.cfg, dt*1000)...)
}

func (g *Game) handleInput(ev input.Event) []Event {
	if g.input.Apply(ev) {
		return nil
	}
	switch e := ev.(type) {
	case input.MenuMoved:
		moveCursor(&g.state, e.Delta)
	case input.MenuConfirmed:
		return applyUpgrade(&g.state, g.state.Cursor)
	case input.UpgradeSelected:
		return applyUpgrade(&g.state, e.Index)
	case input.RestartRequested:
		return g.Restart()
	case input.Resized:
		g.Resize(e.Width, e.Height)
	}
	return nil
}

// SelectUpgrade applies the option at index. It does nothing unless the
// upgrade menu is open and index is in range.
func (g *Game) SelectUpgrade(index int) []Event {
	return applyUpgrade(&g.state, index)
}

// Restart begins a new run. It only has an effect after game over.
func (g *Game) Restart() []Event {
	if g.state.Mode != ModeGameOver {
		return nil
	}
	g.startRun()
	return []Event{Restarted{}, ModeChanged{From: ModeGameOver, To: ModePlaying}}
}

// Resize changes the arena bounds and pulls the player back inside.
func (g *Game) Resize(width, height float64) {
	if !(width > 0) || !(height > 0) {
		return
	}
	s := &g.state
	s.Width, s.Height = width, height
	s.Player.Pos.X = min(s.Player.Pos.X, width-s.Player.Size)
	s.Player.Pos.Y = min(s.Player.Pos.Y, height-s.Player.Size)
	clampPlayer(&s.Player, width, height)
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.state.Mode
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.state.Level
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.SurvivorConfig {
	return g.cfg
}

// Seed returns the seed passed to the last Reset.
func (g *Game) Seed() int64 {
	return g.seed
}
