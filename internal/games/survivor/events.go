package survivor

import "github.com/anillaksu/neonsurvivor/internal/core"

// Event is emitted by a tick for the presentation layer to react to.
type Event interface {
	simEvent()
}

// EnemySpawned is emitted when the spawner creates an enemy.
type EnemySpawned struct {
	Pos   core.Vec2
	Speed float64
}

func (EnemySpawned) simEvent() {}

// EnemyKilled is emitted when a projectile destroys an enemy.
type EnemyKilled struct {
	Pos    core.Vec2
	Points int
	Score  int // Score after the kill
}

func (EnemyKilled) simEvent() {}

// ModeChanged is emitted on every mode transition.
type ModeChanged struct {
	From Mode
	To   Mode
}

func (ModeChanged) simEvent() {}

// LevelReached is emitted when the level timer expires.
type LevelReached struct {
	Level     int
	SpawnRate float64
}

func (LevelReached) simEvent() {}

// UpgradeOffered is emitted when the upgrade menu opens.
type UpgradeOffered struct {
	Options []UpgradeKind
}

func (UpgradeOffered) simEvent() {}

// UpgradeApplied is emitted when a selection increments an upgrade counter.
type UpgradeApplied struct {
	Kind  UpgradeKind
	Count int // Counter value after the increment
}

func (UpgradeApplied) simEvent() {}

// RunEnded is emitted when the player is hit.
type RunEnded struct {
	Score    int
	Level    int
	Upgrades Upgrades
	Survived float64 // Seconds of playing-mode time
}

func (RunEnded) simEvent() {}

// Restarted is emitted when a new run begins.
type Restarted struct{}

func (Restarted) simEvent() {}
