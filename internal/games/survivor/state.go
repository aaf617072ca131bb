package survivor

import "github.com/anillaksu/neonsurvivor/internal/core"

// State is the whole mutable simulation. Systems are functions that take a
// *State, mutate it and return the events they produced. Nothing outside
// the owning Game touches it; readers get a Snapshot.
type State struct {
	Width, Height float64

	Store
	Score    int
	Level    int
	Upgrades Upgrades
	Mode     Mode

	SpawnRate  float64 // enemies per second
	SpawnTimer float64 // seconds since last spawn
	FireTimer  float64 // seconds since last volley

	LevelElapsedMS  float64 // playing-mode time in the current level
	BannerElapsedMS float64 // time spent in ModeLevelUp

	Options []UpgradeKind
	Cursor  int

	Survived float64 // playing-mode seconds in the current run
}

// center returns the middle of the arena.
func (s *State) center() core.Vec2 {
	return core.V(s.Width/2, s.Height/2)
}

// setMode switches mode and reports the transition.
func (s *State) setMode(to Mode) Event {
	from := s.Mode
	s.Mode = to
	return ModeChanged{From: from, To: to}
}
