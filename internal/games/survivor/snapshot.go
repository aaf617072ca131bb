package survivor

import (
	"math"
	"slices"

	"github.com/anillaksu/neonsurvivor/internal/core"
)

// Snapshot is a read-only copy of the simulation for renderers and tests.
// Slices are owned by the snapshot and never alias live state.
type Snapshot struct {
	Tick   uint64
	Width  float64
	Height float64

	Player      Player
	Enemies     []Enemy
	Projectiles []Projectile

	Score    int
	Level    int
	Mode     Mode
	Upgrades Upgrades

	SpawnRate     float64
	LevelTimeLeft float64 // seconds until the next level, in playing time
	BannerLeft    float64 // seconds until the upgrade menu opens
	Survived      float64

	Options []UpgradeInfo
	Cursor  int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := &g.state
	opts := make([]UpgradeInfo, len(s.Options))
	for i, k := range s.Options {
		opts[i] = k.Info()
	}
	return Snapshot{
		Tick:          g.ticks,
		Width:         s.Width,
		Height:        s.Height,
		Player:        s.Player,
		Enemies:       slices.Clone(s.Enemies),
		Projectiles:   slices.Clone(s.Projectiles),
		Score:         s.Score,
		Level:         s.Level,
		Mode:          s.Mode,
		Upgrades:      s.Upgrades,
		SpawnRate:     s.SpawnRate,
		LevelTimeLeft: max(0, g.cfg.Timing.LevelDurationMS-s.LevelElapsedMS) / 1000,
		BannerLeft:    max(0, g.cfg.Timing.BannerDurationMS-s.BannerElapsedMS) / 1000,
		Survived:      s.Survived,
		Options:       opts,
		Cursor:        s.Cursor,
	}
}

// BulletPattern returns the HUD label for the current volley shape.
func (snap Snapshot) BulletPattern() string {
	return BulletPattern(snap.Upgrades)
}

// Hash returns a hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixV := func(v core.Vec2) { mixF(v.X); mixF(v.Y) }

	mixF(snap.Width)
	mixF(snap.Height)
	mixV(snap.Player.Pos)
	mix(uint64(snap.Score)) //#nosec G115 -- hash computation
	mix(uint64(snap.Level)) //#nosec G115 -- hash computation
	mix(uint64(snap.Mode))  //#nosec G115 -- hash computation
	for _, c := range snap.Upgrades {
		mix(uint64(c)) //#nosec G115 -- hash computation
	}
	for _, e := range snap.Enemies {
		mixV(e.Pos)
		mixF(e.Speed)
	}
	for _, p := range snap.Projectiles {
		mixV(p.Pos)
		mixV(p.Vel)
	}
	for _, o := range snap.Options {
		mix(uint64(o.Kind)) //#nosec G115 -- hash computation
	}
	mixF(snap.Survived)
	return h
}
