package survivor

import "github.com/anillaksu/neonsurvivor/internal/core"

// Entity sizes in arena units. Collision uses (sizeA+sizeB)/2 as the
// center-distance threshold.
const (
	PlayerSize     = 20.0
	EnemySize      = 15.0
	ProjectileSize = 4.0
)

// ReferenceFrameRate converts per-frame speeds into per-second speeds.
// Speeds are tuned as "units per frame at 60 FPS" and every movement is
// multiplied by ReferenceFrameRate × dt.
const ReferenceFrameRate = 60.0

// Spawn and culling margins outside the arena.
const (
	SpawnOffset     = 20.0
	EnemyCullMargin = 100.0
)

// Player is the single controllable avatar.
type Player struct {
	Pos       core.Vec2
	Size      float64
	BaseSpeed float64 // units per reference frame before upgrades
}

// EffectiveSpeed returns the player's speed with speed upgrades applied.
func (p Player) EffectiveSpeed(speedUpgrades int, perUpgrade float64) float64 {
	return p.BaseSpeed + float64(speedUpgrades)*perUpgrade
}

// Enemy pursues the player at a speed frozen when it spawned.
type Enemy struct {
	Pos   core.Vec2
	Size  float64
	Speed float64
}

// Projectile moves in a straight line at a fixed velocity.
type Projectile struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Size float64
}

// overlaps reports whether two entities collide. Contact exactly at the
// threshold distance is a miss.
func overlaps(a core.Vec2, sizeA float64, b core.Vec2, sizeB float64) bool {
	return core.Dist(a, b) < (sizeA+sizeB)/2
}

// Store owns every live entity. Removal happens by filtering the slices in
// place so collection order is preserved.
type Store struct {
	Player      Player
	Enemies     []Enemy
	Projectiles []Projectile
}

// Clear removes all enemies and projectiles.
func (s *Store) Clear() {
	s.Enemies = s.Enemies[:0]
	s.Projectiles = s.Projectiles[:0]
}
