package survivor

import (
	"math/rand"

	"github.com/anillaksu/neonsurvivor/internal/core"
)

// Edge identifies a side of the arena.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// spawnEnemies advances the spawn timer and creates at most one enemy.
// Leftover time past the interval is dropped when the timer resets.
func spawnEnemies(s *State, rng *rand.Rand, enemySpeed, dt float64) []Event {
	if s.SpawnRate <= 0 {
		return nil
	}
	s.SpawnTimer += dt
	if s.SpawnTimer < 1/s.SpawnRate {
		return nil
	}
	s.SpawnTimer = 0

	pos := spawnPoint(rng, Edge(rng.Intn(4)), s.Width, s.Height)
	s.Enemies = append(s.Enemies, Enemy{Pos: pos, Size: EnemySize, Speed: enemySpeed})
	return []Event{EnemySpawned{Pos: pos, Speed: enemySpeed}}
}

// spawnPoint returns a uniform point along edge, SpawnOffset units outside.
func spawnPoint(rng *rand.Rand, edge Edge, w, h float64) core.Vec2 {
	switch edge {
	case EdgeTop:
		return core.V(rng.Float64()*w, -SpawnOffset)
	case EdgeRight:
		return core.V(w+SpawnOffset, rng.Float64()*h)
	case EdgeBottom:
		return core.V(rng.Float64()*w, h+SpawnOffset)
	default:
		return core.V(-SpawnOffset, rng.Float64()*h)
	}
}
