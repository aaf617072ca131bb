package survivor

import (
	"github.com/anillaksu/neonsurvivor/internal/core"
)

// movePlayer applies the normalized movement vector and clamps the player
// fully inside the arena.
func movePlayer(s *State, move core.Vec2, speed, dt float64) {
	p := &s.Player
	p.Pos = p.Pos.Add(move.Scale(speed * ReferenceFrameRate * dt))
	clampPlayer(p, s.Width, s.Height)
}

func clampPlayer(p *Player, w, h float64) {
	half := p.Size / 2
	p.Pos.X = core.ClampF(p.Pos.X, half, w-half)
	p.Pos.Y = core.ClampF(p.Pos.Y, half, h-half)
}

// moveEnemies steps every enemy toward the player and culls those that
// drifted beyond EnemyCullMargin outside the arena.
func moveEnemies(s *State, dt float64) {
	target := s.Player.Pos
	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		d := target.Sub(e.Pos)
		if dist := d.Len(); dist > 0 {
			e.Pos = e.Pos.Add(d.Scale(e.Speed * ReferenceFrameRate * dt / dist))
		}
		if outside(e.Pos, s.Width, s.Height, EnemyCullMargin) {
			continue
		}
		kept = append(kept, e)
	}
	s.Enemies = kept
}

// moveProjectiles advances projectiles and drops any that left the arena.
func moveProjectiles(s *State, dt float64) {
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		p.Pos = p.Pos.Add(p.Vel.Scale(ReferenceFrameRate * dt))
		if outside(p.Pos, s.Width, s.Height, 0) {
			continue
		}
		kept = append(kept, p)
	}
	s.Projectiles = kept
}

// outside reports whether pos lies beyond the arena grown by margin.
func outside(pos core.Vec2, w, h, margin float64) bool {
	return pos.X < -margin || pos.X > w+margin || pos.Y < -margin || pos.Y > h+margin
}
