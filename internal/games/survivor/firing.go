package survivor

import "github.com/anillaksu/neonsurvivor/internal/core"

var (
	cardinalDirections = []core.Vec2{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	// Diagonals are not normalized, so they travel √2 faster.
	diagonalDirections = []core.Vec2{{X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
)

// volleyDirections returns the firing directions for the given number of
// extra-direction upgrades.
func volleyDirections(extra int) []core.Vec2 {
	if extra <= 0 {
		return cardinalDirections
	}
	dirs := make([]core.Vec2, 0, len(cardinalDirections)+len(diagonalDirections))
	dirs = append(dirs, cardinalDirections...)
	return append(dirs, diagonalDirections...)
}

// fireProjectiles advances the fire timer and emits a volley from the
// player's position when it expires.
func fireProjectiles(s *State, interval, bulletSpeed, dt float64) {
	s.FireTimer += dt
	if s.FireTimer < interval {
		return
	}
	s.FireTimer = 0
	for _, dir := range volleyDirections(s.Upgrades.Count(UpgradeExtraDirections)) {
		s.Projectiles = append(s.Projectiles, Projectile{
			Pos:  s.Player.Pos,
			Vel:  dir.Scale(bulletSpeed),
			Size: ProjectileSize,
		})
	}
}

// BulletPattern names the current volley shape for HUDs.
func BulletPattern(u Upgrades) string {
	if u.Count(UpgradeExtraDirections) > 0 {
		return "8-Way"
	}
	return "4-Way"
}
