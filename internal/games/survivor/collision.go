package survivor

import "slices"

// resolveHits matches each projectile against the first overlapping enemy
// in collection order. Both are removed and the kill is scored. A destroyed
// enemy cannot be hit again in the same pass.
func resolveHits(s *State, points int) []Event {
	var events []Event
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		j := slices.IndexFunc(s.Enemies, func(e Enemy) bool {
			return overlaps(p.Pos, p.Size, e.Pos, e.Size)
		})
		if j < 0 {
			kept = append(kept, p)
			continue
		}
		killed := s.Enemies[j]
		s.Enemies = slices.Delete(s.Enemies, j, j+1)
		s.Score += points
		events = append(events, EnemyKilled{Pos: killed.Pos, Points: points, Score: s.Score})
	}
	s.Projectiles = kept
	return events
}

// resolvePlayerContact ends the run when any surviving enemy touches the
// player.
func resolvePlayerContact(s *State) []Event {
	for _, e := range s.Enemies {
		if overlaps(s.Player.Pos, s.Player.Size, e.Pos, e.Size) {
			return []Event{
				s.setMode(ModeGameOver),
				RunEnded{Score: s.Score, Level: s.Level, Upgrades: s.Upgrades, Survived: s.Survived},
			}
		}
	}
	return nil
}
