package config

// SpawnRate returns enemies per second for the given level.
func (c SurvivorConfig) SpawnRate(level int) float64 {
	return c.EnemySpawnRate + float64(level-1)*c.Scaling.SpawnRatePerLevel
}

// EnemySpeed returns the speed assigned to enemies spawned at the given level.
func (c SurvivorConfig) EnemySpeed(level int) float64 {
	return c.Scaling.EnemyBaseSpeed + float64(level)*c.Scaling.EnemySpeedPerLevel
}

// BulletSpeedFor returns projectile speed after the given number of bullet upgrades.
func (c SurvivorConfig) BulletSpeedFor(upgrades int) float64 {
	return c.BulletSpeed + float64(upgrades)*c.Scaling.BulletSpeedPerUpgrade
}
