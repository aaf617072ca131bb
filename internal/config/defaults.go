package config

import (
	_ "embed"
)

//go:embed defaults/survivor.yaml
var defaultSurvivorYAML []byte

// Default returns the built-in configuration. The three rates match the
// fallback values {enemySpawnRate: 2, bulletSpeed: 7, playerSpeed: 5}.
func Default() SurvivorConfig {
	return SurvivorConfig{
		EnemySpawnRate: 2,
		BulletSpeed:    7,
		PlayerSpeed:    5,
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Timing: TimingConfig{
			LevelDurationMS:  30000,
			BannerDurationMS: 3000,
			FireIntervalSecs: 0.3,
		},
		Scaling: ScalingConfig{
			SpawnRatePerLevel:     0.5,
			EnemyBaseSpeed:        2,
			EnemySpeedPerLevel:    0.1,
			SpeedPerUpgrade:       0.5,
			BulletSpeedPerUpgrade: 1.5,
			KillScore:             10,
		},
		Joystick: JoystickConfig{
			MaxRadius: 50,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultSurvivorYAML
}
