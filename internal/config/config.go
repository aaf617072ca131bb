// Package config provides YAML-based configuration loading for Neon Survivor.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when a loaded configuration has out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SurvivorConfig contains all tunable parameters of the simulation.
// The three top-level rates are the values the web build read from config.json.
type SurvivorConfig struct {
	EnemySpawnRate float64        `yaml:"enemy_spawn_rate"`
	BulletSpeed    float64        `yaml:"bullet_speed"`
	PlayerSpeed    float64        `yaml:"player_speed"`
	Arena          ArenaConfig    `yaml:"arena"`
	Timing         TimingConfig   `yaml:"timing"`
	Scaling        ScalingConfig  `yaml:"scaling"`
	Joystick       JoystickConfig `yaml:"joystick"`
}

// ArenaConfig defines the playfield size in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Pixels returns the arena size rounded up to whole pixels, for sizing a window.
func (a ArenaConfig) Pixels() (width, height int) {
	return int(math.Ceil(a.Width)), int(math.Ceil(a.Height))
}

// TimingConfig defines the level, banner and firing timers.
type TimingConfig struct {
	LevelDurationMS  float64 `yaml:"level_duration_ms"`
	BannerDurationMS float64 `yaml:"banner_duration_ms"`
	FireIntervalSecs float64 `yaml:"fire_interval_secs"`
}

// ScalingConfig defines how level and upgrades change simulation parameters.
type ScalingConfig struct {
	SpawnRatePerLevel     float64 `yaml:"spawn_rate_per_level"`
	EnemyBaseSpeed        float64 `yaml:"enemy_base_speed"`
	EnemySpeedPerLevel    float64 `yaml:"enemy_speed_per_level"`
	SpeedPerUpgrade       float64 `yaml:"speed_per_upgrade"`
	BulletSpeedPerUpgrade float64 `yaml:"bullet_speed_per_upgrade"`
	KillScore             int     `yaml:"kill_score"`
}

// JoystickConfig defines the virtual joystick geometry.
type JoystickConfig struct {
	MaxRadius float64 `yaml:"max_radius"`
}

// Validate checks that every rate, size and duration is usable by the simulation.
func (c SurvivorConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"enemy_spawn_rate", c.EnemySpawnRate},
		{"bullet_speed", c.BulletSpeed},
		{"player_speed", c.PlayerSpeed},
		{"arena.width", c.Arena.Width},
		{"arena.height", c.Arena.Height},
		{"timing.level_duration_ms", c.Timing.LevelDurationMS},
		{"timing.banner_duration_ms", c.Timing.BannerDurationMS},
		{"timing.fire_interval_secs", c.Timing.FireIntervalSecs},
		{"joystick.max_radius", c.Joystick.MaxRadius},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"scaling.spawn_rate_per_level", c.Scaling.SpawnRatePerLevel},
		{"scaling.enemy_base_speed", c.Scaling.EnemyBaseSpeed},
		{"scaling.enemy_speed_per_level", c.Scaling.EnemySpeedPerLevel},
		{"scaling.speed_per_upgrade", c.Scaling.SpeedPerUpgrade},
		{"scaling.bullet_speed_per_upgrade", c.Scaling.BulletSpeedPerUpgrade},
		{"scaling.kill_score", float64(c.Scaling.KillScore)},
	}
	for _, p := range nonNegative {
		if !(p.v >= 0) {
			return fmt.Errorf("%w: %s must be >= 0, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}
	return nil
}
