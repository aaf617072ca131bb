package survivor

import (
	"math/rand"

	"github.com/anillaksu/neonsurvivor/internal/config"
)

// advanceLevel accumulates playing time and levels up when the level
// duration is reached. Overshoot is not carried into the next level.
func advanceLevel(s *State, cfg config.SurvivorConfig, dtMS float64) []Event {
	s.LevelElapsedMS += dtMS
	if s.LevelElapsedMS < cfg.Timing.LevelDurationMS {
		return nil
	}
	s.Level++
	s.LevelElapsedMS = 0
	s.BannerElapsedMS = 0
	s.SpawnRate = cfg.SpawnRate(s.Level)
	return []Event{
		LevelReached{Level: s.Level, SpawnRate: s.SpawnRate},
		s.setMode(ModeLevelUp),
	}
}

// advanceBanner counts down the level-up banner and opens the upgrade menu.
func advanceBanner(s *State, cfg config.SurvivorConfig, rng *rand.Rand, dtMS float64) []Event {
	s.BannerElapsedMS += dtMS
	if s.BannerElapsedMS < cfg.Timing.BannerDurationMS {
		return nil
	}
	s.BannerElapsedMS = 0
	s.Options = offerUpgrades(rng, AvailableUpgrades(), OptionCount)
	s.Cursor = 0
	return []Event{
		s.setMode(ModeUpgrading),
		UpgradeOffered{Options: append([]UpgradeKind(nil), s.Options...)},
	}
}

// applyUpgrade applies the option at index. Out-of-range indices and calls
// outside ModeUpgrading change nothing.
func applyUpgrade(s *State, index int) []Event {
	if s.Mode != ModeUpgrading || index < 0 || index >= len(s.Options) {
		return nil
	}
	kind := s.Options[index]
	s.Upgrades[kind]++
	s.Options = nil
	s.Cursor = 0
	return []Event{
		UpgradeApplied{Kind: kind, Count: s.Upgrades[kind]},
		s.setMode(ModePlaying),
	}
}

// moveCursor shifts the upgrade menu cursor, clamped to the options.
func moveCursor(s *State, delta int) {
	if s.Mode != ModeUpgrading || len(s.Options) == 0 {
		return
	}
	s.Cursor = max(0, min(len(s.Options)-1, s.Cursor+delta))
}
