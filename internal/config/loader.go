package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// webKeys mirrors the camelCase keys of the browser build's config.json.
// JSON is valid YAML, so the same decoder reads both files.
type webKeys struct {
	EnemySpawnRate *float64 `yaml:"enemySpawnRate"`
	BulletSpeed    *float64 `yaml:"bulletSpeed"`
	PlayerSpeed    *float64 `yaml:"playerSpeed"`
}

// Parse decodes a YAML or JSON document on top of the defaults and validates it.
// Fields absent from the document keep their default values.
func Parse(data []byte) (SurvivorConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}

	var web webKeys
	if err := yaml.Unmarshal(data, &web); err == nil {
		if web.EnemySpawnRate != nil {
			cfg.EnemySpawnRate = *web.EnemySpawnRate
		}
		if web.BulletSpeed != nil {
			cfg.BulletSpeed = *web.BulletSpeed
		}
		if web.PlayerSpeed != nil {
			cfg.PlayerSpeed = *web.PlayerSpeed
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load loads the survivor configuration.
// Search order: customPath -> ~/.neonsurvivor/config.yaml -> ./configs/survivor.yaml
// -> ./config.json -> embedded default.
// A custom path that cannot be read or parsed is an error; broken files found
// on the search path are skipped.
func Load(customPath string) (SurvivorConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to load %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultSurvivorYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// LoadOrDefault loads the configuration and substitutes the built-in defaults
// on any failure. The failure is logged, never returned.
func LoadOrDefault(customPath string, logger *log.Logger) SurvivorConfig {
	cfg, err := Load(customPath)
	if err != nil {
		if logger != nil {
			logger.Warn("failed to load config, using defaults", "path", customPath, "error", err)
		}
		return Default()
	}
	return cfg
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg SurvivorConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

func searchPaths() []string {
	paths := make([]string, 0, 3)
	if p := userConfigPath("config.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "survivor.yaml"), "config.json")
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neonsurvivor", filename)
}
