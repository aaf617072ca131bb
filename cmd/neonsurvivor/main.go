// neonsurvivor is a top-down survival arcade game: dodge the enemies that
// pour in from the arena edges while your ship fires on its own.
//
// Usage:
//
//	neonsurvivor play        - Play in the terminal
//	neonsurvivor window      - Play in a desktop window (keyboard, mouse or touch)
//	neonsurvivor scores      - Show the best recorded runs
//	neonsurvivor config      - Print the resolved game configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.neonsurvivor/runs.db)
//	--config <path>      - Use a custom config file (YAML or the web config.json)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/anillaksu/neonsurvivor/internal/config"
	"github.com/anillaksu/neonsurvivor/internal/platform"
	"github.com/anillaksu/neonsurvivor/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonsurvivor",
	Short: "Neon Survivor - survive the swarm for as long as you can",
	Long: `Neon Survivor is a top-down survival arcade game. Enemies spawn at the
edges of the arena and chase you; your ship fires in fixed directions on its
own. Every 30 seconds the level rises and you pick one of three upgrades.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - View the best recorded runs
  config   - Print the resolved configuration

Examples:
  neonsurvivor play
  neonsurvivor window --seed 42
  neonsurvivor play --config ./config.json
  neonsurvivor scores --plain`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neonsurvivor/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom game config (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the structured logger used by every command.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "neonsurvivor",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig resolves the game config, falling back to defaults.
func loadConfig(logger *log.Logger) config.SurvivorConfig {
	return config.LoadOrDefault(flagConfig, logger)
}

// openRecorder opens the runs database for a frontend. A database that
// cannot be opened disables run recording; the game still works.
func openRecorder(logger *log.Logger, frontend string, seed int64) (*platform.Recorder, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database, runs will not be saved", "path", flagDBPath, "err", err)
		return platform.NewRecorder(nil, logger, frontend, seed), func() {}
	}
	return platform.NewRecorder(store, logger, frontend, seed), func() {
		if err := store.Close(); err != nil {
			logger.Error("closing runs database", "err", err)
		}
	}
}
