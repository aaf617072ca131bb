package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/anillaksu/neonsurvivor/internal/core"
	"github.com/anillaksu/neonsurvivor/internal/games/survivor"
	"github.com/anillaksu/neonsurvivor/internal/platform/window"
	"github.com/anillaksu/neonsurvivor/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window sized to the configured arena and start a run.

Controls:
  WASD/Arrows       - Move
  Drag (mouse/touch) - Virtual joystick anchored where the drag began
  1-3 / tap option  - Pick an upgrade
  Up/Down + Enter   - Move the upgrade cursor and pick
  Click/tap/R       - Restart after game over
  F                 - Toggle fullscreen (the arena follows the window)
  Q/Esc             - Quit

Examples:
  neonsurvivor window
  neonsurvivor window --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)
	cfg := loadConfig(logger)

	width, height := cfg.Arena.Pixels()
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	recorder, closeStore := openRecorder(logger, storage.FrontendWindow, rt.Seed)
	defer closeStore()

	logger.Info("opening window", "seed", rt.Seed, "arena", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH))
	frontend := window.New(survivor.New(cfg), recorder, logger, rt)
	if err := window.Run(frontend, "Neon Survivor", rt.ScreenW, rt.ScreenH); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
