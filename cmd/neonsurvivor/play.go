package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/anillaksu/neonsurvivor/internal/core"
	"github.com/anillaksu/neonsurvivor/internal/games/survivor"
	"github.com/anillaksu/neonsurvivor/internal/platform/tui"
	"github.com/anillaksu/neonsurvivor/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  WASD/Arrows  - Move
  1-3          - Pick an upgrade
  Up/Down      - Move the upgrade cursor, Enter/Space to pick
  R / click    - Restart after game over
  P/Esc        - Pause
  Q/Ctrl+C     - Quit

Terminals report key repeats but not releases, so a direction stays held
briefly after its last repeat.

Examples:
  neonsurvivor play
  neonsurvivor play --seed 7 --fps 30
  neonsurvivor play --log-file /tmp/neonsurvivor.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is taken by the game)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	cfg := loadConfig(logger)
	recorder, closeStore := openRecorder(logger, storage.FrontendTerminal, rt.Seed)
	defer closeStore()

	logger.Info("starting terminal run", "seed", rt.Seed, "fps", rt.TickRate, "screen", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(survivor.New(cfg), recorder, logger, rt); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
