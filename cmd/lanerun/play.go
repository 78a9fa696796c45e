package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lanerun/internal/config"
	"github.com/vovakirdan/lanerun/internal/core"
	"github.com/vovakirdan/lanerun/internal/logging"
	"github.com/vovakirdan/lanerun/internal/platform/tui"
	"github.com/vovakirdan/lanerun/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the lane runner in this terminal.

Controls:
  Left/A, Right/D  - Switch lane
  Up/W/Space       - Jump over low obstacles
  +/-              - Change speed level (1-5)
  Enter/R          - Start or restart a run
  P/Esc            - Pause
  ?                - Show all keys
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Power-ups:
  S  Shield        - Absorbs one hit
  2  Double score  - 2x points for 10 seconds
  ~  Slow motion   - Half speed for 10 seconds

The game logs to <data-dir>/lanerun.log since the terminal belongs to the UI.

Examples:
  lanerun play
  lanerun play --seed 42
  lanerun play --config ./my-lanerun.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := playLocal(mustLoadConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// playLocal runs one local session; deferred closes run before any exit.
func playLocal(cfg config.Config) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt := core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger, logFile, err := logging.OpenFile(dataPath("lanerun.log"), "lanerun", flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = logging.Discard()
	}
	if logFile != nil {
		defer logFile.Close()
	}

	prof, store := openStores(logger)
	if store != nil {
		defer store.Close()
	}

	opts := session.Options{
		Player: "local",
		Seed:   rt.Seed,
		Logger: logger,
	}
	if prof != nil {
		opts.Scores = prof
		opts.Assets = prof
	}
	if store != nil {
		opts.Runs = store
	}
	logger.Info("starting local game", "seed", rt.Seed, "size", fmt.Sprintf("%dx%d", width, height))

	sess := session.New(cfg, opts)
	if err := tui.Run(sess, tui.Options{Runtime: rt, ScreenshotDir: dataPath("screenshots")}); err != nil {
		logger.Error("game exited", "error", err)
		return err
	}
	return nil
}
