// lanerun is a lane-based endless runner for the terminal.
//
// Usage:
//
//	lanerun play             - Play locally
//	lanerun serve            - Start SSH server for remote play
//	lanerun scores           - Show top runs and stats
//	lanerun images ...       - Manage obstacle image references
//	lanerun skin ...         - Manage the player image reference
//	lanerun config           - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible runs
//	--data-dir <path>   - Where the database, log and screenshots live (default: ~/.lanerun)
//	--db <path>         - Set database path (default: <data-dir>/runs.db)
//	--config <path>     - Path to a lanerun.yaml
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanerun/internal/config"
	"github.com/vovakirdan/lanerun/internal/profile"
	"github.com/vovakirdan/lanerun/internal/storage"
)

// appName keys the gdata profile directory.
const appName = "lanerun"

var (
	// Global flags
	flagSeed     int64
	flagDataDir  string
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
	Use:   "lanerun",
	Short: "Lane Runner - dodge obstacles in your terminal",
	Long: `Lane Runner is an endless runner played across vertical lanes.
Switch lanes and jump to dodge falling obstacles, collect power-ups and
chase the high score.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View run history
  images   - Manage obstacle image references
  skin     - Manage the player image reference
  config   - Print the effective configuration

Examples:
  lanerun play
  lanerun play --seed 42
  lanerun serve --ssh :2222
  lanerun scores --limit 20`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "~/.lanerun", "Directory for the database, log and screenshots")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (default <data-dir>/runs.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom lanerun.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(imagesCmd)
	rootCmd.AddCommand(skinCmd)
	rootCmd.AddCommand(configCmd)
}

// dataPath resolves a file inside the data directory, expanding ~.
func dataPath(name string) string {
	dir := flagDataDir
	if strings.HasPrefix(dir, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}
	return filepath.Join(dir, name)
}

func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return dataPath("runs.db")
}

// mustLoadConfig loads the game config or exits.
func mustLoadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// mustOpenProfile opens the profile store or exits. Profile commands are
// useless without it.
func mustOpenProfile() *profile.Store {
	prof, err := profile.Open(appName, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile: %v\n", err)
		os.Exit(1)
	}
	return prof
}

// openStores opens the profile and the run history. Both are optional for
// playing; failures are logged and the game runs without them.
func openStores(logger *log.Logger) (*profile.Store, *storage.Store) {
	prof, err := profile.Open(appName, logger)
	if err != nil {
		logger.Warn("could not open profile", "error", err)
		prof = nil
	}
	store, err := storage.Open(dbPath())
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}
	return prof, store
}
