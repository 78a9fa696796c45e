package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lanerun/internal/platform/tui"
	"github.com/vovakirdan/lanerun/internal/storage"
)

var (
	flagLimit       int
	flagRecent      bool
	flagPlayer      string
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best recorded runs and aggregated stats.

Examples:
  lanerun scores
  lanerun scores --limit 20
  lanerun scores --recent
  lanerun scores --player alice
  lanerun scores -i            # Interactive scoreboard`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded run",
	Args:  cobra.NoArgs,
	Run:   runScoresClear,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only count this player's runs in the stats")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a scoreboard UI")
	scoresCmd.AddCommand(scoresClearCmd)
}

func mustOpenStore() *storage.Store {
	store, err := storage.Open(dbPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScores(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	title := "Top Runs"
	runs, err := store.TopRuns(flagLimit)
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Lane Runner - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'lanerun play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-8s  %s\n", "Rank", "Player", "Score", "Speed", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-8s  %s\n", "----", "------", "-----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %-8s  %s\n",
			i+1, r.Player, r.Score, r.Speed, r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	stats, err := store.Stats(flagPlayer)
	if err != nil {
		return
	}
	who := "all players"
	if flagPlayer != "" {
		who = flagPlayer
	}
	fmt.Printf("Best: %d  (%s, %d runs, avg %.1f, %s played)\n",
		stats.HighScore, who, stats.Runs, stats.AvgScore, stats.TotalDuration.Round(time.Second))
}

func runScoresClear(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if err := store.ClearRuns(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println("Run history cleared. The all-time high score is kept in the profile.")
}
