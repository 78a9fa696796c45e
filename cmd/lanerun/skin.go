package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var skinCmd = &cobra.Command{
	Use:   "skin",
	Short: "Manage the player image reference",
	Long: `The player image reference marks the runner as skinned; it is drawn
highlighted while one is set.

Examples:
  lanerun skin set ./me.png
  lanerun skin show
  lanerun skin clear`,
}

var skinSetCmd = &cobra.Command{
	Use:   "set <ref>",
	Short: "Set the player image reference",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if err := mustOpenProfile().SetPlayerImage(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Player image set to %s\n", args[0])
	},
}

var skinShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the player image reference",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		ref, err := mustOpenProfile().LoadPlayerImage()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if ref == "" {
			fmt.Println("No player image set")
			return
		}
		fmt.Println(ref)
	},
}

var skinClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the player image reference",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if err := mustOpenProfile().ClearPlayerImage(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Player image cleared")
	},
}

func init() {
	skinCmd.AddCommand(skinSetCmd, skinShowCmd, skinClearCmd)
}
