package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanerun/internal/profile"
)

var flagAllImages bool

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Manage obstacle image references",
	Long: `Obstacle image references are drawn from at random when obstacles
spawn. Removing an image only marks its record deleted.

Examples:
  lanerun images add ./rock.png ./tree.png
  lanerun images list
  lanerun images remove 0
  lanerun images clear`,
}

var imagesAddCmd = &cobra.Command{
	Use:   "add <ref>...",
	Short: "Add obstacle image references",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		prof := mustOpenProfile()
		for _, ref := range args {
			if err := prof.AddImage(ref); err != nil {
				fmt.Fprintf(os.Stderr, "Error adding %s: %v\n", ref, err)
				os.Exit(1)
			}
		}
		fmt.Printf("Added %d image(s)\n", len(args))
	},
}

var imagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List obstacle image references",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		prof := mustOpenProfile()
		if flagAllImages {
			recs, err := prof.ImageRecords()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			for _, r := range recs {
				state := "active"
				if r.Deleted {
					state = "deleted"
				}
				fmt.Printf("  %-8s %s\n", state, r.Image)
			}
			return
		}

		active, err := prof.ActiveImages()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(active) == 0 {
			fmt.Println("No obstacle images. Obstacles are drawn as blocks.")
			return
		}
		for i, img := range active {
			fmt.Printf("  %-3d %s\n", i, img)
		}
	},
}

var imagesRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove an image by its index in 'images list'",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		i, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: index must be a number, got %q\n", args[0])
			os.Exit(1)
		}
		prof := mustOpenProfile()
		if err := prof.DeleteImage(i); err != nil {
			if errors.Is(err, profile.ErrImageIndex) {
				fmt.Fprintln(os.Stderr, "Run 'lanerun images list' to see valid indexes.")
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Removed image %d\n", i)
	},
}

var imagesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every obstacle image",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if err := mustOpenProfile().ClearImages(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All obstacle images removed")
	},
}

func init() {
	imagesListCmd.Flags().BoolVar(&flagAllImages, "all", false, "Include deleted records")
	imagesCmd.AddCommand(imagesAddCmd, imagesListCmd, imagesRemoveCmd, imagesClearCmd)
}
