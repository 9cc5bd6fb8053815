// Command imgphash is the CLI collaborator named in spec.md §6: it takes
// exactly two image paths, decodes them, and prints a one-line verdict.
// It carries no flags, no environment variables, and no persisted state —
// the comparison is a pure function of its two arguments.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/imgphash/internal/decode"
	"github.com/AnyUserName/imgphash/internal/phash"
)

// cliConfig is the tolerance the binary compares under: N=32, R=8, T=3.
// phash.DefaultConfig's T=0 is an exact-hash-match config suited to library
// callers that want their own tolerance; this binary ships with the
// mild-transform tolerance (spec.md §8 scenario 6) so hashes a few bits
// apart still count as the same picture.
var cliConfig = phash.Config{DCTDimension: 32, DCTReducedDimension: 8, AllowedDistance: 3}

var rootCmd = &cobra.Command{
	Use:          "imgphash <image-a> <image-b>",
	Short:        "Compare two images for perceptual similarity",
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runCompare,
}

func Execute() error {
	return rootCmd.Execute()
}

func runCompare(_ *cobra.Command, args []string) error {
	left, err := decode.LoadImage(args[0])
	if err != nil {
		return fmt.Errorf("failed to load first image: %w", err)
	}
	right, err := decode.LoadImage(args[1])
	if err != nil {
		return fmt.Errorf("failed to load second image: %w", err)
	}

	same, err := phash.CompareImages(left, right, cliConfig)
	if err != nil {
		return fmt.Errorf("failed to compare images: %w", err)
	}

	if same {
		fmt.Println("Pictures are the same")
	} else {
		fmt.Println("Pictures are different")
	}
	return nil
}

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
