package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/colorscheme/cielab"
	"github.com/mmuldo/colorscheme/palette"
)

var matchLimit int

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match TARGET COLOR...",
	Short: "Rank palette colors by perceptual distance from a target",
	Long: `Rank palette colors, given as hex, by their CIEDE2000 distance from a
target color.

  colorscheme match '#ff8800' '#ff0000' '#ffff00' '#884400'`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := cielab.ParseHex(args[0])
		if err != nil {
			return err
		}

		hexes := args[1:]
		labs := make([]cielab.LAB, len(hexes))
		for i, h := range hexes {
			c, err := cielab.ParseHex(h)
			if err != nil {
				return err
			}
			labs[i] = cielab.RGBToLAB(c)
		}

		for i, m := range palette.Rank(cielab.RGBToLAB(target), labs) {
			if matchLimit > 0 && i >= matchLimit {
				break
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %8.4f\n", cielab.LABToRGB(m.Color).Hex(), m.DeltaE)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().IntVarP(&matchLimit, "limit", "n", 0, "print at most this many matches (0 for all)")
}
