package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/colorscheme/cielab"
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff LAB1 LAB2",
	Short: "Print the CIEDE2000 difference of two L*a*b* colors",
	Long: `Print the CIEDE2000 difference of two L*a*b* colors, each given as
"L,a,b". Put the colors after "--" when a component starts with a minus
sign, otherwise it is read as a flag.

  colorscheme diff 50,2.6772,-79.7751 50,0,-82.7485
  colorscheme diff -- 50,0,0 -10,0,0`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var labs [2]cielab.LAB
		for i, a := range args {
			v, err := parseTriple(a)
			if err != nil {
				return err
			}
			labs[i] = cielab.LAB{L: v[0], A: v[1], B: v[2]}
		}

		d, err := cielab.Delta(labs[0], labs[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", d)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
