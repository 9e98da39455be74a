package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmuldo/colorscheme/cielab"
)

var (
	convertFrom string
	convertTo   string
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert TRIPLE",
	Short: "Convert a color between rgb, xyz and lab",
	Long: `Convert a color given as three comma separated components between
sRGB (0-255), CIE XYZ (Y of white = 100) and CIE L*a*b* (D65, 2° observer).
Put the color after "--" when its first component is negative, otherwise
it is read as a flag.

  colorscheme convert --from rgb --to lab 255,128,0
  colorscheme convert --from xyz --to rgb -- -5,10,20`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseTriple(args[0])
		if err != nil {
			return err
		}
		out, err := convert(v, convertFrom, convertTo)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatTriple(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertFrom, "from", "f", "rgb", "source space: rgb, xyz or lab")
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "lab", "target space: rgb, xyz or lab")
}

// convert moves v from one space to another through XYZ.
func convert(v [3]float64, from, to string) ([3]float64, error) {
	if from == to {
		if _, ok := spaces[from]; !ok {
			return v, fmt.Errorf("unknown color space %q", from)
		}
		return v, nil
	}

	src, ok := spaces[from]
	if !ok {
		return v, fmt.Errorf("unknown color space %q", from)
	}
	dst, ok := spaces[to]
	if !ok {
		return v, fmt.Errorf("unknown color space %q", to)
	}
	return dst.fromXYZ(src.toXYZ(v)), nil
}

type space struct {
	toXYZ   func([3]float64) cielab.XYZ
	fromXYZ func(cielab.XYZ) [3]float64
}

var spaces = map[string]space{
	"rgb": {
		toXYZ: func(v [3]float64) cielab.XYZ { return cielab.RGBToXYZ(cielab.RGB{R: v[0], G: v[1], B: v[2]}) },
		fromXYZ: func(c cielab.XYZ) [3]float64 {
			rgb := cielab.XYZToRGB(c)
			return [3]float64{rgb.R, rgb.G, rgb.B}
		},
	},
	"xyz": {
		toXYZ:   func(v [3]float64) cielab.XYZ { return cielab.XYZ{X: v[0], Y: v[1], Z: v[2]} },
		fromXYZ: func(c cielab.XYZ) [3]float64 { return [3]float64{c.X, c.Y, c.Z} },
	},
	"lab": {
		toXYZ: func(v [3]float64) cielab.XYZ { return cielab.LABToXYZ(cielab.LAB{L: v[0], A: v[1], B: v[2]}) },
		fromXYZ: func(c cielab.XYZ) [3]float64 {
			lab := cielab.XYZToLAB(c)
			return [3]float64{lab.L, lab.A, lab.B}
		},
	},
}

// parseTriple parses "a,b,c".
func parseTriple(s string) ([3]float64, error) {
	var v [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("%q: want three comma separated numbers", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, fmt.Errorf("%q: %v", s, err)
		}
		v[i] = f
	}
	return v, nil
}

func formatTriple(v [3]float64) string {
	return fmt.Sprintf("%.4f,%.4f,%.4f", v[0], v[1], v[2])
}
