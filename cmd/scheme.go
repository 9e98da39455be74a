package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorscheme/image"
	"github.com/mmuldo/colorscheme/scheme"
)

// schemeCmd represents the scheme command
var schemeCmd = &cobra.Command{
	Use:   "scheme FILE",
	Short: "Generate a color scheme from an image",
	Long: `Generate a color scheme from an image, based on the k-means algorithm.

Pixels are sampled at random, converted to CIELAB and clustered using the
CIEDE2000 color difference. Each cluster is printed with its share of the
samples, most prevalent first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		swatches, err := generate(args[0])
		if err != nil {
			return err
		}
		display(cmd.OutOrStdout(), swatches, viper.GetBool("color"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemeCmd)

	f := schemeCmd.Flags()
	f.BoolP("color", "c", false, "enable colorful printing")
	f.Int("sample", scheme.DefaultSamples, "sample size")
	f.Int("cluster", scheme.DefaultClusters, "number of clusters for k-means algorithm")
	f.Int64("seed", -1, "RNG seed, negative for random seed")
	f.Int("quantize", 0, "quantize the image to this many colors before sampling")
	f.Int("max-iterations", 0, "bound on k-means iterations (0 for the default)")

	for _, name := range []string{"color", "sample", "cluster", "seed", "quantize", "max-iterations"} {
		viper.BindPFlag(name, f.Lookup(name))
	}
}

// generate loads the image at path and extracts a scheme using the
// configured options.
func generate(path string) ([]scheme.Swatch, error) {
	img, err := image.Load(path)
	if err != nil {
		return nil, err
	}

	return scheme.Generate(img, scheme.Options{
		Clusters:      viper.GetInt("cluster"),
		Samples:       viper.GetInt("sample"),
		Seed:          viper.GetInt64("seed"),
		Quantize:      viper.GetInt("quantize"),
		MaxIterations: viper.GetInt("max-iterations"),
	})
}
