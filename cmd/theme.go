package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorscheme/theme"
)

// terminals maps supported terminals to their config file, relative to
// both the templates directory and the home directory.
var terminals = map[string]string{
	"termite":   filepath.Join(".config", "termite", "config"),
	"alacritty": filepath.Join(".config", "alacritty", "colors.yml"),
	"kitty":     filepath.Join(".config", "kitty", "theme.conf"),
}

var (
	themeName    string
	transparency float64
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Create and apply terminal themes",
}

var themeCreateCmd = &cobra.Command{
	Use:   "create FILE",
	Short: "Creates a new theme from image",
	Long: `Creates a new theme from image. The scheme options of the scheme
command apply; the swatches are split into dark and light halves and
assigned to color0, color1, ... in order of prevalence.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		swatches, err := generate(args[0])
		if err != nil {
			return err
		}

		opts := map[string]interface{}{}
		if cmd.Flags().Changed("transparency") {
			opts["transparency"] = transparency
		}
		t, err := theme.Create(theme.Delegate(swatches), opts)
		if err != nil {
			return err
		}

		dir, err := homedir.Expand(viper.GetString("themes"))
		if err != nil {
			return err
		}
		if err := theme.Save(t, dir, themeName); err != nil {
			return err
		}

		display(cmd.OutOrStdout(), swatches, viper.GetBool("color"))
		fmt.Fprintf(cmd.OutOrStdout(), "saved theme %s to %s\n", themeName, dir)
		return nil
	},
}

var themeSwitchCmd = &cobra.Command{
	Use:   "switch NAME",
	Short: "Render a saved theme into a terminal config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := viper.GetString("terminal")
		rel, ok := terminals[term]
		if !ok {
			return fmt.Errorf("'%s' is not a supported app", term)
		}

		themes, err := homedir.Expand(viper.GetString("themes"))
		if err != nil {
			return err
		}
		templates, err := homedir.Expand(viper.GetString("templates"))
		if err != nil {
			return err
		}
		home, err := homedir.Dir()
		if err != nil {
			return err
		}

		t, err := theme.Load(themes, args[0])
		if err != nil {
			return err
		}
		return theme.Render(t, filepath.Join(templates, rel), filepath.Join(home, rel))
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeCreateCmd, themeSwitchCmd)

	themeCreateCmd.Flags().StringVarP(&themeName, "name", "n", "default", "theme name")
	themeCreateCmd.Flags().Float64Var(&transparency, "transparency", 1.0, "background transparency")
	themeCreateCmd.Flags().AddFlagSet(schemeCmd.Flags())

	themeSwitchCmd.Flags().StringP("terminal", "t", "", "user terminal")
	viper.BindPFlag("terminal", themeSwitchCmd.Flags().Lookup("terminal"))
}
