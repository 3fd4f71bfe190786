package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabglide/tabglide/internal/config"
	"github.com/tabglide/tabglide/internal/tui/styles"
	"github.com/tabglide/tabglide/internal/tui/views"
)

var (
	demoTheme string
	demoMode  string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the interactive tab strip demo",
	Long: `Launch a full-screen demo of the tab strip widget.

Tabs, layout mode, and theme come from tabglide.json when one is found
(searched upward from the current directory, then the user config dir);
otherwise built-in defaults are used. Edits to a watched config file are
applied live while the demo is running.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := resolveConfig()
		if err != nil {
			return err
		}

		if demoTheme != "" {
			cfg.Theme = demoTheme
		}
		if demoMode != "" {
			cfg.Bar.Mode = demoMode
		}

		if errs := config.Validate(cfg); len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintln(os.Stderr, styles.Red("error:")+" "+e.Error())
			}
			return fmt.Errorf("invalid config: %d problem(s)", len(errs))
		}

		if verbose && path != "" {
			fmt.Println(styles.Dim("config: " + path))
		}

		return views.RunDemo(cfg, path)
	},
}

// resolveConfig loads the config named by --config, or the nearest
// tabglide.json, or falls back to the built-in demo config. The returned
// path is empty when defaults are in use.
func resolveConfig() (*config.Config, string, error) {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, "", fmt.Errorf("loading config: %w", err)
		}
		return cfg, cfgFile, nil
	}

	path, err := config.DetectConfigPath()
	if err != nil {
		return config.Default(), "", nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, path, nil
}

func init() {
	demoCmd.Flags().StringVar(&demoTheme, "theme", "", "override the config theme (midnight, ember, fern)")
	demoCmd.Flags().StringVar(&demoMode, "mode", "", "override the layout mode (fit, scroll)")
	rootCmd.AddCommand(demoCmd)
}
