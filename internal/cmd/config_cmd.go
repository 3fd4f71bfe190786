package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tabglide/tabglide/internal/config"
	"github.com/tabglide/tabglide/internal/tui/styles"
)

// --- config (parent) ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `View and manage the tabglide demo configuration.

When run without subcommands, displays the resolved configuration summary.

Subcommands:
  init       Write a starter tabglide.json to the current directory
  validate   Check a config file for errors and warnings
  themes     List the built-in color themes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := resolveConfig()
		if err != nil {
			return err
		}
		if path == "" {
			path = "(built-in defaults)"
		}

		fmt.Println(styles.Title.Render("Configuration"))
		fmt.Println()

		fmt.Println(styles.Label.Render("NAME") + "      " + styles.Value.Render(cfg.Name))
		fmt.Println(styles.Label.Render("THEME") + "     " + styles.Value.Render(cfg.Theme))
		fmt.Println(styles.Label.Render("SOURCE") + "    " + styles.Value.Render(path))
		fmt.Println()

		fmt.Println(styles.Divider(50))
		fmt.Println()

		mode := cfg.Bar.Mode
		if mode == "" {
			mode = "fit"
		}
		fmt.Println(styles.Title.Render("Bar"))
		fmt.Println(styles.Label.Render("  MODE") + "      " + styles.ModeBadge(mode))
		fmt.Println(styles.Label.Render("  SELECTED") + "  " + styles.Value.Render(fmt.Sprintf("%d", cfg.Bar.SelectedIndex)))
		for label, on := range map[string]bool{
			"content indicator": cfg.Bar.IsContentIndicator,
			"ignore last tab":   cfg.Bar.IgnoreLastTab,
			"animation off":     cfg.Bar.DisableAnimatedTransition,
			"gradient finish":   cfg.Bar.UseGradientFinish,
		} {
			if on {
				fmt.Println("  " + styles.Dim("-") + " " + styles.Bold(label))
			}
		}
		fmt.Println()

		fmt.Println(styles.Title.Render(fmt.Sprintf("Tabs (%d)", len(cfg.Tabs))))
		for i, tab := range cfg.Tabs {
			marker := " "
			if i == cfg.Bar.SelectedIndex {
				marker = styles.Cyan("*")
			}
			fmt.Printf("  %s %s\n", marker, styles.Bold(styles.TruncateWithEllipsis(tab.Title, 40)))
		}

		return nil
	},
}

// --- config init ---

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter tabglide.json to the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(".", config.ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}

		data, err := json.MarshalIndent(config.Default(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling default config: %w", err)
		}
		if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		fmt.Println(styles.Cyan("Wrote") + " " + styles.Value.Render(path))
		fmt.Println(styles.Dim("Run 'tabglide demo' to see it."))
		return nil
	},
}

// --- config validate ---

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a config file for errors and warnings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := resolveConfig()
		if err != nil {
			return err
		}
		if path == "" {
			return fmt.Errorf("no %s found to validate", config.ConfigFileName)
		}

		errs := config.Validate(cfg)
		warns := config.Warnings(cfg)

		if len(errs) == 0 && len(warns) == 0 {
			fmt.Println(styles.Cyan("OK") + " " + styles.Dim(path))
			return nil
		}

		for _, e := range errs {
			fmt.Println(styles.Red("error:") + " " + e.Error())
		}
		for _, w := range warns {
			fmt.Println(styles.Amber("warning:") + " " + w.String())
		}
		if len(errs) > 0 {
			return fmt.Errorf("%d error(s) in %s", len(errs), path)
		}
		return nil
	},
}

// --- config themes ---

var configThemesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in color themes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(styles.Title.Render("Themes"))
		fmt.Println()
		for _, name := range config.ThemeNames() {
			theme, err := config.LookupTheme(name)
			if err != nil {
				continue
			}
			swatch := strings.Join([]string{theme.Background, theme.Accent, theme.Text}, " ")
			fmt.Printf("  %s  %s\n", styles.Bold(fmt.Sprintf("%-10s", name)), styles.Dim(swatch))
		}
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configThemesCmd)
	rootCmd.AddCommand(configCmd)
}
