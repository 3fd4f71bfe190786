package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/tabglide/tabglide/internal/config"
	"github.com/tabglide/tabglide/internal/tui/models"
)

// RunDemo launches the interactive tab strip demo. When cfgPath names an
// existing config file, it is watched and the demo reloads on every write.
func RunDemo(cfg *config.Config, cfgPath string) error {
	zones := zone.New()
	defer zones.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Watch the config file for live edits. If the watcher cannot be
	// created (e.g. the demo is running on built-in defaults with no
	// file on disk), proceed without live reload.
	var reloads <-chan config.ReloadEvent
	if cfgPath != "" {
		watcher, err := config.NewWatcher(cfgPath)
		if err == nil {
			defer watcher.Close()
			reloads = watcher.Watch(ctx)
		}
	}

	model := models.NewDemoModel(cfg, zones, reloads)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running demo: %w", err)
	}
	return nil
}
