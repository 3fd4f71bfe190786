package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ConfigFileName is the demo configuration file the CLI looks for.
const ConfigFileName = "tabglide.json"

// Config represents the full tabglide.json schema.
type Config struct {
	Name  string      `json:"name" mapstructure:"name"`
	Theme string      `json:"theme" mapstructure:"theme"`
	Bar   BarConfig   `json:"bar" mapstructure:"bar"`
	Tabs  []TabConfig `json:"tabs" mapstructure:"tabs"`
}

// BarConfig mirrors the tab strip's construction options.
type BarConfig struct {
	SelectedIndex             int    `json:"selectedIndex" mapstructure:"selectedIndex"`
	Mode                      string `json:"mode" mapstructure:"mode"` // "fit" or "scroll"
	Height                    int    `json:"height" mapstructure:"height"`
	IsContentIndicator        bool   `json:"isContentIndicator" mapstructure:"isContentIndicator"`
	IgnoreLastTab             bool   `json:"ignoreLastTab" mapstructure:"ignoreLastTab"`
	DisableAnimatedTransition bool   `json:"disableAnimatedTransition" mapstructure:"disableAnimatedTransition"`
	UseGradientFinish         bool   `json:"useGradientFinish" mapstructure:"useGradientFinish"`
}

// TabConfig declares one tab: its label and the markdown shown beneath it.
type TabConfig struct {
	Title   string `json:"title" mapstructure:"title"`
	Content string `json:"content" mapstructure:"content"`
}

// singleton holds the globally loaded config and the path it came from.
var (
	globalCfg  *Config
	globalPath string
	mu         sync.RWMutex
)

// Load reads the config file at path. It caches the result so that
// subsequent calls to Get() return immediately.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	mu.Lock()
	globalCfg = &cfg
	globalPath = path
	mu.Unlock()

	return &cfg, nil
}

// Get returns the cached global config. It panics if Load has not been called.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()

	if globalCfg == nil {
		panic("config.Get() called before config.Load()")
	}
	return globalCfg
}

// Path returns the file path set during Load.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return globalPath
}

// Save writes the provided config back to the file it was loaded from.
func Save(cfg *Config) error {
	mu.RLock()
	path := globalPath
	mu.RUnlock()

	if path == "" {
		return fmt.Errorf("cannot save: config path not set (call Load first)")
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}

	mu.Lock()
	globalCfg = cfg
	mu.Unlock()

	return nil
}

// Default returns the built-in demo configuration used when no config file
// exists: enough tabs to overflow a narrow terminal, with a trailing
// non-selectable "More" action.
func Default() *Config {
	return &Config{
		Name:  "tabglide demo",
		Theme: "midnight",
		Bar: BarConfig{
			Mode:              "scroll",
			IgnoreLastTab:     true,
			UseGradientFinish: true,
		},
		Tabs: []TabConfig{
			{Title: "Overview", Content: "# Overview\n\nA tab strip with an *animated* selection indicator.\n\nUse the arrow keys or click a tab."},
			{Title: "Layout", Content: "# Layout\n\nTwo strategies: **fit** shares the container evenly, **scroll** pans overflowing content."},
			{Title: "Indicator", Content: "# Indicator\n\nThe underline glides to the selected tab on a spring."},
			{Title: "Gradient", Content: "# Gradient\n\nScroll mode fades the trailing edge until you reach the end."},
			{Title: "Measurements", Content: "# Measurements\n\nItem widths arrive asynchronously, in any order, exactly once per item."},
			{Title: "Keys", Content: "# Keys\n\n`←/→` select, `[` `]` pan, `q` quits."},
			{Title: "More", Content: "# More\n\nThis trailing tab is a non-selectable action."},
		},
	}
}
