package config

import (
	"fmt"
	"sort"
)

// Theme is a named color preset for the demo. All values are hex colors.
type Theme struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
}

// builtinThemes holds the presets shipped with the demo.
var builtinThemes = map[string]Theme{
	"midnight": {
		Name:       "midnight",
		Background: "#0a0e14",
		Surface:    "#1a1f2e",
		Accent:     "#4fc1ff",
		Text:       "#e2e8f0",
		Muted:      "#64748b",
	},
	"ember": {
		Name:       "ember",
		Background: "#140a0a",
		Surface:    "#2e1a1a",
		Accent:     "#f5a623",
		Text:       "#f0e8e2",
		Muted:      "#8b6f64",
	},
	"fern": {
		Name:       "fern",
		Background: "#0a140e",
		Surface:    "#1a2e22",
		Accent:     "#22c55e",
		Text:       "#e2f0e8",
		Muted:      "#648873",
	},
}

// LookupTheme returns the named builtin theme.
func LookupTheme(name string) (Theme, error) {
	if t, ok := builtinThemes[name]; ok {
		return t, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (available: %v)", name, ThemeNames())
}

// ThemeNames returns the builtin theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
