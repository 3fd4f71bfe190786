package config

import "fmt"

// ValidationError describes a single config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for a single validation error.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// Warning is a non-fatal diagnostic: the configuration is suspect but the
// demo runs with it unmodified.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}

// Validate checks the Config for completeness and consistency. It returns a
// slice of all discovered issues rather than stopping at the first one.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	if len(cfg.Tabs) == 0 {
		errs = append(errs, ValidationError{Field: "tabs", Message: "at least one tab is required"})
	}
	for i, tab := range cfg.Tabs {
		if tab.Title == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("tabs[%d].title", i),
				Message: "required field is empty",
			})
		}
	}

	switch cfg.Bar.Mode {
	case "", "fit", "scroll":
	default:
		errs = append(errs, ValidationError{
			Field:   "bar.mode",
			Message: fmt.Sprintf(`must be "fit" or "scroll", got %q`, cfg.Bar.Mode),
		})
	}

	if cfg.Bar.Height < 0 || cfg.Bar.Height == 1 {
		errs = append(errs, ValidationError{
			Field:   "bar.height",
			Message: fmt.Sprintf("must be 0 (default) or at least 2 rows, got %d", cfg.Bar.Height),
		})
	}

	if n := len(cfg.Tabs); n > 0 && (cfg.Bar.SelectedIndex < 0 || cfg.Bar.SelectedIndex >= n) {
		errs = append(errs, ValidationError{
			Field:   "bar.selectedIndex",
			Message: fmt.Sprintf("must be in [0, %d), got %d", n, cfg.Bar.SelectedIndex),
		})
	}

	if cfg.Theme != "" {
		if _, err := LookupTheme(cfg.Theme); err != nil {
			errs = append(errs, ValidationError{
				Field:   "theme",
				Message: err.Error(),
			})
		}
	}

	return errs
}

// Warnings returns the non-fatal diagnostics for a config that Validate
// accepts. The warn-don't-correct cases live here: the demo surfaces them
// and keeps the configuration exactly as written.
func Warnings(cfg *Config) []Warning {
	var warns []Warning

	if n := len(cfg.Tabs); cfg.Bar.IgnoreLastTab && n > 0 && cfg.Bar.SelectedIndex == n-1 {
		warns = append(warns, Warning{
			Field:   "bar.selectedIndex",
			Message: "initial selection is the ignored trailing tab; it will render unselected",
		})
	}

	if cfg.Bar.IgnoreLastTab && len(cfg.Tabs) == 1 {
		warns = append(warns, Warning{
			Field:   "bar.ignoreLastTab",
			Message: "the only tab is also the ignored trailing tab; nothing is selectable",
		})
	}

	return warns
}
