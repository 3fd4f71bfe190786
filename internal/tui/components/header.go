package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tabglide/tabglide/internal/tui/styles"
)

// Header renders the demo app header bar.
type Header struct {
	Name     string // config name, e.g. "tabglide demo"
	Theme    string
	Mode     string // current layout mode, "fit" or "scroll"
	TabCount int
	Width    int
}

// Render returns the styled header string.
func (h Header) Render() string {
	width := h.Width
	if width <= 0 {
		width = 80
	}

	logo := lipgloss.NewStyle().
		Foreground(styles.AccentPrimary).
		Bold(true).
		Render(styles.CompactLogo)

	sep := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("  │  ")

	name := styles.Label.Render("Config: ") + styles.Value.Render(h.Name)
	theme := styles.Label.Render("Theme: ") +
		lipgloss.NewStyle().Foreground(styles.AccentGold).Bold(true).Render(h.Theme)
	tabs := styles.Label.Render("Tabs: ") +
		styles.Value.Render(fmt.Sprintf("%d", h.TabCount))

	content := logo + sep + name + sep + theme + sep + tabs + sep + styles.ModeBadge(h.Mode)

	headerStyle := lipgloss.NewStyle().
		Background(styles.BgDeep).
		Foreground(styles.TextPrimary).
		Width(width).
		PaddingLeft(1).
		PaddingRight(1)

	return headerStyle.Render(content)
}
