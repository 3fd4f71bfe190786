package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tabglide/tabglide/internal/tui/styles"
)

// KeyHint describes a single keybinding hint for display in the footer.
type KeyHint struct {
	Key  string // "q", "←→", "[ ]"
	Desc string // "quit", "select", "pan"
}

// Footer renders keybinding hints, with an optional trailing notice (the
// demo uses it to surface configuration warnings).
type Footer struct {
	Hints  []KeyHint
	Notice string
	Width  int
}

// Render returns the styled footer string.
func (f Footer) Render() string {
	width := f.Width
	if width <= 0 {
		width = 80
	}

	keyStyle := lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
	sepStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)

	var parts []string
	for _, h := range f.Hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}

	content := strings.Join(parts, sepStyle.Render(" • "))
	if f.Notice != "" {
		content += sepStyle.Render("  ") + styles.Amber("⚠ "+f.Notice)
	}

	footerStyle := lipgloss.NewStyle().
		Background(styles.BgDeep).
		Foreground(styles.TextMuted).
		Width(width).
		PaddingLeft(1).
		PaddingRight(1)

	return footerStyle.Render(content)
}

// DemoFooter returns the footer preset for the demo screen.
func DemoFooter(width int, scrollable bool) Footer {
	hints := []KeyHint{
		{Key: "←→", Desc: "select"},
		{Key: "1-9", Desc: "jump"},
	}
	if scrollable {
		hints = append(hints, KeyHint{Key: "[ ]", Desc: "pan"})
	}
	hints = append(hints,
		KeyHint{Key: "↑↓", Desc: "read"},
		KeyHint{Key: "q", Desc: "quit"},
	)
	return Footer{Hints: hints, Width: width}
}
