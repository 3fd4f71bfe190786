package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tabglide/tabglide/internal/config"
	"github.com/tabglide/tabglide/internal/tabbar"
)

// ---------------------------------------------------------------------------
// Panel styles
// ---------------------------------------------------------------------------

// Panel is the default panel style: BgDeep background, rounded border in
// BorderNormal, with 1-cell padding on all sides.
var Panel = lipgloss.NewStyle().
	Background(BgDeep).
	Border(RoundedBorder).
	BorderForeground(BorderNormal).
	Padding(1)

// ---------------------------------------------------------------------------
// Header / Footer
// ---------------------------------------------------------------------------

// Header spans the full width with bold cyan text on the deepest background.
var Header = lipgloss.NewStyle().
	Background(BgDeep).
	Foreground(AccentPrimary).
	Bold(true).
	PaddingLeft(1).
	PaddingRight(1)

// Footer spans the full width with muted text on the deepest background.
var Footer = lipgloss.NewStyle().
	Background(BgDeep).
	Foreground(TextMuted).
	PaddingLeft(1).
	PaddingRight(1)

// ---------------------------------------------------------------------------
// Badge helpers
// ---------------------------------------------------------------------------

// Badge returns an inline colored badge such as "● SCROLL" in the given
// color.
func Badge(text string, color lipgloss.Color) string {
	dot := lipgloss.NewStyle().Foreground(color).Render("●")
	label := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(text)
	return dot + " " + label
}

// ModeBadge returns a pre-styled badge for a layout mode name.
func ModeBadge(mode string) string {
	switch strings.ToLower(mode) {
	case "scroll":
		return Badge("SCROLL", AccentGold)
	default:
		return Badge("FIT", AccentPrimary)
	}
}

// ---------------------------------------------------------------------------
// Typography styles
// ---------------------------------------------------------------------------

// Title is bold AccentPrimary text for section headings.
var Title = lipgloss.NewStyle().
	Foreground(AccentPrimary).
	Bold(true)

// Label is TextMuted text for field labels.
var Label = lipgloss.NewStyle().
	Foreground(TextMuted)

// Value is bold TextPrimary text for data values.
var Value = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true)

// ---------------------------------------------------------------------------
// Tab strip styling
// ---------------------------------------------------------------------------

// BarStyles derives the tab strip's styles from a named theme. The bar
// background doubles as the overflow gradient tint seed.
func BarStyles(theme config.Theme) tabbar.Styles {
	bg := lipgloss.Color(theme.Background)
	return tabbar.Styles{
		Bar: lipgloss.NewStyle().Background(bg),
		Active: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Background(bg).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1),
		Inactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)).
			Background(bg).
			PaddingLeft(1).
			PaddingRight(1),
		Indicator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Background(bg).
			Bold(true),
	}
}

// ---------------------------------------------------------------------------
// Divider
// ---------------------------------------------------------------------------

// Divider returns a horizontal rule of the given width using the ─ character
// rendered in BorderNormal color.
func Divider(width int) string {
	if width <= 0 {
		return ""
	}
	line := strings.Repeat("─", width)
	return lipgloss.NewStyle().Foreground(BorderNormal).Render(line)
}
