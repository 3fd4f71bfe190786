package styles

import "github.com/charmbracelet/lipgloss"

// Midnight -- default dark palette.
// Deep night backgrounds with electric cyan accents.

var (
	// Backgrounds (darkest to lightest)
	BgDeep    = lipgloss.Color("#0a0e14") // Deepest -- main background
	BgSurface = lipgloss.Color("#1a1f2e") // Elevated surface
	BgHover   = lipgloss.Color("#232a3b") // Hover/selected row

	// Accents
	AccentPrimary = lipgloss.Color("#4fc1ff") // Cyan -- selection, focused borders
	AccentGold    = lipgloss.Color("#f5a623") // Gold -- highlights

	// Status
	StatusOK    = lipgloss.Color("#22c55e") // Green
	StatusWarn  = lipgloss.Color("#f59e0b") // Amber
	StatusError = lipgloss.Color("#ef4444") // Red

	// Text
	TextPrimary   = lipgloss.Color("#e2e8f0") // High contrast
	TextSecondary = lipgloss.Color("#94a3b8") // Dimmed
	TextMuted     = lipgloss.Color("#64748b") // Very dim

	// Borders
	BorderNormal = lipgloss.Color("#2d3748") // Subtle
)
