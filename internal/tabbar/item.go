package tabbar

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is a single entry in the bar.
type Item struct {
	Title string
}

// Default item styles. Hosts override these through Options; the bar itself
// only cares that active and inactive render to the same cell width.
var (
	defaultActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				PaddingLeft(1).
				PaddingRight(1)

	defaultInactiveStyle = lipgloss.NewStyle().
				Faint(true).
				PaddingLeft(1).
				PaddingRight(1)

	defaultIndicatorStyle = lipgloss.NewStyle().Bold(true)
)

// renderItem returns the styled label for item i.
func (b Bar) renderItem(i int, selected bool) string {
	style := b.Styles.Inactive
	if selected {
		style = b.Styles.Active
	}
	return style.Render(b.items[i].Title)
}

// naturalWidth is the item's rendered cell width, independent of selection
// state; both styles carry the same padding.
func (b Bar) naturalWidth(i int) int {
	return lipgloss.Width(b.Styles.Inactive.Render(b.items[i].Title))
}

// layoutCmd produces the one-shot measurement report for item i, the same
// way a child view reports its rendered size back to its parent. The report
// travels through the program's message loop, so sibling reports can arrive
// in any order.
func (b Bar) layoutCmd(i int) tea.Cmd {
	width := b.displayedWidth(i)
	return func() tea.Msg {
		return ItemLayoutMsg{Index: i, Width: width}
	}
}
