package models

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/tabglide/tabglide/internal/config"
	"github.com/tabglide/tabglide/internal/tabbar"
	"github.com/tabglide/tabglide/internal/tui/components"
	"github.com/tabglide/tabglide/internal/tui/styles"
)

// chrome rows around the content viewport: header, divider, footer.
const chromeHeight = 3

// ReloadedMsg carries a freshly reloaded config from the file watcher.
type ReloadedMsg struct {
	Config *config.Config
}

// reloadFailedMsg reports a config reload that did not parse.
type reloadFailedMsg struct {
	err error
}

// DemoModel is the full-screen demo: header, tab strip, markdown content
// under the selected tab, footer with key hints and warnings.
type DemoModel struct {
	cfg   *config.Config
	theme config.Theme

	bar      tabbar.Bar
	viewport viewport.Model
	zones    *zone.Manager

	// diags collects structured diagnostics from the bar and config
	// validation; the newest one shows in the footer.
	diags *[]string

	reloads <-chan config.ReloadEvent

	lastSelected int
	width        int
	height       int
	ready        bool
	quitting     bool
}

// NewDemoModel builds the demo over a validated config. The reloads channel
// may be nil when no config file is being watched.
func NewDemoModel(cfg *config.Config, zones *zone.Manager, reloads <-chan config.ReloadEvent) DemoModel {
	diags := &[]string{}
	for _, w := range config.Warnings(cfg) {
		*diags = append(*diags, w.String())
	}

	m := DemoModel{
		cfg:     cfg,
		zones:   zones,
		diags:   diags,
		reloads: reloads,
	}
	m.theme, _ = config.LookupTheme(cfg.Theme)
	if m.theme.Name == "" {
		m.theme, _ = config.LookupTheme("midnight")
	}
	m.bar = m.buildBar(cfg)
	m.lastSelected = m.bar.Selected()
	return m
}

// buildBar constructs the tab strip from the config's bar options.
func (m DemoModel) buildBar(cfg *config.Config) tabbar.Bar {
	items := make([]tabbar.Item, len(cfg.Tabs))
	for i, tab := range cfg.Tabs {
		items[i] = tabbar.Item{Title: tab.Title}
	}

	mode := tabbar.ModeFit
	if cfg.Bar.Mode == "scroll" {
		mode = tabbar.ModeScroll
	}

	diags := m.diags
	bar := tabbar.New(items, tabbar.Options{
		SelectedIndex:             cfg.Bar.SelectedIndex,
		Mode:                      mode,
		Height:                    cfg.Bar.Height,
		IsContentIndicator:        cfg.Bar.IsContentIndicator,
		IgnoreLastTab:             cfg.Bar.IgnoreLastTab,
		DisableAnimatedTransition: cfg.Bar.DisableAnimatedTransition,
		UseGradientFinish:         cfg.Bar.UseGradientFinish,
		Zones:                     m.zones,
		Diag: func(level, msg string) {
			*diags = append(*diags, fmt.Sprintf("%s: %s", level, msg))
		},
	})
	bar.Styles = styles.BarStyles(m.theme)
	return bar
}

// waitForReload blocks on the watcher channel and re-parses the config.
func (m DemoModel) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	ch := m.reloads
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		cfg, err := config.Load(ev.Path)
		if err != nil {
			return reloadFailedMsg{err: err}
		}
		if errs := config.Validate(cfg); len(errs) > 0 {
			return reloadFailedMsg{err: errs[0]}
		}
		return ReloadedMsg{Config: cfg}
	}
}

// Init starts listening for config reloads.
func (m DemoModel) Init() tea.Cmd {
	return m.waitForReload()
}

// Update routes messages between the window, the tab strip, and the content
// viewport.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()

		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(tabbar.ContainerSizeMsg{Width: msg.Width})
		cmds = append(cmds, cmd)
		m.refreshContent()
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			idx := int(msg.String()[0] - '1')
			if idx < len(m.cfg.Tabs) {
				var cmd tea.Cmd
				m.bar, cmd = m.bar.Update(tabbar.TapMsg{Index: idx})
				cmds = append(cmds, cmd)
			}
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		default:
			var cmd tea.Cmd
			m.bar, cmd = m.bar.Update(msg)
			cmds = append(cmds, cmd)
		}

	case ReloadedMsg:
		m.cfg = msg.Config
		if theme, err := config.LookupTheme(msg.Config.Theme); err == nil {
			m.theme = theme
		}
		*m.diags = (*m.diags)[:0]
		for _, w := range config.Warnings(msg.Config) {
			*m.diags = append(*m.diags, w.String())
		}
		m.bar = m.buildBar(msg.Config)
		m.lastSelected = m.bar.Selected()
		var cmd tea.Cmd
		if m.ready {
			m.bar, cmd = m.bar.Update(tabbar.ContainerSizeMsg{Width: m.width})
			m.refreshContent()
		}
		return m, tea.Batch(cmd, m.waitForReload())

	case reloadFailedMsg:
		*m.diags = append(*m.diags, "reload: "+msg.err.Error())
		return m, m.waitForReload()

	default:
		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.bar.Selected() != m.lastSelected {
		m.lastSelected = m.bar.Selected()
		m.refreshContent()
	}

	return m, tea.Batch(cmds...)
}

// resize fits the content viewport under the chrome and tab strip.
func (m *DemoModel) resize() {
	contentHeight := m.height - chromeHeight - m.bar.Height()
	if contentHeight < 1 {
		contentHeight = 1
	}
	if m.viewport.Width == 0 {
		m.viewport = viewport.New(m.width, contentHeight)
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = contentHeight
	}
}

// refreshContent renders the selected tab's markdown into the viewport.
func (m *DemoModel) refreshContent() {
	if !m.ready || len(m.cfg.Tabs) == 0 {
		return
	}
	idx := m.bar.Selected()
	if idx < 0 || idx >= len(m.cfg.Tabs) {
		return
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.width-2),
	)
	if err != nil {
		m.viewport.SetContent(m.cfg.Tabs[idx].Content)
		return
	}
	out, err := r.Render(m.cfg.Tabs[idx].Content)
	if err != nil {
		out = m.cfg.Tabs[idx].Content
	}
	m.viewport.SetContent(out)
	m.viewport.GotoTop()
}

// View renders the full demo layout.
func (m DemoModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  Loading demo..."
	}

	header := components.Header{
		Name:     m.cfg.Name,
		Theme:    m.theme.Name,
		Mode:     m.bar.CurrentMode().String(),
		TabCount: len(m.cfg.Tabs),
		Width:    m.width,
	}.Render()

	footer := components.DemoFooter(m.width, m.bar.CurrentMode() == tabbar.ModeScroll)
	if n := len(*m.diags); n > 0 {
		footer.Notice = (*m.diags)[n-1]
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.bar.View(),
		styles.Divider(m.width),
		m.viewport.View(),
		footer.Render(),
	)

	if m.zones != nil {
		view = m.zones.Scan(view)
	}
	return view
}
