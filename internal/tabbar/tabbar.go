// Package tabbar implements a selectable tab strip with an animated
// selection indicator for Bubble Tea programs.
//
// The bar lays out its items with one of two strategies: fit, where the row
// is forced to the container width and items share it evenly, and scroll,
// where items keep their natural widths and the row pans horizontally with
// an overflow fade at the trailing edge. Item widths arrive asynchronously
// as layout messages, mirroring how child views report their rendered size
// to a parent, and the bar downgrades scroll to fit once measurements prove
// the content fits.
package tabbar

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

// DefaultHeight is the bar height in rows: label row, indicator row, and one
// row of padding.
const DefaultHeight = 3

// scrollStep is how many cells a pan keypress moves a scrolling bar.
const scrollStep = 4

// DiagWarn is the level passed to the Diag callback for non-fatal
// configuration diagnostics.
const DiagWarn = "warn"

// Options configures a Bar at construction. All fields are optional; the
// zero value produces a fit-mode bar with the first item selected.
type Options struct {
	// SelectedIndex is the initially selected item.
	SelectedIndex int

	// Mode is the initial layout strategy. Scroll may downgrade to fit
	// once measurements arrive; fit never upgrades to scroll.
	Mode Mode

	// Height is the bar height in rows. Zero means DefaultHeight.
	Height int

	// IsContentIndicator insets the indicator so it hugs the label content
	// instead of spanning the full item width.
	IsContentIndicator bool

	// IgnoreLastTab makes the trailing item non-selectable so it can act
	// as a trailing action ("more", "+", ...). Selecting it is a complete
	// no-op; taps on it still reach OnTabSelected.
	IgnoreLastTab bool

	// DisableAnimatedTransition makes selection changes move the
	// indicator synchronously with no intermediate frames.
	DisableAnimatedTransition bool

	// UseGradientFinish draws the overflow fade at the trailing edge of a
	// scrolling bar.
	UseGradientFinish bool

	// Zones enables mouse support. The host owns the manager and must
	// wrap its final view in Zones.Scan.
	Zones *zone.Manager

	// OnChangeIndex fires on every accepted selection change, after the
	// ignore-last-tab policy has filtered the index.
	OnChangeIndex func(index int)

	// OnTabSelected fires on every raw tap with the tapped index,
	// regardless of the ignore-last-tab policy.
	OnTabSelected func(index int)

	// Diag receives non-fatal diagnostics instead of anything being
	// written to the console. May be nil.
	Diag func(level, msg string)
}

// Styles holds the bar's visual styling. The Bar style's background color,
// when set, seeds the overflow gradient tint.
type Styles struct {
	Bar       lipgloss.Style
	Active    lipgloss.Style
	Inactive  lipgloss.Style
	Indicator lipgloss.Style
}

// DefaultStyles returns the stock look: bold underlined active label, faint
// inactive labels, bold indicator.
func DefaultStyles() Styles {
	return Styles{
		Active:    defaultActiveStyle,
		Inactive:  defaultInactiveStyle,
		Indicator: defaultIndicatorStyle,
	}
}

// Bar is the tab strip model. Use New to construct one, route messages
// through Update, and render with View. Bar is a value type in the usual
// Bubble Tea fashion; the measurement state it shares across copies is only
// ever touched from the program's single event loop.
type Bar struct {
	// Styles may be replaced wholesale before the first render.
	Styles Styles

	// KeyMap may be replaced to rebind navigation.
	KeyMap KeyMap

	items []Item
	opts  Options

	tracker *widthTracker
	geom    indicatorGeometry
	layout  modeController

	indicator springValue
	gradient  gradientController

	selected     int
	scrollOffset int
	animating    bool
}

// New constructs a Bar over a fixed set of items. The item count never
// changes for the life of the bar.
func New(items []Item, opts Options) Bar {
	count := len(items)

	spacing := 0
	if opts.IsContentIndicator {
		spacing = contentIndicatorInset
	}

	if opts.Height == 0 {
		opts.Height = DefaultHeight
	}

	if opts.IgnoreLastTab && count > 0 && opts.SelectedIndex == count-1 && opts.Diag != nil {
		// Warn, don't correct: the bar runs with the configuration as
		// given.
		opts.Diag(DiagWarn, "initial selectedIndex is the ignored trailing tab; selection left unchanged")
	}

	tracker := newWidthTracker(count)

	b := Bar{
		Styles:   DefaultStyles(),
		KeyMap:   DefaultKeyMap(),
		items:    items,
		opts:     opts,
		tracker:  tracker,
		geom:     indicatorGeometry{tracker: tracker, spacing: spacing},
		layout:   modeController{mode: opts.Mode},
		gradient: newGradientController(),
		selected: opts.SelectedIndex,
	}
	b.indicator = newSpringValue(
		b.geom.positionPercent(0, b.selected),
		indicatorFrequency, indicatorDamping,
	)
	return b
}

// Selected returns the currently selected index.
func (b Bar) Selected() int { return b.selected }

// CurrentMode returns the bar's current layout strategy.
func (b Bar) CurrentMode() Mode { return b.layout.mode }

// ScrollOffset returns the current horizontal pan, in cells.
func (b Bar) ScrollOffset() int { return b.scrollOffset }

// Height returns the bar height in rows.
func (b Bar) Height() int { return b.opts.Height }

// Init performs no work; measurements start flowing once the host reports
// the container size.
func (b Bar) Init() tea.Cmd { return nil }

// Select moves the selection to index, subject to the ignore-last-tab
// policy, and returns the command that drives the indicator animation.
func (b Bar) Select(index int) (Bar, tea.Cmd) {
	b.selectIndex(index)
	return b, b.startAnim()
}

// Update handles layout, interaction, and animation messages.
func (b Bar) Update(msg tea.Msg) (Bar, tea.Cmd) {
	switch msg := msg.(type) {
	case ContainerSizeMsg:
		b.layout.measureContainer(msg.Width, b.tracker)
		b.clampScroll()
		b.retargetIndicator()
		return b, tea.Batch(b.measureCmd(), b.startAnim())

	case ItemLayoutMsg:
		if !b.tracker.record(msg.Index, msg.Width) {
			return b, nil
		}
		if b.layout.contentWidth > 0 {
			b.retargetIndicator()
		}
		if b.layout.mode == ModeScroll && b.tracker.complete() {
			total := b.tracker.total()
			return b, func() tea.Msg { return ContentSizeMsg{Width: total} }
		}
		return b, nil

	case ContentSizeMsg:
		wasScroll := b.layout.mode == ModeScroll
		b.layout.measureContent(msg.Width, b.tracker)
		if wasScroll && b.layout.mode == ModeFit {
			// Forced downgrade: widths were discarded, so re-report
			// them at their fit-mode slot sizes.
			b.scrollOffset = 0
			b.retargetIndicator()
			return b, b.measureCmd()
		}
		b.clampScroll()
		b.gradient.observeScroll(b.scrollOffset, b.layout.overflow())
		b.retargetIndicator()
		return b, b.startAnim()

	case ScrollMsg:
		b.scrollOffset = msg.Offset
		b.clampScroll()
		b.gradient.observeScroll(b.scrollOffset, b.layout.overflow())
		return b, b.startAnim()

	case TapMsg:
		if b.opts.OnTabSelected != nil {
			b.opts.OnTabSelected(msg.Index)
		}
		b.selectIndex(msg.Index)
		return b, b.startAnim()

	case tea.KeyMsg:
		return b.handleKey(msg)

	case tea.MouseMsg:
		return b.handleMouse(msg)

	case FrameMsg:
		b.indicator.step()
		b.gradient.opacity.step()
		if b.indicator.settled() && b.gradient.opacity.settled() {
			b.animating = false
			return b, nil
		}
		return b, frameCmd()
	}
	return b, nil
}

func (b Bar) handleKey(msg tea.KeyMsg) (Bar, tea.Cmd) {
	switch {
	case key.Matches(msg, b.KeyMap.Next):
		b.moveSelection(1)
	case key.Matches(msg, b.KeyMap.Prev):
		b.moveSelection(-1)
	case key.Matches(msg, b.KeyMap.ScrollRight):
		return b.Update(ScrollMsg{Offset: b.scrollOffset + scrollStep})
	case key.Matches(msg, b.KeyMap.ScrollLeft):
		return b.Update(ScrollMsg{Offset: b.scrollOffset - scrollStep})
	default:
		return b, nil
	}
	return b, b.startAnim()
}

func (b Bar) handleMouse(msg tea.MouseMsg) (Bar, tea.Cmd) {
	if b.opts.Zones == nil {
		return b, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return b, nil
	}
	info := b.opts.Zones.Get(b.zoneID())
	if !info.InBounds(msg) {
		return b, nil
	}
	x, y := info.Pos(msg)
	if y != 0 {
		return b, nil
	}
	if idx := b.itemAt(x); idx >= 0 {
		return b.Update(TapMsg{Index: idx})
	}
	return b, nil
}

// selectIndex applies the ignore-last-tab policy, retargets the indicator,
// updates the selection, and notifies the host. The policy makes selecting
// the trailing item a complete no-op: no state change, no animation, no
// notification.
func (b *Bar) selectIndex(index int) {
	if b.opts.IgnoreLastTab && index == len(b.items)-1 {
		return
	}
	target := b.geom.positionPercent(b.layout.contentWidth, index)
	if b.opts.DisableAnimatedTransition {
		b.indicator.snap(target)
	} else {
		b.indicator.setTarget(target)
	}
	b.selected = index
	if b.opts.OnChangeIndex != nil {
		b.opts.OnChangeIndex(index)
	}
}

// moveSelection steps the selection by delta, wrapping around. When the
// trailing item is an ignored action it is excluded from the cycle.
func (b *Bar) moveSelection(delta int) {
	limit := len(b.items)
	if b.opts.IgnoreLastTab && limit > 1 {
		limit--
	}
	if limit <= 1 {
		return
	}
	b.selectIndex((b.selected + delta + limit) % limit)
}

// retargetIndicator recomputes the indicator position from current geometry.
// A settled indicator snaps to the new position; one mid-flight is simply
// retargeted, the newest target superseding the stale one.
func (b *Bar) retargetIndicator() {
	target := b.geom.positionPercent(b.layout.contentWidth, b.selected)
	if b.opts.DisableAnimatedTransition || b.indicator.settled() {
		b.indicator.snap(target)
		return
	}
	b.indicator.setTarget(target)
}

// startAnim begins frame ticks when any spring has somewhere to go.
func (b *Bar) startAnim() tea.Cmd {
	if b.animating {
		return nil
	}
	if b.indicator.settled() && b.gradient.opacity.settled() {
		return nil
	}
	b.animating = true
	return frameCmd()
}

func (b *Bar) clampScroll() {
	if b.scrollOffset < 0 {
		b.scrollOffset = 0
	}
	if ov := b.layout.overflow(); b.scrollOffset > ov {
		b.scrollOffset = ov
	}
}

// measureCmd emits layout reports for every item at its displayed width for
// the current mode. Reports travel through the message loop and land in any
// order; the tracker's first-wins rule makes repeat batches harmless.
func (b Bar) measureCmd() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(b.items))
	for i := range b.items {
		cmds = append(cmds, b.layoutCmd(i))
	}
	return tea.Batch(cmds...)
}

// displayedWidth is the width item i occupies on screen: its fit-mode slot,
// or its natural rendered width when scrolling.
func (b Bar) displayedWidth(i int) int {
	if b.layout.mode == ModeScroll {
		return b.naturalWidth(i)
	}
	n := len(b.items)
	if n == 0 || b.layout.containerWidth <= 0 {
		return 0
	}
	slot := b.layout.containerWidth / n
	if i == n-1 {
		slot += b.layout.containerWidth % n
	}
	return slot
}

// itemAt maps a bar-relative x coordinate to an item index, or -1.
func (b Bar) itemAt(x int) int {
	if b.layout.mode == ModeScroll {
		x += b.scrollOffset
	}
	edge := 0
	for i := range b.items {
		edge += b.displayedWidth(i)
		if x < edge {
			return i
		}
	}
	return -1
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

// View renders the bar at its configured height.
func (b Bar) View() string {
	if len(b.items) == 0 || b.layout.containerWidth <= 0 {
		return ""
	}

	var row string
	if b.layout.mode == ModeScroll {
		row = b.renderScrollRow()
	} else {
		row = b.renderFitRow()
	}

	lines := []string{row}
	if len(b.items) > 1 {
		lines = append(lines, b.renderIndicatorRow())
	}
	blank := b.Styles.Bar.Width(b.layout.containerWidth).Render("")
	for len(lines) < b.opts.Height {
		lines = append(lines, blank)
	}

	out := strings.Join(lines, "\n")
	if b.opts.Zones != nil {
		out = b.opts.Zones.Mark(b.zoneID(), out)
	}
	return out
}

func (b Bar) zoneID() string { return "tabbar" }

// renderFitRow lays each item out in an equal slot of the container.
func (b Bar) renderFitRow() string {
	cells := make([]string, 0, len(b.items))
	for i := range b.items {
		label := b.renderItem(i, i == b.selected)
		cells = append(cells, lipgloss.PlaceHorizontal(
			b.displayedWidth(i), lipgloss.Center, label,
		))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return b.Styles.Bar.Width(b.layout.containerWidth).Render(row)
}

// renderScrollRow lays items out at natural width and windows the row by the
// scroll offset. Content stays hidden until the first layout pass completes
// so a half-measured row never flashes on screen.
func (b Bar) renderScrollRow() string {
	if b.layout.contentFade == 0 {
		return b.Styles.Bar.Width(b.layout.containerWidth).Render("")
	}

	cells := make([]string, 0, len(b.items))
	for i := range b.items {
		cells = append(cells, b.renderItem(i, i == b.selected))
	}
	full := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	visible := ansi.Cut(full, b.scrollOffset, b.scrollOffset+b.layout.containerWidth)
	visible = b.Styles.Bar.Width(b.layout.containerWidth).Render(visible)

	if b.opts.UseGradientFinish && b.layout.overflow() > 0 && b.gradient.opacity.value > 0.01 {
		visible = b.overlayGradient(visible)
	}
	return visible
}

// overlayGradient replaces the trailing cells of the visible row with the
// fade ramp.
func (b Bar) overlayGradient(visible string) string {
	w := b.layout.containerWidth
	if w <= gradientWidth {
		return visible
	}
	tint := lipgloss.Color("#64748b")
	background := lipgloss.Color("#0a0e14")
	if c, ok := b.Styles.Bar.GetBackground().(lipgloss.Color); ok && c != "" {
		background = c
	}
	head := ansi.Cut(visible, 0, w-gradientWidth)
	return head + b.gradient.renderOverlay(tint, background)
}

// renderIndicatorRow draws the indicator line under the labels, windowed by
// the scroll offset in scroll mode. A single-item bar suppresses the
// indicator entirely; callers handle that before getting here.
func (b Bar) renderIndicatorRow() string {
	cw := b.layout.contentWidth
	if cw <= 0 {
		return b.Styles.Bar.Width(b.layout.containerWidth).Render("")
	}

	pos := int(math.Round(b.indicator.value / 100 * float64(cw)))
	width := int(math.Round(b.geom.widthPercent(cw, b.selected) / 100 * float64(cw)))
	if width < 1 {
		width = 1
	}
	if pos < 0 {
		pos = 0
	}
	if pos+width > cw {
		pos = cw - width
		if pos < 0 {
			pos, width = 0, cw
		}
	}

	line := strings.Repeat(" ", pos) +
		b.Styles.Indicator.Render(strings.Repeat("━", width)) +
		strings.Repeat(" ", cw-pos-width)

	if b.layout.mode == ModeScroll {
		line = ansi.Cut(line, b.scrollOffset, b.scrollOffset+b.layout.containerWidth)
	}
	return b.Styles.Bar.Width(b.layout.containerWidth).Render(line)
}
