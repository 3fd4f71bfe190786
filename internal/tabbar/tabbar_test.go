package tabbar

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// drain executes a command tree and feeds every resulting message back into
// the bar, the way the program loop would. Animation frames are skipped;
// tests that care about animation step FrameMsg explicitly.
func drain(b Bar, cmd tea.Cmd) Bar {
	if cmd == nil {
		return b
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			b = drain(b, c)
		}
		return b
	case FrameMsg:
		return b
	default:
		var next tea.Cmd
		b, next = b.Update(msg)
		return drain(b, next)
	}
}

func settle(t *testing.T, b Bar) Bar {
	t.Helper()
	for i := 0; i < 20*animFPS; i++ {
		if b.indicator.settled() && b.gradient.opacity.settled() {
			return b
		}
		b, _ = b.Update(FrameMsg(time.Now()))
	}
	t.Fatalf("animations never settled")
	return b
}

func items(titles ...string) []Item {
	out := make([]Item, len(titles))
	for i, title := range titles {
		out[i] = Item{Title: title}
	}
	return out
}

func measuredBar(b Bar, containerWidth int) Bar {
	var cmd tea.Cmd
	b, cmd = b.Update(ContainerSizeMsg{Width: containerWidth})
	return drain(b, cmd)
}

func TestSelectNotifiesHost(t *testing.T) {
	var changed []int
	b := New(items("One", "Two", "Three"), Options{
		OnChangeIndex: func(i int) { changed = append(changed, i) },
	})
	b = measuredBar(b, 30)

	b, _ = b.Select(2)
	if b.Selected() != 2 {
		t.Fatalf("selected = %d, want 2", b.Selected())
	}
	if len(changed) != 1 || changed[0] != 2 {
		t.Fatalf("OnChangeIndex calls = %v, want [2]", changed)
	}
}

func TestIgnoreLastTabSelectIsNoOp(t *testing.T) {
	var changed, tapped []int
	b := New(items("A", "B", "C", "More"), Options{
		IgnoreLastTab: true,
		OnChangeIndex: func(i int) { changed = append(changed, i) },
		OnTabSelected: func(i int) { tapped = append(tapped, i) },
	})
	b = measuredBar(b, 40)

	b, _ = b.Select(3)
	if b.Selected() != 0 {
		t.Fatalf("ignored selection changed state: selected = %d", b.Selected())
	}
	if len(changed) != 0 {
		t.Fatalf("ignored selection notified host: %v", changed)
	}

	// A raw tap on the ignored tab still reaches the tap callback.
	b, _ = b.Update(TapMsg{Index: 3})
	if len(tapped) != 1 || tapped[0] != 3 {
		t.Fatalf("OnTabSelected calls = %v, want [3]", tapped)
	}
	if b.Selected() != 0 || len(changed) != 0 {
		t.Fatalf("tap on ignored tab must not change selection")
	}
}

func TestConstructionWarnsOnIgnoredInitialSelection(t *testing.T) {
	var level, message string
	b := New(items("A", "B", "C"), Options{
		SelectedIndex: 2,
		IgnoreLastTab: true,
		Diag: func(l, m string) { level, message = l, m },
	})
	if level != DiagWarn || message == "" {
		t.Fatalf("expected a construction warning, got %q %q", level, message)
	}
	// Warn, don't correct.
	if b.Selected() != 2 {
		t.Fatalf("warning must not correct the selection, got %d", b.Selected())
	}
}

func TestKeyboardNavigationSkipsIgnoredTrailingTab(t *testing.T) {
	b := New(items("A", "B", "C", "More"), Options{IgnoreLastTab: true})
	b = measuredBar(b, 40)

	right := tea.KeyMsg{Type: tea.KeyRight}
	want := []int{1, 2, 0, 1}
	for step, w := range want {
		b, _ = b.Update(right)
		if b.Selected() != w {
			t.Fatalf("step %d: selected = %d, want %d", step, b.Selected(), w)
		}
	}
}

func TestDisableAnimatedTransitionSnaps(t *testing.T) {
	b := New(items("One", "Two", "Three"), Options{DisableAnimatedTransition: true})
	b = measuredBar(b, 30)

	b, _ = b.Select(2)
	want := b.geom.positionPercent(30, 2)
	if b.indicator.value != want {
		t.Fatalf("indicator = %f, want immediate %f", b.indicator.value, want)
	}
}

func TestAnimatedSelectionSettlesAtTarget(t *testing.T) {
	b := New(items("One", "Two", "Three"), Options{})
	b = measuredBar(b, 300)

	b, _ = b.Select(1)
	if b.indicator.settled() {
		t.Fatalf("selection change should start an animation")
	}
	b = settle(t, b)

	want := b.geom.positionPercent(300, 1)
	if math.Abs(b.indicator.value-want) > settleEpsilon {
		t.Fatalf("indicator settled at %f, want %f", b.indicator.value, want)
	}
}

func TestScrollModeDowngradesToFit(t *testing.T) {
	b := New(items("A", "B", "C"), Options{Mode: ModeScroll})
	b, _ = b.Update(ContainerSizeMsg{Width: 300})

	// Layout reports arrive from the render layer: total 250 < 300.
	var cmd tea.Cmd
	for i, w := range []int{100, 100, 50} {
		b, cmd = b.Update(ItemLayoutMsg{Index: i, Width: w})
	}
	if cmd == nil {
		t.Fatalf("final layout report should emit a content size measurement")
	}
	b, _ = b.Update(cmd().(ContentSizeMsg))

	if b.CurrentMode() != ModeFit {
		t.Fatalf("mode = %s, want fit", b.CurrentMode())
	}
	if b.layout.contentWidth != 300 {
		t.Fatalf("contentWidth = %d, want 300", b.layout.contentWidth)
	}
	if b.tracker.measured() {
		t.Fatalf("forced fit should discard recorded widths")
	}
}

func TestScrollModeKeepsOverflowingContent(t *testing.T) {
	b := New(items("A", "B", "C"), Options{Mode: ModeScroll})
	b, _ = b.Update(ContainerSizeMsg{Width: 300})

	var cmd tea.Cmd
	for i, w := range []int{200, 200, 100} {
		b, cmd = b.Update(ItemLayoutMsg{Index: i, Width: w})
	}
	b, _ = b.Update(cmd().(ContentSizeMsg))

	if b.CurrentMode() != ModeScroll {
		t.Fatalf("mode = %s, want scroll", b.CurrentMode())
	}
	if b.layout.contentFade != 1 {
		t.Fatalf("scroll content should be revealed, fade = %f", b.layout.contentFade)
	}
	if got := b.layout.overflow(); got != 200 {
		t.Fatalf("overflow = %d, want 200", got)
	}
}

func TestScrollOffsetClampsAndDrivesGradient(t *testing.T) {
	b := New(items("A", "B", "C"), Options{Mode: ModeScroll, UseGradientFinish: true})
	b, _ = b.Update(ContainerSizeMsg{Width: 300})
	var cmd tea.Cmd
	for i, w := range []int{200, 200, 100} {
		b, cmd = b.Update(ItemLayoutMsg{Index: i, Width: w})
	}
	b, _ = b.Update(cmd().(ContentSizeMsg))

	b, _ = b.Update(ScrollMsg{Offset: 50})
	if b.gradient.opacity.target != 1 {
		t.Fatalf("mid-scroll gradient target = %f, want 1", b.gradient.opacity.target)
	}

	b, _ = b.Update(ScrollMsg{Offset: 199})
	if b.gradient.opacity.target != 0 {
		t.Fatalf("end-of-scroll gradient target = %f, want 0", b.gradient.opacity.target)
	}

	b, _ = b.Update(ScrollMsg{Offset: 9999})
	if b.ScrollOffset() != 200 {
		t.Fatalf("offset should clamp to overflow, got %d", b.ScrollOffset())
	}
}

func TestDuplicateLayoutReportIgnoredByBar(t *testing.T) {
	b := New(items("A", "B"), Options{Mode: ModeScroll})
	b, _ = b.Update(ContainerSizeMsg{Width: 10})

	b, _ = b.Update(ItemLayoutMsg{Index: 0, Width: 8})
	b, _ = b.Update(ItemLayoutMsg{Index: 0, Width: 999})
	if got := b.tracker.width(0); got != 8 {
		t.Fatalf("duplicate report overwrote width: %d", got)
	}
	if b.tracker.complete() {
		t.Fatalf("completion must count distinct indexes only")
	}
}

func TestViewSuppressesIndicatorForSingleItem(t *testing.T) {
	b := New(items("Only"), Options{})
	b = measuredBar(b, 20)

	view := b.View()
	if strings.Contains(view, "━") {
		t.Fatalf("single-item bar must not render an indicator:\n%s", view)
	}
	if got := len(strings.Split(view, "\n")); got != DefaultHeight {
		t.Fatalf("view height = %d rows, want %d", got, DefaultHeight)
	}
}

func TestViewRendersIndicatorAndFullWidthRows(t *testing.T) {
	b := New(items("One", "Two"), Options{})
	b = measuredBar(b, 24)

	view := b.View()
	if !strings.Contains(view, "━") {
		t.Fatalf("expected an indicator line:\n%s", view)
	}
	for i, line := range strings.Split(view, "\n") {
		if got := lipgloss.Width(line); got != 24 {
			t.Fatalf("line %d width = %d, want 24", i, got)
		}
	}
}

func TestViewEmptyBeforeContainerMeasurement(t *testing.T) {
	b := New(items("One", "Two"), Options{})
	if got := b.View(); got != "" {
		t.Fatalf("unmeasured bar should render nothing, got %q", got)
	}
}
