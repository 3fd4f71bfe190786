package tabbar

// Mode selects the bar's layout strategy.
type Mode int

const (
	// ModeFit forces the item row to the container width; items share the
	// available cells evenly and nothing overflows.
	ModeFit Mode = iota
	// ModeScroll lets items keep their natural widths; the row may exceed
	// the container and becomes horizontally scrollable with an overflow
	// fade at the trailing edge.
	ModeScroll
)

func (m Mode) String() string {
	if m == ModeScroll {
		return "scroll"
	}
	return "fit"
}

// modeController owns the fit-vs-scroll decision. It tracks the two measured
// dimensions (container viewport width and full content row width) and
// downgrades scroll to fit when the content turns out to fit after all.
// The reverse transition never happens.
type modeController struct {
	mode           Mode
	containerWidth int
	contentWidth   int

	// contentFade gates visibility of scroll-mode content: 0 until the
	// first successful re-evaluation, then 1 for the rest of the bar's
	// lifetime. The one-shot reveal hides the half-measured row during the
	// initial layout pass.
	contentFade float64
}

// measureContainer records a new container viewport width. In fit mode the
// content width simply follows the container; in scroll mode the fit
// decision is re-evaluated.
func (c *modeController) measureContainer(width int, tracker *widthTracker) {
	c.containerWidth = width
	if c.mode == ModeFit {
		c.contentWidth = width
		return
	}
	c.reevaluate(tracker)
}

// measureContent records a new full-row width. Content measurements are only
// meaningful in scroll mode; fit mode pins the content to the container.
func (c *modeController) measureContent(width int, tracker *widthTracker) {
	if c.mode != ModeScroll {
		return
	}
	c.contentWidth = width
	c.reevaluate(tracker)
}

// reevaluate applies the fit-vs-scroll rule: once both dimensions are known
// and the content is narrower than the container, force fit mode so the bar
// never shows a scrollable, gradient-clipped row that actually fits. The
// forced transition pins contentWidth to the container and discards recorded
// item widths.
func (c *modeController) reevaluate(tracker *widthTracker) {
	if c.contentWidth > 0 && c.containerWidth > 0 && c.contentWidth < c.containerWidth {
		c.mode = ModeFit
		c.contentWidth = c.containerWidth
		tracker.reset()
		return
	}
	c.mode = ModeScroll
	if c.contentFade == 0 && c.contentWidth > 0 {
		c.contentFade = 1
	}
}

// overflow returns how many cells of content extend past the container, or 0.
func (c *modeController) overflow() int {
	ov := c.contentWidth - c.containerWidth
	if ov < 0 {
		return 0
	}
	return ov
}
