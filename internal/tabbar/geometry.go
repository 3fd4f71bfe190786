package tabbar

// contentIndicatorInset is the per-item inset, in cells, applied when the
// indicator should hug the label content instead of spanning the full item.
const contentIndicatorInset = 1

// indicatorGeometry derives the indicator's width and horizontal position,
// both expressed as percentages of the total content width, from the
// recorded item widths and the current selection.
type indicatorGeometry struct {
	tracker *widthTracker
	spacing int
}

// widthPercent returns the indicator width for the selected item as a
// percentage of contentWidth. A bar with no items, an unmeasured selection,
// or an unknown content width yields 0 rather than a non-finite value.
func (g indicatorGeometry) widthPercent(contentWidth, selected int) float64 {
	if g.tracker.count == 0 || contentWidth <= 0 {
		return 0
	}
	w := g.tracker.width(selected) - 2*g.spacing
	if w < 0 {
		w = 0
	}
	return float64(w) / float64(contentWidth) * 100
}

// positionPercent returns the indicator's left edge for index as a
// percentage of contentWidth.
//
// Before the first layout report arrives there is nothing to sum, so the
// position falls back to uniform division across the item count. The
// fallback is an approximation that lets the indicator render somewhere
// plausible on the very first frame; it is superseded by the exact
// prefix-sum position on the next recompute once widths exist.
func (g indicatorGeometry) positionPercent(contentWidth, index int) float64 {
	if g.tracker.count == 0 {
		return 0
	}
	if !g.tracker.measured() {
		return float64(index)*(100/float64(g.tracker.count)) + float64(g.spacing)
	}
	if contentWidth <= 0 {
		return 0
	}
	return float64(g.tracker.prefix(index)+g.spacing) / float64(contentWidth) * 100
}
