package tabbar

// widthTracker accumulates per-item measured widths as layout reports arrive
// from the rendering layer. Reports arrive in any order, so the tracker only
// knows the full row geometry once every index has reported.
//
// The first report for an index wins; later reports for the same index are
// ignored so that re-renders during animated transitions cannot thrash the
// recorded layout.
type widthTracker struct {
	count  int
	widths map[int]int
}

func newWidthTracker(count int) *widthTracker {
	return &widthTracker{
		count:  count,
		widths: make(map[int]int, count),
	}
}

// record stores a measured width for index. It returns true only when the
// width was newly recorded; duplicates and out-of-range indexes are no-ops.
func (t *widthTracker) record(index, width int) bool {
	if index < 0 || index >= t.count {
		return false
	}
	if _, ok := t.widths[index]; ok {
		return false
	}
	t.widths[index] = width
	return true
}

// complete reports whether every item has a recorded width.
func (t *widthTracker) complete() bool {
	return len(t.widths) == t.count
}

// measured reports whether any item has reported a width yet.
func (t *widthTracker) measured() bool {
	return len(t.widths) > 0
}

// width returns the recorded width for index, or 0 if none was recorded.
func (t *widthTracker) width(index int) int {
	return t.widths[index]
}

// prefix sums the recorded widths of items [0, index).
func (t *widthTracker) prefix(index int) int {
	total := 0
	for i := 0; i < index && i < t.count; i++ {
		total += t.widths[i]
	}
	return total
}

// total sums all recorded widths.
func (t *widthTracker) total() int {
	return t.prefix(t.count)
}

// reset clears all recorded widths. Only the scroll-to-fit transition calls
// this; fit-to-scroll never happens, so recorded widths are otherwise
// authoritative for the life of the bar.
func (t *widthTracker) reset() {
	t.widths = make(map[int]int, t.count)
}
