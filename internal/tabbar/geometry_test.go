package tabbar

import (
	"math"
	"testing"
)

func fullyMeasured(widths ...int) *widthTracker {
	tr := newWidthTracker(len(widths))
	for i, w := range widths {
		tr.record(i, w)
	}
	return tr
}

func TestPositionPercentMonotonic(t *testing.T) {
	cases := [][]int{
		{10, 10},
		{30, 5, 45, 20},
		{1, 99, 1, 99, 1},
	}
	for _, widths := range cases {
		tr := fullyMeasured(widths...)
		g := indicatorGeometry{tracker: tr, spacing: 1}
		cw := tr.total()

		prev := math.Inf(-1)
		for i := range widths {
			pos := g.positionPercent(cw, i)
			if pos < prev {
				t.Fatalf("widths %v: positionPercent(%d) = %f < %f", widths, i, pos, prev)
			}
			prev = pos
		}
	}
}

func TestIndicatorRightEdgeNeverExceedsFull(t *testing.T) {
	widths := []int{30, 5, 45, 20}
	tr := fullyMeasured(widths...)
	cw := tr.total()

	for _, spacing := range []int{0, 1} {
		g := indicatorGeometry{tracker: tr, spacing: spacing}
		for i := range widths {
			right := g.positionPercent(cw, i) + g.widthPercent(cw, i)
			if right > 100.0001 {
				t.Fatalf("spacing %d: right edge of item %d = %f%%", spacing, i, right)
			}
		}
	}
}

func TestWidthPercentNoItems(t *testing.T) {
	g := indicatorGeometry{tracker: newWidthTracker(0)}
	if got := g.widthPercent(100, 0); got != 0 {
		t.Fatalf("widthPercent with no items = %f, want 0", got)
	}
}

func TestGeometryGuardsZeroContentWidth(t *testing.T) {
	tr := fullyMeasured(10, 20)
	g := indicatorGeometry{tracker: tr, spacing: 1}

	for _, cw := range []int{0, -5} {
		if got := g.widthPercent(cw, 0); got != 0 {
			t.Fatalf("widthPercent(cw=%d) = %f, want 0", cw, got)
		}
		pos := g.positionPercent(cw, 1)
		if math.IsInf(pos, 0) || math.IsNaN(pos) {
			t.Fatalf("positionPercent(cw=%d) is non-finite: %f", cw, pos)
		}
		if pos != 0 {
			t.Fatalf("positionPercent(cw=%d) = %f, want 0", cw, pos)
		}
	}
}

func TestPositionPercentUniformFallback(t *testing.T) {
	tr := newWidthTracker(4)
	g := indicatorGeometry{tracker: tr, spacing: 1}

	// No widths recorded: uniform division plus the content inset.
	if got, want := g.positionPercent(0, 2), 2*(100/4.0)+1; got != want {
		t.Fatalf("fallback position = %f, want %f", got, want)
	}

	// One recorded width ends the fallback; positions come from prefix
	// sums from then on.
	tr.record(0, 25)
	if got := g.positionPercent(100, 1); got != 26 {
		t.Fatalf("post-fallback position = %f, want 26", got)
	}
}

func TestWidthPercentAppliesContentInset(t *testing.T) {
	tr := fullyMeasured(20, 30)
	g := indicatorGeometry{tracker: tr, spacing: 1}
	if got := g.widthPercent(50, 1); got != (30-2)/50.0*100 {
		t.Fatalf("widthPercent = %f", got)
	}
}
