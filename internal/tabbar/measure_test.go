package tabbar

import "testing"

func TestTrackerFirstReportWins(t *testing.T) {
	tr := newWidthTracker(3)
	if !tr.record(1, 10) {
		t.Fatalf("first report should be recorded")
	}
	if tr.record(1, 99) {
		t.Fatalf("duplicate report should be ignored")
	}
	if got := tr.width(1); got != 10 {
		t.Fatalf("width overwritten by duplicate: got %d", got)
	}
}

func TestTrackerCompleteCountsDistinctIndexes(t *testing.T) {
	tr := newWidthTracker(2)
	tr.record(0, 5)
	tr.record(0, 5)
	tr.record(0, 5)
	if tr.complete() {
		t.Fatalf("repeat reports for one index should not complete the tracker")
	}
	tr.record(1, 7)
	if !tr.complete() {
		t.Fatalf("tracker should be complete with both indexes recorded")
	}
}

func TestTrackerRejectsOutOfRange(t *testing.T) {
	tr := newWidthTracker(2)
	if tr.record(-1, 5) || tr.record(2, 5) {
		t.Fatalf("out-of-range indexes should be rejected")
	}
	if tr.measured() {
		t.Fatalf("rejected reports should leave the tracker empty")
	}
}

func TestTrackerPrefixAndTotal(t *testing.T) {
	tr := newWidthTracker(3)
	tr.record(0, 10)
	tr.record(1, 20)
	tr.record(2, 30)
	if got := tr.prefix(0); got != 0 {
		t.Fatalf("prefix(0) = %d, want 0", got)
	}
	if got := tr.prefix(2); got != 30 {
		t.Fatalf("prefix(2) = %d, want 30", got)
	}
	if got := tr.total(); got != 60 {
		t.Fatalf("total = %d, want 60", got)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := newWidthTracker(2)
	tr.record(0, 5)
	tr.record(1, 5)
	tr.reset()
	if tr.measured() || tr.complete() {
		t.Fatalf("reset should clear all recorded widths")
	}
	if !tr.record(0, 9) {
		t.Fatalf("indexes should be recordable again after reset")
	}
}
