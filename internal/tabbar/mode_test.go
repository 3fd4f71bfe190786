package tabbar

import "testing"

func TestModeContainerMeasurementInFit(t *testing.T) {
	tr := newWidthTracker(3)
	c := modeController{mode: ModeFit}
	c.measureContainer(300, tr)
	if c.contentWidth != 300 {
		t.Fatalf("fit mode should pin contentWidth to container, got %d", c.contentWidth)
	}
	if c.mode != ModeFit {
		t.Fatalf("fit mode should not change on container measurement")
	}
}

func TestModeDowngradesScrollToFit(t *testing.T) {
	tr := newWidthTracker(3)
	tr.record(0, 100)
	tr.record(1, 100)
	tr.record(2, 50)

	c := modeController{mode: ModeScroll}
	c.measureContainer(300, tr)
	c.measureContent(250, tr)

	if c.mode != ModeFit {
		t.Fatalf("content 250 in container 300 should force fit, got %s", c.mode)
	}
	if c.contentWidth != 300 {
		t.Fatalf("forced fit should reset contentWidth to container, got %d", c.contentWidth)
	}
	if tr.measured() {
		t.Fatalf("forced fit should clear recorded widths")
	}
}

func TestModeStaysScrollWhenContentOverflows(t *testing.T) {
	tr := newWidthTracker(2)
	c := modeController{mode: ModeScroll}
	c.measureContainer(300, tr)
	c.measureContent(500, tr)

	if c.mode != ModeScroll {
		t.Fatalf("content 500 in container 300 should stay scroll, got %s", c.mode)
	}
	if c.contentFade != 1 {
		t.Fatalf("scroll re-evaluation should reveal content, fade = %f", c.contentFade)
	}
	if got := c.overflow(); got != 200 {
		t.Fatalf("overflow = %d, want 200", got)
	}
}

func TestModeContentFadeIsOneShot(t *testing.T) {
	tr := newWidthTracker(2)
	c := modeController{mode: ModeScroll}
	c.measureContainer(300, tr)
	c.measureContent(500, tr)
	c.contentFade = 1

	// Later re-evaluations never revert the reveal.
	c.measureContent(600, tr)
	if c.contentFade != 1 {
		t.Fatalf("contentFade reverted to %f", c.contentFade)
	}
}

func TestModeContentMeasurementIgnoredInFit(t *testing.T) {
	tr := newWidthTracker(2)
	c := modeController{mode: ModeFit}
	c.measureContainer(300, tr)
	c.measureContent(500, tr)
	if c.contentWidth != 300 || c.mode != ModeFit {
		t.Fatalf("content measurement should be a no-op in fit mode")
	}
}
