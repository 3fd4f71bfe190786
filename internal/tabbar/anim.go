package tabbar

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const animFPS = 60

// Spring tuning. The indicator glides with a gentle wobble; the gradient
// opacity snaps much faster since it only fades a few cells of shading.
const (
	indicatorFrequency = 5.5
	indicatorDamping   = 0.73

	gradientFrequency = 20.0
	gradientDamping   = 1.0
)

// settleEpsilon is the position/velocity threshold below which a spring is
// considered at rest and animation frames stop.
const settleEpsilon = 0.05

// springValue is a fire-and-forget animated scalar: set a target, step once
// per frame, read the interpolated value. Setting a new target supersedes
// any in-flight motion toward a stale one, so there is nothing to cancel.
type springValue struct {
	spring harmonica.Spring
	value  float64
	vel    float64
	target float64
}

func newSpringValue(initial, frequency, damping float64) springValue {
	return springValue{
		spring: harmonica.NewSpring(harmonica.FPS(animFPS), frequency, damping),
		value:  initial,
		target: initial,
	}
}

// setTarget starts animating toward t on subsequent steps.
func (s *springValue) setTarget(t float64) {
	s.target = t
}

// snap jumps straight to t with no intermediate frames.
func (s *springValue) snap(t float64) {
	s.value, s.vel, s.target = t, 0, t
}

// step advances the spring by one frame.
func (s *springValue) step() {
	s.value, s.vel = s.spring.Update(s.value, s.vel, s.target)
	if s.settled() {
		s.value, s.vel = s.target, 0
	}
}

// settled reports whether the spring has effectively reached its target.
func (s *springValue) settled() bool {
	return math.Abs(s.value-s.target) < settleEpsilon && math.Abs(s.vel) < settleEpsilon
}

// FrameMsg advances the bar's in-flight animations by one frame.
type FrameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/animFPS, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
