package tabbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// gradientWidth is how many trailing cells the overflow fade covers.
const gradientWidth = 6

// gradientController drives the opacity of the overflow fade drawn over the
// trailing edge of a scrolling bar. The fade disappears once the user has
// scrolled far enough to reveal all content and comes back as soon as any
// content is hidden again.
type gradientController struct {
	opacity springValue
}

func newGradientController() gradientController {
	return gradientController{
		opacity: newSpringValue(1, gradientFrequency, gradientDamping),
	}
}

// gradientTarget returns the opacity the fade should settle at for the given
// scroll offset: 0 once the offset is within one cell of the full overflow
// (and strictly positive), 1 otherwise.
func gradientTarget(offset, overflow int) float64 {
	if offset > 0 && offset >= overflow-1 {
		return 0
	}
	return 1
}

// observeScroll retargets the opacity spring for a new scroll offset.
func (c *gradientController) observeScroll(offset, overflow int) {
	c.opacity.setTarget(gradientTarget(offset, overflow))
}

// renderOverlay returns a gradientWidth-cell shade ramp stepping from the
// bar background toward tint, scaled by the current opacity. Colors that
// cannot be parsed as hex fall back to an unstyled ramp.
func (c *gradientController) renderOverlay(tint, background lipgloss.Color) string {
	op := c.opacity.value
	if op < 0 {
		op = 0
	}
	if op > 1 {
		op = 1
	}

	from, errFrom := colorful.Hex(string(background))
	to, errTo := colorful.Hex(string(tint))

	var b strings.Builder
	for i := range gradientWidth {
		frac := float64(i+1) / float64(gradientWidth) * op
		cell := "░"
		if errFrom == nil && errTo == nil {
			blended := from.BlendRgb(to, frac)
			cell = lipgloss.NewStyle().
				Foreground(lipgloss.Color(blended.Hex())).
				Background(background).
				Render("░")
		}
		b.WriteString(cell)
	}
	return b.String()
}
