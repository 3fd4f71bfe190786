package tabbar

// Layout and interaction messages. Child measurements and scroll offsets are
// modeled as explicit messages flowing through the Bubble Tea loop rather
// than side effects, so they can arrive in any order and at any time after
// the first render.

// ContainerSizeMsg reports the measured width, in cells, of the bar's
// visible viewport. Hosts usually derive it from tea.WindowSizeMsg.
type ContainerSizeMsg struct {
	Width int
}

// ItemLayoutMsg carries one item's measured width. Each item reports exactly
// once; duplicate reports for an index are ignored.
type ItemLayoutMsg struct {
	Index int
	Width int
}

// ContentSizeMsg reports the width of the full item row. Only meaningful in
// scroll mode; the bar emits one itself when the last item layout arrives.
type ContentSizeMsg struct {
	Width int
}

// ScrollMsg reports a new horizontal scroll offset for a scrolling bar.
type ScrollMsg struct {
	Offset int
}

// TapMsg reports a raw tap on an item, before any selection policy is
// applied. The OnTabSelected callback always sees the tapped index even when
// the ignore-last-tab policy swallows the selection itself.
type TapMsg struct {
	Index int
}
