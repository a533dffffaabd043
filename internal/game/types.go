package game

import (
	"chosenoffset.com/raccoon/internal/core/geom"
)

// State is the top-level mode of the manager.
type State int

const (
	StateLoading State = iota
	StatePlaying
)

func (s State) String() string {
	if s == StatePlaying {
		return "playing"
	}
	return "loading"
}

// Bubble is a chat bubble over the avatar that disappears after a while.
type Bubble struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// bubbleRise is how far above the avatar's feet the bubble sits.
const bubbleRise = 220

// panelAspect is the width to height ratio of overlay panels.
const panelAspect = 1.5

// panelRect centers an overlay panel in the viewport.
func panelRect(vp geom.Size) geom.Rect {
	w := min(vp.W*0.9, vp.H*0.9*panelAspect)
	h := w / panelAspect
	return geom.Rect{X: (vp.W - w) / 2, Y: (vp.H - h) / 2, W: w, H: h}
}

// Panel chrome, in screen pixels relative to the panel.
func closeRect(panel geom.Rect) geom.Rect {
	return geom.Rect{X: panel.X + panel.W - 52, Y: panel.Y + 12, W: 40, H: 40}
}

func prevRect(panel geom.Rect) geom.Rect {
	return geom.Rect{X: panel.X + 12, Y: panel.Y + panel.H/2 - 24, W: 40, H: 48}
}

func nextRect(panel geom.Rect) geom.Rect {
	return geom.Rect{X: panel.X + panel.W - 52, Y: panel.Y + panel.H/2 - 24, W: 40, H: 48}
}
