package input

import (
	"image"

	"chosenoffset.com/raccoon/internal/core/geom"
)

// TouchButton is one on-screen button.
type TouchButton struct {
	Button Button
	Rect   geom.Rect
	Label  string
}

// TouchPad lays out the on-screen buttons and turns active touches into
// held sources on a State.
type TouchPad struct {
	Buttons []TouchButton
	held    map[Button]bool
}

// NewTouchPad places a d-pad in the bottom-left corner and jump and
// interact buttons in the bottom-right corner of the viewport.
func NewTouchPad(viewport geom.Size, size, margin float64) *TouchPad {
	p := &TouchPad{held: make(map[Button]bool)}
	p.Layout(viewport, size, margin)
	return p
}

// Layout recomputes button rectangles for a new viewport.
func (p *TouchPad) Layout(viewport geom.Size, size, margin float64) {
	mid := viewport.H - margin - 2*size // Top of the d-pad middle row
	left := margin
	right := viewport.W - margin - size

	p.Buttons = []TouchButton{
		{ButtonLeft, geom.Rect{X: left, Y: mid, W: size, H: size}, "◀"},
		{ButtonRight, geom.Rect{X: left + 2*size, Y: mid, W: size, H: size}, "▶"},
		{ButtonUp, geom.Rect{X: left + size, Y: mid - size, W: size, H: size}, "▲"},
		{ButtonDown, geom.Rect{X: left + size, Y: mid + size, W: size, H: size}, "▼"},
		{ButtonJump, geom.Rect{X: right - size*1.25, Y: mid + size, W: size, H: size}, "⤒"},
		{ButtonInteract, geom.Rect{X: right, Y: mid - size*0.25, W: size, H: size}, "⏎"},
	}
}

// ButtonAt returns the button under the screen point.
func (p *TouchPad) ButtonAt(pt geom.Point) (Button, bool) {
	for _, b := range p.Buttons {
		if b.Rect.Contains(pt) {
			return b.Button, true
		}
	}
	return 0, false
}

// Update syncs the state with the buttons under the active touches.
// Buttons with no touch on them are released.
func (p *TouchPad) Update(s *State, touches []image.Point) {
	now := make(map[Button]bool, len(touches))
	for _, t := range touches {
		if b, ok := p.ButtonAt(geom.Point{X: float64(t.X), Y: float64(t.Y)}); ok {
			now[b] = true
		}
	}
	for _, b := range p.Buttons {
		switch {
		case now[b.Button] && !p.held[b.Button]:
			s.Down(Touch(b.Button))
		case !now[b.Button] && p.held[b.Button]:
			s.Up(Touch(b.Button))
		}
	}
	p.held = now
}
