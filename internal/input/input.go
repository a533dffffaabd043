// Package input normalizes key and touch events into a held set of
// sources and derives movement intent from it.
package input

import (
	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/raccoon/internal/render"
)

// Button is a logical game button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonJump
	ButtonInteract
	ButtonBack
)

// Device identifies where an event came from.
type Device int

const (
	DeviceKeyboard Device = iota
	DeviceTouch
)

// Source is one physical key or touch button.
type Source struct {
	Device Device
	Code   int
}

// Key returns the source for a keyboard key.
func Key(k render.Key) Source {
	return Source{Device: DeviceKeyboard, Code: int(k)}
}

// Touch returns the source for an on-screen touch button.
func Touch(b Button) Source {
	return Source{Device: DeviceTouch, Code: int(b)}
}

// DefaultBindings maps WASD, the arrows, Space, Enter, E and Escape.
func DefaultBindings() map[Source]Button {
	return map[Source]Button{
		Key(render.KeyA):      ButtonLeft,
		Key(render.KeyLeft):   ButtonLeft,
		Key(render.KeyD):      ButtonRight,
		Key(render.KeyRight):  ButtonRight,
		Key(render.KeyW):      ButtonUp,
		Key(render.KeyUp):     ButtonUp,
		Key(render.KeyS):      ButtonDown,
		Key(render.KeyDown):   ButtonDown,
		Key(render.KeySpace):  ButtonJump,
		Key(render.KeyEnter):  ButtonInteract,
		Key(render.KeyE):      ButtonInteract,
		Key(render.KeyEscape): ButtonBack,
		Touch(ButtonLeft):     ButtonLeft,
		Touch(ButtonRight):    ButtonRight,
		Touch(ButtonUp):       ButtonUp,
		Touch(ButtonDown):     ButtonDown,
		Touch(ButtonJump):     ButtonJump,
		Touch(ButtonInteract): ButtonInteract,
	}
}

// State is the set of held sources. It holds no game logic; Down and Up
// are the only mutators besides Reset.
type State struct {
	held     mapset.Set[Source]
	bindings map[Source]Button
	pressed  mapset.Set[Button] // Buttons that went down since the last EndFrame
}

// NewState creates an empty state with the default bindings.
func NewState() *State {
	return &State{
		held:     mapset.New[Source](),
		bindings: DefaultBindings(),
		pressed:  mapset.New[Button](),
	}
}

// Down records a source going down.
func (s *State) Down(src Source) {
	if !s.held.Has(src) {
		if b, ok := s.bindings[src]; ok {
			s.pressed.Put(b)
		}
	}
	s.held.Put(src)
}

// Up records a source going up.
func (s *State) Up(src Source) {
	s.held.Remove(src)
}

// Reset releases everything, as when the window loses focus.
func (s *State) Reset() {
	s.held = mapset.New[Source]()
	s.pressed = mapset.New[Button]()
}

// Held reports whether any source bound to b is down.
func (s *State) Held(b Button) bool {
	held := false
	s.held.Each(func(src Source) {
		if bound, ok := s.bindings[src]; ok && bound == b {
			held = true
		}
	})
	return held
}

// Pressed reports whether b went down since the last EndFrame.
func (s *State) Pressed(b Button) bool {
	return s.pressed.Has(b)
}

// EndFrame clears the per-frame press edges.
func (s *State) EndFrame() {
	if s.pressed.Size() > 0 {
		s.pressed = mapset.New[Button]()
	}
}

// Intent returns the horizontal and vertical movement intent, each in
// {-1, 0, 1}. Negative y means up. Opposite buttons cancel.
func (s *State) Intent() (x, y int) {
	if s.Held(ButtonLeft) {
		x--
	}
	if s.Held(ButtonRight) {
		x++
	}
	if s.Held(ButtonUp) {
		y--
	}
	if s.Held(ButtonDown) {
		y++
	}
	return x, y
}

// PollKeys feeds keyboard edges from im into the state.
func (s *State) PollKeys(im render.InputManager) {
	for _, k := range render.AllKeys {
		if im.IsKeyJustPressed(k) {
			s.Down(Key(k))
		}
		if im.IsKeyJustReleased(k) {
			s.Up(Key(k))
		}
	}
}
