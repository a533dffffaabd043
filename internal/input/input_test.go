package input

import (
	"image"
	"testing"

	"chosenoffset.com/raccoon/internal/core/geom"
	"chosenoffset.com/raccoon/internal/render"
	"chosenoffset.com/raccoon/internal/render/rendertest"
)

func TestIntent(t *testing.T) {
	tests := []struct {
		name  string
		keys  []render.Key
		wantX int
		wantY int
	}{
		{"idle", nil, 0, 0},
		{"left", []render.Key{render.KeyA}, -1, 0},
		{"right arrow", []render.Key{render.KeyRight}, 1, 0},
		{"opposites cancel", []render.Key{render.KeyA, render.KeyD}, 0, 0},
		{"climb up", []render.Key{render.KeyW}, 0, -1},
		{"diagonal", []render.Key{render.KeyD, render.KeyS}, 1, 1},
		{"two keys same button", []render.Key{render.KeyA, render.KeyLeft}, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			for _, k := range tt.keys {
				s.Down(Key(k))
			}
			x, y := s.Intent()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Expected intent (%d, %d), got (%d, %d)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestReleaseOneOfTwoSources(t *testing.T) {
	s := NewState()
	s.Down(Key(render.KeyA))
	s.Down(Touch(ButtonLeft))
	s.Up(Key(render.KeyA))

	if !s.Held(ButtonLeft) {
		t.Error("Expected left still held by touch")
	}
	s.Up(Touch(ButtonLeft))
	if s.Held(ButtonLeft) {
		t.Error("Expected left released")
	}
}

func TestPressedEdge(t *testing.T) {
	s := NewState()
	s.Down(Key(render.KeySpace))
	if !s.Pressed(ButtonJump) {
		t.Fatal("Expected jump pressed")
	}
	s.EndFrame()
	s.Down(Key(render.KeySpace)) // Key repeat while held
	if s.Pressed(ButtonJump) {
		t.Error("Expected no new press while held")
	}
}

func TestReset(t *testing.T) {
	s := NewState()
	s.Down(Key(render.KeyD))
	s.Reset()
	if x, _ := s.Intent(); x != 0 {
		t.Errorf("Expected no intent after reset, got %d", x)
	}
}

func TestPollKeys(t *testing.T) {
	s := NewState()
	in := rendertest.NewInput()
	in.Press(render.KeyD)
	s.PollKeys(in)
	in.EndFrame()

	if x, _ := s.Intent(); x != 1 {
		t.Fatalf("Expected right intent, got %d", x)
	}

	in.Release(render.KeyD)
	s.PollKeys(in)
	if x, _ := s.Intent(); x != 0 {
		t.Errorf("Expected intent cleared, got %d", x)
	}
}

func TestTouchPad(t *testing.T) {
	s := NewState()
	pad := NewTouchPad(geom.Size{W: 800, H: 600}, 60, 20)

	var left geom.Rect
	for _, b := range pad.Buttons {
		if b.Button == ButtonLeft {
			left = b.Rect
		}
	}
	touch := image.Pt(int(left.X+5), int(left.Y+5))

	pad.Update(s, []image.Point{touch})
	if x, _ := s.Intent(); x != -1 {
		t.Fatalf("Expected left intent from touch, got %d", x)
	}

	pad.Update(s, nil)
	if x, _ := s.Intent(); x != 0 {
		t.Errorf("Expected intent cleared when touch lifts, got %d", x)
	}
}
