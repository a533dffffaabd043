package physics

import (
	"math"
	"testing"

	"chosenoffset.com/raccoon/internal/core/geom"
)

var testParams = Params{Speed: 350, Gravity: 1800, JumpSpeed: 900, ClimbSpeed: 700}

var testBounds = Bounds{
	GroundY:  860,
	CeilingY: 10,
	World:    geom.Size{W: 2000, H: 1000},
}

func grounded(x float64) *Avatar {
	a := NewAvatar(testParams)
	a.Place(x, testBounds)
	return a
}

func TestIdleIsStable(t *testing.T) {
	a := grounded(500)
	for _, dt := range []float64{0, 0.016, 0.1, 0.25} {
		a.Step(dt, 0, 0, false, testBounds)
	}
	if a.Pos != (geom.Point{X: 500, Y: 860}) {
		t.Errorf("Expected avatar to stay at (500, 860), got %v", a.Pos)
	}
	if a.Anim != AnimIdle {
		t.Errorf("Expected idle, got %v", a.Anim)
	}
}

func TestWalkUsesTunedNormalization(t *testing.T) {
	a := grounded(500)
	a.Step(1, 1, 0, false, testBounds)

	want := 500 + 350/math.Sqrt2
	if math.Abs(a.Pos.X-want) > 1e-9 {
		t.Errorf("Expected x %.4f, got %.4f", want, a.Pos.X)
	}
	if a.Pos.Y != testBounds.GroundY || !a.OnGround {
		t.Errorf("Expected to stay on ground, got y=%v onGround=%v", a.Pos.Y, a.OnGround)
	}
	if a.Anim != AnimWalking || a.Facing != FacingRight {
		t.Errorf("Expected walking right, got %v %v", a.Anim, a.Facing)
	}
}

func TestClimbOverridesGravity(t *testing.T) {
	a := grounded(500)
	a.Step(0.1, 0, -1, false, testBounds)

	if a.VY != -700 {
		t.Errorf("Expected vy -700, got %v", a.VY)
	}
	if math.Abs(a.Pos.Y-790) > 1e-9 {
		t.Errorf("Expected y 790, got %v", a.Pos.Y)
	}
	if a.OnGround {
		t.Error("Expected avatar to leave the ground")
	}
}

func TestFacingKeptOnVerticalOnlyMovement(t *testing.T) {
	a := grounded(500)
	a.Step(0.016, -1, 0, false, testBounds)
	a.Step(0.016, 0, -1, false, testBounds)
	if a.Facing != FacingLeft {
		t.Errorf("Expected facing left, got %v", a.Facing)
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	a := grounded(500)
	if !a.Jump() {
		t.Fatal("Expected jump from ground")
	}
	if a.VY != -900 {
		t.Errorf("Expected vy -900, got %v", a.VY)
	}

	a.Step(0.1, 0, 0, false, testBounds)
	vy := a.VY
	if a.Jump() {
		t.Error("Expected airborne jump to be refused")
	}
	if a.VY != vy {
		t.Errorf("Expected vy unchanged at %v, got %v", vy, a.VY)
	}
}

func TestJumpLandsOnGround(t *testing.T) {
	a := grounded(500)
	a.Jump()
	for i := 0; i < 200; i++ {
		a.Step(1.0/60, 0, 0, false, testBounds)
	}
	if !a.OnGround || a.Pos.Y != testBounds.GroundY {
		t.Errorf("Expected to land at %v, got y=%v onGround=%v", testBounds.GroundY, a.Pos.Y, a.OnGround)
	}
	if a.Anim != AnimIdle {
		t.Errorf("Expected idle after landing, got %v", a.Anim)
	}
}

func TestPausedFreezesAvatar(t *testing.T) {
	a := grounded(500)
	a.Jump()
	before := *a
	a.Step(0.1, 1, -1, true, testBounds)

	if a.Pos != before.Pos || a.VY != before.VY {
		t.Errorf("Expected frozen avatar, got pos=%v vy=%v", a.Pos, a.VY)
	}
	if a.Anim != AnimIdle {
		t.Errorf("Expected idle while paused, got %v", a.Anim)
	}
}

func TestStaysWithinBounds(t *testing.T) {
	intents := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {1, -1}, {-1, 1}}
	for _, start := range []float64{0, 10, 1000, 1990, 2000} {
		for _, in := range intents {
			a := grounded(start)
			for i := 0; i < 120; i++ {
				a.Step(0.05, in[0], in[1], false, testBounds)
				if a.Pos.Y < testBounds.CeilingY || a.Pos.Y > testBounds.GroundY {
					t.Fatalf("y %v escaped [%v, %v] (start %v intent %v)", a.Pos.Y, testBounds.CeilingY, testBounds.GroundY, start, in)
				}
				if a.Pos.X < 0 || a.Pos.X > testBounds.World.W {
					t.Fatalf("x %v escaped [0, %v] (start %v intent %v)", a.Pos.X, testBounds.World.W, start, in)
				}
			}
		}
	}
}

func TestCeilingStopsClimb(t *testing.T) {
	a := grounded(500)
	for i := 0; i < 100; i++ {
		a.Step(0.05, 0, -1, false, testBounds)
	}
	if a.Pos.Y != testBounds.CeilingY {
		t.Errorf("Expected y at ceiling %v, got %v", testBounds.CeilingY, a.Pos.Y)
	}
}
