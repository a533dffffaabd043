// Package physics integrates the avatar's motion: horizontal walking,
// gravity, jumping and held climbing, clamped to the scene's ground,
// ceiling and world edges.
package physics

import (
	"math"

	"chosenoffset.com/raccoon/internal/core/geom"
)

// Facing is the horizontal direction the avatar looks.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Anim is the avatar animation state.
type Anim int

const (
	AnimIdle Anim = iota
	AnimWalking
)

func (a Anim) String() string {
	if a == AnimWalking {
		return "walking"
	}
	return "idle"
}

// Params are the movement constants.
type Params struct {
	Speed      float64 // Horizontal px/s
	Gravity    float64 // px/s^2
	JumpSpeed  float64 // Initial upward px/s
	ClimbSpeed float64 // px/s while climbing
}

// Bounds are the scene lines the avatar is held within.
type Bounds struct {
	GroundY  float64
	CeilingY float64
	World    geom.Size
}

// Avatar is the raccoon's physical state. Pos is the feet position in
// world pixels.
type Avatar struct {
	Pos      geom.Point
	VY       float64
	OnGround bool
	Facing   Facing
	Anim     Anim

	params Params
}

// NewAvatar creates an avatar facing right.
func NewAvatar(p Params) *Avatar {
	return &Avatar{Facing: FacingRight, params: p}
}

// Params returns the movement constants.
func (a *Avatar) Params() Params {
	return a.params
}

// Place puts the avatar at x on the ground line, at rest.
func (a *Avatar) Place(x float64, b Bounds) {
	a.Pos = geom.Point{X: geom.Clamp(x, 0, b.World.W), Y: b.GroundY}
	a.VY = 0
	a.OnGround = true
}

// Jump applies the jump impulse. It is a no-op while airborne.
func (a *Avatar) Jump() bool {
	if !a.OnGround {
		return false
	}
	a.VY = -a.params.JumpSpeed
	a.OnGround = false
	return true
}

// Step advances the avatar by dt seconds with movement intent ix, iy in
// {-1, 0, 1}; iy < 0 climbs up. While paused the avatar is frozen and idle.
func (a *Avatar) Step(dt float64, ix, iy int, paused bool, b Bounds) {
	moving := !paused && (ix != 0 || iy != 0 || !a.OnGround || a.VY != 0)
	if !moving {
		a.Anim = AnimIdle
		return
	}
	a.Anim = AnimWalking

	// Horizontal speed is normalized against (ix or 1, 1) so the combined
	// walk and climb never outruns a single axis. Kept as tuned.
	hx := float64(ix)
	if hx == 0 {
		hx = 1
	}
	vx := float64(ix) / math.Hypot(hx, 1)
	a.Pos.X += vx * a.params.Speed * dt

	if iy != 0 {
		a.VY = float64(iy) * a.params.ClimbSpeed
		a.OnGround = false
	} else {
		a.VY += a.params.Gravity * dt
	}
	a.Pos.Y += a.VY * dt

	if a.Pos.Y >= b.GroundY {
		a.Pos.Y = b.GroundY
		a.VY = 0
		a.OnGround = true
	}
	if a.Pos.Y <= b.CeilingY {
		a.Pos.Y = b.CeilingY
		a.VY = 0
	}

	a.Pos.X = geom.Clamp(a.Pos.X, 0, b.World.W)
	a.Pos.Y = geom.Clamp(a.Pos.Y, 0, b.World.H)

	if ix > 0 {
		a.Facing = FacingRight
	} else if ix < 0 {
		a.Facing = FacingLeft
	}
}
