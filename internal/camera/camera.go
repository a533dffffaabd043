// Package camera keeps the avatar in frame with a smoothed, world-clamped
// viewport offset.
package camera

import (
	"math"

	"chosenoffset.com/raccoon/internal/core/geom"
)

// Camera is the top-left world offset of the viewport.
type Camera struct {
	Offset geom.Point

	// Smoothing is the fraction of the gap to the target closed per frame.
	Smoothing float64
	// AnchorY places the avatar's feet at this fraction of viewport height.
	AnchorY float64
}

// New creates a camera at the world origin.
func New(smoothing, anchorY float64) *Camera {
	return &Camera{Smoothing: smoothing, AnchorY: anchorY}
}

// Target returns the clamped offset that centers the avatar horizontally
// and holds its feet at AnchorY of the viewport. Each axis lies in
// [0, max(0, world-viewport)].
func (c *Camera) Target(avatar geom.Point, viewport, world geom.Size) geom.Point {
	return geom.Point{
		X: geom.Clamp(avatar.X-viewport.W/2, 0, math.Max(0, world.W-viewport.W)),
		Y: geom.Clamp(avatar.Y-viewport.H*c.AnchorY, 0, math.Max(0, world.H-viewport.H)),
	}
}

// Follow moves the offset a fixed fraction toward the target. The step is
// per frame, not per second.
func (c *Camera) Follow(avatar geom.Point, viewport, world geom.Size) geom.Point {
	t := c.Target(avatar, viewport, world)
	c.Offset.X = geom.Lerp(c.Offset.X, t.X, c.Smoothing)
	c.Offset.Y = geom.Lerp(c.Offset.Y, t.Y, c.Smoothing)
	return c.Offset
}

// Snap jumps straight to the target.
func (c *Camera) Snap(avatar geom.Point, viewport, world geom.Size) geom.Point {
	c.Offset = c.Target(avatar, viewport, world)
	return c.Offset
}

// WorldToScreen projects a world point through the camera.
func (c *Camera) WorldToScreen(p geom.Point) geom.Point {
	return p.Sub(c.Offset)
}

// ScreenToWorld projects a screen point into the world.
func (c *Camera) ScreenToWorld(p geom.Point) geom.Point {
	return p.Add(c.Offset)
}
