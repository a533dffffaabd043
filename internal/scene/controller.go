package scene

import (
	"context"
	"fmt"
	"log"

	"chosenoffset.com/raccoon/internal/assets"
	"chosenoffset.com/raccoon/internal/camera"
	"chosenoffset.com/raccoon/internal/core/geom"
	"chosenoffset.com/raccoon/internal/physics"
	"chosenoffset.com/raccoon/internal/render"
	"chosenoffset.com/raccoon/internal/transition"
)

// World is the fitted current scene.
type World struct {
	Scene      *Scene
	Background render.Image
	Natural    geom.Size // Size the layout was fitted from
	Layout
	Hotspots []Placed
	Fallback bool // Background failed to load
}

// Bounds returns the lines the avatar is held within.
func (w *World) Bounds() physics.Bounds {
	return physics.Bounds{
		GroundY:  w.Size.H - w.Scene.GroundOffset,
		CeilingY: w.Scene.CeilingOffset,
		World:    w.Size,
	}
}

// ImageLoader is the part of the asset cache the controller needs.
type ImageLoader interface {
	Load(ctx context.Context, key string) (render.Image, error)
	Fallback() render.Image
}

var _ ImageLoader = (*assets.Cache)(nil)

// Controller owns the current scene and performs scene changes behind the
// transition director.
type Controller struct {
	registry  *Registry
	images    ImageLoader
	director  *transition.Director
	avatar    *physics.Avatar
	camera    *camera.Camera
	reference geom.Size

	viewport geom.Size
	world    *World

	// Blocked reports whether an overlay is open. Scene changes are refused
	// while it returns true.
	Blocked func() bool
	// OnEnter runs on the frame thread after a scene is set up, while the
	// screen is still covered.
	OnEnter func(w *World)
}

// NewController wires a controller. reference is the world size assumed
// when the very first background fails to load.
func NewController(reg *Registry, images ImageLoader, d *transition.Director, a *physics.Avatar, c *camera.Camera, viewport, reference geom.Size) *Controller {
	return &Controller{
		registry:  reg,
		images:    images,
		director:  d,
		avatar:    a,
		camera:    c,
		reference: reference,
		viewport:  viewport,
	}
}

// World returns the current scene, or nil before the first enter.
func (c *Controller) World() *World {
	return c.world
}

// Viewport returns the current viewport size.
func (c *Controller) Viewport() geom.Size {
	return c.viewport
}

// CanTransition reports whether a scene change would be accepted now.
func (c *Controller) CanTransition() bool {
	if c.director.Active() {
		return false
	}
	return c.Blocked == nil || !c.Blocked()
}

// Enter changes scene behind a fade. arrive names a hotspot in the target
// scene to stand at instead of the spawn point. done runs once the fade has
// fully cleared. It returns false when the request is dropped: a change is
// already in flight, an overlay is open, or the scene is unknown.
func (c *Controller) Enter(id, arrive string, done func()) bool {
	if !c.CanTransition() {
		return false
	}
	s, ok := c.registry.Get(id)
	if !ok {
		log.Printf("Warning: Ignoring request for unknown scene %q", id)
		return false
	}

	var bg render.Image
	return c.director.Run(transition.Setup{
		Prepare: func(ctx context.Context) error {
			img, err := c.images.Load(ctx, s.Background)
			bg = img
			return err
		},
		Commit: func(err error) {
			c.apply(s, bg, err, arrive)
		},
		Done: done,
	})
}

// EnterImmediately sets up a scene without a fade, for startup.
func (c *Controller) EnterImmediately(ctx context.Context, id string) error {
	s, ok := c.registry.Get(id)
	if !ok {
		return fmt.Errorf("unknown scene %q", id)
	}
	bg, err := c.images.Load(ctx, s.Background)
	c.apply(s, bg, err, "")
	return nil
}

// apply installs scene s. It runs on the frame thread.
func (c *Controller) apply(s *Scene, bg render.Image, loadErr error, arrive string) {
	w := &World{Scene: s, Background: bg}
	if loadErr != nil || bg == nil {
		log.Printf("Warning: Failed to load background for %s, using placeholder: %v", s.ID, loadErr)
		w.Background = c.images.Fallback()
		w.Fallback = true
		w.Natural = c.reference
		if c.world != nil && !c.world.Natural.IsZero() {
			w.Natural = c.world.Natural
		}
	} else {
		bw, bh := bg.Size()
		w.Natural = geom.Size{W: float64(bw), H: float64(bh)}
	}

	w.Layout = Fit(s.Fit, s.Zoom, w.Natural, c.viewport)
	w.Hotspots = Place(s, w.Size)
	c.world = w

	x := s.Spawn.At(w.Size)
	if arrive != "" {
		if h, ok := w.Hotspot(arrive); ok {
			x = h.Pos.X
		} else {
			log.Printf("Warning: Scene %s has no hotspot %q to arrive at", s.ID, arrive)
		}
	}
	c.avatar.Place(x, w.Bounds())
	c.camera.Snap(c.avatar.Pos, c.viewport, w.Size)

	log.Printf("Entered scene %s (%.0fx%.0f)", s.ID, w.Size.W, w.Size.H)
	if c.OnEnter != nil {
		c.OnEnter(w)
	}
}

// Hotspot finds a placed hotspot by id.
func (w *World) Hotspot(id string) (Placed, bool) {
	for _, h := range w.Hotspots {
		if h.ID == id {
			return h, true
		}
	}
	return Placed{}, false
}

// Resize refits the current scene to a new viewport. The avatar keeps its
// relative position and stays on the ground if it was there, and the
// camera cuts to its new target.
func (c *Controller) Resize(viewport geom.Size) {
	if viewport == c.viewport || viewport.IsZero() {
		return
	}
	c.viewport = viewport
	w := c.world
	if w == nil {
		return
	}

	old := w.Size
	w.Layout = Fit(w.Scene.Fit, w.Scene.Zoom, w.Natural, viewport)
	w.Hotspots = Place(w.Scene, w.Size)

	b := w.Bounds()
	pos := c.avatar.Pos
	if !old.IsZero() {
		pos.X *= w.Size.W / old.W
		pos.Y *= w.Size.H / old.H
	}
	if c.avatar.OnGround {
		pos.Y = b.GroundY
	}
	c.avatar.Pos = geom.Point{
		X: geom.Clamp(pos.X, 0, b.World.W),
		Y: geom.Clamp(geom.Clamp(pos.Y, b.CeilingY, b.GroundY), 0, b.World.H),
	}
	c.camera.Snap(c.avatar.Pos, viewport, w.Size)
}
