package scene

import (
	"math"

	"chosenoffset.com/raccoon/internal/core/geom"
)

// Layout is a background fitted into a viewport.
type Layout struct {
	Size   geom.Size  // World size in pixels
	Origin geom.Point // Screen position of the world's top-left corner
	Scale  float64
}

// Fit scales a background of natural size into viewport. Dimensions are
// rounded to whole pixels.
func Fit(mode FitMode, zoom float64, natural, viewport geom.Size) Layout {
	if natural.IsZero() {
		return Layout{Size: viewport, Scale: 1}
	}
	if zoom <= 0 {
		zoom = 1
	}

	sx := viewport.W / natural.W
	sy := viewport.H / natural.H

	var scale float64
	switch mode {
	case FitContain:
		scale = math.Min(sx, sy)
	case FitHeight:
		scale = sy
	default:
		scale = math.Max(sx, sy)
	}
	scale *= zoom

	l := Layout{
		Size:  geom.Size{W: math.Round(natural.W * scale), H: math.Round(natural.H * scale)},
		Scale: scale,
	}
	if mode == FitContain {
		l.Origin = geom.Point{
			X: math.Max(0, (viewport.W-l.Size.W)/2),
			Y: math.Max(0, (viewport.H-l.Size.H)/2),
		}
	}
	return l
}

// Placed is a hotspot resolved into world pixels.
type Placed struct {
	*Hotspot
	Pos geom.Point
	// Rect is the visual's world rectangle, zero when there is no visual.
	Rect geom.Rect
}

// HasVisual reports whether the hotspot draws an image.
func (p Placed) HasVisual() bool {
	return p.Visual != nil
}

// Place resolves every hotspot of s against a world size. It has no side
// effects; call it again whenever the world size changes.
func Place(s *Scene, world geom.Size) []Placed {
	placed := make([]Placed, len(s.Hotspots))
	for i := range s.Hotspots {
		h := &s.Hotspots[i]
		p := Placed{Hotspot: h, Pos: h.Anchor.Resolve(world)}
		if h.Visual != nil {
			w := h.Visual.WidthPct * world.W / 100
			ht := h.Visual.HeightPct * world.H / 100
			// Centered on the anchor x, resting on the anchor y.
			p.Rect = geom.Rect{X: p.Pos.X - w/2, Y: p.Pos.Y - ht, W: w, H: ht}
		}
		placed[i] = p
	}
	return placed
}
