// Package lighting darkens the screen around a spotlight that follows the
// avatar.
package lighting

import (
	"image"
	"image/color"
	"log"

	"chosenoffset.com/raccoon/internal/config"
	"chosenoffset.com/raccoon/internal/core/geom"
	"chosenoffset.com/raccoon/internal/render"
)

// innerFraction is where the falloff starts, as a fraction of the radius.
const innerFraction = 0.35

// Spotlight is a circle of light in screen pixels
type Spotlight struct {
	Center   geom.Point
	Radius   float64
	Darkness float64 // Alpha of the darkness outside the light (0.0 to 1.0)
}

// AlphaAt returns the darkness alpha at distance d from the center
func (s Spotlight) AlphaAt(d float64) float64 {
	inner := s.Radius * innerFraction
	switch {
	case d <= inner:
		return 0
	case d >= s.Radius:
		return s.Darkness
	}
	t := (d - inner) / (s.Radius - inner)
	return s.Darkness * t * t * (3 - 2*t)
}

// Manager draws the spotlight for scenes that have one
type Manager struct {
	renderer render.Renderer
	shader   render.Shader
	spot     *Spotlight

	// mask is the CPU falloff used when shaders are unavailable
	mask       render.Image
	maskRadius float64
}

// NewManager compiles the spotlight shader. An empty or broken source falls
// back to a pre-rendered mask.
func NewManager(r render.Renderer, shaderSrc []byte) *Manager {
	m := &Manager{renderer: r}
	if len(shaderSrc) == 0 {
		return m
	}
	shader, err := r.CompileShader(shaderSrc)
	if err != nil {
		log.Printf("Warning: Spotlight shader unavailable, using mask: %v", err)
		return m
	}
	m.shader = shader
	return m
}

// SetScene enables the spotlight from scene config, or disables it for nil
func (m *Manager) SetScene(cfg *config.SpotlightConfig) {
	if cfg == nil {
		m.spot = nil
		return
	}
	m.spot = &Spotlight{Radius: cfg.Radius, Darkness: cfg.Darkness}
}

// Spotlight returns the active spotlight, if any
func (m *Manager) Spotlight() (Spotlight, bool) {
	if m.spot == nil {
		return Spotlight{}, false
	}
	return *m.spot, true
}

// Follow moves the light to a screen position
func (m *Manager) Follow(center geom.Point) {
	if m.spot != nil {
		m.spot.Center = center
	}
}

// Draw darkens the screen outside the light
func (m *Manager) Draw(screen render.Image) {
	if m.spot == nil || m.spot.Darkness <= 0 {
		return
	}
	if m.shader != nil {
		m.drawShader(screen)
		return
	}
	m.drawMask(screen)
}

func (m *Manager) drawShader(screen render.Image) {
	w, h := screen.Size()
	opts := &render.DrawRectShaderOptions{
		Uniforms: map[string]interface{}{
			"Center":   []float32{float32(m.spot.Center.X), float32(m.spot.Center.Y)},
			"Radius":   float32(m.spot.Radius),
			"Darkness": float32(m.spot.Darkness),
		},
	}
	screen.DrawRectShader(w, h, m.shader, opts)
}

func (m *Manager) drawMask(screen render.Image) {
	s := *m.spot
	if m.mask == nil || m.maskRadius != s.Radius {
		if m.mask != nil {
			m.mask.Dispose()
		}
		m.mask = m.renderer.NewImageFromImage(Mask(Spotlight{Radius: s.Radius, Darkness: 1}))
		m.maskRadius = s.Radius
	}

	left := s.Center.X - s.Radius
	top := s.Center.Y - s.Radius
	size := 2 * s.Radius

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM(), Alpha: float32(s.Darkness)}
	opts.GeoM.Translate(left, top)
	screen.DrawImage(m.mask, opts)

	// Everything outside the mask square is fully dark
	w, h := screen.Size()
	dark := color.NRGBA{A: uint8(s.Darkness * 255)}
	sw, sh := float32(w), float32(h)
	l, t, sz := float32(left), float32(top), float32(size)
	m.renderer.FillRect(screen, 0, 0, sw, t, dark)
	m.renderer.FillRect(screen, 0, t+sz, sw, sh-(t+sz), dark)
	m.renderer.FillRect(screen, 0, t, l, sz, dark)
	m.renderer.FillRect(screen, l+sz, t, sw-(l+sz), sz, dark)
}

// Mask renders the falloff of a spotlight centered in a square image
func Mask(s Spotlight) image.Image {
	n := int(2 * s.Radius)
	if n < 1 {
		n = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	c := geom.Point{X: s.Radius, Y: s.Radius}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			d := geom.Distance(c, geom.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			img.SetNRGBA(x, y, color.NRGBA{A: uint8(s.AlphaAt(d) * 255)})
		}
	}
	return img
}
