package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/raccoon/internal/core/geom"
	"chosenoffset.com/raccoon/internal/inventory"
	"chosenoffset.com/raccoon/internal/overlay"
	"chosenoffset.com/raccoon/internal/physics"
	"chosenoffset.com/raccoon/internal/render"
)

const (
	promptTextSize = 22
	bubbleTextSize = 24
	panelTextSize  = 20
)

var (
	clrBackdrop  = color.NRGBA{0, 0, 0, 255}
	clrText      = color.NRGBA{255, 255, 255, 255}
	clrInk       = color.NRGBA{30, 24, 20, 255}
	clrPill      = color.NRGBA{0, 0, 0, 170}
	clrBubble    = color.NRGBA{255, 255, 255, 235}
	clrDim       = color.NRGBA{0, 0, 0, 180}
	clrChrome    = color.NRGBA{255, 255, 255, 200}
	clrVideo     = color.NRGBA{20, 20, 20, 220}
	clrTouch     = color.NRGBA{255, 255, 255, 70}
	clrTouchHeld = color.NRGBA{255, 255, 255, 140}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(clrBackdrop)

	w := g.Scenes.World()
	if w != nil {
		g.drawBackground(screen)
		g.drawHotspotVisuals(screen)
		g.drawAvatar(screen)
		g.Lighting.Draw(screen)
		g.drawPrompt(screen)
		g.drawGreeting(screen)
	}

	if g.Overlays.IsOpen() {
		g.drawOverlay(screen)
	} else if g.touchActive {
		g.drawTouchPad(screen)
	}

	g.drawCover(screen)
}

// drawImageRect stretches img over a screen rectangle.
func drawImageRect(dst, img render.Image, r geom.Rect, alpha float32) {
	iw, ih := img.Size()
	if iw == 0 || ih == 0 {
		return
	}
	opts := &render.DrawImageOptions{GeoM: render.NewGeoM(), Alpha: alpha}
	opts.GeoM.Scale(r.W/float64(iw), r.H/float64(ih))
	opts.GeoM.Translate(r.X, r.Y)
	dst.DrawImage(img, opts)
}

func (g *Game) drawBackground(screen render.Image) {
	w := g.Scenes.World()
	topLeft := g.toScreen(geom.Point{})
	drawImageRect(screen, w.Background, geom.Rect{X: topLeft.X, Y: topLeft.Y, W: w.Size.W, H: w.Size.H}, 0)
}

func (g *Game) drawHotspotVisuals(screen render.Image) {
	for _, h := range g.Scenes.World().Hotspots {
		if !h.HasVisual() {
			continue
		}
		img := g.Images.GetOrFallback(h.Visual.Image)
		pos := g.toScreen(geom.Point{X: h.Rect.X, Y: h.Rect.Y})
		drawImageRect(screen, img, geom.Rect{X: pos.X, Y: pos.Y, W: h.Rect.W, H: h.Rect.H}, 0)
	}
}

// drawAvatar draws the current frame with its feet on the avatar position,
// mirrored when facing left.
func (g *Game) drawAvatar(screen render.Image) {
	frame, size := g.avatarSize()
	fw, _ := frame.Size()
	if fw == 0 {
		return
	}
	scale := size.W / float64(fw)
	feet := g.toScreen(g.Avatar.Pos)

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	if g.Avatar.Facing == physics.FacingLeft {
		opts.GeoM.Scale(-scale, scale)
		opts.GeoM.Translate(feet.X+size.W/2, feet.Y-size.H)
	} else {
		opts.GeoM.Scale(scale, scale)
		opts.GeoM.Translate(feet.X-size.W/2, feet.Y-size.H)
	}
	screen.DrawImage(frame, opts)
}

// drawLabel draws text on a filled box whose bottom-center is at anchor.
func (g *Game) drawLabel(screen render.Image, text string, anchor geom.Point, size float64, fill, ink color.Color) {
	tw, th := g.Renderer.MeasureText(text, size)
	const pad = 10
	box := geom.Rect{
		X: anchor.X - tw/2 - pad,
		Y: anchor.Y - th - 2*pad,
		W: tw + 2*pad,
		H: th + 2*pad,
	}
	g.Renderer.FillRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), fill)
	g.Renderer.DrawText(screen, text, box.X+pad, box.Y+pad, ink, size)
}

func (g *Game) drawPrompt(screen render.Image) {
	p := g.Prompts.Prompt()
	if !p.Visible {
		return
	}
	g.drawLabel(screen, p.Label, p.Screen, promptTextSize, clrPill, clrText)
}

func (g *Game) drawGreeting(screen render.Image) {
	if g.Greeting == nil {
		return
	}
	anchor := g.toScreen(g.Avatar.Pos)
	anchor.Y -= bubbleRise
	g.drawLabel(screen, g.Greeting.Text, anchor, bubbleTextSize, clrBubble, clrInk)
}

func (g *Game) drawOverlay(screen render.Image) {
	vp := g.Scenes.Viewport()
	g.Renderer.FillRect(screen, 0, 0, float32(vp.W), float32(vp.H), clrDim)

	panel := panelRect(vp)
	page, ok := g.Overlays.CurrentPage()
	if !ok {
		return
	}
	if page.Background != "" {
		drawImageRect(screen, g.Images.GetOrFallback(page.Background), panel, 0)
	}

	if g.Overlays.Current() == overlay.Inventory {
		for _, item := range g.Suitcase.Items() {
			img := g.Images.GetOrFallback(g.Suitcase.ImageFor(item))
			drawImageRect(screen, img, inventory.Rect(item, panel), 0)
		}
	}

	if v := page.Video; v != nil {
		r := v.Rect.PercentOf(panel)
		g.Renderer.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clrVideo)
		label := "▶ Play video"
		tw, th := g.Renderer.MeasureText(label, panelTextSize)
		g.Renderer.DrawText(screen, label, r.X+(r.W-tw)/2, r.Y+(r.H-th)/2, clrText, panelTextSize)
	}
	for _, l := range page.Links {
		r := l.Rect.PercentOf(panel)
		if l.Icon != "" {
			drawImageRect(screen, g.Images.GetOrFallback(l.Icon), r, 0)
		}
	}

	g.drawChrome(screen, panel)
}

// drawChrome draws the close button and, for multi-page panels, the page
// arrows and counter.
func (g *Game) drawChrome(screen render.Image, panel geom.Rect) {
	c := closeRect(panel)
	g.Renderer.DrawText(screen, "✕", c.X+10, c.Y+6, clrChrome, 28)

	idx, count := g.Overlays.Page()
	if count < 2 {
		return
	}
	if idx > 0 {
		r := prevRect(panel)
		g.Renderer.DrawText(screen, "◀", r.X+8, r.Y+8, clrChrome, 28)
	}
	if idx < count-1 {
		r := nextRect(panel)
		g.Renderer.DrawText(screen, "▶", r.X+8, r.Y+8, clrChrome, 28)
	}
	counter := fmt.Sprintf("%d / %d", idx+1, count)
	tw, th := g.Renderer.MeasureText(counter, panelTextSize)
	g.Renderer.DrawText(screen, counter, panel.X+(panel.W-tw)/2, panel.Y+panel.H-th-12, clrChrome, panelTextSize)
}

func (g *Game) drawTouchPad(screen render.Image) {
	for _, b := range g.TouchPad.Buttons {
		fill := clrTouch
		if g.Input.Held(b.Button) {
			fill = clrTouchHeld
		}
		r := b.Rect
		cx, cy, radius := float32(r.X+r.W/2), float32(r.Y+r.H/2), float32(r.W/2)
		g.Renderer.FillCircle(screen, cx, cy, radius, fill)
		g.Renderer.StrokeCircle(screen, cx, cy, radius, 2, clrChrome)
		tw, th := g.Renderer.MeasureText(b.Label, 28)
		g.Renderer.DrawText(screen, b.Label, r.X+(r.W-tw)/2, r.Y+(r.H-th)/2, clrText, 28)
	}
}

// drawCover draws the transition fade over everything.
func (g *Game) drawCover(screen render.Image) {
	a := g.Director.Alpha()
	if a <= 0 {
		return
	}
	vp := g.Scenes.Viewport()
	g.Renderer.FillRect(screen, 0, 0, float32(vp.W), float32(vp.H), color.NRGBA{A: uint8(a * 255)})
}
