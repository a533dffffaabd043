package game

import (
	"fmt"
	"log"
	"time"

	"chosenoffset.com/raccoon/internal/assets"
	"chosenoffset.com/raccoon/internal/camera"
	"chosenoffset.com/raccoon/internal/config"
	"chosenoffset.com/raccoon/internal/core/clock"
	"chosenoffset.com/raccoon/internal/core/geom"
	"chosenoffset.com/raccoon/internal/input"
	"chosenoffset.com/raccoon/internal/interaction"
	"chosenoffset.com/raccoon/internal/inventory"
	"chosenoffset.com/raccoon/internal/overlay"
	"chosenoffset.com/raccoon/internal/physics"
	"chosenoffset.com/raccoon/internal/render"
	"chosenoffset.com/raccoon/internal/render/lighting"
	"chosenoffset.com/raccoon/internal/scene"
	"chosenoffset.com/raccoon/internal/sprite"
	"chosenoffset.com/raccoon/internal/transition"
)

// Options are the collaborators a Game is built from.
type Options struct {
	Renderer render.Renderer
	InputMgr render.InputManager
	Images   *assets.Cache
	Clock    clock.Clock
	Links    overlay.LinkOpener
	Videos   overlay.VideoPlayer
	// Sheet is the avatar sprite sheet; nil draws the placeholder image.
	Sheet           *sprite.Sheet
	SpotlightShader []byte
	Viewport        geom.Size
}

// Game holds all game state and logic for one play session.
type Game struct {
	Config   *config.Config
	Renderer render.Renderer
	InputMgr render.InputManager
	Images   *assets.Cache
	Clock    clock.Clock

	Avatar   *physics.Avatar
	Camera   *camera.Camera
	Director *transition.Director
	Scenes   *scene.Controller
	Prompts  *interaction.Engine
	Overlays *overlay.Stack
	Suitcase *inventory.Suitcase
	Lighting *lighting.Manager
	Animator *sprite.Animator

	Input    *input.State
	TouchPad *input.TouchPad

	// UI state
	Greeting *Bubble

	pointer     *geom.Point // Cursor in screen pixels, nil until the mouse moves
	lastCursor  geom.Point
	touchActive bool // Draw the touch pad once a touch has been seen
	lastTick    time.Time
}

// NewGame wires a game. The first scene still has to be entered.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	reg, err := scene.NewRegistry(cfg.Scenes)
	if err != nil {
		return nil, fmt.Errorf("failed to build scenes: %w", err)
	}
	stack, err := overlay.NewStack(cfg.Panels, opts.Videos, opts.Links)
	if err != nil {
		return nil, fmt.Errorf("failed to build panels: %w", err)
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}

	avatar := physics.NewAvatar(physics.Params{
		Speed:      cfg.Avatar.Speed,
		Gravity:    cfg.Physics.Gravity,
		JumpSpeed:  cfg.Physics.JumpSpeed,
		ClimbSpeed: cfg.Physics.ClimbSpeed,
	})
	cam := camera.New(cfg.Camera.Smoothing, cfg.Camera.AnchorY)
	tr := cfg.Transition
	director := transition.NewDirector(opts.Clock, tr.FadeDuration, tr.FadeTimeout, tr.LoadTimeout)

	sheet := opts.Sheet
	if sheet == nil {
		sheet = sprite.SingleFrame(opts.Images.Fallback(), physics.AnimIdle.String(), physics.AnimWalking.String())
	}

	g := &Game{
		Config:   cfg,
		Renderer: opts.Renderer,
		InputMgr: opts.InputMgr,
		Images:   opts.Images,
		Clock:    opts.Clock,
		Avatar:   avatar,
		Camera:   cam,
		Director: director,
		Scenes:   scene.NewController(reg, opts.Images, director, avatar, cam, opts.Viewport, cfg.Reference),
		Prompts:  interaction.NewEngine(),
		Overlays: stack,
		Suitcase: inventory.New(cfg.Suitcase),
		Lighting: lighting.NewManager(opts.Renderer, opts.SpotlightShader),
		Animator: sprite.NewAnimator(sheet, physics.AnimIdle.String()),
		Input:    input.NewState(),
		TouchPad: input.NewTouchPad(opts.Viewport, cfg.TouchPad.ButtonSize, cfg.TouchPad.Margin),
	}

	g.Scenes.Blocked = g.Overlays.IsOpen
	g.Scenes.OnEnter = g.onEnter
	g.Overlays.OnChange = func(overlay.ID) { g.evaluatePrompt() }
	g.Suitcase.OnSelect = func(project string) {
		g.Overlays.Close(overlay.Inventory)
		g.Overlays.Open(overlay.Project(project))
	}
	return g, nil
}

// Update runs one frame: input, overlays, physics, camera, prompts and
// the transition fade.
func (g *Game) Update() error {
	now := g.Clock.Now()
	dt := 0.0
	if !g.lastTick.IsZero() {
		dt = g.Config.Transition.FrameDelta(now.Sub(g.lastTick))
	}
	g.lastTick = now

	click := g.pollInput()
	g.Director.Update(dt)

	w := g.Scenes.World()
	if w == nil {
		g.Input.EndFrame()
		return nil
	}

	if g.Overlays.IsOpen() {
		if g.Input.Pressed(input.ButtonBack) {
			g.Overlays.CloseCurrent()
		} else {
			g.updateOverlay(click)
		}
		click = nil
	}

	paused := g.Overlays.IsOpen() || g.Director.Active()
	ix, iy := 0, 0
	if !paused {
		ix, iy = g.Input.Intent()
		if g.Input.Pressed(input.ButtonJump) {
			g.Avatar.Jump()
		}
	}
	g.Avatar.Step(dt, ix, iy, paused, w.Bounds())
	g.Camera.Follow(g.Avatar.Pos, g.Scenes.Viewport(), w.Size)

	g.Animator.Play(g.Avatar.Anim.String())
	g.Animator.Update(dt)

	g.evaluatePrompt()
	if !paused {
		p := g.Prompts.Prompt()
		hoverClick := click != nil && p.Visible && p.Trigger == interaction.TriggerHover
		if g.Input.Pressed(input.ButtonInteract) || hoverClick {
			g.activate()
		}
	}

	g.updateGreeting(dt)
	g.Lighting.Follow(g.avatarCenter())

	g.Input.EndFrame()
	return nil
}

// Resize refits the world and the touch pad to a new viewport.
func (g *Game) Resize(vp geom.Size) {
	g.Scenes.Resize(vp)
	g.TouchPad.Layout(vp, g.Config.TouchPad.ButtonSize, g.Config.TouchPad.Margin)
	g.evaluatePrompt()
}

// pollInput feeds keys, the touch pad and the pointer into the input state
// and returns the screen position of a click or tap this frame, if any.
func (g *Game) pollInput() *geom.Point {
	im := g.InputMgr
	g.Input.PollKeys(im)

	touches := im.TouchPositions()
	if len(touches) > 0 {
		g.touchActive = true
	}
	if !g.Overlays.IsOpen() {
		g.TouchPad.Update(g.Input, touches)
	}

	cx, cy := im.GetCursorPosition()
	cursor := geom.Point{X: float64(cx), Y: float64(cy)}
	if cursor != g.lastCursor {
		g.pointer = &cursor
		g.lastCursor = cursor
	}

	if im.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		g.pointer = &cursor
		return &cursor
	}
	for _, t := range im.JustPressedTouchPositions() {
		p := geom.Point{X: float64(t.X), Y: float64(t.Y)}
		if _, onPad := g.TouchPad.ButtonAt(p); onPad && !g.Overlays.IsOpen() {
			continue
		}
		// A tap hovers where it lands, so tapping a visual activates it.
		g.pointer = &p
		return &p
	}
	return nil
}

// toScreen projects a world point onto the screen.
func (g *Game) toScreen(p geom.Point) geom.Point {
	w := g.Scenes.World()
	return g.Camera.WorldToScreen(p).Add(w.Origin)
}

// toWorld maps a screen point into the world.
func (g *Game) toWorld(p geom.Point) geom.Point {
	w := g.Scenes.World()
	return g.Camera.ScreenToWorld(p.Sub(w.Origin))
}

func (g *Game) evaluatePrompt() {
	w := g.Scenes.World()
	if w == nil {
		g.Prompts.Hide()
		return
	}
	var ptr *geom.Point
	if g.pointer != nil {
		p := g.toWorld(*g.pointer)
		ptr = &p
	}
	g.Prompts.Evaluate(interaction.Frame{
		Hotspots:  w.Hotspots,
		Avatar:    g.Avatar.Pos,
		Pointer:   ptr,
		Project:   g.toScreen,
		Suspended: g.Overlays.IsOpen() || g.Director.Active(),
	})
}

// activate runs the visible prompt's effect. A scene change with an
// overlay opens the overlay once the fade has cleared.
func (g *Game) activate() {
	h, ok := g.Prompts.Activate()
	if !ok {
		return
	}
	eff := h.Effect
	switch {
	case eff.Scene != "":
		var done func()
		if eff.Overlay != "" {
			name := eff.Overlay
			done = func() { g.openOverlay(name) }
		}
		if g.Scenes.Enter(eff.Scene, eff.Arrive, done) {
			g.Prompts.Hide()
		}
	case eff.Overlay != "":
		g.openOverlay(eff.Overlay)
	}
}

func (g *Game) openOverlay(name string) {
	id, err := overlay.ParseID(name)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	g.Overlays.Open(id)
}

func (g *Game) updateOverlay(click *geom.Point) {
	panel := panelRect(g.Scenes.Viewport())

	if g.Input.Pressed(input.ButtonLeft) {
		g.Overlays.PrevPage()
	}
	if g.Input.Pressed(input.ButtonRight) {
		g.Overlays.NextPage()
	}
	if g.Overlays.Current() == overlay.Inventory {
		g.Suitcase.Hover(g.pointer, panel)
	}
	if click == nil {
		return
	}

	p := *click
	switch {
	case closeRect(panel).Contains(p):
		g.Overlays.CloseCurrent()
		return
	case prevRect(panel).Contains(p):
		g.Overlays.PrevPage()
		return
	case nextRect(panel).Contains(p):
		g.Overlays.NextPage()
		return
	}

	if g.Overlays.Current() == overlay.Inventory {
		g.Suitcase.Click(p, panel)
		return
	}

	page, ok := g.Overlays.CurrentPage()
	if !ok {
		return
	}
	if page.Video != nil && page.Video.Rect.PercentOf(panel).Contains(p) {
		if err := g.Overlays.PlayVideo(); err != nil {
			log.Printf("Warning: Failed to play video %s: %v", page.Video.ID, err)
		}
		return
	}
	for i, l := range page.Links {
		if l.Rect.PercentOf(panel).Contains(p) {
			if err := g.Overlays.OpenLink(i); err != nil {
				log.Printf("Warning: %v", err)
			}
			return
		}
	}
}

// onEnter resets per-scene UI once a scene is installed.
func (g *Game) onEnter(w *scene.World) {
	g.Prompts.Hide()
	g.Suitcase.Hover(nil, geom.Rect{})

	if w.Scene.Spotlight {
		g.Lighting.SetScene(&g.Config.Spotlight)
	} else {
		g.Lighting.SetScene(nil)
	}

	g.Greeting = nil
	if gr := w.Scene.Greeting; gr.Text != "" && gr.Seconds > 0 {
		g.Greeting = &Bubble{Text: gr.Text, TimeLeft: gr.Seconds, MaxTime: gr.Seconds}
	}
}

// updateGreeting counts the bubble down once the fade has cleared.
func (g *Game) updateGreeting(dt float64) {
	if g.Greeting == nil || g.Director.Active() {
		return
	}
	g.Greeting.TimeLeft -= dt
	if g.Greeting.TimeLeft <= 0 {
		g.Greeting = nil
	}
}

// avatarSize returns the drawn avatar size for the current frame.
func (g *Game) avatarSize() (render.Image, geom.Size) {
	frame, ok := g.Animator.Frame()
	if !ok {
		frame = g.Images.Fallback()
	}
	fw, fh := frame.Size()
	w := g.Config.Avatar.Width
	h := w
	if fw > 0 {
		h = w * float64(fh) / float64(fw)
	}
	return frame, geom.Size{W: w, H: h}
}

// avatarCenter is the middle of the drawn avatar on screen.
func (g *Game) avatarCenter() geom.Point {
	if g.Scenes.World() == nil {
		return geom.Point{}
	}
	_, size := g.avatarSize()
	feet := g.toScreen(g.Avatar.Pos)
	return geom.Point{X: feet.X, Y: feet.Y - size.H/2}
}
