package game

import (
	"context"
	"image"
	"testing"
	"time"

	"chosenoffset.com/raccoon/internal/assets"
	"chosenoffset.com/raccoon/internal/config"
	"chosenoffset.com/raccoon/internal/core/clock"
	"chosenoffset.com/raccoon/internal/core/geom"
	"chosenoffset.com/raccoon/internal/overlay"
	"chosenoffset.com/raccoon/internal/render"
	"chosenoffset.com/raccoon/internal/render/rendertest"
	"chosenoffset.com/raccoon/internal/transition"
)

const frameStep = 16 * time.Millisecond

var viewport = geom.Size{W: 1440, H: 900}

type harness struct {
	t     *testing.T
	game  *Game
	input *rendertest.Input
	clock *clock.Manual
}

func testImages() map[string]image.Point {
	return map[string]image.Point{
		"assets/outside_house.jpg":     {X: 2400, Y: 1350},
		"assets/static_downstairs.jpg": {X: 3000, Y: 900},
		"assets/static_upstairs.jpg":   {X: 3000, Y: 900},
	}
}

func newHarness(t *testing.T, start string) *harness {
	t.Helper()
	r := &rendertest.Renderer{}
	in := rendertest.NewInput()
	clk := clock.NewManual(time.Unix(0, 0))
	g, err := NewGame(config.DefaultConfig(), Options{
		Renderer: r,
		InputMgr: in,
		Images:   assets.NewCache(rendertest.NewLoader(testImages()), r, ""),
		Clock:    clk,
		Viewport: viewport,
	})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if err := g.Scenes.EnterImmediately(context.Background(), start); err != nil {
		t.Fatalf("EnterImmediately failed: %v", err)
	}
	return &harness{t: t, game: g, input: in, clock: clk}
}

func (h *harness) frame() {
	h.t.Helper()
	h.clock.Advance(frameStep)
	if err := h.game.Update(); err != nil {
		h.t.Fatalf("Update failed: %v", err)
	}
	h.input.EndFrame()
}

func (h *harness) tap(key render.Key) {
	h.input.Press(key)
	h.frame()
	h.input.Release(key)
	h.frame()
}

// walkUntilPrompt holds key until a prompt shows, then lets go.
func (h *harness) walkUntilPrompt(key render.Key) {
	h.t.Helper()
	h.input.Press(key)
	for i := 0; i < 600 && !h.game.Prompts.Prompt().Visible; i++ {
		h.frame()
	}
	h.input.Release(key)
	h.frame()
	if !h.game.Prompts.Prompt().Visible {
		h.t.Fatal("Expected a prompt after walking")
	}
}

// settleTransition runs frames until the fade has cleared. The scene load
// runs on a goroutine so preparing frames wait briefly.
func (h *harness) settleTransition() {
	h.t.Helper()
	for i := 0; i < 2000 && h.game.Director.Active(); i++ {
		if h.game.Director.Phase() == transition.PhasePreparing {
			time.Sleep(time.Millisecond)
		}
		h.frame()
	}
	if h.game.Director.Active() {
		h.t.Fatalf("Transition stuck in %v", h.game.Director.Phase())
	}
}

func TestOutsideSpawn(t *testing.T) {
	h := newHarness(t, config.SceneOutside)
	w := h.game.Scenes.World()

	if w.Size != (geom.Size{W: 1600, H: 900}) {
		t.Errorf("Expected cover world 1600x900, got %v", w.Size)
	}
	if got := h.game.Avatar.Pos; got != (geom.Point{X: 320, Y: 760}) {
		t.Errorf("Expected spawn at (320,760), got %v", got)
	}
	if _, ok := h.game.Lighting.Spotlight(); !ok {
		t.Error("Expected the spotlight outside")
	}
}

func TestFirstFrameHasNoDelta(t *testing.T) {
	h := newHarness(t, config.SceneOutside)
	h.input.Press(render.KeyRight)
	h.frame()
	if got := h.game.Avatar.Pos.X; got != 320 {
		t.Errorf("Expected no movement on the first frame, got x=%v", got)
	}
	h.frame()
	if got := h.game.Avatar.Pos.X; got <= 320 {
		t.Errorf("Expected movement on the second frame, got x=%v", got)
	}
}

func TestWalkToDoorAndEnterHouse(t *testing.T) {
	h := newHarness(t, config.SceneOutside)

	h.walkUntilPrompt(render.KeyRight)
	p := h.game.Prompts.Prompt()
	if p.Label != "Enter house ⏎" {
		t.Fatalf("Expected door prompt, got %q", p.Label)
	}

	h.tap(render.KeyEnter)
	if !h.game.Director.Active() {
		t.Fatal("Expected the transition to start")
	}
	if h.game.Prompts.Prompt().Visible {
		t.Error("Expected prompt hidden during the transition")
	}
	h.settleTransition()

	w := h.game.Scenes.World()
	if w.Scene.ID != config.SceneInside {
		t.Fatalf("Expected inside, got %s", w.Scene.ID)
	}
	if got := h.game.Avatar.Pos; got != (geom.Point{X: 140, Y: 810}) {
		t.Errorf("Expected inside spawn at (140,810), got %v", got)
	}
	if !h.game.Avatar.OnGround {
		t.Error("Expected avatar ground-snapped")
	}
	if h.game.Greeting == nil || h.game.Greeting.Text != "Not too shabby.. Eh?" {
		t.Errorf("Expected greeting bubble, got %+v", h.game.Greeting)
	}
	if _, ok := h.game.Lighting.Spotlight(); ok {
		t.Error("Expected no spotlight inside")
	}
}

func TestInputIgnoredDuringTransition(t *testing.T) {
	h := newHarness(t, config.SceneOutside)
	h.walkUntilPrompt(render.KeyRight)
	h.tap(render.KeyEnter)

	h.input.Press(render.KeyRight)
	x := h.game.Avatar.Pos.X
	for i := 0; i < 5 && h.game.Director.Active(); i++ {
		h.frame()
		if h.game.Avatar.Pos.X != x {
			t.Fatalf("Expected avatar frozen during the fade, moved to %v", h.game.Avatar.Pos.X)
		}
	}
	h.input.Release(render.KeyRight)
}

func TestGreetingExpires(t *testing.T) {
	h := newHarness(t, config.SceneInside)
	if h.game.Greeting == nil {
		t.Fatal("Expected greeting")
	}
	for i := 0; i < 200; i++ {
		h.frame()
	}
	if h.game.Greeting != nil {
		t.Errorf("Expected greeting gone after 3.2s, %v left", h.game.Greeting.TimeLeft)
	}
}

func TestSuitcaseOpensInventoryAndFreezesAvatar(t *testing.T) {
	h := newHarness(t, config.SceneInside)

	h.walkUntilPrompt(render.KeyRight)
	p := h.game.Prompts.Prompt()
	if p.Hotspot.ID != "suitcase" || p.Label != "Open briefcase ⏎" {
		t.Fatalf("Expected suitcase prompt, got %q", p.Label)
	}

	h.tap(render.KeyEnter)
	if h.game.Overlays.Current() != overlay.Inventory {
		t.Fatalf("Expected inventory open, got %v", h.game.Overlays.Current())
	}
	if h.game.Prompts.Prompt().Visible {
		t.Error("Expected prompt hidden while the inventory is open")
	}

	x := h.game.Avatar.Pos.X
	h.input.Press(render.KeyLeft)
	for i := 0; i < 30; i++ {
		h.frame()
	}
	h.input.Release(render.KeyLeft)
	h.frame()
	if got := h.game.Avatar.Pos.X; got != x {
		t.Errorf("Expected avatar frozen at %v, got %v", x, got)
	}

	if h.game.Scenes.Enter(config.SceneOutside, "", nil) {
		t.Error("Expected scene change refused while an overlay is open")
	}

	h.input.Press(render.KeyEscape)
	h.frame()
	h.input.Release(render.KeyEscape)
	if h.game.Overlays.IsOpen() {
		t.Fatalf("Expected inventory closed, got %v", h.game.Overlays.Current())
	}
	if p := h.game.Prompts.Prompt(); !p.Visible || p.Hotspot.ID != "suitcase" {
		t.Error("Expected the suitcase prompt back right after closing")
	}
}

func TestTapSuitcaseOpensInventory(t *testing.T) {
	h := newHarness(t, config.SceneInside)
	if h.game.Prompts.Prompt().Visible {
		t.Fatal("Expected no prompt at the inside spawn")
	}

	// The suitcase visual spans 255..1065 x 738..864 with the camera at 0.
	h.input.Touches = []image.Point{{X: 660, Y: 800}}
	h.input.NewTouches = h.input.Touches
	h.frame()
	h.input.Touches = nil

	if h.game.Overlays.Current() != overlay.Inventory {
		t.Errorf("Expected inventory after tapping the suitcase, got %v", h.game.Overlays.Current())
	}
	if got := h.game.Avatar.Pos.X; got != 140 {
		t.Errorf("Expected avatar to stay at 140, got %v", got)
	}
}

func TestProjectPanelReturnsToInventory(t *testing.T) {
	h := newHarness(t, config.SceneInside)
	h.game.Overlays.Open(overlay.Inventory)

	// Panel is 1215x810 at (112.5,45); this is the middle of fatherfigure.
	h.input.Cursor = image.Pt(884, 580)
	h.input.MouseClicked = true
	h.frame()

	want := overlay.Project("fatherfigure")
	if h.game.Overlays.Current() != want {
		t.Fatalf("Expected %v open, got %v", want, h.game.Overlays.Current())
	}

	h.tap(render.KeyRight)
	if idx, _ := h.game.Overlays.Page(); idx != 1 {
		t.Errorf("Expected second page after right arrow, got %d", idx)
	}

	h.tap(render.KeyEscape)
	if h.game.Overlays.Current() != overlay.Inventory {
		t.Errorf("Expected inventory after closing the project, got %v", h.game.Overlays.Current())
	}
}

func TestResizeRefitsWorld(t *testing.T) {
	h := newHarness(t, config.SceneInside)
	h.game.Resize(geom.Size{W: 1200, H: 600})

	w := h.game.Scenes.World()
	if w.Size != (geom.Size{W: 2000, H: 600}) {
		t.Errorf("Expected fit-height world 2000x600, got %v", w.Size)
	}
	if got := h.game.Avatar.Pos.Y; got != 510 {
		t.Errorf("Expected avatar on the new ground line 510, got %v", got)
	}
	if b := h.game.TouchPad.Buttons[0].Rect; b.Y+b.H > 600 {
		t.Errorf("Expected touch pad inside the new viewport, got %v", b)
	}
}

func TestDrawSmoke(t *testing.T) {
	h := newHarness(t, config.SceneInside)
	h.game.Overlays.Open(overlay.Project("fatherfigure"))

	screen := rendertest.NewImage("screen", 1440, 900)
	h.game.Draw(screen)
	if len(screen.Draws) == 0 {
		t.Error("Expected something drawn")
	}
}
