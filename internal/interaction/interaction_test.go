package interaction

import (
	"testing"

	"chosenoffset.com/raccoon/internal/core/geom"
	"chosenoffset.com/raccoon/internal/scene"
)

func placed(id string, kind scene.Kind, pos geom.Point, radius float64) scene.Placed {
	return scene.Placed{
		Hotspot: &scene.Hotspot{ID: id, Kind: kind, Radius: radius, Label: id + " ⏎", PromptOffset: geom.Point{Y: -40}},
		Pos:     pos,
	}
}

// Inside the house: the exit and the suitcase radii overlap near the left wall.
var insideHotspots = []scene.Placed{
	placed("exit", scene.KindTraversal, geom.Point{X: 81, Y: 648}, 160),
	placed("suitcase", scene.KindItem, geom.Point{X: 200, Y: 864}, 220),
	placed("stairs", scene.KindTraversal, geom.Point{X: 2400, Y: 540}, 180),
}

func TestNothingInRange(t *testing.T) {
	e := NewEngine()
	p := e.Evaluate(Frame{Hotspots: insideHotspots, Avatar: geom.Point{X: 1200, Y: 810}})
	if p.Visible {
		t.Errorf("Expected no prompt, got %q", p.Label)
	}
	if _, ok := e.Activate(); ok {
		t.Error("Expected Activate to be ignored with no prompt")
	}
}

func TestItemOutranksTraversal(t *testing.T) {
	e := NewEngine()
	// About 109 px from the exit and 138 px from the suitcase.
	avatar := geom.Point{X: 140, Y: 740}
	if geom.Distance(avatar, insideHotspots[0].Pos) > 160 || geom.Distance(avatar, insideHotspots[1].Pos) > 220 {
		t.Fatal("Fixture avatar must be in range of both hotspots")
	}

	p := e.Evaluate(Frame{Hotspots: insideHotspots, Avatar: avatar})
	if !p.Visible || p.Hotspot.ID != "suitcase" {
		t.Errorf("Expected suitcase prompt, got %+v", p)
	}
}

func TestNearestWinsWithinKind(t *testing.T) {
	e := NewEngine()
	hotspots := []scene.Placed{
		placed("far", scene.KindTraversal, geom.Point{X: 100, Y: 0}, 200),
		placed("near", scene.KindTraversal, geom.Point{X: 50, Y: 0}, 200),
	}
	p := e.Evaluate(Frame{Hotspots: hotspots})
	if p.Hotspot.ID != "near" {
		t.Errorf("Expected near, got %s", p.Hotspot.ID)
	}
}

func TestRadiusIsInclusive(t *testing.T) {
	e := NewEngine()
	hotspots := []scene.Placed{placed("door", scene.KindTraversal, geom.Point{X: 300, Y: 0}, 300)}
	if p := e.Evaluate(Frame{Hotspots: hotspots}); !p.Visible {
		t.Error("Expected prompt exactly at the radius")
	}
}

func TestSuspendedHidesPrompt(t *testing.T) {
	e := NewEngine()
	p := e.Evaluate(Frame{Hotspots: insideHotspots, Avatar: geom.Point{X: 140, Y: 740}, Suspended: true})
	if p.Visible {
		t.Error("Expected no prompt while suspended")
	}
}

func TestHoverCountsAsProximity(t *testing.T) {
	e := NewEngine()
	suitcase := placed("suitcase", scene.KindItem, geom.Point{X: 200, Y: 864}, 220)
	suitcase.Visual = &scene.Visual{WidthPct: 27, HeightPct: 10}
	suitcase.Rect = geom.Rect{X: 100, Y: 780, W: 200, H: 84}

	pointer := geom.Point{X: 150, Y: 800}
	p := e.Evaluate(Frame{
		Hotspots: []scene.Placed{suitcase},
		Avatar:   geom.Point{X: 2000, Y: 810},
		Pointer:  &pointer,
	})
	if !p.Visible || p.Trigger != TriggerHover {
		t.Fatalf("Expected hover prompt, got %+v", p)
	}
	if h, ok := e.Activate(); !ok || h.ID != "suitcase" {
		t.Errorf("Expected activation of suitcase, got %v %v", h.ID, ok)
	}
}

func TestScreenPositionFollowsCamera(t *testing.T) {
	e := NewEngine()
	offset := geom.Point{X: 1000, Y: 100}
	project := func(p geom.Point) geom.Point { return p.Sub(offset) }
	hotspots := []scene.Placed{placed("door", scene.KindTraversal, geom.Point{X: 1332, Y: 594}, 300)}

	p := e.Evaluate(Frame{Hotspots: hotspots, Avatar: geom.Point{X: 1300, Y: 760}, Project: project})
	want := geom.Point{X: 332, Y: 454}
	if p.Screen != want {
		t.Errorf("Expected prompt at %v, got %v", want, p.Screen)
	}

	offset = geom.Point{X: 1100, Y: 100}
	p = e.Evaluate(Frame{Hotspots: hotspots, Avatar: geom.Point{X: 1300, Y: 760}, Project: project})
	if p.Screen.X != 232 {
		t.Errorf("Expected prompt to move with camera to x=232, got %v", p.Screen.X)
	}
}
